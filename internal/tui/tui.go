// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-tool/internal/controller"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	ctrl      Controller
	buildInfo models.BuildInfo

	logger *logger.Logger
}

func New(ctrl Controller, buildInfo models.BuildInfo, logger *logger.Logger) *TUI {
	return &TUI{ctrl: ctrl, buildInfo: buildInfo, logger: logger}
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The store notifies synchronously while holding its lock, so the
	// subscriber only flags the change and the program picks it up.
	changes := make(chan struct{}, 1)
	unsubscribe := t.ctrl.Store().Subscribe(func(controller.State) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	model := newAppModel(ctx, t.ctrl, changes, t.buildInfo)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("error running terminal ui: %w", err)
	}

	t.logger.Info().Msg("terminal ui closed")
	return nil
}
