// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-qr-tool/internal/camera"
	"github.com/MKhiriev/go-qr-tool/internal/config"
	"github.com/MKhiriev/go-qr-tool/internal/controller"
	"github.com/MKhiriev/go-qr-tool/internal/decoder"
	"github.com/MKhiriev/go-qr-tool/internal/encoder"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/scanner"
	"github.com/MKhiriev/go-qr-tool/internal/tui"
	"github.com/MKhiriev/go-qr-tool/models"
)

const closeTimeout = 5 * time.Second

type App struct {
	ctrl *controller.Controller
	ui   UI

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.BuildInfo, logger *logger.Logger) (*App, error) {
	enc, err := encoder.NewQREncoder(cfg.Encoder.RecoveryLevel, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating qr encoder: %w", err)
	}

	sc := scanner.New(
		camera.NewProvider(cfg.Camera, logger),
		decoder.NewZXingDecoder(logger),
		cfg.Scanner,
		logger,
	)

	ctrl := controller.New(enc, sc, controller.Config{
		Debounce:    cfg.Generator.Debounce,
		DownloadDir: cfg.Generator.DownloadDir,
	}, logger)

	return &App{
		ctrl:   ctrl,
		ui:     tui.New(ctrl, buildInfo, logger),
		logger: logger,
	}, nil
}

// Run blocks until the UI exits or a stop signal arrives, then releases the
// camera and cancels pending encodes.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	runErr := a.ui.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := a.ctrl.Close(closeCtx); err != nil {
		a.logger.Warn().Err(err).Msg("controller did not close cleanly")
		return errors.Join(runErr, fmt.Errorf("error closing controller: %w", err))
	}

	return runErr
}
