// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the QR tool. It renders snapshots
// of the view controller with bubbletea and turns key presses into
// controller calls.
package tui

import (
	"context"
	"io"

	"github.com/MKhiriev/go-qr-tool/internal/controller"
	"github.com/MKhiriev/go-qr-tool/models"
)

// Controller is the part of [controller.Controller] the terminal UI drives.
type Controller interface {
	Store() *controller.Store
	State() controller.State

	SwitchTab(ctx context.Context, tab controller.Tab) error
	Reset(ctx context.Context) error

	UpdateRequest(req models.PayloadRequest)
	UpdateOptions(opts models.EncodeOptions)
	GenerateNow(ctx context.Context) error
	Download(dir string) (string, error)

	LoadCameras(ctx context.Context) error
	SelectCamera(ctx context.Context, id string) error
	StartScan(ctx context.Context) error
	StopScan(ctx context.Context) error
	ScanImage(ctx context.Context, r io.Reader) (models.ScanOutcome, bool)
}
