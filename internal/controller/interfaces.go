// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller is the view state machine shared by the front ends.
//
// A [Controller] decides which of the generator, scanner, result and error
// views is shown, keeps the generator image in sync with the form through a
// debounced encoder, and drives camera and image scans. All state lives in a
// [Store]; front ends render snapshots of it and call controller methods in
// response to user input.
package controller

import (
	"context"
	"io"

	"github.com/MKhiriev/go-qr-tool/models"
)

// ScanSession is the part of the scanner adapter the controller drives.
type ScanSession interface {
	RequestPermission(ctx context.Context) error
	Cameras() []models.CameraDevice
	State() models.ScannerState
	StartCameraScan(ctx context.Context, cameraID string) (<-chan models.ScanOutcome, error)
	Stop(ctx context.Context) error
	ScanImage(ctx context.Context, r io.Reader) models.ScanOutcome
}
