// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package camera enumerates capture devices and streams frames from them.
//
// Two kinds of device are supported:
//   - directory cameras: every sub-directory of a frames directory is a
//     device whose image files are replayed as frames in name order;
//   - snapshot cameras: IP webcams exposing a still-image URL that is polled
//     once per frame.
//
// The scanner owns every [Stream] it opens and closes it when its session ends.
package camera

import (
	"context"
	"image"

	"github.com/MKhiriev/go-qr-tool/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/camera_mock.go -package=mock

// Provider lists devices and opens frame streams on them.
type Provider interface {
	// Devices returns the available cameras. It returns ErrPermissionDenied
	// when the device source exists but cannot be read.
	Devices(ctx context.Context) ([]models.CameraDevice, error)
	// Open binds the camera with the given ID. Unknown IDs yield
	// ErrCameraNotFound.
	Open(ctx context.Context, id string) (Stream, error)
}

// Stream yields frames of one bound camera until closed.
type Stream interface {
	Frame(ctx context.Context) (image.Image, error)
	Close() error
}
