// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-qr-tool/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=QRServiceWrapper

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// QRService turns structured input into payloads and QR images.
type QRService interface {
	// Format returns the canonical payload for req without encoding it.
	Format(ctx context.Context, req models.PayloadRequest) (models.FormatResponse, error)
	// Generate formats and encodes req. It returns ErrNothingToEncode when
	// the payload is blank.
	Generate(ctx context.Context, req models.GenerateRequest) (models.QRImage, error)
	// Preview is Generate with the PNG inlined as a data URL.
	Preview(ctx context.Context, req models.GenerateRequest) (models.PreviewResponse, error)
}

// QRServiceWrapper defines middleware composition for QRService.
// Implementations wrap an existing QRService to add behavior such as
// validation.
type QRServiceWrapper interface {
	Wrap(QRService) QRService
}

// ScanService exposes the scanner to the HTTP transport.
type ScanService interface {
	// Cameras requests camera access and lists the available cameras.
	Cameras(ctx context.Context) (models.CamerasResponse, error)
	// ScanImage decodes one uploaded image.
	ScanImage(ctx context.Context, r io.Reader) models.ScanResponse
	// StartStream starts a camera session, stopping any running one first.
	StartStream(ctx context.Context, cameraID string) (<-chan models.ScanOutcome, error)
	// StopStream stops the running camera session, if any.
	StopStream(ctx context.Context) error
	// StopSession stops the session that returned outcomes, leaving a
	// session started by another caller alone.
	StopSession(ctx context.Context, outcomes <-chan models.ScanOutcome) error
}
