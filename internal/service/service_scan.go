// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-qr-tool/internal/formatter"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/scanner"
	"github.com/MKhiriev/go-qr-tool/models"
)

type scanService struct {
	scanner *scanner.Scanner

	logger *logger.Logger
}

func NewScanService(sc *scanner.Scanner, logger *logger.Logger) ScanService {
	return &scanService{
		scanner: sc,
		logger:  logger,
	}
}

func (s *scanService) Cameras(ctx context.Context) (models.CamerasResponse, error) {
	if err := s.scanner.RequestPermission(ctx); err != nil {
		return models.CamerasResponse{State: s.scanner.State()}, fmt.Errorf("error listing cameras: %w", err)
	}

	cameras := s.scanner.Cameras()
	return models.CamerasResponse{
		Cameras: cameras,
		State:   s.scanner.State(),
		Length:  len(cameras),
	}, nil
}

func (s *scanService) ScanImage(ctx context.Context, r io.Reader) models.ScanResponse {
	outcome := s.scanner.ScanImage(ctx, r)
	logger.FromContext(ctx).Debug().Stringer("outcome", outcome).Msg("image scanned")
	return ScanResponseFromOutcome(outcome)
}

func (s *scanService) StartStream(ctx context.Context, cameraID string) (<-chan models.ScanOutcome, error) {
	return s.scanner.StartCameraScan(ctx, cameraID)
}

func (s *scanService) StopStream(ctx context.Context) error {
	return s.scanner.Stop(ctx)
}

func (s *scanService) StopSession(ctx context.Context, outcomes <-chan models.ScanOutcome) error {
	return s.scanner.StopSession(ctx, outcomes)
}

// ScanResponseFromOutcome converts an outcome into its JSON form. Success
// text starting with http:// or https:// is flagged as a URL.
func ScanResponseFromOutcome(o models.ScanOutcome) models.ScanResponse {
	if o.IsSuccess() {
		return models.ScanResponse{
			Success: true,
			Text:    o.Text,
			IsURL:   formatter.HasScheme(o.Text),
		}
	}

	failure := o.Failure
	if failure == "" {
		failure = models.FailureEmptyResult
	}
	return models.ScanResponse{
		Failure: failure,
		Message: o.Reason,
	}
}
