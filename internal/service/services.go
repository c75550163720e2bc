// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the use cases served over HTTP: formatting and
// generating QR codes, listing cameras and scanning.
package service

import (
	"fmt"

	"github.com/MKhiriev/go-qr-tool/internal/camera"
	"github.com/MKhiriev/go-qr-tool/internal/config"
	"github.com/MKhiriev/go-qr-tool/internal/decoder"
	"github.com/MKhiriev/go-qr-tool/internal/encoder"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/scanner"
)

type Services struct {
	AppInfoService AppInfoService
	QRService      QRService
	ScanService    ScanService
}

func NewServices(cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

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

	return &Services{
		AppInfoService: appInfoService,
		QRService:      NewQRValidationService().Wrap(NewQRService(enc, logger)),
		ScanService:    NewScanService(sc, logger),
	}, nil
}
