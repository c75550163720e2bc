// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-qr-tool/internal/encoder"
	"github.com/MKhiriev/go-qr-tool/internal/formatter"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/models"
)

const pngDataURLPrefix = "data:image/png;base64,"

type qrService struct {
	encoder encoder.Encoder

	logger *logger.Logger
}

func NewQRService(enc encoder.Encoder, logger *logger.Logger) QRService {
	return &qrService{
		encoder: enc,
		logger:  logger,
	}
}

func (s *qrService) Format(ctx context.Context, req models.PayloadRequest) (models.FormatResponse, error) {
	payload := formatter.Format(req)
	return models.FormatResponse{
		Payload:   payload,
		Encodable: formatter.IsEncodable(payload),
	}, nil
}

func (s *qrService) Generate(ctx context.Context, req models.GenerateRequest) (models.QRImage, error) {
	payload := formatter.Format(req.Payload)
	if !formatter.IsEncodable(payload) {
		return models.QRImage{}, ErrNothingToEncode
	}

	img, err := s.encoder.Encode(ctx, payload, req.Options.WithDefaults())
	if err != nil {
		return models.QRImage{}, fmt.Errorf("error encoding %s payload: %w", req.Payload.Template, err)
	}
	img.Template = req.Payload.Template

	logger.FromContext(ctx).Debug().
		Str("template", string(img.Template)).
		Int("size", img.Size).
		Int("png_bytes", len(img.PNG)).
		Msg("qr code generated")

	return img, nil
}

func (s *qrService) Preview(ctx context.Context, req models.GenerateRequest) (models.PreviewResponse, error) {
	img, err := s.Generate(ctx, req)
	if err != nil {
		return models.PreviewResponse{}, err
	}

	return models.PreviewResponse{
		Payload:  img.Payload,
		DataURL:  pngDataURLPrefix + base64.StdEncoding.EncodeToString(img.PNG),
		FileName: models.DownloadFileName(img.Template),
		Size:     img.Size,
	}, nil
}
