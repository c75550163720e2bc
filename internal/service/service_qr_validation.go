// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-tool/internal/validators"
	"github.com/MKhiriev/go-qr-tool/models"
)

// QRValidationService rejects malformed requests before they reach the
// wrapped QRService. Every rejection wraps ErrInvalidDataProvided.
type QRValidationService struct {
	inner     QRService
	validator validators.Validator
}

func NewQRValidationService() QRServiceWrapper {
	return &QRValidationService{
		validator: validators.NewGenerateRequestValidator(),
	}
}

func (v *QRValidationService) Format(ctx context.Context, req models.PayloadRequest) (models.FormatResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.FormatResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Format(ctx, req)
}

func (v *QRValidationService) Generate(ctx context.Context, req models.GenerateRequest) (models.QRImage, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.QRImage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Generate(ctx, req)
}

func (v *QRValidationService) Preview(ctx context.Context, req models.GenerateRequest) (models.PreviewResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PreviewResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Preview(ctx, req)
}

func (v *QRValidationService) Wrap(inner QRService) QRService {
	v.inner = inner
	return v
}
