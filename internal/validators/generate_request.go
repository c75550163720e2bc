// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-tool/internal/encoder"
	"github.com/MKhiriev/go-qr-tool/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTemplate targets the payload template name.
	FieldTemplate = "template"

	// FieldEncryption targets the WiFi encryption type. It is only checked
	// for the wifi template.
	FieldEncryption = "encryption"

	// FieldModuleColor and FieldBackgroundColor target the hex colors.
	// Empty colors are valid and fall back to defaults.
	FieldModuleColor     = "module_color"
	FieldBackgroundColor = "background_color"

	// FieldPixelSize targets the image edge. Zero is valid and falls back
	// to the default size.
	FieldPixelSize = "pixel_size"
)

// GenerateRequestValidator validates [models.GenerateRequest],
// [models.PayloadRequest] and [models.EncodeOptions], by value or pointer.
type GenerateRequestValidator struct {
}

func NewGenerateRequestValidator() Validator {
	return &GenerateRequestValidator{}
}

func (v *GenerateRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.GenerateRequest:
		return v.validateGenerateRequest(ctx, value, fields...)
	case *models.GenerateRequest:
		return v.validateGenerateRequest(ctx, *value, fields...)

	case models.PayloadRequest:
		return v.validatePayloadRequest(ctx, value, fields...)
	case *models.PayloadRequest:
		return v.validatePayloadRequest(ctx, *value, fields...)

	case models.EncodeOptions:
		return v.validateEncodeOptions(ctx, value, fields...)
	case *models.EncodeOptions:
		return v.validateEncodeOptions(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *GenerateRequestValidator) validateGenerateRequest(ctx context.Context, request models.GenerateRequest, fields ...string) error {
	var payloadFields, optionFields []string
	for _, f := range fields {
		switch f {
		case FieldTemplate, FieldEncryption:
			payloadFields = append(payloadFields, f)
		case FieldModuleColor, FieldBackgroundColor, FieldPixelSize:
			optionFields = append(optionFields, f)
		default:
			return ErrUnknownField
		}
	}

	if len(fields) == 0 || len(payloadFields) > 0 {
		if err := v.validatePayloadRequest(ctx, request.Payload, payloadFields...); err != nil {
			return fmt.Errorf("payload: %w", err)
		}
	}
	if len(fields) == 0 || len(optionFields) > 0 {
		if err := v.validateEncodeOptions(ctx, request.Options, optionFields...); err != nil {
			return fmt.Errorf("options: %w", err)
		}
	}
	return nil
}

func (v *GenerateRequestValidator) validatePayloadRequest(ctx context.Context, request models.PayloadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTemplate, FieldEncryption}
	}

	for _, f := range fields {
		switch f {
		case FieldTemplate:
			if !request.Template.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidTemplate, request.Template)
			}
		case FieldEncryption:
			if request.Template != models.TemplateWiFi {
				continue
			}
			if _, ok := models.ParseWiFiEncryption(string(request.WiFi.Encryption)); !ok {
				return fmt.Errorf("%w: %q", ErrInvalidEncryption, request.WiFi.Encryption)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GenerateRequestValidator) validateEncodeOptions(ctx context.Context, opts models.EncodeOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldModuleColor, FieldBackgroundColor, FieldPixelSize}
	}

	for _, f := range fields {
		switch f {
		case FieldModuleColor:
			if !validColor(opts.ModuleColor) {
				return ErrInvalidModuleColor
			}
		case FieldBackgroundColor:
			if !validColor(opts.BackgroundColor) {
				return ErrInvalidBackgroundColor
			}
		case FieldPixelSize:
			if opts.PixelSize == 0 {
				continue
			}
			if err := models.ValidatePixelSize(opts.PixelSize); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidPixelSize, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validColor(hex string) bool {
	if hex == "" {
		return true
	}
	_, err := encoder.ParseColor(hex)
	return err == nil
}
