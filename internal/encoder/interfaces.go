// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package encoder renders payload strings into QR code images.
//
// The [Encoder] interface isolates the concrete QR library so the formatter,
// the controller and the HTTP handlers do not depend on it.
package encoder

import (
	"context"

	"github.com/MKhiriev/go-qr-tool/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/encoder_mock.go -package=mock

// Encoder renders a payload into a QR image.
type Encoder interface {
	// Encode renders payload using opts. It returns [ErrEmptyPayload] for a
	// blank payload, [ErrInvalidOptions] for bad colors or size, and
	// [ErrEncodeFailed] when the payload cannot be represented as a QR code.
	Encode(ctx context.Context, payload string, opts models.EncodeOptions) (models.QRImage, error)
}
