// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/models"
	qrcode "github.com/skip2/go-qrcode"
)

type qrEncoder struct {
	level qrcode.RecoveryLevel

	logger *logger.Logger
}

// NewQREncoder returns an [Encoder] backed by github.com/skip2/go-qrcode.
// recoveryLevel is one of "low", "medium", "high" or "highest"; empty means
// medium.
func NewQREncoder(recoveryLevel string, logger *logger.Logger) (Encoder, error) {
	level, err := ParseRecoveryLevel(recoveryLevel)
	if err != nil {
		return nil, err
	}

	return &qrEncoder{level: level, logger: logger}, nil
}

// ParseRecoveryLevel maps a level name to a qrcode.RecoveryLevel.
func ParseRecoveryLevel(name string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low", "l":
		return qrcode.Low, nil
	case "", "medium", "m":
		return qrcode.Medium, nil
	case "high", "q":
		return qrcode.High, nil
	case "highest", "h":
		return qrcode.Highest, nil
	default:
		return qrcode.Medium, fmt.Errorf("%w: unknown recovery level %q", ErrInvalidOptions, name)
	}
}

func (e *qrEncoder) Encode(ctx context.Context, payload string, opts models.EncodeOptions) (models.QRImage, error) {
	if err := ctx.Err(); err != nil {
		return models.QRImage{}, err
	}
	if strings.TrimSpace(payload) == "" {
		return models.QRImage{}, ErrEmptyPayload
	}

	render, err := parseOptions(opts)
	if err != nil {
		return models.QRImage{}, err
	}

	q, err := qrcode.New(payload, e.level)
	if err != nil {
		e.logger.Debug().Err(err).Int("payload_len", len(payload)).Msg("qr symbol rejected payload")
		return models.QRImage{}, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	q.ForegroundColor = render.foreground
	q.BackgroundColor = render.background

	// a symbol with more modules than requested pixels is drawn larger
	img := q.Image(render.size)
	size := img.Bounds().Dx()
	if size != render.size {
		e.logger.Debug().Int("requested", render.size).Int("actual", size).Msg("qr image enlarged to fit the symbol")
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return models.QRImage{}, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	return models.QRImage{
		PNG:     buf.Bytes(),
		Preview: q.ToSmallString(false),
		Size:    size,
		Payload: payload,
	}, nil
}
