// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoder

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

type zxingDecoder struct {
	mu     sync.Mutex
	reader gozxing.Reader
	hints  map[gozxing.DecodeHintType]interface{}

	logger *logger.Logger
}

// NewZXingDecoder returns a [Decoder] backed by github.com/makiuchi-d/gozxing.
// Calls are serialized: the underlying reader keeps per-call state.
func NewZXingDecoder(logger *logger.Logger) Decoder {
	return &zxingDecoder{
		reader: qrcode.NewQRCodeReader(),
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
		logger: logger,
	}
}

func (d *zxingDecoder) Decode(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if img == nil || img.Bounds().Empty() {
		return "", ErrUnsupportedImage
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	d.mu.Lock()
	result, err := d.reader.Decode(bmp, d.hints)
	d.reader.Reset()
	d.mu.Unlock()

	if err != nil {
		var notFound gozxing.NotFoundException
		if errors.As(err, &notFound) {
			return "", ErrNotFound
		}
		d.logger.Debug().Err(err).Msg("qr symbol found but could not be decoded")
		return "", fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	return result.GetText(), nil
}
