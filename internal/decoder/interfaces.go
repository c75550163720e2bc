// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package decoder extracts QR code text from raster images.
//
// A single [Decoder] is shared by the camera session and the static image
// path of the scanner; implementations must be safe for concurrent use.
package decoder

import (
	"context"
	"image"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/decoder_mock.go -package=mock

// Decoder finds and decodes a QR code in an image.
type Decoder interface {
	// Decode returns the text of the first QR code found in img.
	// It returns [ErrNotFound] when img contains no readable symbol.
	Decode(ctx context.Context, img image.Image) (string, error)
}
