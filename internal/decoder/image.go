// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoder

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a PNG, JPEG, GIF, BMP or WebP image from r.
// It returns the image and the detected format name.
func LoadImage(r io.Reader) (image.Image, string, error) {
	if r == nil {
		return nil, "", ErrUnsupportedImage
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	return img, format, nil
}

// CenterRegion returns the centred size×size square of img. When img is
// smaller than size in either dimension the whole image is returned.
func CenterRegion(img image.Image, size int) image.Image {
	b := img.Bounds()
	if size <= 0 || b.Dx() <= size || b.Dy() <= size {
		return img
	}

	sub, ok := img.(interface {
		SubImage(r image.Rectangle) image.Image
	})
	if !ok {
		return img
	}

	x0 := b.Min.X + (b.Dx()-size)/2
	y0 := b.Min.Y + (b.Dy()-size)/2
	return sub.SubImage(image.Rect(x0, y0, x0+size, y0+size))
}
