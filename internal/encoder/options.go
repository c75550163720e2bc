// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/MKhiriev/go-qr-tool/models"
	"github.com/lucasb-eyer/go-colorful"
)

type renderOptions struct {
	foreground color.Color
	background color.Color
	size       int
}

func parseOptions(opts models.EncodeOptions) (renderOptions, error) {
	opts = opts.WithDefaults()

	if err := models.ValidatePixelSize(opts.PixelSize); err != nil {
		return renderOptions{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	fg, err := ParseColor(opts.ModuleColor)
	if err != nil {
		return renderOptions{}, fmt.Errorf("%w: module color: %v", ErrInvalidOptions, err)
	}
	bg, err := ParseColor(opts.BackgroundColor)
	if err != nil {
		return renderOptions{}, fmt.Errorf("%w: background color: %v", ErrInvalidOptions, err)
	}

	return renderOptions{foreground: fg, background: bg, size: opts.PixelSize}, nil
}

// ParseColor parses "#rrggbb" or "#rgb". The leading '#' is optional.
func ParseColor(hex string) (color.Color, error) {
	hex = strings.TrimSpace(hex)
	if hex != "" && !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, err
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
