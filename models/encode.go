// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const (
	// MinPixelSize and MaxPixelSize bound the rendered image edge in pixels.
	MinPixelSize = 150
	MaxPixelSize = 400
	// PixelSizeStep is the increment used by size controls.
	PixelSizeStep = 10
	// DefaultPixelSize is the initial image edge in pixels.
	DefaultPixelSize = 300

	DefaultModuleColor     = "#000000"
	DefaultBackgroundColor = "#ffffff"
)

// EncodeOptions controls how a payload is rendered into an image.
// Colors are hex strings ("#rrggbb" or "#rgb").
type EncodeOptions struct {
	ModuleColor     string `json:"module_color"`
	BackgroundColor string `json:"background_color"`
	PixelSize       int    `json:"pixel_size"`
}

// DefaultEncodeOptions returns black modules on white at [DefaultPixelSize].
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		ModuleColor:     DefaultModuleColor,
		BackgroundColor: DefaultBackgroundColor,
		PixelSize:       DefaultPixelSize,
	}
}

// WithDefaults fills zero-valued fields from [DefaultEncodeOptions].
func (o EncodeOptions) WithDefaults() EncodeOptions {
	d := DefaultEncodeOptions()
	if o.ModuleColor == "" {
		o.ModuleColor = d.ModuleColor
	}
	if o.BackgroundColor == "" {
		o.BackgroundColor = d.BackgroundColor
	}
	if o.PixelSize == 0 {
		o.PixelSize = d.PixelSize
	}
	return o
}

// ValidatePixelSize returns an error when size is outside [MinPixelSize, MaxPixelSize].
func ValidatePixelSize(size int) error {
	if size < MinPixelSize || size > MaxPixelSize {
		return fmt.Errorf("pixel size %d is outside [%d, %d]", size, MinPixelSize, MaxPixelSize)
	}
	return nil
}

// QRImage is a rendered QR code.
type QRImage struct {
	// PNG is the encoded image, PixelSize x PixelSize pixels.
	PNG []byte
	// Preview is a text rendering of the same symbol for terminals.
	Preview string
	// Size is the image edge in pixels.
	Size int
	// Payload is the string that was encoded.
	Payload string
	// Template is the template the payload was formatted from, if known.
	Template Template
}

// DownloadFileName returns the file name a generated image is saved under.
func DownloadFileName(t Template) string {
	if t == "" {
		t = TemplateText
	}
	return "qrcode-" + string(t) + ".png"
}
