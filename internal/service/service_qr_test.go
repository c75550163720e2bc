// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/MKhiriev/go-qr-tool/internal/encoder"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/mock"
	"github.com/MKhiriev/go-qr-tool/internal/validators"
	"github.com/MKhiriev/go-qr-tool/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRealQRService(t *testing.T) QRService {
	t.Helper()
	enc, err := encoder.NewQREncoder("medium", logger.Nop())
	require.NoError(t, err)
	return NewQRValidationService().Wrap(NewQRService(enc, logger.Nop()))
}

// ─────────────────────────────────────────────
// Format
// ─────────────────────────────────────────────

func TestQRService_Format(t *testing.T) {
	svc := newRealQRService(t)

	tests := []struct {
		name          string
		req           models.PayloadRequest
		wantPayload   string
		wantEncodable bool
	}{
		{"text", models.NewTextRequest("hi"), "hi", true},
		{"url gets scheme", models.NewURLRequest("example.com"), "https://example.com", true},
		{"blank url", models.NewURLRequest("  "), "  ", false},
		{"wifi none alias", models.NewWiFiRequest("cafe", "", "none"), "WIFI:S:cafe;T:nopass;P:;;", true},
		{"wifi wpa2 alias", models.NewWiFiRequest("home", "pw", "wpa2"), "WIFI:S:home;T:WPA;P:pw;;", true},
		{"wifi default encryption", models.NewWiFiRequest("home", "pw", ""), "WIFI:S:home;T:WPA;P:pw;;", true},
		{"empty contact", models.NewContactRequest("", "", ""), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Format(context.Background(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPayload, got.Payload)
			assert.Equal(t, tt.wantEncodable, got.Encodable)
		})
	}
}

func TestQRService_Format_InvalidTemplate(t *testing.T) {
	svc := newRealQRService(t)

	_, err := svc.Format(context.Background(), models.PayloadRequest{Template: "sms", Text: "hi"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidTemplate)
}

// ─────────────────────────────────────────────
// Generate
// ─────────────────────────────────────────────

func TestQRService_Generate(t *testing.T) {
	svc := newRealQRService(t)

	img, err := svc.Generate(context.Background(), models.GenerateRequest{
		Payload: models.NewContactRequest("Jane Doe", "jane@example.com", ""),
		Options: models.EncodeOptions{PixelSize: 200},
	})

	require.NoError(t, err)
	assert.Equal(t, models.TemplateContact, img.Template)
	assert.Equal(t, 200, img.Size)
	assert.True(t, strings.HasPrefix(img.Payload, "BEGIN:VCARD\nVERSION:3.0\nFN:Jane Doe\n"))

	decoded, err := png.Decode(bytes.NewReader(img.PNG))
	require.NoError(t, err)
	assert.Equal(t, 200, decoded.Bounds().Dx())
	assert.Equal(t, 200, decoded.Bounds().Dy())
}

func TestQRService_Generate_Errors(t *testing.T) {
	svc := newRealQRService(t)

	tests := []struct {
		name    string
		req     models.GenerateRequest
		wantErr error
	}{
		{
			name:    "nothing to encode",
			req:     models.GenerateRequest{Payload: models.NewWiFiRequest("", "pw", models.WiFiWPA)},
			wantErr: ErrNothingToEncode,
		},
		{
			name:    "blank url",
			req:     models.GenerateRequest{Payload: models.NewURLRequest("   ")},
			wantErr: ErrNothingToEncode,
		},
		{
			name: "size out of range",
			req: models.GenerateRequest{
				Payload: models.NewTextRequest("x"),
				Options: models.EncodeOptions{PixelSize: 500},
			},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name: "bad color",
			req: models.GenerateRequest{
				Payload: models.NewTextRequest("x"),
				Options: models.EncodeOptions{ModuleColor: "nope"},
			},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "too large for a qr code",
			req:     models.GenerateRequest{Payload: models.NewTextRequest(strings.Repeat("a", 8000))},
			wantErr: encoder.ErrEncodeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQRService_Generate_PassesDefaultsToEncoder(t *testing.T) {
	ctrl := gomock.NewController(t)
	enc := mock.NewMockEncoder(ctrl)
	enc.EXPECT().
		Encode(gomock.Any(), "https://example.com", models.DefaultEncodeOptions()).
		Return(models.QRImage{PNG: []byte{1}, Size: 300, Payload: "https://example.com"}, nil)

	svc := NewQRService(enc, logger.Nop())

	img, err := svc.Generate(context.Background(), models.GenerateRequest{Payload: models.NewURLRequest("example.com")})

	require.NoError(t, err)
	assert.Equal(t, models.TemplateURL, img.Template)
}

func TestQRService_Generate_EncoderErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	enc := mock.NewMockEncoder(ctrl)
	enc.EXPECT().Encode(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.QRImage{}, encoder.ErrInvalidOptions)

	_, err := NewQRService(enc, logger.Nop()).Generate(context.Background(), models.GenerateRequest{
		Payload: models.NewTextRequest("x"),
	})

	assert.True(t, errors.Is(err, encoder.ErrInvalidOptions))
	assert.Contains(t, err.Error(), "text")
}

// ─────────────────────────────────────────────
// Preview
// ─────────────────────────────────────────────

func TestQRService_Preview(t *testing.T) {
	svc := newRealQRService(t)

	got, err := svc.Preview(context.Background(), models.GenerateRequest{
		Payload: models.NewURLRequest("example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got.Payload)
	assert.Equal(t, "qrcode-url.png", got.FileName)
	assert.Equal(t, models.DefaultPixelSize, got.Size)
	require.True(t, strings.HasPrefix(got.DataURL, pngDataURLPrefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got.DataURL, pngDataURLPrefix))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)
}

func TestQRService_Preview_NothingToEncode(t *testing.T) {
	svc := newRealQRService(t)

	got, err := svc.Preview(context.Background(), models.GenerateRequest{Payload: models.NewTextRequest("")})

	assert.ErrorIs(t, err, ErrNothingToEncode)
	assert.Empty(t, got.DataURL)
}

// ─────────────────────────────────────────────
// QRValidationService
// ─────────────────────────────────────────────

func TestQRValidationService_DoesNotCallInnerOnInvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	enc := mock.NewMockEncoder(ctrl)
	// no EXPECT: any encoder call fails the test

	svc := NewQRValidationService().Wrap(NewQRService(enc, logger.Nop()))

	_, err := svc.Generate(context.Background(), models.GenerateRequest{
		Payload: models.NewWiFiRequest("x", "y", "WPA3-Enterprise"),
	})
	assert.ErrorIs(t, err, validators.ErrInvalidEncryption)

	_, err = svc.Preview(context.Background(), models.GenerateRequest{
		Payload: models.NewTextRequest("x"),
		Options: models.EncodeOptions{BackgroundColor: "#zzz"},
	})
	assert.ErrorIs(t, err, validators.ErrInvalidBackgroundColor)
}
