// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-qr-tool/internal/config"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// AppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"semver", "1.0.0"},
		{"dev build", "dev"},
		{"pre-release with metadata", "v1.2.3-beta+build.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			// the version does not depend on the request context
			assert.Equal(t, tt.version, svc.GetAppVersion(ctx))
		})
	}
}
