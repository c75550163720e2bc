// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.4.0",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_MAX_UPLOAD_BYTES": "2048",

		"ENCODER_RECOVERY_LEVEL": "high",

		"SCANNER_FPS":                "8",
		"SCANNER_REGION_SIZE":        "300",
		"SCANNER_MAX_FRAME_FAILURES": "12",

		"CAMERA_FRAMES_DIR":      "/var/frames",
		"CAMERA_SNAPSHOT_URLS":   "porch=http://10.0.0.5:8080/shot.jpg,door=http://10.0.0.6/snap",
		"CAMERA_REQUEST_TIMEOUT": "2s",

		"GENERATOR_DEBOUNCE":     "250ms",
		"GENERATOR_DOWNLOAD_DIR": "/home/user/qr",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.4.0", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(2048), cfg.Server.MaxUploadBytes)

	assert.Equal(t, "high", cfg.Encoder.RecoveryLevel)

	assert.Equal(t, 8, cfg.Scanner.FPS)
	assert.Equal(t, 300, cfg.Scanner.RegionSize)
	assert.Equal(t, 12, cfg.Scanner.MaxFrameFailures)

	assert.Equal(t, "/var/frames", cfg.Camera.FramesDir)
	assert.Equal(t, map[string]string{
		"porch": "http://10.0.0.5:8080/shot.jpg",
		"door":  "http://10.0.0.6/snap",
	}, cfg.Camera.SnapshotURLs)
	assert.Equal(t, 2*time.Second, cfg.Camera.RequestTimeout)

	assert.Equal(t, 250*time.Millisecond, cfg.Generator.Debounce)
	assert.Equal(t, "/home/user/qr", cfg.Generator.DownloadDir)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad duration", "SERVER_REQUEST_TIMEOUT", "soon"},
		{"bad int", "SCANNER_FPS", "ten"},
		{"bad int64", "SERVER_MAX_UPLOAD_BYTES", "1MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), "env")
		})
	}
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"milliseconds", "500ms", 500 * time.Millisecond},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"GENERATOR_DEBOUNCE": tt.envValue})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Generator.Debounce)
		})
	}
}

// Helpers

// setEnvVars clears every variable the config reads, then sets vars for the
// duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_VERSION",
		"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_MAX_UPLOAD_BYTES",
		"ENCODER_RECOVERY_LEVEL",
		"SCANNER_FPS", "SCANNER_REGION_SIZE", "SCANNER_MAX_FRAME_FAILURES",
		"CAMERA_FRAMES_DIR", "CAMERA_SNAPSHOT_URLS", "CAMERA_REQUEST_TIMEOUT",
		"GENERATOR_DEBOUNCE", "GENERATOR_DOWNLOAD_DIR",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
