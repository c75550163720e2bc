// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_DefaultsOnly verifies that the defaults alone form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

// TestBuild_EmptyBuilderFailsValidation verifies that scanner tuning has no
// usable zero value.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidScannerConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesWin verifies that non-zero fields of later configs
// override earlier ones and zero fields leave them untouched.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}, Scanner: Scanner{FPS: 5}},
		&StructuredConfig{App: App{Version: "2.0.0"}, Generator: Generator{DownloadDir: "/tmp/qr"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, 5, cfg.Scanner.FPS)
	assert.Equal(t, 250, cfg.Scanner.RegionSize)
	assert.Equal(t, "/tmp/qr", cfg.Generator.DownloadDir)
	assert.Equal(t, 500*time.Millisecond, cfg.Generator.Debounce)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("SCANNER_FPS", "15")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, 15, b.configs[0].Scanner.FPS)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("SCANNER_FPS", "fast")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-fps", "20"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 20, b.configs[0].Scanner.FPS)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Encoder.RecoveryLevel = "high"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "high", b.configs[1].Encoder.RecoveryLevel)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that the last non-empty JSONFilePath wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
		&StructuredConfig{},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "last-wins", b.configs[3].App.Version)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

// TestPipeline_Priority verifies defaults < env < flags < JSON.
func TestPipeline_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Scanner.RegionSize = 300
	path := writeTempJSONConfig(t, payload)

	t.Setenv("SCANNER_FPS", "12")
	t.Setenv("SCANNER_REGION_SIZE", "200")
	t.Setenv("CONFIG", path)

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-region", "220", "-download-dir", "/srv/qr"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Scanner.FPS)
	assert.Equal(t, 300, cfg.Scanner.RegionSize)
	assert.Equal(t, "/srv/qr", cfg.Generator.DownloadDir)
	assert.Equal(t, 30, cfg.Scanner.MaxFrameFailures)
}

// ── validation / role views ───────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{"defaults", func(*StructuredConfig) {}, nil},
		{"negative upload", func(c *StructuredConfig) { c.Server.MaxUploadBytes = -1 }, ErrInvalidServerConfigs},
		{"unknown recovery level", func(c *StructuredConfig) { c.Encoder.RecoveryLevel = "ultra" }, ErrInvalidEncoderConfigs},
		{"upper case recovery level", func(c *StructuredConfig) { c.Encoder.RecoveryLevel = "HIGH" }, nil},
		{"zero fps", func(c *StructuredConfig) { c.Scanner.FPS = 0 }, ErrInvalidScannerConfigs},
		{"negative region", func(c *StructuredConfig) { c.Scanner.RegionSize = -5 }, ErrInvalidScannerConfigs},
		{"blank snapshot url", func(c *StructuredConfig) {
			c.Camera.SnapshotURLs = map[string]string{"porch": " "}
		}, ErrInvalidCameraConfigs},
		{"negative debounce", func(c *StructuredConfig) { c.Generator.Debounce = -time.Second }, ErrInvalidGeneratorConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoleViews(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.Version = "3.1.0"
	cfg.Camera.FramesDir = "/frames"

	serverCfg := newServerConfig(cfg)
	require.NoError(t, serverCfg.validate())
	assert.Equal(t, "3.1.0", serverCfg.App.Version)
	assert.Equal(t, "/frames", serverCfg.Camera.FramesDir)
	assert.Equal(t, "localhost:8080", serverCfg.Server.HTTPAddress)

	clientCfg := newClientConfig(cfg)
	require.NoError(t, clientCfg.validate())
	assert.Equal(t, 500*time.Millisecond, clientCfg.Generator.Debounce)
	assert.Equal(t, 10, clientCfg.Scanner.FPS)

	serverCfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, serverCfg.validate(), ErrInvalidServerConfigs)

	clientCfg.Generator.DownloadDir = ""
	assert.ErrorIs(t, clientCfg.validate(), ErrInvalidGeneratorConfigs)
}
