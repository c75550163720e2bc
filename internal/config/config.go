// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Encoder holds QR rendering settings.
	Encoder Encoder `envPrefix:"ENCODER_"`

	// Scanner holds camera session tuning.
	Scanner Scanner `envPrefix:"SCANNER_"`

	// Camera describes where camera devices come from.
	Camera Camera `envPrefix:"CAMERA_"`

	// Generator holds the interactive generator settings of the client.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and limit settings for the HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single non-streaming request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadBytes caps the size of an uploaded image.
	// Env: SERVER_MAX_UPLOAD_BYTES
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES"`
}

// Encoder holds QR rendering settings.
type Encoder struct {
	// RecoveryLevel is one of "low", "medium", "high" or "highest".
	// Env: ENCODER_RECOVERY_LEVEL
	RecoveryLevel string `env:"RECOVERY_LEVEL"`
}

// Scanner holds camera scan session settings.
type Scanner struct {
	// FPS is the number of frames sampled per second.
	// Env: SCANNER_FPS
	FPS int `env:"FPS"`

	// RegionSize is the side, in pixels, of the centred square of each
	// frame that is searched for a QR code.
	// Env: SCANNER_REGION_SIZE
	RegionSize int `env:"REGION_SIZE"`

	// MaxFrameFailures is how many consecutive frames may fail to be read
	// before the session ends with a decode failure.
	// Env: SCANNER_MAX_FRAME_FAILURES
	MaxFrameFailures int `env:"MAX_FRAME_FAILURES"`
}

// Camera describes the camera sources.
type Camera struct {
	// FramesDir holds one sub-directory per directory camera.
	// Env: CAMERA_FRAMES_DIR
	FramesDir string `env:"FRAMES_DIR"`

	// SnapshotURLs maps a camera ID to the URL serving its current frame.
	// Env: CAMERA_SNAPSHOT_URLS, e.g. "porch=http://10.0.0.5/snap.jpg,door=http://10.0.0.6/snap.jpg"
	SnapshotURLs map[string]string `env:"SNAPSHOT_URLS" envKeyValSeparator:"="`

	// RequestTimeout bounds a single snapshot request.
	// Env: CAMERA_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Generator holds settings of the interactive generator.
type Generator struct {
	// Debounce is the quiescence window after the last edit before the QR
	// image is re-rendered.
	// Env: GENERATOR_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// DownloadDir is where downloaded PNG files are written.
	// Env: GENERATOR_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			MaxUploadBytes: 10 << 20,
		},
		Encoder: Encoder{
			RecoveryLevel: "medium",
		},
		Scanner: Scanner{
			FPS:              10,
			RegionSize:       250,
			MaxFrameFailures: 30,
		},
		Camera: Camera{
			RequestTimeout: 5 * time.Second,
		},
		Generator: Generator{
			Debounce:    500 * time.Millisecond,
			DownloadDir: ".",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources, last source winning for non-zero fields:
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (os.Args)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
