// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadBytes int64    `json:"max_upload_bytes"`
	} `json:"server,omitempty"`

	Encoder struct {
		RecoveryLevel string `json:"recovery_level"`
	} `json:"encoder,omitempty"`

	Scanner struct {
		FPS              int `json:"fps"`
		RegionSize       int `json:"region_size"`
		MaxFrameFailures int `json:"max_frame_failures"`
	} `json:"scanner,omitempty"`

	Camera struct {
		FramesDir      string            `json:"frames_dir"`
		SnapshotURLs   map[string]string `json:"snapshot_urls"`
		RequestTimeout Duration          `json:"request_timeout"`
	} `json:"camera,omitempty"`

	Generator struct {
		Debounce    Duration `json:"debounce"`
		DownloadDir string   `json:"download_dir"`
	} `json:"generator,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadBytes: jsonCfg.Server.MaxUploadBytes,
		},
		Encoder: Encoder{
			RecoveryLevel: jsonCfg.Encoder.RecoveryLevel,
		},
		Scanner: Scanner{
			FPS:              jsonCfg.Scanner.FPS,
			RegionSize:       jsonCfg.Scanner.RegionSize,
			MaxFrameFailures: jsonCfg.Scanner.MaxFrameFailures,
		},
		Camera: Camera{
			FramesDir:      jsonCfg.Camera.FramesDir,
			SnapshotURLs:   jsonCfg.Camera.SnapshotURLs,
			RequestTimeout: time.Duration(jsonCfg.Camera.RequestTimeout),
		},
		Generator: Generator{
			Debounce:    time.Duration(jsonCfg.Generator.Debounce),
			DownloadDir: jsonCfg.Generator.DownloadDir,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
