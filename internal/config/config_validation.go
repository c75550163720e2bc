// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
)

var recoveryLevels = []string{"low", "l", "medium", "m", "high", "q", "highest", "h"}

// validate checks the merged [StructuredConfig] before it is used at startup.
// Settings used only by one role are checked again by that role's view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.MaxUploadBytes < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	level := strings.ToLower(strings.TrimSpace(cfg.Encoder.RecoveryLevel))
	if level != "" && !slices.Contains(recoveryLevels, level) {
		return fmt.Errorf("%w: unknown recovery level %q", ErrInvalidEncoderConfigs, cfg.Encoder.RecoveryLevel)
	}

	if cfg.Scanner.FPS <= 0 || cfg.Scanner.RegionSize <= 0 || cfg.Scanner.MaxFrameFailures <= 0 {
		return ErrInvalidScannerConfigs
	}

	for id, url := range cfg.Camera.SnapshotURLs {
		if strings.TrimSpace(id) == "" || strings.TrimSpace(url) == "" {
			return ErrInvalidCameraConfigs
		}
	}

	if cfg.Generator.Debounce < 0 {
		return ErrInvalidGeneratorConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadBytes <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Generator.DownloadDir == "" {
		return ErrInvalidGeneratorConfigs
	}
	return nil
}
