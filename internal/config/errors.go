// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// out of range.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive upload limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEncoderConfigs indicates an unknown recovery level.
	ErrInvalidEncoderConfigs = errors.New("invalid encoder configuration")
	// ErrInvalidScannerConfigs indicates non-positive scanner tuning values.
	ErrInvalidScannerConfigs = errors.New("invalid scanner configuration")
	// ErrInvalidCameraConfigs indicates a snapshot camera with an empty ID
	// or URL.
	ErrInvalidCameraConfigs = errors.New("invalid camera configuration")
	// ErrInvalidGeneratorConfigs indicates a negative debounce window.
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
)
