// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoFileProvided is returned when a scan upload has no "file" part.
	ErrNoFileProvided = errors.New("no image file provided")

	// ErrUploadTooLarge is returned when an upload exceeds the configured
	// size limit.
	ErrUploadTooLarge = errors.New("upload too large")
)
