// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import "errors"

var (
	ErrEmptyPayload   = errors.New("empty payload")
	ErrInvalidOptions = errors.New("invalid encode options")
	ErrEncodeFailed   = errors.New("qr encode failed")
)
