// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decoder

import "errors"

var (
	ErrNotFound         = errors.New("no qr code found in image")
	ErrDecodeFailed     = errors.New("qr decode failed")
	ErrUnsupportedImage = errors.New("unsupported or corrupt image")
)
