// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTemplate        = errors.New("invalid template")
	ErrInvalidEncryption      = errors.New("invalid wifi encryption")
	ErrInvalidModuleColor     = errors.New("invalid module color")
	ErrInvalidBackgroundColor = errors.New("invalid background color")
	ErrInvalidPixelSize       = errors.New("invalid pixel size")
)
