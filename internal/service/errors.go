// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrNothingToEncode       = errors.New("nothing to encode")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
