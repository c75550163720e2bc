// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import "errors"

var (
	ErrNothingToDownload = errors.New("no qr code to download")
	ErrUnknownCamera     = errors.New("unknown camera")
	ErrClosed            = errors.New("controller closed")
)
