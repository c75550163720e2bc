// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camera

import "errors"

var (
	ErrPermissionDenied = errors.New("camera access denied")
	ErrCameraNotFound   = errors.New("camera not found")
	ErrOpenFailed       = errors.New("failed to open camera")
	ErrFrameUnavailable = errors.New("camera frame unavailable")
	ErrStreamClosed     = errors.New("camera stream closed")
)
