// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// FailureKind classifies why a scan produced no usable text.
type FailureKind string

const (
	FailureNoCameraFound    FailureKind = "no_camera_found"
	FailurePermissionDenied FailureKind = "permission_denied"
	FailureStartFailed      FailureKind = "start_failed"
	FailureStopFailed       FailureKind = "stop_failed"
	FailureDecodeFailed     FailureKind = "decode_failed"
	FailureEmptyResult      FailureKind = "empty_result"
)

// ScanOutcome is either a success carrying non-blank Text or a failure
// carrying Failure and a Reason. Use [NewScanSuccess] and [NewScanFailure]
// to construct values; they keep the two cases apart.
type ScanOutcome struct {
	Text    string      `json:"text,omitempty"`
	Failure FailureKind `json:"failure,omitempty"`
	Reason  string      `json:"reason,omitempty"`
}

// NewScanSuccess returns a success outcome for text. Blank text is never a
// success: it is reported as a [FailureEmptyResult] failure instead.
func NewScanSuccess(text string) ScanOutcome {
	if strings.TrimSpace(text) == "" {
		return NewScanFailure(FailureEmptyResult, "no valid data was detected in the QR code")
	}
	return ScanOutcome{Text: text}
}

// NewScanFailure returns a failure outcome.
func NewScanFailure(kind FailureKind, reason string) ScanOutcome {
	return ScanOutcome{Failure: kind, Reason: reason}
}

// IsSuccess reports whether o carries decoded text.
func (o ScanOutcome) IsSuccess() bool {
	return o.Failure == "" && strings.TrimSpace(o.Text) != ""
}

func (o ScanOutcome) String() string {
	if o.IsSuccess() {
		return fmt.Sprintf("success(%q)", o.Text)
	}
	kind := o.Failure
	if kind == "" {
		kind = FailureEmptyResult
	}
	return fmt.Sprintf("failure(%s: %s)", kind, o.Reason)
}

// ScannerState is the lifecycle state of the scanner adapter.
type ScannerState int

const (
	ScannerIdle ScannerState = iota
	ScannerPermissionPending
	ScannerReady
	ScannerScanning
	ScannerStopped
	ScannerError
)

func (s ScannerState) String() string {
	switch s {
	case ScannerIdle:
		return "idle"
	case ScannerPermissionPending:
		return "permission_pending"
	case ScannerReady:
		return "ready"
	case ScannerScanning:
		return "scanning"
	case ScannerStopped:
		return "stopped"
	case ScannerError:
		return "error"
	default:
		return fmt.Sprintf("scanner_state(%d)", int(s))
	}
}

// MarshalText lets the state appear by name in JSON and logs.
func (s ScannerState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CanStart reports whether a camera session may be started from s.
func (s ScannerState) CanStart() bool {
	return s == ScannerReady || s == ScannerStopped || s == ScannerScanning
}

// CameraDevice describes a capture device that can be scanned from.
type CameraDevice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DisplayName returns Label, or "Camera <id>" when the device has no label.
func (d CameraDevice) DisplayName() string {
	if strings.TrimSpace(d.Label) != "" {
		return d.Label
	}
	return "Camera " + d.ID
}
