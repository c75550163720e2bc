// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scanner

import (
	"errors"

	"github.com/MKhiriev/go-qr-tool/internal/app"
	"github.com/MKhiriev/go-qr-tool/internal/decoder"
	"github.com/MKhiriev/go-qr-tool/models"
)

var (
	ErrNoCameraFound    = errors.New("no camera found")
	ErrPermissionDenied = errors.New("camera permission denied")
	ErrStartFailed      = errors.New("failed to start camera scan")
	ErrStopFailed       = errors.New("failed to stop camera scan")
	ErrDecodeFailed     = errors.New("failed to decode qr code")
	ErrEmptyResult      = errors.New("qr code holds no data")
)

// OutcomeFromError converts an error returned by the scanner into the failure
// outcome shown to users. A nil error yields an empty-result failure.
func OutcomeFromError(err error) models.ScanOutcome {
	switch {
	case errors.Is(err, ErrNoCameraFound):
		return models.NewScanFailure(models.FailureNoCameraFound, app.MsgNoCameraFound)
	case errors.Is(err, ErrPermissionDenied):
		return models.NewScanFailure(models.FailurePermissionDenied, app.MsgPermissionDenied)
	case errors.Is(err, ErrStartFailed):
		return models.NewScanFailure(models.FailureStartFailed, app.MsgStartFailed)
	case errors.Is(err, ErrStopFailed):
		return models.NewScanFailure(models.FailureStopFailed, app.MsgStopFailed)
	case err == nil, errors.Is(err, ErrEmptyResult):
		return models.NewScanFailure(models.FailureEmptyResult, app.MsgEmptyResult)
	case errors.Is(err, ErrDecodeFailed),
		errors.Is(err, decoder.ErrNotFound),
		errors.Is(err, decoder.ErrDecodeFailed),
		errors.Is(err, decoder.ErrUnsupportedImage):
		return models.NewScanFailure(models.FailureDecodeFailed, app.MsgDecodeFailed)
	default:
		return models.NewScanFailure(models.FailureStartFailed, app.MsgStartFailed)
	}
}

// ErrorFromOutcome is the inverse of [OutcomeFromError] for failure outcomes;
// it returns nil for a success.
func ErrorFromOutcome(o models.ScanOutcome) error {
	if o.IsSuccess() {
		return nil
	}
	switch o.Failure {
	case models.FailureNoCameraFound:
		return ErrNoCameraFound
	case models.FailurePermissionDenied:
		return ErrPermissionDenied
	case models.FailureStartFailed:
		return ErrStartFailed
	case models.FailureStopFailed:
		return ErrStopFailed
	case models.FailureDecodeFailed:
		return ErrDecodeFailed
	default:
		return ErrEmptyResult
	}
}
