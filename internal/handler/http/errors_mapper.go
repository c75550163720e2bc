// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-tool/internal/app"
	"github.com/MKhiriev/go-qr-tool/internal/encoder"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/scanner"
	"github.com/MKhiriev/go-qr-tool/internal/service"
	"github.com/MKhiriev/go-qr-tool/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNothingToEncode:     http.StatusUnprocessableEntity,

	encoder.ErrEmptyPayload:   http.StatusUnprocessableEntity,
	encoder.ErrInvalidOptions: http.StatusBadRequest,
	encoder.ErrEncodeFailed:   http.StatusUnprocessableEntity,

	scanner.ErrNoCameraFound:    http.StatusNotFound,
	scanner.ErrPermissionDenied: http.StatusForbidden,
	scanner.ErrStartFailed:      http.StatusServiceUnavailable,
	scanner.ErrStopFailed:       http.StatusInternalServerError,

	ErrNoFileProvided: http.StatusBadRequest,
	ErrUploadTooLarge: http.StatusRequestEntityTooLarge,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: app.MsgInvalidDataProvided,
	service.ErrNothingToEncode:     app.MsgNothingToEncode,

	encoder.ErrEmptyPayload:   app.MsgNothingToEncode,
	encoder.ErrInvalidOptions: app.MsgInvalidOptions,
	encoder.ErrEncodeFailed:   app.MsgEncodeFailed,

	scanner.ErrNoCameraFound:    app.MsgNoCameraFound,
	scanner.ErrPermissionDenied: app.MsgPermissionDenied,
	scanner.ErrStartFailed:      app.MsgStartFailed,
	scanner.ErrStopFailed:       app.MsgStopFailed,

	ErrNoFileProvided: app.MsgNoFileProvided,
	ErrUploadTooLarge: ErrUploadTooLarge.Error(),
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, messageFromError(err), status)
}
