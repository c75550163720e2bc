// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-qr-tool/internal/app"
	"github.com/MKhiriev/go-qr-tool/internal/controller"
	"github.com/MKhiriev/go-qr-tool/models"
)

var failureMessages = map[models.FailureKind]string{
	models.FailureNoCameraFound:    app.MsgNoCameraFound,
	models.FailurePermissionDenied: app.MsgPermissionDenied,
	models.FailureStartFailed:      app.MsgStartFailed,
	models.FailureStopFailed:       app.MsgStopFailed,
	models.FailureDecodeFailed:     app.MsgDecodeFailed,
	models.FailureEmptyResult:      app.MsgEmptyResult,
}

// failureMessage prefers the shared wording for a failure kind and falls
// back to the reason the controller recorded.
func failureMessage(s controller.State) string {
	if msg, ok := failureMessages[s.Failure]; ok {
		return msg
	}
	if s.Err != "" {
		return s.Err
	}
	return app.MsgEmptyResult
}

func renderErrorView(s controller.State) string {
	content := errorStyle.Render("Error") + "\n\n" + failureMessage(s)
	return renderPage("QR SCANNER", overlayBoxStyle.Render(content), "enter: retry  esc: back to generator")
}
