// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-qr-tool/models"
)

func renderBuildInfoWindow(info models.BuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: go-qr-tool\n")
	b.WriteString(strings.Join(info.Lines(), "\n"))

	return renderPage("ABOUT", b.String(), "esc: back")
}
