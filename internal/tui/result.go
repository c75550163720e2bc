// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-qr-tool/internal/controller"
	"github.com/pkg/browser"
)

func renderResultView(s controller.ResultState, status string) string {
	kind := "Text"
	hotKeys := "c: copy  n: scan another  esc: back to generator"
	if s.IsURL {
		kind = "URL"
		hotKeys = "c: copy  o: open URL  n: scan another  esc: back to generator"
	}

	data := fmt.Sprintf("Scanned %s:\n\n%s\n", kind, s.Text)
	if status != "" {
		data += "\n" + statusStyle.Render(status) + "\n"
	}
	return renderPage("SCAN RESULT", data, hotKeys)
}

// openInBrowser hands url to the desktop's default handler. The launcher's
// own output is dropped so it cannot draw over the alt screen.
func openInBrowser(url string) error {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
