// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-tool/internal/controller"
	"github.com/charmbracelet/bubbles/textinput"
)

type scanZone int

const (
	zoneCameras scanZone = iota
	zoneFile
)

// scannerModel is the scanner tab: a camera picker and an image path input.
type scannerModel struct {
	cursor int
	zone   scanZone
	path   textinput.Model
}

func newScannerModel() scannerModel {
	path := textinput.New()
	path.Prompt = ""
	path.Placeholder = "/path/to/image.png"
	path.Width = 50
	return scannerModel{path: path}
}

// sync moves the cursor onto the selected camera of s.
func (m scannerModel) sync(s controller.ScannerState) scannerModel {
	for i, cam := range s.Cameras {
		if cam.ID == s.SelectedCamera {
			m.cursor = i
			return m
		}
	}
	m.cursor = min(m.cursor, max(len(s.Cameras)-1, 0))
	return m
}

func (m scannerModel) setZone(z scanZone) scannerModel {
	m.zone = z
	if z == zoneFile {
		m.path.Focus()
	} else {
		m.path.Blur()
	}
	return m
}

func (m scannerModel) View(s controller.ScannerState, spin string) string {
	var b strings.Builder

	switch len(s.Cameras) {
	case 0:
		b.WriteString(helpStyle.Render("No cameras listed yet.") + "\n")
	case 1:
		b.WriteString("Camera: " + s.Cameras[0].DisplayName() + "\n")
	default:
		b.WriteString("Select camera:\n")
		for i, cam := range s.Cameras {
			cursor := "  "
			if i == m.cursor && m.zone == zoneCameras {
				cursor = "> "
			}
			line := cursor + cam.DisplayName()
			if cam.ID == s.SelectedCamera {
				line += " *"
			}
			b.WriteString(line + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("Scanner: %s\n\n", s.Session))

	switch {
	case s.Scanning:
		b.WriteString(spin + " Scanning... point the camera at a QR code\n")
	case s.Decoding:
		b.WriteString(spin + " Reading image...\n")
	default:
		b.WriteString(helpStyle.Render("Press s to start the camera.") + "\n")
	}

	b.WriteString("\n")
	label := "Or scan an image file:"
	if m.zone == zoneFile {
		label = focusedStyle.Render(label)
	}
	b.WriteString(label + "\n")
	b.WriteString("[" + m.path.View() + "]\n")

	return b.String()
}
