// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"slices"

	"github.com/MKhiriev/go-qr-tool/models"
)

// View is what the user currently sees.
type View int

const (
	ShowingGenerator View = iota
	ShowingScanner
	ShowingResult
	ShowingError
)

func (v View) String() string {
	switch v {
	case ShowingGenerator:
		return "generator"
	case ShowingScanner:
		return "scanner"
	case ShowingResult:
		return "result"
	case ShowingError:
		return "error"
	default:
		return "unknown"
	}
}

// Tab is one of the two entry points the user can switch between.
type Tab int

const (
	TabGenerator Tab = iota
	TabScanner
)

// View returns the view shown when tab is active.
func (t Tab) View() View {
	if t == TabScanner {
		return ShowingScanner
	}
	return ShowingGenerator
}

// GeneratorState is the generator tab.
type GeneratorState struct {
	Request models.PayloadRequest
	Options models.EncodeOptions
	// Payload is the formatter output for Request.
	Payload string
	// Revision grows with every edit; encode results of older revisions
	// are dropped.
	Revision uint64
	Image    *models.QRImage
	Encoding bool
	// Err is an inline message; it never changes the view.
	Err string
}

// ScannerState is the scanner tab.
type ScannerState struct {
	Session        models.ScannerState
	Cameras        []models.CameraDevice
	SelectedCamera string
	Scanning       bool
	Decoding       bool
}

// ResultState is a successful scan.
type ResultState struct {
	Text  string
	IsURL bool
}

// State is an immutable snapshot of everything the front ends render.
type State struct {
	View View
	// Entry is the tab the user returns to after a result or an error.
	Entry Tab
	// ViewRevision grows on every view change.
	ViewRevision uint64

	Generator GeneratorState
	Scanner   ScannerState
	Result    ResultState

	Failure models.FailureKind
	Err     string
}

func initialState() State {
	return State{
		View:  ShowingGenerator,
		Entry: TabGenerator,
		Generator: GeneratorState{
			Request: models.NewTextRequest(""),
			Options: models.DefaultEncodeOptions(),
		},
		Scanner: ScannerState{Session: models.ScannerIdle},
	}
}

func (s *State) setView(v View) {
	if s.View == v {
		return
	}
	s.View = v
	s.ViewRevision++
}

// clone copies the slices and pointers so a snapshot never aliases the store.
func (s State) clone() State {
	s.Scanner.Cameras = slices.Clone(s.Scanner.Cameras)
	if s.Generator.Image != nil {
		img := *s.Generator.Image
		img.PNG = slices.Clone(img.PNG)
		s.Generator.Image = &img
	}
	return s
}
