// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import "github.com/MKhiriev/go-qr-tool/internal/formatter"

// ResultKind tells the result view which actions to offer.
type ResultKind int

const (
	// ResultText is shown as text with a copy action.
	ResultText ResultKind = iota
	// ResultURL additionally gets an "open" action.
	ResultURL
)

// Classify reports whether scanned text is a web address. Only text that
// starts with http:// or https:// (any case) counts.
func Classify(text string) ResultKind {
	if formatter.HasScheme(text) {
		return ResultURL
	}
	return ResultText
}
