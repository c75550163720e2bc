// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package formatter turns structured generator input into the payload string
// that is encoded into a QR code.
//
// Every function here is pure and never fails: missing data yields an empty
// string, which callers treat as "nothing to encode" (see [IsEncodable]).
//
// WiFi and vCard values are inserted verbatim. Characters that are special in
// those grammars (';', ':', ',', '\') are not escaped.
package formatter

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-qr-tool/models"
)

const defaultScheme = "https://"

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// Format derives the payload for req according to its template.
// Unknown templates are formatted as plain text.
func Format(req models.PayloadRequest) string {
	switch req.Template {
	case models.TemplateURL:
		return FormatURL(req.Text)
	case models.TemplateWiFi:
		return FormatWiFi(req.WiFi)
	case models.TemplateContact:
		return FormatContact(req.Contact)
	default:
		return req.Text
	}
}

// FormatURL prepends https:// to raw unless it already starts with http://
// or https:// (case-insensitive). Empty and blank input is returned unchanged.
func FormatURL(raw string) string {
	if strings.TrimSpace(raw) == "" || HasScheme(raw) {
		return raw
	}
	return defaultScheme + raw
}

// HasScheme reports whether s starts with http:// or https://, ignoring case.
func HasScheme(s string) bool {
	return schemePattern.MatchString(s)
}

// StripScheme removes a leading http:// or https:// from s. The generator
// form shows URLs without their scheme.
func StripScheme(s string) string {
	return schemePattern.ReplaceAllString(s, "")
}

// FormatWiFi returns WIFI:S:<ssid>;T:<encryption>;P:<password>;; or an empty
// string when the SSID is empty.
func FormatWiFi(w models.WiFi) string {
	if w.SSID == "" {
		return ""
	}

	encryption, _ := models.ParseWiFiEncryption(string(w.Encryption))

	var b strings.Builder
	b.WriteString("WIFI:S:")
	b.WriteString(w.SSID)
	b.WriteString(";T:")
	b.WriteString(string(encryption))
	b.WriteString(";P:")
	b.WriteString(w.Password)
	b.WriteString(";;")
	return b.String()
}

// FormatContact returns a vCard 3.0 block holding the non-empty fields in the
// order name, email, phone, or an empty string when all of them are empty.
func FormatContact(c models.Contact) string {
	if c.Name == "" && c.Email == "" && c.Phone == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCARD\nVERSION:3.0\n")
	if c.Name != "" {
		b.WriteString("FN:" + c.Name + "\n")
	}
	if c.Email != "" {
		b.WriteString("EMAIL:" + c.Email + "\n")
	}
	if c.Phone != "" {
		b.WriteString("TEL:" + c.Phone + "\n")
	}
	b.WriteString("END:VCARD")
	return b.String()
}

// IsEncodable reports whether payload has anything worth encoding.
func IsEncodable(payload string) bool {
	return strings.TrimSpace(payload) != ""
}
