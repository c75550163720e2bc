// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Template names the kind of content a QR code is generated from.
// It is also part of the download file name (see [DownloadFileName]).
type Template string

const (
	// TemplateText encodes free text as is.
	TemplateText Template = "text"
	// TemplateURL encodes a website address, adding https:// when no scheme is given.
	TemplateURL Template = "url"
	// TemplateWiFi encodes network credentials in the WIFI: payload format.
	TemplateWiFi Template = "wifi"
	// TemplateContact encodes a vCard 3.0 contact.
	TemplateContact Template = "contact"
)

// Templates lists every supported template in the order they are offered to the user.
var Templates = []Template{TemplateText, TemplateURL, TemplateWiFi, TemplateContact}

// Valid reports whether t is one of the supported templates.
func (t Template) Valid() bool {
	for _, known := range Templates {
		if t == known {
			return true
		}
	}
	return false
}

// Title returns the human-readable template name.
func (t Template) Title() string {
	switch t {
	case TemplateText:
		return "Plain Text"
	case TemplateURL:
		return "Website URL"
	case TemplateWiFi:
		return "WiFi Network"
	case TemplateContact:
		return "Contact Information"
	default:
		return string(t)
	}
}

// WiFiEncryption is the T: field of a WIFI: payload.
type WiFiEncryption string

const (
	WiFiWPA    WiFiEncryption = "WPA"
	WiFiWEP    WiFiEncryption = "WEP"
	WiFiNoPass WiFiEncryption = "nopass"
)

// WiFiEncryptions lists the encryption types offered to the user.
var WiFiEncryptions = []WiFiEncryption{WiFiWPA, WiFiWEP, WiFiNoPass}

// Title returns the label shown in encryption pickers.
func (e WiFiEncryption) Title() string {
	switch e {
	case WiFiWPA:
		return "WPA/WPA2"
	case WiFiNoPass:
		return "No Password"
	default:
		return string(e)
	}
}

// ParseWiFiEncryption normalizes user input into a [WiFiEncryption].
// Matching is case-insensitive; "WPA2" maps to WPA and "none" to nopass.
// An empty value yields WPA, the default offered by the generator form.
func ParseWiFiEncryption(raw string) (WiFiEncryption, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "wpa", "wpa2", "wpa/wpa2":
		return WiFiWPA, true
	case "wep":
		return WiFiWEP, true
	case "nopass", "none":
		return WiFiNoPass, true
	default:
		return WiFiWPA, false
	}
}

// WiFi holds network credentials for [TemplateWiFi].
type WiFi struct {
	SSID       string         `json:"ssid"`
	Password   string         `json:"password"`
	Encryption WiFiEncryption `json:"encryption"`
}

// Contact holds the optional vCard fields for [TemplateContact].
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PayloadRequest is the structured user input a payload string is derived from.
//
// Template selects which of the remaining fields are relevant: Text for
// [TemplateText] and [TemplateURL], WiFi for [TemplateWiFi] and Contact for
// [TemplateContact]. Fields of other templates are kept so that switching
// templates back and forth does not lose what the user typed.
type PayloadRequest struct {
	Template Template `json:"template"`
	Text     string   `json:"text,omitempty"`
	WiFi     WiFi     `json:"wifi"`
	Contact  Contact  `json:"contact"`
}

func NewTextRequest(text string) PayloadRequest {
	return PayloadRequest{Template: TemplateText, Text: text}
}

func NewURLRequest(url string) PayloadRequest {
	return PayloadRequest{Template: TemplateURL, Text: url}
}

func NewWiFiRequest(ssid, password string, encryption WiFiEncryption) PayloadRequest {
	return PayloadRequest{
		Template: TemplateWiFi,
		WiFi:     WiFi{SSID: ssid, Password: password, Encryption: encryption},
	}
}

func NewContactRequest(name, email, phone string) PayloadRequest {
	return PayloadRequest{
		Template: TemplateContact,
		Contact:  Contact{Name: name, Email: email, Phone: phone},
	}
}
