// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerateRequest is the body of the generate, preview and format endpoints.
type GenerateRequest struct {
	// Payload is the structured input the QR payload is formatted from.
	Payload PayloadRequest `json:"payload"`
	// Options control rendering; zero fields fall back to defaults.
	Options EncodeOptions `json:"options"`
}

// FormatResponse carries the canonical payload string for a request.
type FormatResponse struct {
	Payload   string `json:"payload"`
	Encodable bool   `json:"encodable"`
}

// PreviewResponse mirrors a rendered image as a data URL, ready to be put
// into an <img> tag.
type PreviewResponse struct {
	Payload  string `json:"payload"`
	DataURL  string `json:"data_url"`
	FileName string `json:"file_name"`
	Size     int    `json:"size"`
}

// ScanResponse is the result of decoding an uploaded image or a camera frame.
type ScanResponse struct {
	Success bool        `json:"success"`
	Text    string      `json:"text,omitempty"`
	IsURL   bool        `json:"is_url"`
	Failure FailureKind `json:"failure,omitempty"`
	Message string      `json:"message,omitempty"`
}

// CamerasResponse lists the cameras the scanner may bind to.
type CamerasResponse struct {
	Cameras []CameraDevice `json:"cameras"`
	State   ScannerState   `json:"state"`
	Length  int            `json:"length"`
}

// StreamCommand is sent by websocket clients during a camera scan session.
type StreamCommand struct {
	// Type is "stop" to end the session or "switch" to restart it on CameraID.
	Type     string `json:"type"`
	CameraID string `json:"camera_id,omitempty"`
}

// StreamEvent is pushed to websocket clients during a camera scan session.
type StreamEvent struct {
	// Type is "started", "result", "stopped" or "error".
	Type     string        `json:"type"`
	CameraID string        `json:"camera_id,omitempty"`
	Result   *ScanResponse `json:"result,omitempty"`
}
