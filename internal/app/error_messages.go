// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages shown to users by the HTTP
// handlers and the terminal UI.
//
// Keeping them in one place ensures both front ends word every failure the
// same way.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or names an unknown template or encryption type.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNothingToEncode is returned when the formatted payload is empty.
	MsgNothingToEncode = "Nothing to encode. Please fill in the form."

	// MsgEncodeFailed is shown when the encoder rejects the payload or the
	// rendering options.
	MsgEncodeFailed = "Failed to generate QR code. Please try a different input."

	// MsgInvalidOptions is shown when colors or size are out of range.
	MsgInvalidOptions = "Invalid color or size. Size must be between 150 and 400 pixels."

	// MsgNoCameraFound is shown when no capture device is available.
	MsgNoCameraFound = "No camera devices found."

	// MsgPermissionDenied is shown when camera access is refused.
	MsgPermissionDenied = "Camera access denied or no cameras available. Please grant camera permissions and retry."

	// MsgStartFailed is shown when a camera session cannot be started.
	MsgStartFailed = "Failed to start the QR scanner."

	// MsgStopFailed is shown when a camera session does not stop cleanly.
	MsgStopFailed = "Failed to stop the QR scanner."

	// MsgDecodeFailed is shown when an image holds no readable QR code.
	MsgDecodeFailed = "Could not read a QR code from the image."

	// MsgEmptyResult is shown when a QR code decodes to blank text.
	MsgEmptyResult = "No valid data was detected in the QR code."

	// MsgNoFileProvided is returned when an upload has no image file.
	MsgNoFileProvided = "no image file provided"

	// MsgInternalServerError is returned for unexpected server failures.
	MsgInternalServerError = "internal server error"
)
