// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the terminal QR tool: it wires the encoder, the camera
// scanner and the view controller behind the terminal UI.
package client
