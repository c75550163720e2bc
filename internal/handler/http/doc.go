// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the QR tool.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging and response compression are handled here before requests
// are delegated to the service layer. Camera scanning is streamed over a
// websocket.
package http
