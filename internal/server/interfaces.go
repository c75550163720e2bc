// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the transport servers managed by this package.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives or
	// the listener fails.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
