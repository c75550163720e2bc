// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable client application.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is what the app runs in the foreground.
type UI interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
