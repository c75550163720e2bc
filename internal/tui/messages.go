// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// stateChangedMsg is sent after the controller store changed.
type stateChangedMsg struct{}

// opDoneMsg reports a controller call that ran off the UI loop.
type opDoneMsg struct {
	op  string
	err error
}

type downloadedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type openedMsg struct {
	err error
}

type clearStatusMsg struct{}
