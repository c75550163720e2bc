// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"context"
	"io"
	"sync"

	"github.com/MKhiriev/go-qr-tool/models"
)

// fakeScanner records calls and lets tests drive session outcomes.
type fakeScanner struct {
	mu       sync.Mutex
	calls    []string
	cameras  []models.CameraDevice
	permErr  error
	startErr error
	stopErr  error
	state    models.ScannerState
	current  chan models.ScanOutcome

	imageOutcome models.ScanOutcome
	// imageGate, when set, blocks ScanImage until closed.
	imageGate chan struct{}
	// imageStarted is closed when ScanImage begins, if set.
	imageStarted chan struct{}
}

func newFakeScanner(ids ...string) *fakeScanner {
	f := &fakeScanner{state: models.ScannerIdle}
	for _, id := range ids {
		f.cameras = append(f.cameras, models.CameraDevice{ID: id})
	}
	return f
}

func (f *fakeScanner) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeScanner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeScanner) RequestPermission(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("permission")
	if f.permErr != nil {
		f.state = models.ScannerError
		return f.permErr
	}
	f.state = models.ScannerReady
	return nil
}

func (f *fakeScanner) Cameras() []models.CameraDevice {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.permErr != nil {
		return nil
	}
	return append([]models.CameraDevice(nil), f.cameras...)
}

func (f *fakeScanner) State() models.ScannerState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeScanner) StartCameraScan(_ context.Context, id string) (<-chan models.ScanOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("start:" + id)
	if f.startErr != nil {
		return nil, f.startErr
	}
	if f.current != nil {
		close(f.current)
	}
	f.current = make(chan models.ScanOutcome, 1)
	f.state = models.ScannerScanning
	return f.current, nil
}

func (f *fakeScanner) Stop(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("stop")
	if f.current != nil {
		close(f.current)
		f.current = nil
		f.state = models.ScannerStopped
	}
	return f.stopErr
}

// emit ends the running session with outcome.
func (f *fakeScanner) emit(outcome models.ScanOutcome) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current <- outcome
	close(f.current)
	f.current = nil
	f.state = models.ScannerStopped
}

func (f *fakeScanner) ScanImage(_ context.Context, r io.Reader) models.ScanOutcome {
	_, _ = io.ReadAll(r)

	f.mu.Lock()
	f.record("image")
	gate, started, outcome := f.imageGate, f.imageStarted, f.imageOutcome
	f.mu.Unlock()

	if started != nil {
		close(started)
	}
	if gate != nil {
		<-gate
	}
	return outcome
}
