// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-qr-tool/internal/controller"
	"github.com/MKhiriev/go-qr-tool/models"
)

// fakeController records calls and serves state from a real store.
type fakeController struct {
	mu    sync.Mutex
	store *controller.Store
	calls []string

	requests    []models.PayloadRequest
	options     []models.EncodeOptions
	downloadErr error
	switchErr   error
}

func newFakeController(s controller.State) *fakeController {
	return &fakeController{store: controller.NewStore(s)}
}

func generatorState() controller.State {
	return controller.State{
		View:  controller.ShowingGenerator,
		Entry: controller.TabGenerator,
		Generator: controller.GeneratorState{
			Request: models.NewTextRequest(""),
			Options: models.DefaultEncodeOptions(),
		},
	}
}

func (f *fakeController) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeController) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeController) set(fn func(*controller.State)) {
	f.store.Update(func(s *controller.State) bool {
		fn(s)
		return true
	})
}

func (f *fakeController) Store() *controller.Store { return f.store }
func (f *fakeController) State() controller.State { return f.store.Snapshot() }

func (f *fakeController) SwitchTab(_ context.Context, tab controller.Tab) error {
	f.record(fmt.Sprintf("switch:%d", tab))
	return f.switchErr
}

func (f *fakeController) Reset(context.Context) error {
	f.record("reset")
	return nil
}

func (f *fakeController) UpdateRequest(req models.PayloadRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
}

func (f *fakeController) UpdateOptions(opts models.EncodeOptions) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.options = append(f.options, opts)
}

func (f *fakeController) GenerateNow(context.Context) error {
	f.record("generate")
	return nil
}

func (f *fakeController) Download(dir string) (string, error) {
	f.record("download")
	if f.downloadErr != nil {
		return "", f.downloadErr
	}
	return "/tmp/qrcode-text.png", nil
}

func (f *fakeController) LoadCameras(context.Context) error {
	f.record("cameras")
	return nil
}

func (f *fakeController) SelectCamera(_ context.Context, id string) error {
	f.record("select:" + id)
	return nil
}

func (f *fakeController) StartScan(context.Context) error {
	f.record("start")
	return nil
}

func (f *fakeController) StopScan(context.Context) error {
	f.record("stop")
	return nil
}

func (f *fakeController) ScanImage(_ context.Context, r io.Reader) (models.ScanOutcome, bool) {
	data, _ := io.ReadAll(r)
	f.record("image:" + string(data))
	return models.NewScanSuccess(string(data)), true
}

func (f *fakeController) lastRequest() models.PayloadRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return models.PayloadRequest{}
	}
	return f.requests[len(f.requests)-1]
}

func (f *fakeController) lastOptions() models.EncodeOptions {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.options) == 0 {
		return models.EncodeOptions{}
	}
	return f.options[len(f.options)-1]
}
