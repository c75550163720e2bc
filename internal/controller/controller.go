// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-qr-tool/internal/app"
	"github.com/MKhiriev/go-qr-tool/internal/encoder"
	"github.com/MKhiriev/go-qr-tool/internal/formatter"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/scanner"
	"github.com/MKhiriev/go-qr-tool/models"
)

// Config tunes the controller.
type Config struct {
	// Debounce is the quiescence window before an edit is encoded.
	Debounce time.Duration
	// DownloadDir is used by Download when no directory is given.
	DownloadDir string
}

type Controller struct {
	store     *Store
	encoder   encoder.Encoder
	scanner   ScanSession
	cfg       Config
	debouncer *Debouncer

	ctx    context.Context
	cancel context.CancelFunc

	// scanMu guards scanGen and the consumers WaitGroup.
	scanMu  sync.Mutex
	scanGen uint64
	wg      sync.WaitGroup

	logger *logger.Logger
}

// New returns a controller showing the generator with an empty text form.
func New(enc encoder.Encoder, sc ScanSession, cfg Config, logger *logger.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())

	return &Controller{
		store:     NewStore(initialState()),
		encoder:   enc,
		scanner:   sc,
		cfg:       cfg,
		debouncer: NewDebouncer(cfg.Debounce),
		ctx:       ctx,
		cancel:    cancel,
		logger:    logger,
	}
}

// Store returns the store front ends subscribe to.
func (c *Controller) Store() *Store {
	return c.store
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.store.Snapshot()
}

// ─── tabs ─────────────────────────────────────────────────────────────────────

// SwitchTab stops any running camera session and shows tab.
func (c *Controller) SwitchTab(ctx context.Context, tab Tab) error {
	stopErr := c.stopScan(ctx)

	c.store.Update(func(s *State) bool {
		s.Entry = tab
		s.Result = ResultState{}
		s.Failure, s.Err = "", ""
		s.setView(tab.View())
		return true
	})

	if tab == TabScanner && stopErr == nil {
		return c.LoadCameras(ctx)
	}
	return stopErr
}

// Reset clears the result or error and returns to the entry tab.
func (c *Controller) Reset(ctx context.Context) error {
	stopErr := c.stopScan(ctx)

	c.store.Update(func(s *State) bool {
		s.Result = ResultState{}
		s.Failure, s.Err = "", ""
		s.setView(s.Entry.View())
		return true
	})
	return stopErr
}

// ─── generator ────────────────────────────────────────────────────────────────

// UpdateRequest formats req immediately and schedules an encode.
func (c *Controller) UpdateRequest(req models.PayloadRequest) {
	c.edit(func(g *GeneratorState) { g.Request = req })
}

// UpdateOptions stores opts and schedules an encode.
func (c *Controller) UpdateOptions(opts models.EncodeOptions) {
	c.edit(func(g *GeneratorState) { g.Options = opts })
}

func (c *Controller) edit(apply func(*GeneratorState)) {
	encodable := false
	c.store.Update(func(s *State) bool {
		g := &s.Generator
		apply(g)
		g.Payload = formatter.Format(g.Request)
		g.Revision++
		g.Err = ""

		encodable = formatter.IsEncodable(g.Payload)
		g.Encoding = encodable
		if !encodable {
			g.Image = nil
		}
		return true
	})

	if !encodable {
		c.debouncer.Stop()
		return
	}
	c.debouncer.Trigger(func() { _ = c.encode(c.ctx) })
}

// GenerateNow encodes the current form without waiting for the debounce.
func (c *Controller) GenerateNow(ctx context.Context) error {
	c.debouncer.Stop()
	return c.encode(ctx)
}

func (c *Controller) encode(ctx context.Context) error {
	snap := c.store.Snapshot().Generator
	if !formatter.IsEncodable(snap.Payload) {
		return encoder.ErrEmptyPayload
	}

	img, err := c.encoder.Encode(ctx, snap.Payload, snap.Options)
	if err == nil {
		img.Template = snap.Request.Template
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	applied := c.store.Update(func(s *State) bool {
		g := &s.Generator
		if g.Revision != snap.Revision {
			return false
		}
		g.Encoding = false
		if err != nil {
			g.Image = nil
			g.Err = encodeMessage(err)
			return true
		}
		g.Image = &img
		g.Err = ""
		return true
	})

	if !applied {
		c.logger.Debug().Uint64("revision", snap.Revision).Msg("stale encode result dropped")
		return nil
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("qr encode failed")
	}
	return err
}

func encodeMessage(err error) string {
	if errors.Is(err, encoder.ErrInvalidOptions) {
		return app.MsgInvalidOptions
	}
	return app.MsgEncodeFailed
}

// Download writes the current image as qrcode-<template>.png into dir, or
// into the configured download directory when dir is empty.
func (c *Controller) Download(dir string) (string, error) {
	img := c.store.Snapshot().Generator.Image
	if img == nil || len(img.PNG) == 0 {
		return "", ErrNothingToDownload
	}

	if dir == "" {
		dir = c.cfg.DownloadDir
	}
	path := filepath.Join(dir, models.DownloadFileName(img.Template))
	if err := os.WriteFile(path, img.PNG, 0o644); err != nil {
		return "", fmt.Errorf("error writing qr code image: %w", err)
	}

	c.logger.Info().Str("path", path).Msg("qr code downloaded")
	return path, nil
}

// ─── scanner ──────────────────────────────────────────────────────────────────

// LoadCameras asks for camera access and lists the cameras. A failure shows
// the error view.
func (c *Controller) LoadCameras(ctx context.Context) error {
	err := c.scanner.RequestPermission(ctx)
	cameras := c.scanner.Cameras()
	session := c.scanner.State()

	c.store.Update(func(s *State) bool {
		s.Scanner.Session = session
		s.Scanner.Cameras = cameras
		if !hasCamera(cameras, s.Scanner.SelectedCamera) {
			s.Scanner.SelectedCamera = ""
			if len(cameras) > 0 {
				s.Scanner.SelectedCamera = cameras[0].ID
			}
		}
		if err != nil {
			showFailure(s, scanner.OutcomeFromError(err))
		}
		return true
	})
	return err
}

// SelectCamera makes id the camera the next scan starts on. A running
// session is stopped first.
func (c *Controller) SelectCamera(ctx context.Context, id string) error {
	if !hasCamera(c.store.Snapshot().Scanner.Cameras, id) {
		return fmt.Errorf("%w: %q", ErrUnknownCamera, id)
	}

	stopErr := c.stopScan(ctx)
	c.store.Update(func(s *State) bool {
		s.Scanner.SelectedCamera = id
		return true
	})
	return stopErr
}

// StartScan starts a camera session on the selected camera. The outcome is
// delivered through the store.
func (c *Controller) StartScan(ctx context.Context) error {
	if c.ctx.Err() != nil {
		return ErrClosed
	}
	selected := c.store.Snapshot().Scanner.SelectedCamera

	outcomes, err := c.scanner.StartCameraScan(ctx, selected)
	if err != nil {
		c.logger.Warn().Err(err).Str("camera", selected).Msg("camera scan did not start")
		session := c.scanner.State()
		c.store.Update(func(s *State) bool {
			s.Scanner.Session = session
			s.Scanner.Scanning = false
			showFailure(s, scanner.OutcomeFromError(err))
			return true
		})
		return err
	}

	c.scanMu.Lock()
	c.scanGen++
	gen := c.scanGen
	c.wg.Add(1)
	c.scanMu.Unlock()

	session := c.scanner.State()
	c.store.Update(func(s *State) bool {
		s.Scanner.Session = session
		s.Scanner.Scanning = true
		return true
	})

	go c.consume(gen, outcomes)
	return nil
}

func (c *Controller) consume(gen uint64, outcomes <-chan models.ScanOutcome) {
	defer c.wg.Done()

	for outcome := range outcomes {
		c.deliver(gen, outcome)
	}

	if !c.currentScan(gen) {
		return
	}
	session := c.scanner.State()
	c.store.Update(func(s *State) bool {
		s.Scanner.Session = session
		s.Scanner.Scanning = false
		return true
	})
}

func (c *Controller) deliver(gen uint64, outcome models.ScanOutcome) {
	if !c.currentScan(gen) {
		return
	}
	c.store.Update(func(s *State) bool {
		if s.View != ShowingScanner {
			return false
		}
		showOutcome(s, outcome)
		return true
	})
}

func (c *Controller) currentScan(gen uint64) bool {
	c.scanMu.Lock()
	defer c.scanMu.Unlock()
	return c.scanGen == gen
}

// StopScan stops the running camera session. A stop failure shows the
// error view.
func (c *Controller) StopScan(ctx context.Context) error {
	err := c.stopScan(ctx)
	if err != nil {
		c.store.Update(func(s *State) bool {
			showFailure(s, scanner.OutcomeFromError(err))
			return true
		})
	}
	return err
}

func (c *Controller) stopScan(ctx context.Context) error {
	c.scanMu.Lock()
	c.scanGen++
	c.scanMu.Unlock()

	err := c.scanner.Stop(ctx)
	session := c.scanner.State()

	c.store.Update(func(s *State) bool {
		s.Scanner.Session = session
		s.Scanner.Scanning = false
		return true
	})
	return err
}

// ScanImage decodes one image. The outcome is applied only when the scanner
// view is still shown; otherwise it is dropped and applied reports false.
func (c *Controller) ScanImage(ctx context.Context, r io.Reader) (outcome models.ScanOutcome, applied bool) {
	var startRevision uint64
	c.store.Update(func(s *State) bool {
		startRevision = s.ViewRevision
		s.Scanner.Decoding = true
		return true
	})

	outcome = c.scanner.ScanImage(ctx, r)

	c.store.Update(func(s *State) bool {
		s.Scanner.Decoding = false
		if s.ViewRevision != startRevision || s.View != ShowingScanner {
			return true
		}
		showOutcome(s, outcome)
		applied = true
		return true
	})

	if !applied {
		c.logger.Debug().Msg("image scan result dropped after the scanner view was left")
	}
	return outcome, applied
}

// Close cancels pending encodes, stops the camera and waits for background
// consumers to finish.
func (c *Controller) Close(ctx context.Context) error {
	c.debouncer.Stop()
	c.cancel()
	err := c.stopScan(ctx)

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return errors.Join(err, ctx.Err())
	}
	return err
}

// ─── helpers ──────────────────────────────────────────────────────────────────

func showOutcome(s *State, outcome models.ScanOutcome) {
	if outcome.IsSuccess() {
		s.Result = ResultState{Text: outcome.Text, IsURL: Classify(outcome.Text) == ResultURL}
		s.Failure, s.Err = "", ""
		s.setView(ShowingResult)
		return
	}
	showFailure(s, outcome)
}

func showFailure(s *State, outcome models.ScanOutcome) {
	s.Result = ResultState{}
	s.Failure = outcome.Failure
	if s.Failure == "" {
		s.Failure = models.FailureEmptyResult
	}
	s.Err = outcome.Reason
	s.setView(ShowingError)
}

func hasCamera(cameras []models.CameraDevice, id string) bool {
	if id == "" {
		return false
	}
	for _, cam := range cameras {
		if cam.ID == id {
			return true
		}
	}
	return false
}
