// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scanner turns camera streams and static images into scan outcomes.
//
// A [Scanner] owns the camera binding and the decoder. It holds at most one
// camera session at a time: starting a new session stops the previous one
// and waits for its stream to be released first. Every session emits at
// most one outcome and then closes its channel.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-qr-tool/internal/camera"
	"github.com/MKhiriev/go-qr-tool/internal/config"
	"github.com/MKhiriev/go-qr-tool/internal/decoder"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/models"
)

type session struct {
	cameraID string
	out      <-chan models.ScanOutcome
	cancel   context.CancelFunc
	done     chan struct{}

	// closeErr is written before done is closed.
	closeErr error
}

// Scanner is the scanner adapter. The zero value is not usable; create one
// with [New].
type Scanner struct {
	provider camera.Provider
	decoder  decoder.Decoder
	cfg      config.Scanner

	// opMu serializes operations that change the camera binding.
	opMu sync.Mutex

	mu      sync.RWMutex
	state   models.ScannerState
	devices []models.CameraDevice
	lastErr error
	session *session

	logger *logger.Logger
}

// New returns a Scanner in the Idle state. Non-positive tuning values fall
// back to 10 fps, a 250 px region and 30 tolerated frame failures.
func New(provider camera.Provider, dec decoder.Decoder, cfg config.Scanner, logger *logger.Logger) *Scanner {
	if cfg.FPS <= 0 {
		cfg.FPS = 10
	}
	if cfg.RegionSize <= 0 {
		cfg.RegionSize = 250
	}
	if cfg.MaxFrameFailures <= 0 {
		cfg.MaxFrameFailures = 30
	}

	return &Scanner{
		provider: provider,
		decoder:  dec,
		cfg:      cfg,
		state:    models.ScannerIdle,
		logger:   logger,
	}
}

// State returns the current lifecycle state.
func (s *Scanner) State() models.ScannerState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the error that put the scanner into the Error state.
func (s *Scanner) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Cameras returns the devices found by the last permission request.
func (s *Scanner) Cameras() []models.CameraDevice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.devices)
}

// ActiveCamera returns the ID of the camera bound by the running session.
func (s *Scanner) ActiveCamera() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return "", false
	}
	return s.session.cameraID, true
}

// RequestPermission enumerates the cameras. The scanner ends in Ready when at
// least one camera is available and in Error otherwise. While a session is
// running only the device list is refreshed.
func (s *Scanner) RequestPermission(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.requestPermission(ctx)
}

func (s *Scanner) requestPermission(ctx context.Context) error {
	s.mu.Lock()
	scanning := s.state == models.ScannerScanning
	if !scanning {
		s.state = models.ScannerPermissionPending
	}
	s.mu.Unlock()

	devices, err := s.provider.Devices(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err != nil && ctx.Err() != nil:
		if !scanning {
			s.state = models.ScannerIdle
		}
		return ctx.Err()
	case errors.Is(err, camera.ErrPermissionDenied):
		err = fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	case err != nil:
		err = fmt.Errorf("%w: %v", ErrStartFailed, err)
	case len(devices) == 0:
		err = ErrNoCameraFound
	}

	if err != nil {
		s.logger.Warn().Err(err).Msg("camera permission request failed")
		if !scanning {
			s.state = models.ScannerError
			s.lastErr = err
			s.devices = nil
		}
		return err
	}

	s.devices = devices
	if !scanning {
		s.state = models.ScannerReady
		s.lastErr = nil
	}
	return nil
}

// StartCameraScan binds cameraID and starts sampling frames. An empty ID
// selects the first camera. A running session is stopped first.
//
// The returned channel yields at most one outcome and is closed when the
// session ends for any reason, including [Scanner.Stop].
func (s *Scanner) StartCameraScan(ctx context.Context, cameraID string) (<-chan models.ScanOutcome, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	switch s.State() {
	case models.ScannerIdle:
		if err := s.requestPermission(ctx); err != nil {
			return nil, err
		}
	case models.ScannerError:
		return nil, s.Err()
	}

	device, err := s.resolveCamera(cameraID)
	if err != nil {
		return nil, err
	}

	if err := s.stop(ctx); err != nil {
		// the old stream is still bound until its session finishes
		if s.bound() {
			s.logger.Error().Err(err).Msg("previous camera session is still running")
			return nil, err
		}
		s.logger.Warn().Err(err).Msg("previous camera session did not stop cleanly")
	}

	stream, err := s.provider.Open(ctx, device.ID)
	if err != nil {
		return nil, s.openError(device.ID, err)
	}

	sessCtx, cancel := context.WithCancel(context.Background())
	out := make(chan models.ScanOutcome, 1)
	sess := &session{cameraID: device.ID, out: out, cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	s.session = sess
	s.state = models.ScannerScanning
	s.mu.Unlock()

	s.logger.Info().Str("camera", device.ID).Int("fps", s.cfg.FPS).Msg("camera scan started")
	go s.run(sessCtx, sess, stream, out)

	return out, nil
}

func (s *Scanner) resolveCamera(id string) (models.CameraDevice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.devices) == 0 {
		return models.CameraDevice{}, ErrNoCameraFound
	}
	if id == "" {
		return s.devices[0], nil
	}
	for _, d := range s.devices {
		if d.ID == id {
			return d, nil
		}
	}
	return models.CameraDevice{}, fmt.Errorf("%w: %q", ErrNoCameraFound, id)
}

func (s *Scanner) openError(id string, err error) error {
	switch {
	case errors.Is(err, camera.ErrPermissionDenied):
		err = fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		s.mu.Lock()
		s.state = models.ScannerError
		s.lastErr = err
		s.mu.Unlock()
	case errors.Is(err, camera.ErrCameraNotFound):
		err = fmt.Errorf("%w: %q", ErrNoCameraFound, id)
	default:
		err = fmt.Errorf("%w: %v", ErrStartFailed, err)
	}

	s.logger.Error().Err(err).Str("camera", id).Msg("camera could not be opened")
	return err
}

// Stop ends the running session and waits until its stream is released.
// Without a running session Stop is a no-op.
func (s *Scanner) Stop(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.stop(ctx)
}

// StopSession stops the session that returned outcomes. It does nothing when
// that session has already ended or another one has taken the camera over.
func (s *Scanner) StopSession(ctx context.Context, outcomes <-chan models.ScanOutcome) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.RLock()
	owned := s.session != nil && outcomes != nil && s.session.out == outcomes
	s.mu.RUnlock()

	if !owned {
		return nil
	}
	return s.stop(ctx)
}

func (s *Scanner) bound() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

func (s *Scanner) stop(ctx context.Context) error {
	s.mu.RLock()
	sess := s.session
	s.mu.RUnlock()

	if sess == nil {
		return nil
	}

	sess.cancel()
	select {
	case <-sess.done:
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrStopFailed, ctx.Err())
	}

	if sess.closeErr != nil {
		return fmt.Errorf("%w: %v", ErrStopFailed, sess.closeErr)
	}

	s.logger.Info().Str("camera", sess.cameraID).Msg("camera scan stopped")
	return nil
}

func (s *Scanner) run(ctx context.Context, sess *session, stream camera.Stream, out chan<- models.ScanOutcome) {
	var fatal error
	defer func() {
		sess.closeErr = stream.Close()
		close(out)
		s.finish(sess, fatal)
		close(sess.done)
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.FPS))
	defer ticker.Stop()

	frameFailures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		frame, err := stream.Frame(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, camera.ErrPermissionDenied) {
				fatal = fmt.Errorf("%w: %v", ErrPermissionDenied, err)
				out <- OutcomeFromError(fatal)
				return
			}

			frameFailures++
			if frameFailures > s.cfg.MaxFrameFailures {
				s.logger.Error().Err(err).Int("failures", frameFailures).Msg("camera stopped delivering frames")
				out <- OutcomeFromError(ErrDecodeFailed)
				return
			}
			continue
		}
		frameFailures = 0

		text, err := s.decoder.Decode(ctx, decoder.CenterRegion(frame, s.cfg.RegionSize))
		if err != nil {
			// no code in this frame; keep sampling
			continue
		}

		out <- models.NewScanSuccess(text)
		return
	}
}

func (s *Scanner) finish(sess *session, fatal error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != sess {
		return
	}
	s.session = nil

	if fatal != nil {
		s.state = models.ScannerError
		s.lastErr = fatal
		return
	}
	s.state = models.ScannerStopped
}

// ScanImage decodes a single static image. It neither needs nor touches the
// camera binding and leaves no background work behind.
func (s *Scanner) ScanImage(ctx context.Context, r io.Reader) models.ScanOutcome {
	img, format, err := decoder.LoadImage(r)
	if err != nil {
		s.logger.Debug().Err(err).Msg("uploaded file is not a supported image")
		return OutcomeFromError(err)
	}

	text, err := s.decoder.Decode(ctx, img)
	if err != nil {
		s.logger.Debug().Err(err).Str("format", format).Msg("no qr code in uploaded image")
		return OutcomeFromError(err)
	}

	return models.NewScanSuccess(text)
}
