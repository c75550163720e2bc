// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camera

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-qr-tool/internal/decoder"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/models"
)

// labelFile, when present inside a camera directory, holds its display label.
const labelFile = ".label"

var frameExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp"}

type dirProvider struct {
	root string

	logger *logger.Logger
}

// NewDirProvider returns a [Provider] whose cameras are the sub-directories
// of root. A missing root means no cameras.
func NewDirProvider(root string, logger *logger.Logger) Provider {
	return &dirProvider{root: root, logger: logger}
}

func (p *dirProvider) Devices(ctx context.Context) ([]models.CameraDevice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.root == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(p.root)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, nil
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		default:
			return nil, fmt.Errorf("error reading frames directory: %w", err)
		}
	}

	devices := make([]models.CameraDevice, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		devices = append(devices, models.CameraDevice{
			ID:    entry.Name(),
			Label: p.label(entry.Name()),
		})
	}

	return devices, nil
}

func (p *dirProvider) label(id string) string {
	raw, err := os.ReadFile(filepath.Join(p.root, id, labelFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

func (p *dirProvider) Open(ctx context.Context, id string) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.root == "" || id == "" || strings.ContainsAny(id, `/\`) {
		return nil, ErrCameraNotFound
	}

	dir := filepath.Join(p.root, id)
	entries, err := os.ReadDir(dir)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, ErrCameraNotFound
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: %v", ErrPermissionDenied, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
		}
	}

	var frames []string
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.Type().IsRegular() && slices.Contains(frameExtensions, ext) {
			frames = append(frames, filepath.Join(dir, entry.Name()))
		}
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: camera %q has no frames", ErrOpenFailed, id)
	}
	slices.Sort(frames)

	p.logger.Debug().Str("camera", id).Int("frames", len(frames)).Msg("directory camera opened")
	return &dirStream{frames: frames}, nil
}

type dirStream struct {
	mu     sync.Mutex
	frames []string
	next   int
	closed bool
}

// Frame returns the next frame, wrapping around after the last one.
func (s *dirStream) Frame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrStreamClosed
	}
	path := s.frames[s.next]
	s.next = (s.next + 1) % len(s.frames)
	s.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrameUnavailable, err)
	}
	defer f.Close()

	img, _, err := decoder.LoadImage(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFrameUnavailable, filepath.Base(path), err)
	}
	return img, nil
}

func (s *dirStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	s.closed = true
	return nil
}
