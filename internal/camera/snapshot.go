// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camera

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"
	"slices"
	"sync"

	"github.com/MKhiriev/go-qr-tool/internal/decoder"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/utils"
	"github.com/MKhiriev/go-qr-tool/models"
)

type snapshotProvider struct {
	urls   map[string]string
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewSnapshotProvider returns a [Provider] over HTTP still-image cameras.
// urls maps a camera ID to the URL that serves its current frame.
func NewSnapshotProvider(urls map[string]string, client *utils.HTTPClient, logger *logger.Logger) Provider {
	return &snapshotProvider{urls: urls, client: client, logger: logger}
}

func (p *snapshotProvider) Devices(ctx context.Context) ([]models.CameraDevice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(p.urls))
	for id := range p.urls {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	devices := make([]models.CameraDevice, 0, len(ids))
	for _, id := range ids {
		devices = append(devices, models.CameraDevice{ID: id})
	}
	return devices, nil
}

// Open fetches one frame to make sure the camera answers before handing out
// the stream.
func (p *snapshotProvider) Open(ctx context.Context, id string) (Stream, error) {
	url, ok := p.urls[id]
	if !ok {
		return nil, ErrCameraNotFound
	}

	s := &snapshotStream{id: id, url: url, client: p.client}
	if _, err := s.Frame(ctx); err != nil {
		p.logger.Debug().Err(err).Str("camera", id).Msg("snapshot camera probe failed")
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, asOpenError(err)
	}

	return s, nil
}

type snapshotStream struct {
	id     string
	url    string
	client *utils.HTTPClient

	mu     sync.Mutex
	closed bool
}

func (s *snapshotStream) Frame(ctx context.Context) (image.Image, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, ErrStreamClosed
	}

	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrFrameUnavailable, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return nil, fmt.Errorf("%w: camera %q answered %d", ErrPermissionDenied, s.id, code)
	case code < 200 || code > 299:
		return nil, fmt.Errorf("%w: camera %q answered %d", ErrFrameUnavailable, s.id, code)
	}

	img, _, err := decoder.LoadImage(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrameUnavailable, err)
	}
	return img, nil
}

func (s *snapshotStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStreamClosed
	}
	s.closed = true
	return nil
}
