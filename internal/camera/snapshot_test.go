// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camera

import (
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-tool/internal/config"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/utils"
	"github.com/MKhiriev/go-qr-tool/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshotServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/ok.png", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		_ = png.Encode(w, image.NewGray(image.Rect(0, 0, 4, 4)))
	})
	mux.HandleFunc("/denied.png", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("/broken.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("garbage"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

// ─────────────────────────────────────────────
// snapshotProvider
// ─────────────────────────────────────────────

func TestSnapshotProvider_Devices(t *testing.T) {
	p := NewSnapshotProvider(map[string]string{
		"porch":  "http://example.invalid/porch",
		"garage": "http://example.invalid/garage",
	}, utils.NewHTTPClient(time.Second), logger.Nop())

	devices, err := p.Devices(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.CameraDevice{{ID: "garage"}, {ID: "porch"}}, devices)
}

func TestSnapshotProvider_Open(t *testing.T) {
	srv, hits := newSnapshotServer(t)
	p := NewSnapshotProvider(map[string]string{
		"ok":     srv.URL + "/ok.png",
		"denied": srv.URL + "/denied.png",
		"broken": srv.URL + "/broken.png",
		"gone":   srv.URL + "/missing.png",
	}, utils.NewHTTPClient(time.Second), logger.Nop())

	t.Run("ok", func(t *testing.T) {
		stream, err := p.Open(context.Background(), "ok")
		require.NoError(t, err)

		img, err := stream.Frame(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, img.Bounds().Dx())
		assert.Equal(t, int32(2), hits.Load(), "open probes one frame")

		require.NoError(t, stream.Close())
		_, err = stream.Frame(context.Background())
		assert.ErrorIs(t, err, ErrStreamClosed)
	})

	tests := []struct {
		id      string
		wantErr error
	}{
		{"denied", ErrPermissionDenied},
		{"broken", ErrOpenFailed},
		{"gone", ErrOpenFailed},
		{"unknown", ErrCameraNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			stream, err := p.Open(context.Background(), tt.id)

			assert.Nil(t, stream)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// multiProvider / NewProvider
// ─────────────────────────────────────────────

func TestNewProvider_CombinesSources(t *testing.T) {
	srv, _ := newSnapshotServer(t)
	p := NewProvider(config.Camera{
		FramesDir:      newFramesDir(t),
		SnapshotURLs:   map[string]string{"porch": srv.URL + "/ok.png"},
		RequestTimeout: time.Second,
	}, logger.Nop())

	devices, err := p.Devices(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(devices))
	for _, d := range devices {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"empty", "front", "rear", "porch"}, ids)

	stream, err := p.Open(context.Background(), "porch")
	require.NoError(t, err)
	require.NoError(t, stream.Close())

	stream, err = p.Open(context.Background(), "rear")
	require.NoError(t, err)
	require.NoError(t, stream.Close())

	_, err = p.Open(context.Background(), "attic")
	assert.ErrorIs(t, err, ErrCameraNotFound)
}

func TestNewProvider_Empty(t *testing.T) {
	p := NewProvider(config.Camera{}, logger.Nop())

	devices, err := p.Devices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, devices)

	_, err = p.Open(context.Background(), "any")
	assert.ErrorIs(t, err, ErrCameraNotFound)
}

type failingProvider struct{ err error }

func (f failingProvider) Devices(context.Context) ([]models.CameraDevice, error) { return nil, f.err }
func (f failingProvider) Open(context.Context, string) (Stream, error) { return nil, f.err }

func TestMultiProvider_Devices_AllFail(t *testing.T) {
	p := NewMultiProvider(failingProvider{err: ErrPermissionDenied}, failingProvider{err: ErrPermissionDenied})

	_, err := p.Devices(context.Background())

	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestMultiProvider_Devices_PartialFailure(t *testing.T) {
	p := NewMultiProvider(failingProvider{err: ErrPermissionDenied}, NewDirProvider(newFramesDir(t), logger.Nop()))

	devices, err := p.Devices(context.Background())

	require.NoError(t, err)
	assert.Len(t, devices, 3)
}

func TestMultiProvider_Open_StopsAtFirstRealError(t *testing.T) {
	p := NewMultiProvider(failingProvider{err: ErrCameraNotFound}, failingProvider{err: ErrPermissionDenied})

	_, err := p.Open(context.Background(), "x")

	assert.ErrorIs(t, err, ErrPermissionDenied)
}
