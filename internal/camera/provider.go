// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package camera

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qr-tool/internal/config"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/utils"
	"github.com/MKhiriev/go-qr-tool/models"
)

// NewProvider builds the provider described by cfg: directory cameras
// followed by snapshot cameras.
func NewProvider(cfg config.Camera, logger *logger.Logger) Provider {
	var providers []Provider
	if cfg.FramesDir != "" {
		providers = append(providers, NewDirProvider(cfg.FramesDir, logger))
	}
	if len(cfg.SnapshotURLs) > 0 {
		client := utils.NewHTTPClient(cfg.RequestTimeout)
		providers = append(providers, NewSnapshotProvider(cfg.SnapshotURLs, client, logger))
	}

	return NewMultiProvider(providers...)
}

type multiProvider struct {
	providers []Provider
}

// NewMultiProvider merges several providers into one. Devices are listed in
// provider order; Open asks each provider in turn until one knows the ID.
func NewMultiProvider(providers ...Provider) Provider {
	return &multiProvider{providers: providers}
}

// Devices fails only when every provider fails; a denied source is then
// reported as ErrPermissionDenied.
func (m *multiProvider) Devices(ctx context.Context) ([]models.CameraDevice, error) {
	var (
		devices []models.CameraDevice
		errs    []error
	)
	for _, p := range m.providers {
		list, err := p.Devices(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		devices = append(devices, list...)
	}

	if len(errs) > 0 && len(errs) == len(m.providers) {
		return nil, errors.Join(errs...)
	}
	return devices, nil
}

func (m *multiProvider) Open(ctx context.Context, id string) (Stream, error) {
	for _, p := range m.providers {
		stream, err := p.Open(ctx, id)
		if errors.Is(err, ErrCameraNotFound) {
			continue
		}
		return stream, err
	}
	return nil, ErrCameraNotFound
}

// asOpenError keeps permission failures recognisable and folds anything
// else into ErrOpenFailed.
func asOpenError(err error) error {
	if errors.Is(err, ErrPermissionDenied) || errors.Is(err, ErrOpenFailed) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrOpenFailed, err)
}
