// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-tool/internal/config"
	"github.com/MKhiriev/go-qr-tool/internal/handler"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/server"
	"github.com/MKhiriev/go-qr-tool/internal/service"
	"github.com/MKhiriev/go-qr-tool/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const cameraReleaseTimeout = 5 * time.Second

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("go-qr-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	ctx, cancel := context.WithTimeout(context.Background(), cameraReleaseTimeout)
	defer cancel()
	if err = services.ScanService.StopStream(ctx); err != nil {
		log.Warn().Err(err).Msg("camera was not released cleanly")
	}
}
