// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ServerConfig is the view of [StructuredConfig] used by cmd/server.
type ServerConfig struct {
	App     App
	Server  Server
	Encoder Encoder
	Scanner Scanner
	Camera  Camera
}

// ClientConfig is the view of [StructuredConfig] used by the terminal client.
type ClientConfig struct {
	App       App
	Encoder   Encoder
	Scanner   Scanner
	Camera    Camera
	Generator Generator
}

// GetServerConfig loads the structured config and maps the fields relevant
// to the HTTP server.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// GetClientConfig loads the structured config and maps the fields relevant
// to the terminal client.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Encoder: cfg.Encoder,
		Scanner: cfg.Scanner,
		Camera:  cfg.Camera,
	}
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App:       cfg.App,
		Encoder:   cfg.Encoder,
		Scanner:   cfg.Scanner,
		Camera:    cfg.Camera,
		Generator: cfg.Generator,
	}
}
