// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// snapshotURLs collects repeated -snapshot id=url flags.
type snapshotURLs map[string]string

func (s snapshotURLs) String() string {
	pairs := make([]string, 0, len(s))
	for id, url := range s {
		pairs = append(pairs, id+"="+url)
	}
	return strings.Join(pairs, ",")
}

func (s snapshotURLs) Set(v string) error {
	id, url, ok := strings.Cut(v, "=")
	if !ok || strings.TrimSpace(id) == "" || strings.TrimSpace(url) == "" {
		return errors.New("need snapshot camera in a form `id=url`")
	}
	s[strings.TrimSpace(id)] = strings.TrimSpace(url)
	return nil
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-upload maximum uploaded image size in bytes
//	-recovery-level QR error correction level (low, medium, high, highest)
//	-fps camera frames sampled per second
//	-region side of the centred detection square in pixels
//	-max-frame-failures consecutive unreadable frames before a scan fails
//	-frames-dir directory with one sub-directory per directory camera
//	-snapshot snapshot camera as id=url, repeatable
//	-camera-timeout snapshot camera request timeout
//	-debounce generator re-render delay after the last edit
//	-download-dir directory downloaded PNG files are written to
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout, cameraTimeout, debounce time.Duration
	var maxUpload int64
	var recoveryLevel string
	var fps, region, maxFrameFailures int
	var framesDir, downloadDir string
	snapshots := snapshotURLs{}

	fs := flag.NewFlagSet("go-qr-tool", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxUpload, "max-upload", 0, "Maximum uploaded image size in bytes")
	fs.StringVar(&recoveryLevel, "recovery-level", "", "QR error correction level")
	fs.IntVar(&fps, "fps", 0, "Camera frames sampled per second")
	fs.IntVar(&region, "region", 0, "Detection region size in pixels")
	fs.IntVar(&maxFrameFailures, "max-frame-failures", 0, "Consecutive unreadable frames before a scan fails")
	fs.StringVar(&framesDir, "frames-dir", "", "Directory camera root")
	fs.Var(snapshots, "snapshot", "Snapshot camera id=url (repeatable)")
	fs.DurationVar(&cameraTimeout, "camera-timeout", 0, "Snapshot camera request timeout")
	fs.DurationVar(&debounce, "debounce", 0, "Generator re-render delay")
	fs.StringVar(&downloadDir, "download-dir", "", "Download directory")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadBytes: maxUpload,
		},
		Encoder: Encoder{
			RecoveryLevel: recoveryLevel,
		},
		Scanner: Scanner{
			FPS:              fps,
			RegionSize:       region,
			MaxFrameFailures: maxFrameFailures,
		},
		Camera: Camera{
			FramesDir:      framesDir,
			RequestTimeout: cameraTimeout,
		},
		Generator: Generator{
			Debounce:    debounce,
			DownloadDir: downloadDir,
		},
		JSONFilePath: jsonConfigPath,
	}
	if len(snapshots) > 0 {
		cfg.Camera.SnapshotURLs = snapshots
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; any other host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
