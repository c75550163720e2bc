// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// BuildInfo carries build-time metadata injected by linker flags.
// Empty values are reported as "N/A".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo constructs [BuildInfo], replacing blank values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: valueOrNA(version),
		Date:    valueOrNA(date),
		Commit:  valueOrNA(commit),
	}
}

// Lines returns the metadata as "Build version/date/commit" lines.
func (b BuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Build version: %s", valueOrNA(b.Version)),
		fmt.Sprintf("Build date: %s", valueOrNA(b.Date)),
		fmt.Sprintf("Build commit: %s", valueOrNA(b.Commit)),
	}
}

func (b BuildInfo) String() string {
	return strings.Join(b.Lines(), "\n")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
