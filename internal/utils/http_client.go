// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-qr-tool"

// HTTPClient wraps resty.Client so callers get the full resty API plus the
// application defaults.
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().SetContext(ctx).Get(snapshotURL)
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool.
// A zero timeout leaves resty's default (no timeout) in place.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetDoNotParseResponse(false)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
