// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the HTTP handlers, the
// camera providers and the terminal client: typed context keys, JSON
// response writing and a preconfigured HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so they cannot collide with
// string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key the trace ID middleware stores the request trace
// ID under.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace ID stored in ctx, if any.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
