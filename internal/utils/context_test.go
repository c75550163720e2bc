// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceIDContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{
			name:   "stored value",
			ctx:    WithTraceID(context.Background(), "abc-123"),
			want:   "abc-123",
			wantOK: true,
		},
		{
			name:   "missing value",
			ctx:    context.Background(),
			wantOK: false,
		},
		{
			name:   "empty value",
			ctx:    WithTraceID(context.Background(), ""),
			wantOK: false,
		},
		{
			name:   "wrong type under key",
			ctx:    context.WithValue(context.Background(), TraceIDCtxKey, 42),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetTraceIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}
