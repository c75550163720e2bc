// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-tool/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dialStream(t *testing.T, frames map[string][]byte, query string) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(newTestRouter(t, testServerConfig(cameraFrames(t, frames))))
	t.Cleanup(srv.Close)

	return dialServer(t, srv, query)
}

func dialServer(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/scan/stream" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) models.StreamEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var event models.StreamEvent
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func requireClosed(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "unexpected error: %v", err)
}

// ─────────────────────────────────────────────
// GET /api/scan/stream
// ─────────────────────────────────────────────

func TestScanStream_Result(t *testing.T) {
	conn := dialStream(t, map[string][]byte{"desk": qrPNG(t, "https://example.com/menu")}, "?camera=desk")

	started := readEvent(t, conn)
	assert.Equal(t, eventStarted, started.Type)
	assert.Equal(t, "desk", started.CameraID)

	result := readEvent(t, conn)
	assert.Equal(t, eventResult, result.Type)
	require.NotNil(t, result.Result)
	assert.True(t, result.Result.Success)
	assert.Equal(t, "https://example.com/menu", result.Result.Text)
	assert.True(t, result.Result.IsURL)

	requireClosed(t, conn)
}

func TestScanStream_DefaultsToFirstCamera(t *testing.T) {
	conn := dialStream(t, map[string][]byte{"desk": qrPNG(t, "hello")}, "")

	assert.Equal(t, eventStarted, readEvent(t, conn).Type)
	result := readEvent(t, conn)
	require.NotNil(t, result.Result)
	assert.Equal(t, "hello", result.Result.Text)
	assert.False(t, result.Result.IsURL)
}

func TestScanStream_Stop(t *testing.T) {
	conn := dialStream(t, map[string][]byte{"desk": blankPNG(t)}, "?camera=desk")
	require.Equal(t, eventStarted, readEvent(t, conn).Type)

	require.NoError(t, conn.WriteJSON(models.StreamCommand{Type: commandStop}))

	stopped := readEvent(t, conn)
	assert.Equal(t, eventStopped, stopped.Type)
	assert.Nil(t, stopped.Result)
	requireClosed(t, conn)
}

func TestScanStream_Switch(t *testing.T) {
	conn := dialStream(t, map[string][]byte{
		"desk":  blankPNG(t),
		"porch": qrPNG(t, "parcel 7"),
	}, "?camera=desk")
	require.Equal(t, eventStarted, readEvent(t, conn).Type)

	require.NoError(t, conn.WriteJSON(models.StreamCommand{Type: commandSwitch, CameraID: "porch"}))

	started := readEvent(t, conn)
	assert.Equal(t, eventStarted, started.Type)
	assert.Equal(t, "porch", started.CameraID)

	result := readEvent(t, conn)
	assert.Equal(t, eventResult, result.Type)
	assert.Equal(t, "porch", result.CameraID)
	require.NotNil(t, result.Result)
	assert.Equal(t, "parcel 7", result.Result.Text)
}

func TestScanStream_TakeoverLeavesNewClientRunning(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t, testServerConfig(cameraFrames(t, map[string][]byte{
		"desk":  blankPNG(t),
		"porch": qrPNG(t, "parcel 7"),
	}))))
	t.Cleanup(srv.Close)

	first := dialServer(t, srv, "?camera=desk")
	require.Equal(t, eventStarted, readEvent(t, first).Type)

	second := dialServer(t, srv, "?camera=desk")
	require.Equal(t, eventStarted, readEvent(t, second).Type)

	assert.Equal(t, eventStopped, readEvent(t, first).Type)
	requireClosed(t, first)
	// a stop from the replaced client must not reach the new session
	_ = first.WriteJSON(models.StreamCommand{Type: commandStop})
	first.Close()

	require.NoError(t, second.WriteJSON(models.StreamCommand{Type: commandSwitch, CameraID: "porch"}))
	assert.Equal(t, eventStarted, readEvent(t, second).Type)
	result := readEvent(t, second)
	assert.Equal(t, eventResult, result.Type)
	require.NotNil(t, result.Result)
	assert.Equal(t, "parcel 7", result.Result.Text)
}

func TestScanStream_StopsOnlyOwnSession(t *testing.T) {
	tests := []struct {
		name string
		end  func(t *testing.T, conn *websocket.Conn)
	}{
		{
			name: "stop command",
			end: func(t *testing.T, conn *websocket.Conn) {
				require.NoError(t, conn.WriteJSON(models.StreamCommand{Type: commandStop}))
				assert.Equal(t, eventStopped, readEvent(t, conn).Type)
			},
		},
		{
			name: "client disconnect",
			end: func(_ *testing.T, conn *websocket.Conn) {
				conn.Close()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, scans := newMockRouter(t)
			srv := httptest.NewServer(router)
			t.Cleanup(srv.Close)

			outcomes := make(chan models.ScanOutcome)
			own := (<-chan models.ScanOutcome)(outcomes)
			stopped := make(chan struct{})

			scans.EXPECT().StartStream(gomock.Any(), "desk").Return(own, nil)
			scans.EXPECT().StopSession(gomock.Any(), gomock.Eq(own)).
				Do(func(context.Context, <-chan models.ScanOutcome) { close(stopped) }).
				Return(nil)

			conn := dialServer(t, srv, "?camera=desk")
			require.Equal(t, eventStarted, readEvent(t, conn).Type)

			tt.end(t, conn)

			select {
			case <-stopped:
			case <-time.After(5 * time.Second):
				t.Fatal("session was not stopped")
			}
		})
	}
}

func TestScanStream_UnknownCamera(t *testing.T) {
	conn := dialStream(t, map[string][]byte{"desk": qrPNG(t, "hello")}, "?camera=garage")

	event := readEvent(t, conn)
	assert.Equal(t, eventError, event.Type)
	assert.Equal(t, "garage", event.CameraID)
	require.NotNil(t, event.Result)
	assert.False(t, event.Result.Success)
	assert.Equal(t, models.FailureNoCameraFound, event.Result.Failure)

	requireClosed(t, conn)
}

func TestScanStream_NotWebsocket(t *testing.T) {
	router := newTestRouter(t, testServerConfig(cameraFrames(t, nil)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scan/stream", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
