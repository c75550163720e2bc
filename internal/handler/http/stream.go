// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/scanner"
	"github.com/MKhiriev/go-qr-tool/internal/service"
	"github.com/MKhiriev/go-qr-tool/models"
	"github.com/gorilla/websocket"
)

const (
	streamWriteWait   = 10 * time.Second
	streamStopTimeout = 5 * time.Second

	eventStarted = "started"
	eventResult  = "result"
	eventStopped = "stopped"
	eventError   = "error"

	commandStop   = "stop"
	commandSwitch = "switch"
)

// scanStream upgrades to a websocket and runs a camera scan session on the
// camera named by the "camera" query parameter (first camera when empty).
//
// The server sends "started" once the camera is bound and a single "result"
// when the session ends with an outcome. Clients may send {"type":"stop"} or
// {"type":"switch","camera_id":"..."}. The connection is closed after the
// result or a stop.
func (h *Handler) scanStream(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	s := &streamSession{conn: conn, scans: h.services.ScanService, logger: log}
	s.run(r.Context(), r.URL.Query().Get("camera"))
}

type streamSession struct {
	conn  *websocket.Conn
	scans service.ScanService

	logger *logger.Logger
}

func (s *streamSession) run(ctx context.Context, cameraID string) {
	commands := make(chan models.StreamCommand)
	readerDone := make(chan struct{})
	quit := make(chan struct{})
	defer close(quit)
	go s.readCommands(commands, readerDone, quit)

	outcomes, ok := s.start(ctx, cameraID)
	if !ok {
		s.close()
		return
	}

	for {
		select {
		case outcome, open := <-outcomes:
			if !open {
				// another client took the camera over
				s.send(models.StreamEvent{Type: eventStopped, CameraID: cameraID})
				s.close()
				return
			}
			resp := service.ScanResponseFromOutcome(outcome)
			s.send(models.StreamEvent{Type: eventResult, CameraID: cameraID, Result: &resp})
			s.close()
			return

		case cmd := <-commands:
			switch cmd.Type {
			case commandStop:
				s.stop(ctx, outcomes)
				s.send(models.StreamEvent{Type: eventStopped, CameraID: cameraID})
				s.close()
				return
			case commandSwitch:
				if outcomes, ok = s.start(ctx, cmd.CameraID); !ok {
					s.close()
					return
				}
				cameraID = cmd.CameraID
			default:
				s.logger.Debug().Str("command", cmd.Type).Msg("unknown stream command ignored")
			}

		case <-readerDone:
			s.logger.Debug().Str("camera", cameraID).Msg("stream client disconnected")
			s.stop(ctx, outcomes)
			return
		}
	}
}

func (s *streamSession) start(ctx context.Context, cameraID string) (<-chan models.ScanOutcome, bool) {
	outcomes, err := s.scans.StartStream(ctx, cameraID)
	if err != nil {
		s.logger.Warn().Err(err).Str("camera", cameraID).Msg("camera scan did not start")
		resp := service.ScanResponseFromOutcome(scanner.OutcomeFromError(err))
		s.send(models.StreamEvent{Type: eventError, CameraID: cameraID, Result: &resp})
		return nil, false
	}

	s.send(models.StreamEvent{Type: eventStarted, CameraID: cameraID})
	return outcomes, true
}

// stop ends this connection's own session only; a camera taken over by
// another client keeps running.
func (s *streamSession) stop(ctx context.Context, outcomes <-chan models.ScanOutcome) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), streamStopTimeout)
	defer cancel()

	if err := s.scans.StopSession(ctx, outcomes); err != nil {
		s.logger.Warn().Err(err).Msg("camera scan did not stop cleanly")
	}
}

func (s *streamSession) readCommands(commands chan<- models.StreamCommand, done chan<- struct{}, quit <-chan struct{}) {
	defer close(done)

	for {
		var cmd models.StreamCommand
		if err := s.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug().Err(err).Msg("stream read failed")
			}
			return
		}

		select {
		case commands <- cmd:
		case <-quit:
			return
		}
	}
}

func (s *streamSession) send(event models.StreamEvent) {
	s.conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	if err := s.conn.WriteJSON(event); err != nil {
		s.logger.Debug().Err(err).Str("event", event.Type).Msg("stream write failed")
	}
}

func (s *streamSession) close() {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(streamWriteWait)); err != nil {
		s.logger.Debug().Err(err).Msg("stream close failed")
	}
}
