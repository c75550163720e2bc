// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	// request/response routes
	router.Group(func(r chi.Router) {
		r.Use(h.withLogging, withGZip)
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		r.Get("/api/version/", h.getServerVersion)

		r.Post("/api/qr/format", h.format)
		r.Post("/api/qr/generate", h.generate)
		r.Post("/api/qr/preview", h.preview)

		r.Get("/api/scan/cameras", h.cameras)
		r.Post("/api/scan/image", h.scanImage)
	})

	// the websocket upgrade needs the raw connection, so no wrapping writers here
	router.Get("/api/scan/stream", h.scanStream)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
