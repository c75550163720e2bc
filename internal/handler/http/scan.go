// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/utils"
)

const uploadField = "file"

func (h *Handler) cameras(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.ScanService.Cameras(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing cameras")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) scanImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: %w", ErrUploadTooLarge, err)
		} else {
			err = fmt.Errorf("%w: %w", ErrNoFileProvided, err)
		}
		writeError(w, r, err, "error reading upload")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrNoFileProvided, err), "error reading upload")
		return
	}
	defer file.Close()

	resp := h.services.ScanService.ScanImage(r.Context(), file)

	status := http.StatusOK
	if !resp.Success {
		status = http.StatusUnprocessableEntity
	}
	logger.FromRequest(r).Debug().Str("file", header.Filename).Int64("bytes", header.Size).Bool("success", resp.Success).Msg("uploaded image scanned")

	utils.WriteJSON(w, resp, status)
}
