// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-qr-tool/internal/app"
	"github.com/MKhiriev/go-qr-tool/internal/logger"
	"github.com/MKhiriev/go-qr-tool/internal/utils"
	"github.com/MKhiriev/go-qr-tool/models"
)

func decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (models.GenerateRequest, bool) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return models.GenerateRequest{}, false
	}
	return req, true
}

func (h *Handler) format(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.services.QRService.Format(r.Context(), req.Payload)
	if err != nil {
		writeError(w, r, err, "error formatting payload")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	img, err := h.services.QRService.Generate(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error generating qr code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(img.PNG)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", models.DownloadFileName(img.Template)))
	w.WriteHeader(http.StatusOK)
	w.Write(img.PNG)
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeGenerateRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.services.QRService.Preview(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error generating qr preview")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
