// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/olegiv/salon-go/internal/service"
)

// UploadHandler accepts admin image uploads. Uploading only stores the file
// and returns its URL; attaching the URL to a row is a separate request, so
// a failed upload never leaves a half-written record behind.
type UploadHandler struct {
	uploader *service.Uploader
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploader *service.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /admin/api/uploads/{folder}. Expects multipart form
// data with the image under the "file" field.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	folder := chi.URLParam(r, "folder")

	if err := r.ParseMultipartForm(service.MaxUploadSize); err != nil {
		WriteBadRequest(w, "Invalid multipart form", map[string]string{"form": err.Error()})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(r.Context(), folder, file, header)
	if err != nil {
		slog.Warn("upload rejected", "folder", folder, "filename", header.Filename, "error", err)
		WriteValidationError(w, map[string]string{"file": err.Error()})
		return
	}

	slog.Info("image uploaded", "folder", folder, "url", url)
	WriteCreated(w, uploadResponse{URL: url})
}
