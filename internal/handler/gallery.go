// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/olegiv/salon-go/internal/store"
)

type createGalleryPhotoRequest struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	ImageURL   string `json:"image_url"`
	OrderIndex *int64 `json:"order_index,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

type updateGalleryPhotoRequest struct {
	Title      *string `json:"title,omitempty"`
	Category   *string `json:"category,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	OrderIndex *int64  `json:"order_index,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// ListGalleryPhotos handles GET /admin/api/gallery.
func (h *ContentHandler) ListGalleryPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.queries.ListAllGalleryPhotos(r.Context())
	if err != nil {
		writeStoreError(w, err, "gallery photo")
		return
	}
	WriteSuccess(w, photos, &Meta{Total: int64(len(photos))})
}

// CreateGalleryPhoto handles POST /admin/api/gallery.
func (h *ContentHandler) CreateGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	var req createGalleryPhotoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ImageURL == "" {
		WriteValidationError(w, map[string]string{"image_url": "Image URL is required"})
		return
	}

	orderIndex, ok := resolveOrderIndex(w, r, req.OrderIndex, h.queries.CountGalleryPhotos)
	if !ok {
		return
	}

	now := time.Now()
	photo, err := h.queries.CreateGalleryPhoto(r.Context(), store.CreateGalleryPhotoParams{
		Title:      req.Title,
		Category:   req.Category,
		ImageURL:   req.ImageURL,
		OrderIndex: orderIndex,
		IsActive:   boolOr(req.IsActive, true),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		writeStoreError(w, err, "gallery photo")
		return
	}
	WriteCreated(w, photo)
}

// UpdateGalleryPhoto handles PUT /admin/api/gallery/{id}.
func (h *ContentHandler) UpdateGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "gallery photo")
	if !ok {
		return
	}
	var req updateGalleryPhotoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	photo, err := h.queries.GetGalleryPhotoByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "gallery photo")
		return
	}

	applyString(&photo.Title, req.Title)
	applyString(&photo.Category, req.Category)
	applyString(&photo.ImageURL, req.ImageURL)
	applyInt64(&photo.OrderIndex, req.OrderIndex)
	applyBool(&photo.IsActive, req.IsActive)

	if photo.ImageURL == "" {
		WriteValidationError(w, map[string]string{"image_url": "Image URL is required"})
		return
	}

	err = h.queries.UpdateGalleryPhoto(r.Context(), store.UpdateGalleryPhotoParams{
		Title:      photo.Title,
		Category:   photo.Category,
		ImageURL:   photo.ImageURL,
		OrderIndex: photo.OrderIndex,
		IsActive:   photo.IsActive,
		UpdatedAt:  time.Now(),
		ID:         id,
	})
	if err != nil {
		writeStoreError(w, err, "gallery photo")
		return
	}
	WriteNoContent(w)
}

// DeleteGalleryPhoto handles DELETE /admin/api/gallery/{id}.
func (h *ContentHandler) DeleteGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "gallery photo")
	if !ok {
		return
	}
	if err := h.queries.DeleteGalleryPhoto(r.Context(), id); err != nil {
		writeStoreError(w, err, "gallery photo")
		return
	}
	WriteNoContent(w)
}
