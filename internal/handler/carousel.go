// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/olegiv/salon-go/internal/store"
)

// createCarouselImageRequest is the body for POST /admin/api/carousel.
type createCarouselImageRequest struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"image_url"`
	OrderIndex *int64 `json:"order_index,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

// updateCarouselImageRequest is the body for PUT /admin/api/carousel/{id}.
// Absent fields keep their stored value.
type updateCarouselImageRequest struct {
	Title      *string `json:"title,omitempty"`
	Subtitle   *string `json:"subtitle,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	OrderIndex *int64  `json:"order_index,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// ListCarouselImages handles GET /admin/api/carousel.
func (h *ContentHandler) ListCarouselImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.queries.ListAllCarouselImages(r.Context())
	if err != nil {
		writeStoreError(w, err, "carousel image")
		return
	}
	WriteSuccess(w, images, &Meta{Total: int64(len(images))})
}

// CreateCarouselImage handles POST /admin/api/carousel.
func (h *ContentHandler) CreateCarouselImage(w http.ResponseWriter, r *http.Request) {
	var req createCarouselImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ImageURL == "" {
		WriteValidationError(w, map[string]string{"image_url": "Image URL is required"})
		return
	}

	orderIndex, ok := resolveOrderIndex(w, r, req.OrderIndex, h.queries.CountCarouselImages)
	if !ok {
		return
	}

	now := time.Now()
	image, err := h.queries.CreateCarouselImage(r.Context(), store.CreateCarouselImageParams{
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		ImageURL:   req.ImageURL,
		OrderIndex: orderIndex,
		IsActive:   boolOr(req.IsActive, true),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		writeStoreError(w, err, "carousel image")
		return
	}
	WriteCreated(w, image)
}

// UpdateCarouselImage handles PUT /admin/api/carousel/{id}. Partial update:
// the stored row is fetched, merged with the request and written back.
func (h *ContentHandler) UpdateCarouselImage(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "carousel image")
	if !ok {
		return
	}
	var req updateCarouselImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	image, err := h.queries.GetCarouselImageByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "carousel image")
		return
	}

	applyString(&image.Title, req.Title)
	applyString(&image.Subtitle, req.Subtitle)
	applyString(&image.ImageURL, req.ImageURL)
	applyInt64(&image.OrderIndex, req.OrderIndex)
	applyBool(&image.IsActive, req.IsActive)

	if image.ImageURL == "" {
		WriteValidationError(w, map[string]string{"image_url": "Image URL is required"})
		return
	}

	err = h.queries.UpdateCarouselImage(r.Context(), store.UpdateCarouselImageParams{
		Title:      image.Title,
		Subtitle:   image.Subtitle,
		ImageURL:   image.ImageURL,
		OrderIndex: image.OrderIndex,
		IsActive:   image.IsActive,
		UpdatedAt:  time.Now(),
		ID:         id,
	})
	if err != nil {
		writeStoreError(w, err, "carousel image")
		return
	}
	WriteNoContent(w)
}

// DeleteCarouselImage handles DELETE /admin/api/carousel/{id}.
func (h *ContentHandler) DeleteCarouselImage(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "carousel image")
	if !ok {
		return
	}
	if err := h.queries.DeleteCarouselImage(r.Context(), id); err != nil {
		writeStoreError(w, err, "carousel image")
		return
	}
	WriteNoContent(w)
}
