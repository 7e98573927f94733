// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/olegiv/salon-go/internal/store"
)

// PublicHandler serves the read-only endpoints for the marketing site.
// Every endpoint returns only active rows in display order; an empty
// collection is an empty list, never an error.
type PublicHandler struct {
	queries *store.Queries
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(db *sql.DB) *PublicHandler {
	return &PublicHandler{queries: store.New(db)}
}

// Carousel handles GET /api/v1/carousel.
func (h *PublicHandler) Carousel(w http.ResponseWriter, r *http.Request) {
	images, err := h.queries.ListActiveCarouselImages(r.Context())
	if err != nil {
		writeStoreError(w, err, "carousel")
		return
	}
	WriteSuccess(w, images, &Meta{Total: int64(len(images))})
}

// Gallery handles GET /api/v1/gallery.
func (h *PublicHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	photos, err := h.queries.ListActiveGalleryPhotos(r.Context())
	if err != nil {
		writeStoreError(w, err, "gallery")
		return
	}
	WriteSuccess(w, photos, &Meta{Total: int64(len(photos))})
}

// Instagram handles GET /api/v1/instagram.
func (h *PublicHandler) Instagram(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListActiveInstagramPosts(r.Context())
	if err != nil {
		writeStoreError(w, err, "instagram")
		return
	}
	WriteSuccess(w, posts, &Meta{Total: int64(len(posts))})
}

// Services handles GET /api/v1/services.
func (h *PublicHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.queries.ListActiveServices(r.Context())
	if err != nil {
		writeStoreError(w, err, "services")
		return
	}
	WriteSuccess(w, services, &Meta{Total: int64(len(services))})
}

// Stylists handles GET /api/v1/stylists.
func (h *PublicHandler) Stylists(w http.ResponseWriter, r *http.Request) {
	stylists, err := h.queries.ListActiveStylists(r.Context())
	if err != nil {
		writeStoreError(w, err, "stylists")
		return
	}
	WriteSuccess(w, stylists, &Meta{Total: int64(len(stylists))})
}

// Settings handles GET /api/v1/settings, returning the sparse key/value map.
func (h *PublicHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.queries.ListSettings(r.Context())
	if err != nil {
		writeStoreError(w, err, "settings")
		return
	}
	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	WriteSuccess(w, values, nil)
}

// Health handles GET /healthz.
func (h *PublicHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.queries.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		WriteError(w, http.StatusServiceUnavailable, "unavailable", "Database unreachable", nil)
		return
	}
	WriteSuccess(w, map[string]string{"status": "ok"}, nil)
}
