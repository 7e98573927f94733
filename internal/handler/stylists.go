// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/olegiv/salon-go/internal/model"
	"github.com/olegiv/salon-go/internal/store"
)

// Specialties arrive as the comma-separated text the admin form holds
// ("cuts, colour, styling") and are stored and returned as a list.
type createStylistRequest struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Bio             string `json:"bio"`
	ImageURL        string `json:"image_url"`
	InstagramHandle string `json:"instagram_handle"`
	Specialties     string `json:"specialties"`
	OrderIndex      *int64 `json:"order_index,omitempty"`
	IsActive        *bool  `json:"is_active,omitempty"`
}

type updateStylistRequest struct {
	Name            *string `json:"name,omitempty"`
	Title           *string `json:"title,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	ImageURL        *string `json:"image_url,omitempty"`
	InstagramHandle *string `json:"instagram_handle,omitempty"`
	Specialties     *string `json:"specialties,omitempty"`
	OrderIndex      *int64  `json:"order_index,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

// ListStylists handles GET /admin/api/stylists.
func (h *ContentHandler) ListStylists(w http.ResponseWriter, r *http.Request) {
	stylists, err := h.queries.ListAllStylists(r.Context())
	if err != nil {
		writeStoreError(w, err, "stylist")
		return
	}
	WriteSuccess(w, stylists, &Meta{Total: int64(len(stylists))})
}

// CreateStylist handles POST /admin/api/stylists.
func (h *ContentHandler) CreateStylist(w http.ResponseWriter, r *http.Request) {
	var req createStylistRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	orderIndex, ok := resolveOrderIndex(w, r, req.OrderIndex, h.queries.CountStylists)
	if !ok {
		return
	}

	now := time.Now()
	stylist, err := h.queries.CreateStylist(r.Context(), store.CreateStylistParams{
		Name:            req.Name,
		Title:           req.Title,
		Bio:             sanitize(req.Bio),
		ImageURL:        req.ImageURL,
		InstagramHandle: req.InstagramHandle,
		Specialties:     model.ParseSpecialties(req.Specialties),
		OrderIndex:      orderIndex,
		IsActive:        boolOr(req.IsActive, true),
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		writeStoreError(w, err, "stylist")
		return
	}
	WriteCreated(w, stylist)
}

// UpdateStylist handles PUT /admin/api/stylists/{id}.
func (h *ContentHandler) UpdateStylist(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "stylist")
	if !ok {
		return
	}
	var req updateStylistRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	stylist, err := h.queries.GetStylistByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "stylist")
		return
	}

	applyString(&stylist.Name, req.Name)
	applyString(&stylist.Title, req.Title)
	applyString(&stylist.Bio, req.Bio)
	applyString(&stylist.ImageURL, req.ImageURL)
	applyString(&stylist.InstagramHandle, req.InstagramHandle)
	if req.Specialties != nil {
		stylist.Specialties = model.ParseSpecialties(*req.Specialties)
	}
	applyInt64(&stylist.OrderIndex, req.OrderIndex)
	applyBool(&stylist.IsActive, req.IsActive)

	if stylist.Name == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	err = h.queries.UpdateStylist(r.Context(), store.UpdateStylistParams{
		Name:            stylist.Name,
		Title:           stylist.Title,
		Bio:             sanitize(stylist.Bio),
		ImageURL:        stylist.ImageURL,
		InstagramHandle: stylist.InstagramHandle,
		Specialties:     stylist.Specialties,
		OrderIndex:      stylist.OrderIndex,
		IsActive:        stylist.IsActive,
		UpdatedAt:       time.Now(),
		ID:              id,
	})
	if err != nil {
		writeStoreError(w, err, "stylist")
		return
	}
	WriteNoContent(w)
}

// DeleteStylist handles DELETE /admin/api/stylists/{id}.
func (h *ContentHandler) DeleteStylist(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "stylist")
	if !ok {
		return
	}
	if err := h.queries.DeleteStylist(r.Context(), id); err != nil {
		writeStoreError(w, err, "stylist")
		return
	}
	WriteNoContent(w)
}
