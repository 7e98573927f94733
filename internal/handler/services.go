// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/olegiv/salon-go/internal/store"
)

// Price is free text ("from £45", "£80+"), not a number. The site renders
// it verbatim so pricing tiers and currency stay in the admin's hands.
type createServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	OrderIndex  *int64 `json:"order_index,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type updateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	OrderIndex  *int64  `json:"order_index,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ListServices handles GET /admin/api/services.
func (h *ContentHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.queries.ListAllServices(r.Context())
	if err != nil {
		writeStoreError(w, err, "service")
		return
	}
	WriteSuccess(w, services, &Meta{Total: int64(len(services))})
}

// CreateService handles POST /admin/api/services.
func (h *ContentHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	orderIndex, ok := resolveOrderIndex(w, r, req.OrderIndex, h.queries.CountServices)
	if !ok {
		return
	}

	now := time.Now()
	service, err := h.queries.CreateService(r.Context(), store.CreateServiceParams{
		Name:        req.Name,
		Description: sanitize(req.Description),
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		OrderIndex:  orderIndex,
		IsActive:    boolOr(req.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		writeStoreError(w, err, "service")
		return
	}
	WriteCreated(w, service)
}

// UpdateService handles PUT /admin/api/services/{id}.
func (h *ContentHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "service")
	if !ok {
		return
	}
	var req updateServiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	service, err := h.queries.GetServiceByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "service")
		return
	}

	applyString(&service.Name, req.Name)
	applyString(&service.Description, req.Description)
	applyString(&service.Price, req.Price)
	applyString(&service.ImageURL, req.ImageURL)
	applyInt64(&service.OrderIndex, req.OrderIndex)
	applyBool(&service.IsActive, req.IsActive)

	if service.Name == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	err = h.queries.UpdateService(r.Context(), store.UpdateServiceParams{
		Name:        service.Name,
		Description: sanitize(service.Description),
		Price:       service.Price,
		ImageURL:    service.ImageURL,
		OrderIndex:  service.OrderIndex,
		IsActive:    service.IsActive,
		UpdatedAt:   time.Now(),
		ID:          id,
	})
	if err != nil {
		writeStoreError(w, err, "service")
		return
	}
	WriteNoContent(w)
}

// DeleteService handles DELETE /admin/api/services/{id}.
func (h *ContentHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "service")
	if !ok {
		return
	}
	if err := h.queries.DeleteService(r.Context(), id); err != nil {
		writeStoreError(w, err, "service")
		return
	}
	WriteNoContent(w)
}
