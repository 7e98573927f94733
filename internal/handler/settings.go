// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/olegiv/salon-go/internal/store"
)

type upsertSettingRequest struct {
	Value string `json:"value"`
}

// ListSettings handles GET /admin/api/settings, returning full rows so the
// panel can show when each value last changed.
func (h *ContentHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.queries.ListSettings(r.Context())
	if err != nil {
		writeStoreError(w, err, "setting")
		return
	}
	WriteSuccess(w, settings, &Meta{Total: int64(len(settings))})
}

// UpsertSetting handles PUT /admin/api/settings/{key}. Writing an existing
// key updates it in place; no duplicate keys can exist.
func (h *ContentHandler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		WriteBadRequest(w, "Setting key is required", nil)
		return
	}
	var req upsertSettingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.queries.UpsertSetting(r.Context(), store.UpsertSettingParams{
		Key:       key,
		Value:     req.Value,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		writeStoreError(w, err, "setting")
		return
	}

	setting, err := h.queries.GetSetting(r.Context(), key)
	if err != nil {
		writeStoreError(w, err, "setting")
		return
	}
	WriteSuccess(w, setting, nil)
}

// DeleteSetting handles DELETE /admin/api/settings/{key}.
func (h *ContentHandler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		WriteBadRequest(w, "Setting key is required", nil)
		return
	}
	if err := h.queries.DeleteSetting(r.Context(), key); err != nil {
		writeStoreError(w, err, "setting")
		return
	}
	WriteNoContent(w)
}
