// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"
)

// ugcPolicy sanitizes free-text fields that end up rendered on the public
// site (bios, descriptions, captions).
var ugcPolicy = bluemonday.UGCPolicy()

// sanitize runs admin-entered free text through the UGC policy.
func sanitize(s string) string {
	return ugcPolicy.Sanitize(s)
}

// ParseIDParam parses the {id} URL parameter.
func ParseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// decodeJSON decodes a request body into dst, rejecting unknown fields.
// Returns false with the response already written on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteBadRequest(w, "Invalid JSON body", map[string]string{"body": err.Error()})
		return false
	}
	return true
}

// requireID parses the id parameter, writing the error response itself.
func requireID(w http.ResponseWriter, r *http.Request, entityName string) (int64, bool) {
	id, err := ParseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid "+entityName+" ID", nil)
		return 0, false
	}
	return id, true
}

// resolveOrderIndex returns the explicit order index from the request or, when
// absent, the current row count so new rows append at the end of the display
// order. Writes the error response itself on a count failure.
func resolveOrderIndex(w http.ResponseWriter, r *http.Request, explicit *int64, count func(context.Context) (int64, error)) (int64, bool) {
	if explicit != nil {
		return *explicit, true
	}
	n, err := count(r.Context())
	if err != nil {
		slog.Error("order index lookup failed", "error", err)
		WriteInternalError(w, "Failed to determine display order")
		return 0, false
	}
	return n, true
}

// boolOr returns *v, or def when v is nil.
func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func applyInt64(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}

func applyBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// writeStoreError maps a store failure to a JSON error response: absent
// rows become 404, everything else 500. No retry is attempted.
func writeStoreError(w http.ResponseWriter, err error, entityName string) {
	if errors.Is(err, sql.ErrNoRows) {
		WriteNotFound(w, entityName+" not found")
		return
	}
	slog.Error("store error", "error", err, "entity", entityName)
	WriteInternalError(w, "Failed to access "+entityName)
}
