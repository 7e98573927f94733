// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, CORS and CSRF handling.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/olegiv/salon-go/internal/auth"
	"github.com/olegiv/salon-go/internal/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyAdmin stores the authenticated admin in the request context.
const ContextKeyAdmin ContextKey = "admin"

// writeAuthError writes a minimal JSON error body. The middleware package
// keeps its own writer to stay independent of the handler package.
func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// RequireAdmin creates middleware that admits only callers with an active
// admin session, loading the admin into the request context.
func RequireAdmin(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, ok, err := gate.CurrentAdmin(r.Context())
			if err != nil {
				slog.Error("admin session check failed", "error", err, "path", r.URL.Path)
				writeAuthError(w, http.StatusInternalServerError, "internal_error", "Session check failed")
				return
			}
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized", "Admin session required")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperAdmin creates middleware that additionally requires the
// super_admin role. Must be used after RequireAdmin.
func RequireSuperAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin := GetAdmin(r)
			if admin == nil {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized", "Admin session required")
				return
			}
			if !admin.IsSuperAdmin() {
				slog.Warn("access denied",
					"status", http.StatusForbidden,
					"method", r.Method,
					"path", r.URL.Path,
					"admin_id", admin.ID,
					"role", admin.Role,
				)
				writeAuthError(w, http.StatusForbidden, "forbidden", "Super admin role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetAdmin retrieves the current admin from the request context.
// Returns nil if no admin is in context.
func GetAdmin(r *http.Request) *model.AdminUser {
	admin, ok := r.Context().Value(ContextKeyAdmin).(model.AdminUser)
	if !ok {
		return nil
	}
	return &admin
}
