// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/olegiv/salon-go/internal/auth"
	"github.com/olegiv/salon-go/internal/middleware"
	"github.com/olegiv/salon-go/internal/model"
)

// AuthHandler handles sign-in, sign-out and the session probe.
type AuthHandler struct {
	gate *auth.Gate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(gate *auth.Gate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// sessionResponse is the body returned by Login and Session.
type sessionResponse struct {
	Admin   model.AdminUser `json:"admin"`
	Screens []string        `json:"screens"`
}

// loginRequest is the body for POST /admin/api/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /admin/api/login.
//
// Credential failures return 401 with the provider's message; valid
// credentials without an active admin record return 403 after the gate has
// already destroyed the session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteValidationError(w, map[string]string{"email": "Email and password are required"})
		return
	}

	admin, err := h.gate.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, "invalid_credentials", err.Error(), nil)
		case errors.Is(err, auth.ErrAccessDenied):
			WriteError(w, http.StatusForbidden, "access_denied", err.Error(), nil)
		default:
			slog.Error("sign-in failed", "error", err)
			WriteInternalError(w, "Sign-in failed")
		}
		return
	}

	WriteSuccess(w, sessionResponse{Admin: admin, Screens: admin.Screens()}, nil)
}

// Session handles GET /admin/api/session, the read-only probe used by the
// panel on mount.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	admin, ok, err := h.gate.CurrentAdmin(r.Context())
	if err != nil {
		slog.Error("session probe failed", "error", err)
		WriteInternalError(w, "Session check failed")
		return
	}
	if !ok {
		WriteUnauthorized(w, "No admin session")
		return
	}
	WriteSuccess(w, sessionResponse{Admin: admin, Screens: admin.Screens()}, nil)
}

// Logout handles POST /admin/api/logout. Always succeeds, signed in or not.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.gate.SignOut(r.Context())
	WriteNoContent(w)
}

// Admin returns the admin loaded by the RequireAdmin middleware.
func currentAdmin(r *http.Request) *model.AdminUser {
	return middleware.GetAdmin(r)
}
