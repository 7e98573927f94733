// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"time"

	"github.com/olegiv/salon-go/internal/auth"
	"github.com/olegiv/salon-go/internal/model"
	"github.com/olegiv/salon-go/internal/store"
)

// MinPasswordLength is the shortest password accepted for a new admin.
const MinPasswordLength = 8

// AdminUserHandler manages panel accounts. Routes are mounted behind the
// super-admin middleware; the handlers still guard the two invariants that
// middleware cannot: an admin never deletes their own account, and the last
// active super admin can be neither disabled, demoted nor deleted.
type AdminUserHandler struct {
	db      *sql.DB
	queries *store.Queries
}

// NewAdminUserHandler creates a new AdminUserHandler.
func NewAdminUserHandler(db *sql.DB) *AdminUserHandler {
	return &AdminUserHandler{db: db, queries: store.New(db)}
}

type createAdminUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type updateAdminUserRequest struct {
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func validRole(role string) bool {
	return role == model.RoleAdmin || role == model.RoleSuperAdmin
}

// List handles GET /admin/api/admin-users.
func (h *AdminUserHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.queries.ListAdminUsers(r.Context())
	if err != nil {
		writeStoreError(w, err, "admin user")
		return
	}
	WriteSuccess(w, admins, &Meta{Total: int64(len(admins))})
}

// Create handles POST /admin/api/admin-users. Provisions the identity
// account and the admin record together inside one transaction.
func (h *AdminUserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAdminUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	details := map[string]string{}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		details["email"] = "A valid email address is required"
	}
	if len(req.Password) < MinPasswordLength {
		details["password"] = "Password must be at least 8 characters"
	}
	if !validRole(req.Role) {
		details["role"] = "Role must be admin or super_admin"
	}
	if len(details) > 0 {
		WriteValidationError(w, details)
		return
	}

	ctx := r.Context()
	if _, err := h.queries.GetUserByEmail(ctx, req.Email); err == nil {
		WriteValidationError(w, map[string]string{"email": "Email is already in use"})
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		writeStoreError(w, err, "admin user")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("password hashing failed", "error", err)
		WriteInternalError(w, "Failed to create admin user")
		return
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		writeStoreError(w, err, "admin user")
		return
	}
	defer tx.Rollback()

	qtx := store.New(tx)
	now := time.Now()
	user, err := qtx.CreateUser(ctx, store.CreateUserParams{
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		writeStoreError(w, err, "admin user")
		return
	}
	admin, err := qtx.CreateAdminUser(ctx, store.CreateAdminUserParams{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      req.Role,
		IsActive:  boolOr(req.IsActive, true),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		writeStoreError(w, err, "admin user")
		return
	}
	if err := tx.Commit(); err != nil {
		writeStoreError(w, err, "admin user")
		return
	}

	slog.Info("admin user created", "email", admin.Email, "role", admin.Role)
	WriteCreated(w, admin)
}

// Update handles PUT /admin/api/admin-users/{id}, changing role or the
// active flag. Refuses any change that would leave zero active super admins.
func (h *AdminUserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "admin user")
	if !ok {
		return
	}
	var req updateAdminUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Role != nil && !validRole(*req.Role) {
		WriteValidationError(w, map[string]string{"role": "Role must be admin or super_admin"})
		return
	}

	ctx := r.Context()
	admin, err := h.queries.GetAdminUserByID(ctx, id)
	if err != nil {
		writeStoreError(w, err, "admin user")
		return
	}

	role := admin.Role
	if req.Role != nil {
		role = *req.Role
	}
	isActive := boolOr(req.IsActive, admin.IsActive)

	losesSuperAdmin := admin.IsSuperAdmin() && admin.IsActive &&
		(role != model.RoleSuperAdmin || !isActive)
	if losesSuperAdmin {
		if ok, err := h.otherActiveSuperAdminExists(ctx); err != nil {
			writeStoreError(w, err, "admin user")
			return
		} else if !ok {
			WriteValidationError(w, map[string]string{"role": "Cannot remove the last active super admin"})
			return
		}
	}

	err = h.queries.UpdateAdminUser(ctx, store.UpdateAdminUserParams{
		Role:      role,
		IsActive:  isActive,
		UpdatedAt: time.Now(),
		ID:        id,
	})
	if err != nil {
		writeStoreError(w, err, "admin user")
		return
	}

	updated, err := h.queries.GetAdminUserByID(ctx, id)
	if err != nil {
		writeStoreError(w, err, "admin user")
		return
	}
	WriteSuccess(w, updated, nil)
}

// Delete handles DELETE /admin/api/admin-users/{id}. Removes the identity
// account; the admin record follows via the FK cascade.
func (h *AdminUserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "admin user")
	if !ok {
		return
	}

	ctx := r.Context()
	admin, err := h.queries.GetAdminUserByID(ctx, id)
	if err != nil {
		writeStoreError(w, err, "admin user")
		return
	}

	if current := currentAdmin(r); current != nil && current.UserID == admin.UserID {
		WriteValidationError(w, map[string]string{"id": "Cannot delete your own account"})
		return
	}

	if admin.IsSuperAdmin() && admin.IsActive {
		if ok, err := h.otherActiveSuperAdminExists(ctx); err != nil {
			writeStoreError(w, err, "admin user")
			return
		} else if !ok {
			WriteValidationError(w, map[string]string{"id": "Cannot delete the last active super admin"})
			return
		}
	}

	if err := h.queries.DeleteUser(ctx, admin.UserID); err != nil {
		writeStoreError(w, err, "admin user")
		return
	}

	slog.Info("admin user deleted", "email", admin.Email)
	WriteNoContent(w)
}

// otherActiveSuperAdminExists reports whether at least two active super
// admins exist, so removing one still leaves somebody in charge.
func (h *AdminUserHandler) otherActiveSuperAdminExists(ctx context.Context) (bool, error) {
	n, err := h.queries.CountActiveSuperAdmins(ctx)
	if err != nil {
		return false, err
	}
	return n > 1, nil
}
