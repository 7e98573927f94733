// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/olegiv/salon-go/internal/model"
)

func TestAdminUsers_CreateAndSignIn(t *testing.T) {
	env := newTestEnv(t)
	env.loginAsSuperAdmin()

	status, body := env.do(http.MethodPost, "/admin/api/admin-users", map[string]any{
		"email":    "new@salon.test",
		"password": "longenough1",
		"role":     model.RoleAdmin,
	})
	if status != http.StatusCreated {
		t.Fatalf("create = %d, body = %v", status, body)
	}
	data := dataMap(t, body)
	if data["role"] != model.RoleAdmin || data["is_active"] != true {
		t.Errorf("created admin = %v", data)
	}

	// The new account can sign in straight away.
	env2 := newTestEnvClient(env)
	status, _ = env2.do(http.MethodPost, "/admin/api/login",
		map[string]string{"email": "new@salon.test", "password": "longenough1"})
	if status != http.StatusOK {
		t.Errorf("new admin login = %d, want 200", status)
	}
}

func TestAdminUsers_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	env.loginAsSuperAdmin()

	tests := []struct {
		name string
		body map[string]any
	}{
		{"bad email", map[string]any{"email": "not-an-email", "password": "longenough1", "role": model.RoleAdmin}},
		{"short password", map[string]any{"email": "ok@salon.test", "password": "short", "role": model.RoleAdmin}},
		{"bad role", map[string]any{"email": "ok@salon.test", "password": "longenough1", "role": "editor"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := env.do(http.MethodPost, "/admin/api/admin-users", tt.body)
			if status != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d (%v), want 422", status, body)
			}
		})
	}
}

func TestAdminUsers_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.loginAsSuperAdmin()

	status, body := env.do(http.MethodPost, "/admin/api/admin-users", map[string]any{
		"email":    "owner@salon.test", // already provisioned by loginAsSuperAdmin
		"password": "longenough1",
		"role":     model.RoleAdmin,
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d (%v), want 422", status, body)
	}
}

func TestAdminUsers_CannotDeleteSelf(t *testing.T) {
	env := newTestEnv(t)
	env.loginAsSuperAdmin()

	status, body := env.do(http.MethodGet, "/admin/api/session", nil)
	if status != http.StatusOK {
		t.Fatalf("session = %d", status)
	}
	self := dataMap(t, body)["admin"].(map[string]any)
	id := int64(self["id"].(float64))

	status, body = env.do(http.MethodDelete, fmt.Sprintf("/admin/api/admin-users/%d", id), nil)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("self delete = %d (%v), want 422", status, body)
	}
}

func TestAdminUsers_LastSuperAdminGuard(t *testing.T) {
	env := newTestEnv(t)
	env.loginAsSuperAdmin()

	status, body := env.do(http.MethodGet, "/admin/api/session", nil)
	if status != http.StatusOK {
		t.Fatalf("session = %d", status)
	}
	self := dataMap(t, body)["admin"].(map[string]any)
	id := int64(self["id"].(float64))

	// Demoting the only active super admin is refused.
	status, _ = env.do(http.MethodPut, fmt.Sprintf("/admin/api/admin-users/%d", id),
		map[string]any{"role": model.RoleAdmin})
	if status != http.StatusUnprocessableEntity {
		t.Errorf("demote = %d, want 422", status)
	}

	// So is disabling it.
	status, _ = env.do(http.MethodPut, fmt.Sprintf("/admin/api/admin-users/%d", id),
		map[string]any{"is_active": false})
	if status != http.StatusUnprocessableEntity {
		t.Errorf("disable = %d, want 422", status)
	}

	// With a second active super admin in place the demotion goes through.
	status, _ = env.do(http.MethodPost, "/admin/api/admin-users", map[string]any{
		"email":    "second@salon.test",
		"password": "longenough1",
		"role":     model.RoleSuperAdmin,
	})
	if status != http.StatusCreated {
		t.Fatalf("create second super admin = %d", status)
	}

	status, body = env.do(http.MethodPut, fmt.Sprintf("/admin/api/admin-users/%d", id),
		map[string]any{"role": model.RoleAdmin})
	if status != http.StatusOK {
		t.Fatalf("demote with backup = %d (%v), want 200", status, body)
	}
	if got := dataMap(t, body)["role"]; got != model.RoleAdmin {
		t.Errorf("role after demotion = %v, want admin", got)
	}
}

func TestAdminUsers_DisableRevokesAccess(t *testing.T) {
	env := newTestEnv(t)
	env.loginAsSuperAdmin()

	status, body := env.do(http.MethodPost, "/admin/api/admin-users", map[string]any{
		"email":    "temp@salon.test",
		"password": "longenough1",
		"role":     model.RoleAdmin,
	})
	if status != http.StatusCreated {
		t.Fatalf("create = %d", status)
	}
	id := int64(dataMap(t, body)["id"].(float64))

	// Sign the new admin in on a second client.
	env2 := newTestEnvClient(env)
	env2.login("temp@salon.test", "longenough1")

	status, _ = env.do(http.MethodPut, fmt.Sprintf("/admin/api/admin-users/%d", id),
		map[string]any{"is_active": false})
	if status != http.StatusOK {
		t.Fatalf("disable = %d, want 200", status)
	}

	// Their session no longer opens the panel.
	status, _ = env2.do(http.MethodGet, "/admin/api/session", nil)
	if status != http.StatusUnauthorized {
		t.Errorf("disabled admin session probe = %d, want 401", status)
	}
}
