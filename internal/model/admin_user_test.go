// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreensForRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want []string
	}{
		{
			name: "super admin gets every screen",
			role: RoleSuperAdmin,
			want: []string{
				ScreenCarousel, ScreenGallery, ScreenInstagram,
				ScreenServices, ScreenStylists, ScreenSettings,
				ScreenAdminUsers,
			},
		},
		{
			name: "admin gets everything except account management",
			role: RoleAdmin,
			want: []string{
				ScreenCarousel, ScreenGallery, ScreenInstagram,
				ScreenServices, ScreenStylists, ScreenSettings,
			},
		},
		{
			name: "unknown role gets nothing",
			role: "editor",
			want: nil,
		},
		{
			name: "empty role gets nothing",
			role: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScreensForRole(tt.role))
		})
	}
}

func TestAdminUserScreens_Inactive(t *testing.T) {
	a := AdminUser{Role: RoleSuperAdmin, IsActive: false}
	assert.Nil(t, a.Screens(), "disabled admin must have no screens")
}

func TestAdminUserScreens_Active(t *testing.T) {
	a := AdminUser{Role: RoleAdmin, IsActive: true}
	screens := a.Screens()
	assert.NotEmpty(t, screens)
	assert.NotContains(t, screens, ScreenAdminUsers)
}

func TestIsSuperAdmin(t *testing.T) {
	a := AdminUser{Role: RoleSuperAdmin}
	if !a.IsSuperAdmin() {
		t.Error("super_admin role not recognized")
	}
	a.Role = RoleAdmin
	if a.IsSuperAdmin() {
		t.Error("admin role reported as super admin")
	}
}
