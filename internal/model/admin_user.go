// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Admin user roles.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Admin panel screen identifiers. Role gating is expressed as a capability
// set of these identifiers rather than scattered conditionals.
const (
	ScreenCarousel   = "carousel"
	ScreenGallery    = "gallery"
	ScreenInstagram  = "instagram"
	ScreenServices   = "services"
	ScreenStylists   = "stylists"
	ScreenSettings   = "settings"
	ScreenAdminUsers = "admin_users"
)

// AdminUser is the authorization record for an identity. An authenticated
// User without an active AdminUser row has no panel access.
type AdminUser struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSuperAdmin returns true if the admin has the super_admin role.
func (a *AdminUser) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// ScreensForRole returns the admin screens a role may open. Unknown roles
// get no screens.
func ScreensForRole(role string) []string {
	switch role {
	case RoleSuperAdmin:
		return []string{
			ScreenCarousel, ScreenGallery, ScreenInstagram,
			ScreenServices, ScreenStylists, ScreenSettings,
			ScreenAdminUsers,
		}
	case RoleAdmin:
		return []string{
			ScreenCarousel, ScreenGallery, ScreenInstagram,
			ScreenServices, ScreenStylists, ScreenSettings,
		}
	default:
		return nil
	}
}

// Screens returns the screens this admin may open.
func (a *AdminUser) Screens() []string {
	if !a.IsActive {
		return nil
	}
	return ScreensForRole(a.Role)
}
