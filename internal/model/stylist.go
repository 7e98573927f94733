// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"strings"
	"time"
)

// Stylist is one member of the salon team.
type Stylist struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Title           string    `json:"title,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	InstagramHandle string    `json:"instagram_handle,omitempty"`
	Specialties     []string  `json:"specialties"`
	OrderIndex      int64     `json:"order_index"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ParseSpecialties splits a comma-joined edit string into the stored list.
// Segments are trimmed and order is preserved; empty segments are dropped.
func ParseSpecialties(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SpecialtiesText joins the stored list back into the comma-joined form
// shown in the edit field.
func (s *Stylist) SpecialtiesText() string {
	return strings.Join(s.Specialties, ", ")
}
