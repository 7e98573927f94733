// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// CarouselImage is one slide of the homepage hero carousel.
type CarouselImage struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title,omitempty"`
	Subtitle   string    `json:"subtitle,omitempty"`
	ImageURL   string    `json:"image_url"`
	OrderIndex int64     `json:"order_index"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GalleryPhoto is one photo of the public gallery. Category is free text
// used for client-side filtering; there is no fixed category enum.
type GalleryPhoto struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title,omitempty"`
	Category   string    `json:"category,omitempty"`
	ImageURL   string    `json:"image_url"`
	OrderIndex int64     `json:"order_index"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// InstagramPost links out to an Instagram post, optionally with a locally
// stored preview image.
type InstagramPost struct {
	ID         int64     `json:"id"`
	PostURL    string    `json:"post_url"`
	ImageURL   string    `json:"image_url,omitempty"`
	Caption    string    `json:"caption,omitempty"`
	OrderIndex int64     `json:"order_index"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Service is one entry of the service price list. Price is unvalidated
// display text ("from $85.00"), not a number.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	OrderIndex  int64     `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SiteSetting is one entry of the sparse site-wide key/value map. Key is
// the lookup identity; callers supply defaults for absent keys.
type SiteSetting struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
