// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/olegiv/salon-go/internal/store"
)

// The post link is mandatory; the preview image is optional and may be
// cleared again on update.
type createInstagramPostRequest struct {
	PostURL    string `json:"post_url"`
	ImageURL   string `json:"image_url"`
	Caption    string `json:"caption"`
	OrderIndex *int64 `json:"order_index,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
}

type updateInstagramPostRequest struct {
	PostURL    *string `json:"post_url,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	Caption    *string `json:"caption,omitempty"`
	OrderIndex *int64  `json:"order_index,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// ListInstagramPosts handles GET /admin/api/instagram.
func (h *ContentHandler) ListInstagramPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.queries.ListAllInstagramPosts(r.Context())
	if err != nil {
		writeStoreError(w, err, "instagram post")
		return
	}
	WriteSuccess(w, posts, &Meta{Total: int64(len(posts))})
}

// CreateInstagramPost handles POST /admin/api/instagram.
func (h *ContentHandler) CreateInstagramPost(w http.ResponseWriter, r *http.Request) {
	var req createInstagramPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.PostURL == "" {
		WriteValidationError(w, map[string]string{"post_url": "Post URL is required"})
		return
	}

	orderIndex, ok := resolveOrderIndex(w, r, req.OrderIndex, h.queries.CountInstagramPosts)
	if !ok {
		return
	}

	now := time.Now()
	post, err := h.queries.CreateInstagramPost(r.Context(), store.CreateInstagramPostParams{
		PostURL:    req.PostURL,
		ImageURL:   req.ImageURL,
		Caption:    sanitize(req.Caption),
		OrderIndex: orderIndex,
		IsActive:   boolOr(req.IsActive, true),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		writeStoreError(w, err, "instagram post")
		return
	}
	WriteCreated(w, post)
}

// UpdateInstagramPost handles PUT /admin/api/instagram/{id}.
func (h *ContentHandler) UpdateInstagramPost(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "instagram post")
	if !ok {
		return
	}
	var req updateInstagramPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.queries.GetInstagramPostByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "instagram post")
		return
	}

	applyString(&post.PostURL, req.PostURL)
	applyString(&post.ImageURL, req.ImageURL)
	applyString(&post.Caption, req.Caption)
	applyInt64(&post.OrderIndex, req.OrderIndex)
	applyBool(&post.IsActive, req.IsActive)

	if post.PostURL == "" {
		WriteValidationError(w, map[string]string{"post_url": "Post URL is required"})
		return
	}

	err = h.queries.UpdateInstagramPost(r.Context(), store.UpdateInstagramPostParams{
		PostURL:    post.PostURL,
		ImageURL:   post.ImageURL,
		Caption:    sanitize(post.Caption),
		OrderIndex: post.OrderIndex,
		IsActive:   post.IsActive,
		UpdatedAt:  time.Now(),
		ID:         id,
	})
	if err != nil {
		writeStoreError(w, err, "instagram post")
		return
	}
	WriteNoContent(w)
}

// DeleteInstagramPost handles DELETE /admin/api/instagram/{id}.
func (h *ContentHandler) DeleteInstagramPost(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r, "instagram post")
	if !ok {
		return
	}
	if err := h.queries.DeleteInstagramPost(r.Context(), id); err != nil {
		writeStoreError(w, err, "instagram post")
		return
	}
	WriteNoContent(w)
}
