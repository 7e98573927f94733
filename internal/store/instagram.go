// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/olegiv/salon-go/internal/model"
)

const instagramColumns = "id, post_url, image_url, caption, order_index, is_active, created_at, updated_at"

func scanInstagramPost(row interface{ Scan(...any) error }) (model.InstagramPost, error) {
	var p model.InstagramPost
	err := row.Scan(&p.ID, &p.PostURL, &p.ImageURL, &p.Caption, &p.OrderIndex,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (q *Queries) listInstagramPosts(ctx context.Context, query string) ([]model.InstagramPost, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.InstagramPost{}
	for rows.Next() {
		p, err := scanInstagramPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ListActiveInstagramPosts returns active posts in display order.
func (q *Queries) ListActiveInstagramPosts(ctx context.Context) ([]model.InstagramPost, error) {
	return q.listInstagramPosts(ctx,
		"SELECT "+instagramColumns+" FROM instagram_posts WHERE is_active = 1 ORDER BY order_index ASC")
}

// ListAllInstagramPosts returns every post in display order.
func (q *Queries) ListAllInstagramPosts(ctx context.Context) ([]model.InstagramPost, error) {
	return q.listInstagramPosts(ctx,
		"SELECT "+instagramColumns+" FROM instagram_posts ORDER BY order_index ASC")
}

// GetInstagramPostByID returns one post by primary key.
func (q *Queries) GetInstagramPostByID(ctx context.Context, id int64) (model.InstagramPost, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+instagramColumns+" FROM instagram_posts WHERE id = ?", id)
	return scanInstagramPost(row)
}

// CountInstagramPosts returns the total number of posts.
func (q *Queries) CountInstagramPosts(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM instagram_posts").Scan(&n)
	return n, err
}

// CreateInstagramPostParams holds the fields for creating a post link.
type CreateInstagramPostParams struct {
	PostURL    string
	ImageURL   string
	Caption    string
	OrderIndex int64
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateInstagramPost inserts a post link and returns the stored row.
func (q *Queries) CreateInstagramPost(ctx context.Context, arg CreateInstagramPostParams) (model.InstagramPost, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO instagram_posts (post_url, image_url, caption, order_index, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		arg.PostURL, arg.ImageURL, arg.Caption, arg.OrderIndex, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return model.InstagramPost{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.InstagramPost{}, err
	}
	return q.GetInstagramPostByID(ctx, id)
}

// UpdateInstagramPostParams holds the mutable fields of a post link.
type UpdateInstagramPostParams struct {
	PostURL    string
	ImageURL   string
	Caption    string
	OrderIndex int64
	IsActive   bool
	UpdatedAt  time.Time
	ID         int64
}

// UpdateInstagramPost writes the full mutable row. Unknown id is an error.
func (q *Queries) UpdateInstagramPost(ctx context.Context, arg UpdateInstagramPostParams) error {
	return rowsAffected(q.db.ExecContext(ctx,
		"UPDATE instagram_posts SET post_url = ?, image_url = ?, caption = ?, order_index = ?, is_active = ?, updated_at = ? WHERE id = ?",
		arg.PostURL, arg.ImageURL, arg.Caption, arg.OrderIndex, arg.IsActive, arg.UpdatedAt, arg.ID))
}

// DeleteInstagramPost removes a post link. Deleting an unknown id is an error.
func (q *Queries) DeleteInstagramPost(ctx context.Context, id int64) error {
	return rowsAffected(q.db.ExecContext(ctx, "DELETE FROM instagram_posts WHERE id = ?", id))
}
