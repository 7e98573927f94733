// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/olegiv/salon-go/internal/model"
)

const carouselColumns = "id, title, subtitle, image_url, order_index, is_active, created_at, updated_at"

func scanCarouselImage(row interface{ Scan(...any) error }) (model.CarouselImage, error) {
	var c model.CarouselImage
	err := row.Scan(&c.ID, &c.Title, &c.Subtitle, &c.ImageURL, &c.OrderIndex,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (q *Queries) listCarouselImages(ctx context.Context, query string) ([]model.CarouselImage, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []model.CarouselImage{}
	for rows.Next() {
		c, err := scanCarouselImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, c)
	}
	return images, rows.Err()
}

// ListActiveCarouselImages returns active slides in display order.
func (q *Queries) ListActiveCarouselImages(ctx context.Context) ([]model.CarouselImage, error) {
	return q.listCarouselImages(ctx,
		"SELECT "+carouselColumns+" FROM carousel_images WHERE is_active = 1 ORDER BY order_index ASC")
}

// ListAllCarouselImages returns every slide, inactive ones included, in
// display order. Used by the admin panel so inactive rows stay editable.
func (q *Queries) ListAllCarouselImages(ctx context.Context) ([]model.CarouselImage, error) {
	return q.listCarouselImages(ctx,
		"SELECT "+carouselColumns+" FROM carousel_images ORDER BY order_index ASC")
}

// GetCarouselImageByID returns one slide by primary key.
func (q *Queries) GetCarouselImageByID(ctx context.Context, id int64) (model.CarouselImage, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+carouselColumns+" FROM carousel_images WHERE id = ?", id)
	return scanCarouselImage(row)
}

// CountCarouselImages returns the total number of slides.
func (q *Queries) CountCarouselImages(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM carousel_images").Scan(&n)
	return n, err
}

// CreateCarouselImageParams holds the fields for creating a slide.
type CreateCarouselImageParams struct {
	Title      string
	Subtitle   string
	ImageURL   string
	OrderIndex int64
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateCarouselImage inserts a slide and returns the stored row.
func (q *Queries) CreateCarouselImage(ctx context.Context, arg CreateCarouselImageParams) (model.CarouselImage, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO carousel_images (title, subtitle, image_url, order_index, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		arg.Title, arg.Subtitle, arg.ImageURL, arg.OrderIndex, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return model.CarouselImage{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.CarouselImage{}, err
	}
	return q.GetCarouselImageByID(ctx, id)
}

// UpdateCarouselImageParams holds the mutable fields of a slide.
type UpdateCarouselImageParams struct {
	Title      string
	Subtitle   string
	ImageURL   string
	OrderIndex int64
	IsActive   bool
	UpdatedAt  time.Time
	ID         int64
}

// UpdateCarouselImage writes the full mutable row. Unknown id is an error.
func (q *Queries) UpdateCarouselImage(ctx context.Context, arg UpdateCarouselImageParams) error {
	return rowsAffected(q.db.ExecContext(ctx,
		"UPDATE carousel_images SET title = ?, subtitle = ?, image_url = ?, order_index = ?, is_active = ?, updated_at = ? WHERE id = ?",
		arg.Title, arg.Subtitle, arg.ImageURL, arg.OrderIndex, arg.IsActive, arg.UpdatedAt, arg.ID))
}

// DeleteCarouselImage removes a slide. Deleting an unknown id is an error.
func (q *Queries) DeleteCarouselImage(ctx context.Context, id int64) error {
	return rowsAffected(q.db.ExecContext(ctx, "DELETE FROM carousel_images WHERE id = ?", id))
}
