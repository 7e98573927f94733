// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/olegiv/salon-go/internal/model"
)

const galleryColumns = "id, title, category, image_url, order_index, is_active, created_at, updated_at"

func scanGalleryPhoto(row interface{ Scan(...any) error }) (model.GalleryPhoto, error) {
	var g model.GalleryPhoto
	err := row.Scan(&g.ID, &g.Title, &g.Category, &g.ImageURL, &g.OrderIndex,
		&g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

func (q *Queries) listGalleryPhotos(ctx context.Context, query string) ([]model.GalleryPhoto, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := []model.GalleryPhoto{}
	for rows.Next() {
		g, err := scanGalleryPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, g)
	}
	return photos, rows.Err()
}

// ListActiveGalleryPhotos returns active photos in display order.
func (q *Queries) ListActiveGalleryPhotos(ctx context.Context) ([]model.GalleryPhoto, error) {
	return q.listGalleryPhotos(ctx,
		"SELECT "+galleryColumns+" FROM gallery_photos WHERE is_active = 1 ORDER BY order_index ASC")
}

// ListAllGalleryPhotos returns every photo in display order.
func (q *Queries) ListAllGalleryPhotos(ctx context.Context) ([]model.GalleryPhoto, error) {
	return q.listGalleryPhotos(ctx,
		"SELECT "+galleryColumns+" FROM gallery_photos ORDER BY order_index ASC")
}

// GetGalleryPhotoByID returns one photo by primary key.
func (q *Queries) GetGalleryPhotoByID(ctx context.Context, id int64) (model.GalleryPhoto, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+galleryColumns+" FROM gallery_photos WHERE id = ?", id)
	return scanGalleryPhoto(row)
}

// CountGalleryPhotos returns the total number of photos.
func (q *Queries) CountGalleryPhotos(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM gallery_photos").Scan(&n)
	return n, err
}

// CreateGalleryPhotoParams holds the fields for creating a photo.
type CreateGalleryPhotoParams struct {
	Title      string
	Category   string
	ImageURL   string
	OrderIndex int64
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateGalleryPhoto inserts a photo and returns the stored row.
func (q *Queries) CreateGalleryPhoto(ctx context.Context, arg CreateGalleryPhotoParams) (model.GalleryPhoto, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO gallery_photos (title, category, image_url, order_index, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		arg.Title, arg.Category, arg.ImageURL, arg.OrderIndex, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return model.GalleryPhoto{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.GalleryPhoto{}, err
	}
	return q.GetGalleryPhotoByID(ctx, id)
}

// UpdateGalleryPhotoParams holds the mutable fields of a photo.
type UpdateGalleryPhotoParams struct {
	Title      string
	Category   string
	ImageURL   string
	OrderIndex int64
	IsActive   bool
	UpdatedAt  time.Time
	ID         int64
}

// UpdateGalleryPhoto writes the full mutable row. Unknown id is an error.
func (q *Queries) UpdateGalleryPhoto(ctx context.Context, arg UpdateGalleryPhotoParams) error {
	return rowsAffected(q.db.ExecContext(ctx,
		"UPDATE gallery_photos SET title = ?, category = ?, image_url = ?, order_index = ?, is_active = ?, updated_at = ? WHERE id = ?",
		arg.Title, arg.Category, arg.ImageURL, arg.OrderIndex, arg.IsActive, arg.UpdatedAt, arg.ID))
}

// DeleteGalleryPhoto removes a photo. Deleting an unknown id is an error.
func (q *Queries) DeleteGalleryPhoto(ctx context.Context, id int64) error {
	return rowsAffected(q.db.ExecContext(ctx, "DELETE FROM gallery_photos WHERE id = ?", id))
}
