// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/olegiv/salon-go/internal/model"
)

const stylistColumns = "id, name, title, bio, image_url, instagram_handle, specialties, order_index, is_active, created_at, updated_at"

// Specialties are stored as a JSON array in a text column. SQLite has no
// native array type; decoding on read keeps the model a plain []string.
func scanStylist(row interface{ Scan(...any) error }) (model.Stylist, error) {
	var s model.Stylist
	var specialties string
	err := row.Scan(&s.ID, &s.Name, &s.Title, &s.Bio, &s.ImageURL, &s.InstagramHandle,
		&specialties, &s.OrderIndex, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return s, err
	}
	if specialties != "" && specialties != "[]" {
		if err := json.Unmarshal([]byte(specialties), &s.Specialties); err != nil {
			return s, fmt.Errorf("decoding specialties for stylist %d: %w", s.ID, err)
		}
	}
	return s, nil
}

func encodeSpecialties(list []string) (string, error) {
	if len(list) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encoding specialties: %w", err)
	}
	return string(b), nil
}

func (q *Queries) listStylists(ctx context.Context, query string) ([]model.Stylist, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stylists := []model.Stylist{}
	for rows.Next() {
		s, err := scanStylist(rows)
		if err != nil {
			return nil, err
		}
		stylists = append(stylists, s)
	}
	return stylists, rows.Err()
}

// ListActiveStylists returns active stylists in display order.
func (q *Queries) ListActiveStylists(ctx context.Context) ([]model.Stylist, error) {
	return q.listStylists(ctx,
		"SELECT "+stylistColumns+" FROM stylists WHERE is_active = 1 ORDER BY order_index ASC")
}

// ListAllStylists returns every stylist in display order.
func (q *Queries) ListAllStylists(ctx context.Context) ([]model.Stylist, error) {
	return q.listStylists(ctx,
		"SELECT "+stylistColumns+" FROM stylists ORDER BY order_index ASC")
}

// GetStylistByID returns one stylist by primary key.
func (q *Queries) GetStylistByID(ctx context.Context, id int64) (model.Stylist, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+stylistColumns+" FROM stylists WHERE id = ?", id)
	return scanStylist(row)
}

// CountStylists returns the total number of stylists.
func (q *Queries) CountStylists(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stylists").Scan(&n)
	return n, err
}

// CreateStylistParams holds the fields for creating a stylist.
type CreateStylistParams struct {
	Name            string
	Title           string
	Bio             string
	ImageURL        string
	InstagramHandle string
	Specialties     []string
	OrderIndex      int64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateStylist inserts a stylist and returns the stored row.
func (q *Queries) CreateStylist(ctx context.Context, arg CreateStylistParams) (model.Stylist, error) {
	specialties, err := encodeSpecialties(arg.Specialties)
	if err != nil {
		return model.Stylist{}, err
	}
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO stylists (name, title, bio, image_url, instagram_handle, specialties, order_index, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		arg.Name, arg.Title, arg.Bio, arg.ImageURL, arg.InstagramHandle, specialties,
		arg.OrderIndex, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return model.Stylist{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Stylist{}, err
	}
	return q.GetStylistByID(ctx, id)
}

// UpdateStylistParams holds the mutable fields of a stylist.
type UpdateStylistParams struct {
	Name            string
	Title           string
	Bio             string
	ImageURL        string
	InstagramHandle string
	Specialties     []string
	OrderIndex      int64
	IsActive        bool
	UpdatedAt       time.Time
	ID              int64
}

// UpdateStylist writes the full mutable row. Unknown id is an error.
func (q *Queries) UpdateStylist(ctx context.Context, arg UpdateStylistParams) error {
	specialties, err := encodeSpecialties(arg.Specialties)
	if err != nil {
		return err
	}
	return rowsAffected(q.db.ExecContext(ctx,
		"UPDATE stylists SET name = ?, title = ?, bio = ?, image_url = ?, instagram_handle = ?, specialties = ?, order_index = ?, is_active = ?, updated_at = ? WHERE id = ?",
		arg.Name, arg.Title, arg.Bio, arg.ImageURL, arg.InstagramHandle, specialties,
		arg.OrderIndex, arg.IsActive, arg.UpdatedAt, arg.ID))
}

// DeleteStylist removes a stylist. Deleting an unknown id is an error.
func (q *Queries) DeleteStylist(ctx context.Context, id int64) error {
	return rowsAffected(q.db.ExecContext(ctx, "DELETE FROM stylists WHERE id = ?", id))
}
