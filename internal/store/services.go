// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/olegiv/salon-go/internal/model"
)

const serviceColumns = "id, name, description, price, image_url, order_index, is_active, created_at, updated_at"

func scanService(row interface{ Scan(...any) error }) (model.Service, error) {
	var s model.Service
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.ImageURL,
		&s.OrderIndex, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (q *Queries) listServices(ctx context.Context, query string) ([]model.Service, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []model.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// ListActiveServices returns active services in display order.
func (q *Queries) ListActiveServices(ctx context.Context) ([]model.Service, error) {
	return q.listServices(ctx,
		"SELECT "+serviceColumns+" FROM services WHERE is_active = 1 ORDER BY order_index ASC")
}

// ListAllServices returns every service in display order.
func (q *Queries) ListAllServices(ctx context.Context) ([]model.Service, error) {
	return q.listServices(ctx,
		"SELECT "+serviceColumns+" FROM services ORDER BY order_index ASC")
}

// GetServiceByID returns one service by primary key.
func (q *Queries) GetServiceByID(ctx context.Context, id int64) (model.Service, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+serviceColumns+" FROM services WHERE id = ?", id)
	return scanService(row)
}

// CountServices returns the total number of services.
func (q *Queries) CountServices(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM services").Scan(&n)
	return n, err
}

// CreateServiceParams holds the fields for creating a service.
type CreateServiceParams struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	OrderIndex  int64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateService inserts a service and returns the stored row.
func (q *Queries) CreateService(ctx context.Context, arg CreateServiceParams) (model.Service, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO services (name, description, price, image_url, order_index, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		arg.Name, arg.Description, arg.Price, arg.ImageURL, arg.OrderIndex, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return model.Service{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Service{}, err
	}
	return q.GetServiceByID(ctx, id)
}

// UpdateServiceParams holds the mutable fields of a service.
type UpdateServiceParams struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	OrderIndex  int64
	IsActive    bool
	UpdatedAt   time.Time
	ID          int64
}

// UpdateService writes the full mutable row. Unknown id is an error.
func (q *Queries) UpdateService(ctx context.Context, arg UpdateServiceParams) error {
	return rowsAffected(q.db.ExecContext(ctx,
		"UPDATE services SET name = ?, description = ?, price = ?, image_url = ?, order_index = ?, is_active = ?, updated_at = ? WHERE id = ?",
		arg.Name, arg.Description, arg.Price, arg.ImageURL, arg.OrderIndex, arg.IsActive, arg.UpdatedAt, arg.ID))
}

// DeleteService removes a service. Deleting an unknown id is an error.
func (q *Queries) DeleteService(ctx context.Context, id int64) error {
	return rowsAffected(q.db.ExecContext(ctx, "DELETE FROM services WHERE id = ?", id))
}
