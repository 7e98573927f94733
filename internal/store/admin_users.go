// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/salon-go/internal/model"
)

const adminUserColumns = "id, user_id, email, role, is_active, created_at, updated_at"

func scanAdminUser(row interface{ Scan(...any) error }) (model.AdminUser, error) {
	var a model.AdminUser
	err := row.Scan(&a.ID, &a.UserID, &a.Email, &a.Role, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// GetActiveAdminByUserID returns the active admin record for an identity.
// A disabled record is treated the same as an absent one: sql.ErrNoRows.
func (q *Queries) GetActiveAdminByUserID(ctx context.Context, userID int64) (model.AdminUser, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+adminUserColumns+" FROM admin_users WHERE user_id = ? AND is_active = 1", userID)
	return scanAdminUser(row)
}

// GetAdminUserByID returns an admin record by primary key, active or not.
func (q *Queries) GetAdminUserByID(ctx context.Context, id int64) (model.AdminUser, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+adminUserColumns+" FROM admin_users WHERE id = ?", id)
	return scanAdminUser(row)
}

// ListAdminUsers returns every admin record, newest first.
func (q *Queries) ListAdminUsers(ctx context.Context) ([]model.AdminUser, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+adminUserColumns+" FROM admin_users ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []model.AdminUser{}
	for rows.Next() {
		a, err := scanAdminUser(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// CreateAdminUserParams holds the fields for creating an admin record.
type CreateAdminUserParams struct {
	UserID    int64
	Email     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateAdminUser inserts an admin record and returns the stored row.
func (q *Queries) CreateAdminUser(ctx context.Context, arg CreateAdminUserParams) (model.AdminUser, error) {
	res, err := q.db.ExecContext(ctx,
		"INSERT INTO admin_users (user_id, email, role, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		arg.UserID, arg.Email, arg.Role, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return model.AdminUser{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.AdminUser{}, err
	}
	return q.GetAdminUserByID(ctx, id)
}

// UpdateAdminUserParams holds the mutable fields of an admin record.
type UpdateAdminUserParams struct {
	Role      string
	IsActive  bool
	UpdatedAt time.Time
	ID        int64
}

// UpdateAdminUser updates the role and active flag of an admin record.
func (q *Queries) UpdateAdminUser(ctx context.Context, arg UpdateAdminUserParams) error {
	return rowsAffected(q.db.ExecContext(ctx,
		"UPDATE admin_users SET role = ?, is_active = ?, updated_at = ? WHERE id = ?",
		arg.Role, arg.IsActive, arg.UpdatedAt, arg.ID))
}

// DeleteAdminUser removes an admin record.
func (q *Queries) DeleteAdminUser(ctx context.Context, id int64) error {
	return rowsAffected(q.db.ExecContext(ctx, "DELETE FROM admin_users WHERE id = ?", id))
}

// CountActiveSuperAdmins reports how many active super_admin records exist.
// Used to refuse disabling or deleting the last one.
func (q *Queries) CountActiveSuperAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM admin_users WHERE role = ? AND is_active = 1",
		model.RoleSuperAdmin).Scan(&n)
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}
	return n, nil
}
