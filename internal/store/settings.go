// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/olegiv/salon-go/internal/model"
)

const settingColumns = "id, key, value, updated_at"

func scanSetting(row interface{ Scan(...any) error }) (model.SiteSetting, error) {
	var s model.SiteSetting
	err := row.Scan(&s.ID, &s.Key, &s.Value, &s.UpdatedAt)
	return s, err
}

// ListSettings returns every setting ordered by key.
func (q *Queries) ListSettings(ctx context.Context) ([]model.SiteSetting, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+settingColumns+" FROM site_settings ORDER BY key ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := []model.SiteSetting{}
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// GetSetting returns one setting by key. Absent keys return sql.ErrNoRows;
// the caller supplies its own default.
func (q *Queries) GetSetting(ctx context.Context, key string) (model.SiteSetting, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+settingColumns+" FROM site_settings WHERE key = ?", key)
	return scanSetting(row)
}

// GetSettingOr returns the value for a key, or the given default when the
// key is absent. Store errors other than absence are still returned.
func (q *Queries) GetSettingOr(ctx context.Context, key, def string) (string, error) {
	s, err := q.GetSetting(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return "", err
	}
	return s.Value, nil
}

// UpsertSettingParams holds the fields for an insert-or-update by key.
type UpsertSettingParams struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// UpsertSetting inserts a setting or updates the existing row with the same
// key. No duplicate keys can ever exist; the key column is UNIQUE.
func (q *Queries) UpsertSetting(ctx context.Context, arg UpsertSettingParams) error {
	_, err := q.db.ExecContext(ctx,
		"INSERT INTO site_settings (key, value, updated_at) VALUES (?, ?, ?) "+
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		arg.Key, arg.Value, arg.UpdatedAt)
	return err
}

// DeleteSetting removes a setting by key. Deleting an unknown key is an error.
func (q *Queries) DeleteSetting(ctx context.Context, key string) error {
	return rowsAffected(q.db.ExecContext(ctx, "DELETE FROM site_settings WHERE key = ?", key))
}
