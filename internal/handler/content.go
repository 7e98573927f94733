// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"

	"github.com/olegiv/salon-go/internal/store"
)

// ContentHandler serves the admin CRUD endpoints for the salon content
// collections. Admin list endpoints are unfiltered so inactive rows remain
// editable; creation appends at the end of the display order unless the
// request names an explicit order_index. The server keeps no state between
// calls: after a mutation the client re-fetches the collection.
type ContentHandler struct {
	queries *store.Queries
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(db *sql.DB) *ContentHandler {
	return &ContentHandler{queries: store.New(db)}
}
