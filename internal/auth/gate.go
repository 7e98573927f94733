// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/salon-go/internal/model"
)

// SessionKeyUserID is the session key for storing the authenticated user ID.
const SessionKeyUserID = "user_id"

var (
	// ErrInvalidCredentials is returned when the email/password exchange
	// fails. It carries no hint about which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccessDenied is returned when credentials are valid but no active
	// admin record exists for the identity. By the time the caller sees it,
	// the session created during the credential exchange has been destroyed.
	ErrAccessDenied = errors.New("access denied: admin privileges required")
)

// Accounts is the subset of the store the gate needs: identity lookup for
// the credential exchange and the active-admin check for authorization.
type Accounts interface {
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetActiveAdminByUserID(ctx context.Context, userID int64) (model.AdminUser, error)
}

// Gate decides whether the current caller may operate the admin panel.
// A valid credential alone is insufficient: panel access additionally
// requires an active admin_users record for the identity.
type Gate struct {
	queries  Accounts
	sessions *scs.SessionManager
}

// NewGate creates a Gate over the given account store and session manager.
func NewGate(queries Accounts, sessions *scs.SessionManager) *Gate {
	return &Gate{
		queries:  queries,
		sessions: sessions,
	}
}

// SignIn exchanges credentials for an authorized admin session.
//
// The credential exchange happens first; only then is the admin record
// checked. When the record is missing or inactive, the just-established
// session is destroyed before returning, so no partially-authorized session
// ever persists.
func (g *Gate) SignIn(ctx context.Context, email, password string) (model.AdminUser, error) {
	user, err := g.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			slog.Debug("sign-in attempt for unknown email", "email", email)
			return model.AdminUser{}, ErrInvalidCredentials
		}
		return model.AdminUser{}, fmt.Errorf("looking up user: %w", err)
	}

	valid, err := CheckPassword(password, user.PasswordHash)
	if err != nil {
		return model.AdminUser{}, fmt.Errorf("checking password: %w", err)
	}
	if !valid {
		slog.Debug("invalid password attempt", "email", email)
		return model.AdminUser{}, ErrInvalidCredentials
	}

	// Regenerate the session ID to prevent session fixation, then bind the
	// identity to the session.
	if err := g.sessions.RenewToken(ctx); err != nil {
		return model.AdminUser{}, fmt.Errorf("renewing session token: %w", err)
	}
	g.sessions.Put(ctx, SessionKeyUserID, user.ID)

	admin, err := g.queries.GetActiveAdminByUserID(ctx, user.ID)
	if err != nil {
		// Valid credentials without an active admin record: undo the
		// session before reporting, so the client is never left
		// half-authenticated.
		if destroyErr := g.sessions.Destroy(ctx); destroyErr != nil {
			slog.Error("destroying session after denied sign-in", "error", destroyErr)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("admin lookup failed during sign-in", "error", err, "user_id", user.ID)
		}
		slog.Warn("sign-in denied: no active admin record", "user_id", user.ID, "email", email)
		return model.AdminUser{}, ErrAccessDenied
	}

	slog.Info("admin signed in", "admin_id", admin.ID, "email", admin.Email, "role", admin.Role)
	return admin, nil
}

// CurrentAdmin is the read-only session probe. It reports the active admin
// for the current session, or ok=false when the session is absent or the
// identity no longer has an active admin record. It never mutates state.
func (g *Gate) CurrentAdmin(ctx context.Context) (model.AdminUser, bool, error) {
	userID := g.sessions.GetInt64(ctx, SessionKeyUserID)
	if userID == 0 {
		return model.AdminUser{}, false, nil
	}

	admin, err := g.queries.GetActiveAdminByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AdminUser{}, false, nil
		}
		return model.AdminUser{}, false, fmt.Errorf("looking up admin: %w", err)
	}
	return admin, true, nil
}

// SignOut clears the session unconditionally. Calling it without a session
// is a no-op; the caller always ends up unauthenticated.
func (g *Gate) SignOut(ctx context.Context) {
	userID := g.sessions.GetInt64(ctx, SessionKeyUserID)
	if err := g.sessions.Destroy(ctx); err != nil {
		slog.Error("session destroy error", "error", err)
		return
	}
	if userID != 0 {
		slog.Info("admin signed out", "user_id", userID)
	}
}
