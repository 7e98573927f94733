// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/salon-go/internal/auth"
	"github.com/olegiv/salon-go/internal/middleware"
	"github.com/olegiv/salon-go/internal/model"
	"github.com/olegiv/salon-go/internal/service"
	"github.com/olegiv/salon-go/internal/session"
	"github.com/olegiv/salon-go/internal/store"
	"github.com/olegiv/salon-go/internal/testutil"
)

// testEnv runs the full API over a temp database, with a cookie-jar client
// so session state carries across requests like a browser.
type testEnv struct {
	t       *testing.T
	db      *sql.DB
	queries *store.Queries
	srv     *httptest.Server
	client  *http.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	sm := session.New(db, true)
	gate := auth.NewGate(store.New(db), sm)
	uploader := service.NewUploader(service.NewDiskStore(t.TempDir(), "/uploads"))

	publicHandler := NewPublicHandler(db)
	contentHandler := NewContentHandler(db)
	adminUserHandler := NewAdminUserHandler(db)
	authHandler := NewAuthHandler(gate)
	uploadHandler := NewUploadHandler(uploader)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/carousel", publicHandler.Carousel)
		r.Get("/gallery", publicHandler.Gallery)
		r.Get("/instagram", publicHandler.Instagram)
		r.Get("/services", publicHandler.Services)
		r.Get("/stylists", publicHandler.Stylists)
		r.Get("/settings", publicHandler.Settings)
	})

	r.Route("/admin/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/session", authHandler.Session)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(gate))

			r.Get("/carousel", contentHandler.ListCarouselImages)
			r.Post("/carousel", contentHandler.CreateCarouselImage)
			r.Put("/carousel/{id}", contentHandler.UpdateCarouselImage)
			r.Delete("/carousel/{id}", contentHandler.DeleteCarouselImage)

			r.Get("/gallery", contentHandler.ListGalleryPhotos)
			r.Post("/gallery", contentHandler.CreateGalleryPhoto)
			r.Put("/gallery/{id}", contentHandler.UpdateGalleryPhoto)
			r.Delete("/gallery/{id}", contentHandler.DeleteGalleryPhoto)

			r.Get("/instagram", contentHandler.ListInstagramPosts)
			r.Post("/instagram", contentHandler.CreateInstagramPost)
			r.Put("/instagram/{id}", contentHandler.UpdateInstagramPost)
			r.Delete("/instagram/{id}", contentHandler.DeleteInstagramPost)

			r.Get("/services", contentHandler.ListServices)
			r.Post("/services", contentHandler.CreateService)
			r.Put("/services/{id}", contentHandler.UpdateService)
			r.Delete("/services/{id}", contentHandler.DeleteService)

			r.Get("/stylists", contentHandler.ListStylists)
			r.Post("/stylists", contentHandler.CreateStylist)
			r.Put("/stylists/{id}", contentHandler.UpdateStylist)
			r.Delete("/stylists/{id}", contentHandler.DeleteStylist)

			r.Get("/settings", contentHandler.ListSettings)
			r.Put("/settings/{key}", contentHandler.UpsertSetting)
			r.Delete("/settings/{key}", contentHandler.DeleteSetting)

			r.Post("/uploads/{folder}", uploadHandler.Upload)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin())
				r.Get("/admin-users", adminUserHandler.List)
				r.Post("/admin-users", adminUserHandler.Create)
				r.Put("/admin-users/{id}", adminUserHandler.Update)
				r.Delete("/admin-users/{id}", adminUserHandler.Delete)
			})
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}

	return &testEnv{
		t:       t,
		db:      db,
		queries: store.New(db),
		srv:     srv,
		client:  &http.Client{Jar: jar},
	}
}

// newTestEnvClient returns a second client against the same server with its
// own cookie jar, simulating another browser.
func newTestEnvClient(env *testEnv) *testEnv {
	env.t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		env.t.Fatalf("cookiejar: %v", err)
	}
	clone := *env
	clone.client = &http.Client{Jar: jar}
	return &clone
}

// createAccount provisions an identity and, unless role is empty, an admin
// record for it.
func (e *testEnv) createAccount(email, password, role string, active bool) {
	e.t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		e.t.Fatalf("HashPassword: %v", err)
	}

	now := time.Now()
	user, err := e.queries.CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		e.t.Fatalf("CreateUser: %v", err)
	}

	if role == "" {
		return
	}
	_, err = e.queries.CreateAdminUser(context.Background(), store.CreateAdminUserParams{
		UserID:    user.ID,
		Email:     email,
		Role:      role,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		e.t.Fatalf("CreateAdminUser: %v", err)
	}
}

// do sends a JSON request and decodes the response body into a generic map.
func (e *testEnv) do(method, path string, body any) (int, map[string]any) {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			e.t.Fatalf("marshaling request: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, e.srv.URL+path, reader)
	if err != nil {
		e.t.Fatalf("building request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.client.Do(req)
	if err != nil {
		e.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		e.t.Fatalf("reading response: %v", err)
	}

	var decoded map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			e.t.Fatalf("decoding response %q: %v", raw, err)
		}
	}
	return resp.StatusCode, decoded
}

// login signs the client in and fails the test on anything but success.
func (e *testEnv) login(email, password string) {
	e.t.Helper()
	status, body := e.do(http.MethodPost, "/admin/api/login",
		map[string]string{"email": email, "password": password})
	if status != http.StatusOK {
		e.t.Fatalf("login status = %d, body = %v", status, body)
	}
}

// loginAsAdmin creates and signs in a regular admin.
func (e *testEnv) loginAsAdmin() {
	e.t.Helper()
	e.createAccount("admin@salon.test", "topsecret123", model.RoleAdmin, true)
	e.login("admin@salon.test", "topsecret123")
}

// loginAsSuperAdmin creates and signs in a super admin.
func (e *testEnv) loginAsSuperAdmin() {
	e.t.Helper()
	e.createAccount("owner@salon.test", "topsecret123", model.RoleSuperAdmin, true)
	e.login("owner@salon.test", "topsecret123")
}

// errorCode digs the error code out of a decoded error response.
func errorCode(body map[string]any) string {
	errObj, _ := body["error"].(map[string]any)
	code, _ := errObj["code"].(string)
	return code
}

// dataMap digs the data object out of a decoded success response.
func dataMap(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", body)
	}
	return data
}

// dataList digs the data array out of a decoded success response.
func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("response has no data array: %v", body)
	}
	return data
}
