// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command salon runs the salon site API: the public content endpoints the
// marketing site reads and the session-protected admin panel API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/salon-go/internal/auth"
	"github.com/olegiv/salon-go/internal/config"
	"github.com/olegiv/salon-go/internal/handler"
	"github.com/olegiv/salon-go/internal/middleware"
	"github.com/olegiv/salon-go/internal/service"
	"github.com/olegiv/salon-go/internal/session"
	"github.com/olegiv/salon-go/internal/store"
	"github.com/olegiv/salon-go/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("salon %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("starting salon", "version", versionInfo.Version, "env", cfg.Env)

	// Database
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}()

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	slog.Info("database ready")

	if err := store.Seed(context.Background(), db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	// Sessions and auth
	sessionManager := session.New(db, cfg.IsDevelopment())
	gate := auth.NewGate(store.New(db), sessionManager)
	slog.Info("session manager initialized")

	// Uploads
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}
	uploader := service.NewUploader(service.NewDiskStore(cfg.UploadsDir, "/uploads"))

	// Handlers
	publicHandler := handler.NewPublicHandler(db)
	contentHandler := handler.NewContentHandler(db)
	adminUserHandler := handler.NewAdminUserHandler(db)
	authHandler := handler.NewAuthHandler(gate)
	uploadHandler := handler.NewUploadHandler(uploader)

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(sessionManager.LoadAndSave)

	r.Get("/healthz", publicHandler.Health)

	// Public JSON API read by the marketing site
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CORS(cfg.AllowedOrigins()))
		r.Get("/carousel", publicHandler.Carousel)
		r.Get("/gallery", publicHandler.Gallery)
		r.Get("/instagram", publicHandler.Instagram)
		r.Get("/services", publicHandler.Services)
		r.Get("/stylists", publicHandler.Stylists)
		r.Get("/settings", publicHandler.Settings)
	})

	csrfProtect := middleware.CSRF(middleware.DefaultCSRFConfig(
		[]byte(cfg.SessionSecret)[:32], cfg.IsDevelopment()))

	// Admin panel API
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(csrfProtect)

		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/session", authHandler.Session)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(gate))

			registerCRUD(r, "/carousel", crudHandlers{
				List:   contentHandler.ListCarouselImages,
				Create: contentHandler.CreateCarouselImage,
				Update: contentHandler.UpdateCarouselImage,
				Delete: contentHandler.DeleteCarouselImage,
			})
			registerCRUD(r, "/gallery", crudHandlers{
				List:   contentHandler.ListGalleryPhotos,
				Create: contentHandler.CreateGalleryPhoto,
				Update: contentHandler.UpdateGalleryPhoto,
				Delete: contentHandler.DeleteGalleryPhoto,
			})
			registerCRUD(r, "/instagram", crudHandlers{
				List:   contentHandler.ListInstagramPosts,
				Create: contentHandler.CreateInstagramPost,
				Update: contentHandler.UpdateInstagramPost,
				Delete: contentHandler.DeleteInstagramPost,
			})
			registerCRUD(r, "/services", crudHandlers{
				List:   contentHandler.ListServices,
				Create: contentHandler.CreateService,
				Update: contentHandler.UpdateService,
				Delete: contentHandler.DeleteService,
			})
			registerCRUD(r, "/stylists", crudHandlers{
				List:   contentHandler.ListStylists,
				Create: contentHandler.CreateStylist,
				Update: contentHandler.UpdateStylist,
				Delete: contentHandler.DeleteStylist,
			})

			r.Get("/settings", contentHandler.ListSettings)
			r.Put("/settings/{key}", contentHandler.UpsertSetting)
			r.Delete("/settings/{key}", contentHandler.DeleteSetting)

			r.Post("/uploads/{folder}", uploadHandler.Upload)

			// Account management is super-admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSuperAdmin())
				r.Get("/admin-users", adminUserHandler.List)
				r.Post("/admin-users", adminUserHandler.Create)
				r.Put("/admin-users/{id}", adminUserHandler.Update)
				r.Delete("/admin-users/{id}", adminUserHandler.Delete)
			})
		})
	})

	// Uploaded images are served directly from disk
	uploadsDir, err := filepath.Abs(cfg.UploadsDir)
	if err != nil {
		return fmt.Errorf("resolving uploads directory: %w", err)
	}
	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(uploadsDir))))

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Longer to allow for large uploads
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// crudHandlers defines the standard CRUD handler methods for a collection.
type crudHandlers struct {
	List   http.HandlerFunc
	Create http.HandlerFunc
	Update http.HandlerFunc
	Delete http.HandlerFunc
}

// registerCRUD registers standard CRUD routes for a collection.
// Routes: GET /, POST /, PUT /{id}, DELETE /{id}
func registerCRUD(r chi.Router, base string, h crudHandlers) {
	r.Get(base, h.List)
	r.Post(base, h.Create)
	r.Put(base+"/{id}", h.Update)
	r.Delete(base+"/{id}", h.Delete)
}
