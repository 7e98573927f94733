// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"strings"
	"testing"
)

const testSecret = "0123456789abcdef0123456789abcdef" // 32 bytes

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SALON_SESSION_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "./data/salon.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
	if cfg.DoSeed {
		t.Error("seeding must be opt-in")
	}
	if got := cfg.AllowedOrigins(); len(got) != 1 || got[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", got)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SALON_SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an empty session secret")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("SALON_SESSION_SECRET", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("Load accepted a short session secret")
	}
	if !strings.Contains(err.Error(), "SALON_SESSION_SECRET") {
		t.Errorf("error does not name the variable: %v", err)
	}
}

func TestAllowedOrigins_Parsing(t *testing.T) {
	t.Setenv("SALON_SESSION_SECRET", testSecret)
	t.Setenv("SALON_CORS_ORIGINS", "https://salon.example, https://www.salon.example ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := cfg.AllowedOrigins()
	want := []string{"https://salon.example", "https://www.salon.example"}
	if len(got) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("origin[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoad_ProductionEnv(t *testing.T) {
	t.Setenv("SALON_SESSION_SECRET", testSecret)
	t.Setenv("SALON_ENV", "production")
	t.Setenv("SALON_SERVER_HOST", "0.0.0.0")
	t.Setenv("SALON_SERVER_PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
	if cfg.ServerAddr() != "0.0.0.0:9000" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
}
