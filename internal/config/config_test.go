package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Renderer != "goldmark" {
		t.Errorf("expected goldmark default, got %q", cfg.Renderer)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info default, got %q", cfg.LogLevel)
	}
	if cfg.Preview.Title == "" {
		t.Error("expected a default preview title")
	}
	if cfg.Preview.Debounce() != 200*time.Millisecond {
		t.Errorf("expected 200ms debounce, got %v", cfg.Preview.Debounce())
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Renderer != "goldmark" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdedit.toml")
	content := `
renderer = "fallback"
log_level = "debug"

[preview]
title = "Docs"
debounce_ms = 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Renderer != "fallback" {
		t.Errorf("expected fallback, got %q", cfg.Renderer)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel)
	}
	if cfg.Preview.Title != "Docs" {
		t.Errorf("expected Docs, got %q", cfg.Preview.Title)
	}
	if cfg.Preview.Debounce() != 50*time.Millisecond {
		t.Errorf("expected 50ms, got %v", cfg.Preview.Debounce())
	}
}

func TestLoadPartialTOMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdedit.toml")
	if err := os.WriteFile(path, []byte(`renderer = "fallback"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Renderer != "fallback" {
		t.Errorf("expected fallback, got %q", cfg.Renderer)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("unset key should keep default, got %q", cfg.LogLevel)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdedit.toml")
	if err := os.WriteFile(path, []byte(`renderer = [broken`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected ParseError, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MDEDIT_RENDERER", "fallback")
	t.Setenv("MDEDIT_LOG_LEVEL", "error")
	t.Setenv("MDEDIT_PREVIEW_TITLE", "Overridden")
	t.Setenv("MDEDIT_DEBOUNCE_MS", "500")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Renderer != "fallback" || cfg.LogLevel != "error" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if cfg.Preview.Title != "Overridden" {
		t.Errorf("expected Overridden, got %q", cfg.Preview.Title)
	}
	if cfg.Preview.DebounceMillis != 500 {
		t.Errorf("expected 500, got %d", cfg.Preview.DebounceMillis)
	}
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdedit.toml")
	if err := os.WriteFile(path, []byte(`renderer = "goldmark"`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MDEDIT_RENDERER", "fallback")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Renderer != "fallback" {
		t.Errorf("env should override file, got %q", cfg.Renderer)
	}
}

func TestNegativeDebounceRejected(t *testing.T) {
	t.Setenv("MDEDIT_DEBOUNCE_MS", "-1")

	if _, err := Load(""); err == nil {
		t.Error("expected an error for negative debounce")
	}
}
