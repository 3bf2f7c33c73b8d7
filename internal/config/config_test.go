package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load with missing file: %v", err)
	}

	if !cfg.Saving.SaveOnClose {
		t.Fatal("save_on_close should default to true")
	}
	if cfg.Saving.AutosaveMinutes != 10 {
		t.Fatalf("autosave_minutes default = %d, want 10", cfg.Saving.AutosaveMinutes)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("logging level default = %q", cfg.Logging.Level)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := "saving:\n  save_on_close: false\n  autosave_minutes: 3\nlogging:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Saving.SaveOnClose {
		t.Fatal("save_on_close should be false")
	}
	if cfg.Saving.AutosaveMinutes != 3 {
		t.Fatalf("autosave_minutes = %d, want 3", cfg.Saving.AutosaveMinutes)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("saving: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestNormalize_Clamps(t *testing.T) {
	cfg := Config{
		Saving: SavingConfig{AutosaveMinutes: 0},
		Window: WindowConfig{Width: 10, Height: 10},
	}

	norm := cfg.Normalize()
	if norm.Saving.AutosaveMinutes != 1 {
		t.Fatalf("autosave minutes clamped to %d, want 1", norm.Saving.AutosaveMinutes)
	}
	if norm.Window.Width != 400 || norm.Window.Height != 300 {
		t.Fatalf("window clamped to %dx%d", norm.Window.Width, norm.Window.Height)
	}
	if norm.Logging.Level != "info" {
		t.Fatalf("empty level normalized to %q", norm.Logging.Level)
	}
}
