package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("game:\n  window_width: 1024\n  seed: 42\nweb:\n  serve_addr: localhost:9999\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.WindowWidth != 1024 {
		t.Fatalf("WindowWidth = %d, want 1024", cfg.Game.WindowWidth)
	}
	if cfg.Game.Seed != 42 {
		t.Fatalf("Seed = %d, want 42", cfg.Game.Seed)
	}
	if cfg.Web.ServeAddr != "localhost:9999" {
		t.Fatalf("ServeAddr = %q", cfg.Web.ServeAddr)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEmbeddedDefaultsMatchFallback(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Whatever source wins, the essentials must be populated.
	if cfg.Game.WindowWidth <= 0 || cfg.Game.WindowHeight <= 0 {
		t.Fatalf("window size unset: %dx%d", cfg.Game.WindowWidth, cfg.Game.WindowHeight)
	}
	if cfg.Web.WebDir == "" || cfg.Web.BuildPackage == "" {
		t.Fatalf("web section unset: %+v", cfg.Web)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Game.ViewportScale != 6.0 {
		t.Fatalf("ViewportScale = %v, want 6.0", cfg.Game.ViewportScale)
	}
	if len(cfg.Web.LoaderURLs) == 0 {
		t.Fatal("no default loader URLs")
	}
}
