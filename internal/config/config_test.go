package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8501 {
		t.Errorf("expected default port 8501, got %d", cfg.Port)
	}
	if cfg.RepoRoot != "." {
		t.Errorf("expected default repo_root %q, got %q", ".", cfg.RepoRoot)
	}
	if cfg.AppDir != DefaultAppDir {
		t.Errorf("expected default app_dir %q, got %q", DefaultAppDir, cfg.AppDir)
	}
	if cfg.LogLevel != LogInfo {
		t.Errorf("expected default log_level %q, got %q", LogInfo, cfg.LogLevel)
	}
	if cfg.Watch {
		t.Error("watch should default to false")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.slidejet.yml")

	want := DefaultConfig()
	want.Port = 9000
	want.RepoRoot = "/srv/decks"
	want.AppDir = "talks"
	want.BaseURL = "https://slides.example.com/"
	want.Watch = true
	want.LogLevel = LogDebug

	if err := want.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *loaded != *want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8501 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SLIDEJET_PORT", "9100")
	t.Setenv("SLIDEJET_WATCH", "true")
	t.Setenv("SLIDEJET_APP_DIR", "decks")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9100 {
		t.Errorf("env override failed: port %d, want 9100", loaded.Port)
	}
	if !loaded.Watch {
		t.Error("env override failed: watch should be true")
	}
	if loaded.AppDir != "decks" {
		t.Errorf("env override failed: app_dir %q, want %q", loaded.AppDir, "decks")
	}
}

func TestLoadBaseURLEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yml")

	t.Setenv("BASE_URL", " https://public.example.com/hub ")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != "https://public.example.com/hub" {
		t.Errorf("BASE_URL not applied: %q", cfg.BaseURL)
	}

	// The prefixed variable takes precedence.
	t.Setenv("SLIDEJET_BASE_URL", "https://override.example.com/")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BaseURL != "https://override.example.com/" {
		t.Errorf("SLIDEJET_BASE_URL not preferred: %q", cfg.BaseURL)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("port: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero port", func(c *Config) { c.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"empty repo root", func(c *Config) { c.RepoRoot = "" }, true},
		{"empty app dir", func(c *Config) { c.AppDir = "" }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"base url ok", func(c *Config) { c.BaseURL = "https://slides.example.com/app" }, false},
		{"base url relative", func(c *Config) { c.BaseURL = "/app" }, true},
		{"base url ftp", func(c *Config) { c.BaseURL = "ftp://example.com" }, true},
		{"base url with query", func(c *Config) { c.BaseURL = "https://example.com/?a=b" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDetectAppDirs(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{
		"talks/A_SJconfig.yaml",
		"talks/B_SJconfig.yaml",
		"archive/2023/C_SJconfig.yaml",
		"talks/readme.md",
	} {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("presentation_folder: x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := detectAppDirs(root)
	if len(got) != 2 || got[0] != "talks" || got[1] != "archive/2023" {
		t.Errorf("detectAppDirs = %v, want [talks archive/2023]", got)
	}
}
