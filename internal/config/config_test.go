package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipebox.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.BaseURL != defaultBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.App.BaseURL)
	}
	if cfg.App.Timeout != 0 {
		t.Fatalf("expected no timeout by default, got %s", cfg.App.Timeout)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer on by default")
	}
	if cfg.App.ExportPath != defaultExportPath {
		t.Fatalf("expected default export path, got %q", cfg.App.ExportPath)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
}

func TestLoadArgsPrecedence(t *testing.T) {
	path := writeConfig(t, `
base_url = "http://file.example"
user = "file-user"
timeout = "3s"
footer = false

[log]
file = "from-file.log"
trace = true
`)
	env := []string{
		"RECIPEBOX_CONFIG=" + path,
		"RECIPEBOX_USER=env-user",
		"RECIPEBOX_TIMEOUT=5s",
	}
	cfg, err := LoadArgs([]string{"--timeout", "7s"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.BaseURL != "http://file.example" {
		t.Fatalf("expected file base url, got %q", cfg.App.BaseURL)
	}
	if cfg.App.User != "env-user" {
		t.Fatalf("expected env to beat file, got %q", cfg.App.User)
	}
	if cfg.App.Timeout != 7*time.Second {
		t.Fatalf("expected flag to beat env, got %s", cfg.App.Timeout)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled by file")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "from-file.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.File != path {
		t.Fatalf("expected file %q recorded, got %q", path, cfg.File)
	}
}

func TestLoadArgsConfigFlag(t *testing.T) {
	path := writeConfig(t, `demo = true`)
	cfg, err := LoadArgs([]string{"--config=" + path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.Demo || !cfg.Features.Demo {
		t.Fatalf("expected demo from config file")
	}
}

func TestLoadArgsErrors(t *testing.T) {
	if _, err := LoadArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}, nil); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
	bad := writeConfig(t, `timeout = "soon"`)
	if _, err := LoadArgs([]string{"--config", bad}, nil); err == nil {
		t.Fatalf("expected error for bad timeout")
	}
	if _, err := LoadArgs([]string{"--unknown"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadArgs([]string{"--base-url", "localhost:8080"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected invalid base url to fail validation")
	}
	cfg.App.Demo = true
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected demo mode to skip base url check, got %v", err)
	}
	cfg.App.Timeout = -time.Second
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected negative timeout to fail")
	}
}
