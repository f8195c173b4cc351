// ABOUTME: Tests for configuration loading
// ABOUTME: Covers env precedence, YAML merge and the required API URL
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRequiresAPIBaseURL(t *testing.T) {
	t.Setenv("IMOVIA_API_URL", "")
	t.Setenv("IMOVIA_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error when IMOVIA_API_URL is unset")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "api_base_url: http://file.example\nlog_level: debug\nmap:\n  zoom: 10\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("IMOVIA_CONFIG", path)
	t.Setenv("IMOVIA_API_URL", "http://env.example")
	t.Setenv("IMOVIA_MAP_ZOOM", "")
	t.Setenv("IMOVIA_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "http://env.example" {
		t.Errorf("env should win, got %s", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("file log level expected, got %s", cfg.LogLevel)
	}
	if cfg.Map.Zoom != 10 {
		t.Errorf("file zoom expected, got %d", cfg.Map.Zoom)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("IMOVIA_API_URL", "http://localhost:8080")
	t.Setenv("IMOVIA_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("IMOVIA_GEOCODER_URL", "")
	t.Setenv("IMOVIA_MAP_ZOOM", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GeocoderURL != "https://nominatim.openstreetmap.org" {
		t.Errorf("default geocoder expected, got %s", cfg.GeocoderURL)
	}
	if cfg.Map.Zoom != 13 {
		t.Errorf("default zoom expected, got %d", cfg.Map.Zoom)
	}
}
