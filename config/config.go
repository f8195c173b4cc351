// ABOUTME: Application configuration loading
// ABOUTME: Merges .env, environment variables and an optional YAML file
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// MapDefaults is the initial viewport of the map view.
type MapDefaults struct {
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
	Zoom int     `yaml:"zoom"`
}

type Config struct {
	APIBaseURL   string      `yaml:"api_base_url"`
	GeocoderURL  string      `yaml:"geocoder_url"`
	Map          MapDefaults `yaml:"map"`
	CachePath    string      `yaml:"cache_path"`
	LogPath      string      `yaml:"log_path"`
	LogLevel     string      `yaml:"log_level"`
	SessionPath  string      `yaml:"session_path"`
}

// Load reads configuration with env vars taking precedence over the YAML
// file at IMOVIA_CONFIG (or the XDG default location). A missing YAML file
// is fine; a missing API base URL is not.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  os.Getenv("IMOVIA_API_URL"),
		GeocoderURL: getEnv("IMOVIA_GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		Map: MapDefaults{
			// Fortaleza city center.
			Lat:  getEnvFloat("IMOVIA_MAP_LAT", -3.731862),
			Lng:  getEnvFloat("IMOVIA_MAP_LNG", -38.526670),
			Zoom: getEnvInt("IMOVIA_MAP_ZOOM", 13),
		},
		CachePath:   getEnv("IMOVIA_CACHE_PATH", filepath.Join(xdg.DataHome, "imovia", "snapshot.db")),
		LogPath:     getEnv("IMOVIA_LOG_PATH", filepath.Join(xdg.StateHome, "imovia", "imovia.log")),
		LogLevel:    getEnv("IMOVIA_LOG_LEVEL", "info"),
		SessionPath: getEnv("IMOVIA_SESSION_PATH", filepath.Join(xdg.DataHome, "imovia", "session.json")),
	}

	path := getEnv("IMOVIA_CONFIG", filepath.Join(xdg.ConfigHome, "imovia", "config.yaml"))
	if data, err := os.ReadFile(path); err == nil {
		fileCfg := &Config{}
		if err := yaml.Unmarshal(data, fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		mergeFile(cfg, fileCfg)
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("IMOVIA_API_URL is not set (and no api_base_url in config file)")
	}
	return cfg, nil
}

// mergeFile fills fields the environment left empty.
func mergeFile(cfg, file *Config) {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = file.APIBaseURL
	}
	if os.Getenv("IMOVIA_GEOCODER_URL") == "" && file.GeocoderURL != "" {
		cfg.GeocoderURL = file.GeocoderURL
	}
	if os.Getenv("IMOVIA_MAP_LAT") == "" && file.Map.Lat != 0 {
		cfg.Map.Lat = file.Map.Lat
	}
	if os.Getenv("IMOVIA_MAP_LNG") == "" && file.Map.Lng != 0 {
		cfg.Map.Lng = file.Map.Lng
	}
	if os.Getenv("IMOVIA_MAP_ZOOM") == "" && file.Map.Zoom != 0 {
		cfg.Map.Zoom = file.Map.Zoom
	}
	if os.Getenv("IMOVIA_CACHE_PATH") == "" && file.CachePath != "" {
		cfg.CachePath = file.CachePath
	}
	if os.Getenv("IMOVIA_LOG_PATH") == "" && file.LogPath != "" {
		cfg.LogPath = file.LogPath
	}
	if os.Getenv("IMOVIA_LOG_LEVEL") == "" && file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if os.Getenv("IMOVIA_SESSION_PATH") == "" && file.SessionPath != "" {
		cfg.SessionPath = file.SessionPath
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
