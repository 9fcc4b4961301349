// Package config resolves the store directory and the image-generation API
// credential from env, with optional .env files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const appName = "fixgalleria"

// Config holds resolved runtime settings.
type Config struct {
	// APIKey is the image-generation API credential. Empty means image
	// generation is unavailable; the task list works regardless.
	APIKey string

	// APIBase overrides the image-generation endpoint (tests, proxies).
	APIBase string

	// Dir overrides store-dir resolution when set.
	Dir string
}

// Load reads .env from the cwd and the config dir (first hit wins per key,
// real env vars always win over .env files), then resolves settings.
func Load() *Config {
	// godotenv.Load never overrides variables that are already set.
	_ = godotenv.Load()
	if dir := DefaultConfigDir(); dir != "" {
		_ = godotenv.Load(filepath.Join(dir, ".env"))
	}

	return &Config{
		APIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		APIBase: strings.TrimSpace(os.Getenv("FIXGALLERIA_API_BASE")),
		Dir:     strings.TrimSpace(os.Getenv("FIXGALLERIA_DIR")),
	}
}

// DefaultConfigDir returns XDG_CONFIG_HOME/fixgalleria, else
// $HOME/.config/fixgalleria.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}
