/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package config provides configuration loading and dataset path discovery for trackview.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	// AppName is the application identifier.
	AppName = "trackview"

	// DefaultDataDir is the system-wide dataset directory.
	DefaultDataDir = "/usr/share/trackview"

	// DatasetFileExtension is the expected extension for dataset files.
	DatasetFileExtension = ".json"
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	// EnvDataDir overrides the default data directory.
	EnvDataDir = "TRACKVIEW_DATA_DIR"

	// EnvXDGDataHome is the XDG data home environment variable.
	EnvXDGDataHome = "XDG_DATA_HOME"
)

// -----------------------------------------------------------------------------
// Runtime Configuration
// -----------------------------------------------------------------------------

// Config holds settings read from the environment (and an optional .env file).
type Config struct {
	DataDir   string `env:"TRACKVIEW_DATA_DIR"`
	LogLevel  string `env:"TRACKVIEW_LOG_LEVEL" default:"info"`
	LogFormat string `env:"TRACKVIEW_LOG_FORMAT" default:"text"`
	LogFile   string `env:"TRACKVIEW_LOG_FILE"`

	// ZoomFactor is how much one zoom key press narrows or widens the window.
	ZoomFactor float64 `env:"TRACKVIEW_ZOOM_FACTOR" default:"2"`
	// PanFraction is the share of the visible window moved by one pan key press.
	PanFraction float64 `env:"TRACKVIEW_PAN_FRACTION" default:"0.25"`
}

// Load reads .env (if present) and the environment into a validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("TRACKVIEW_LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	if cfg.ZoomFactor <= 1 {
		return errors.New("TRACKVIEW_ZOOM_FACTOR must be greater than 1")
	}

	if cfg.PanFraction <= 0 || cfg.PanFraction > 1 {
		return errors.New("TRACKVIEW_PAN_FRACTION must be in (0, 1]")
	}

	return nil
}

// -----------------------------------------------------------------------------
// Path Resolution
// -----------------------------------------------------------------------------

// GetDataPaths returns an ordered list of directories to search for datasets.
// Priority order:
//  1. dataDir (usually $TRACKVIEW_DATA_DIR, if set)
//  2. $XDG_DATA_HOME/trackview (or ~/.local/share/trackview)
//  3. /usr/share/trackview (system default)
func GetDataPaths(dataDir string) []string {
	var paths []string

	// Priority 1: Explicit override
	if dataDir != "" {
		paths = append(paths, dataDir)
	}

	// Priority 2: XDG Data Home
	xdgDataHome := os.Getenv(EnvXDGDataHome)
	if xdgDataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			xdgDataHome = filepath.Join(home, ".local", "share")
		}
	}
	if xdgDataHome != "" {
		paths = append(paths, filepath.Join(xdgDataHome, AppName))
	}

	// Priority 3: System default
	paths = append(paths, DefaultDataDir)

	return paths
}
