// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig holds the settings read at start-up.
type AppConfig struct {
	// SpriteDir, when set, replaces the embedded sprites with <code>.png files.
	SpriteDir string
	// DataDir overrides the platform data directory used for storage.
	DataDir string
	// StorageDisabled runs without the preferences database.
	StorageDisabled bool
	// Sound overrides the stored sound preference when non-nil.
	Sound *bool
}

// Load reads the CHESSBOARD_* environment variables.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.SpriteDir = strings.TrimSpace(os.Getenv("CHESSBOARD_SPRITE_DIR"))
	cfg.DataDir = strings.TrimSpace(os.Getenv("CHESSBOARD_DATA_DIR"))

	if v := strings.TrimSpace(os.Getenv("CHESSBOARD_NO_STORAGE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CHESSBOARD_NO_STORAGE: %w", err)
		}
		cfg.StorageDisabled = b
	}

	if v := strings.TrimSpace(os.Getenv("CHESSBOARD_SOUND")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CHESSBOARD_SOUND: %w", err)
		}
		cfg.Sound = &b
	}

	if cfg.SpriteDir != "" {
		info, err := os.Stat(cfg.SpriteDir)
		if err != nil {
			return nil, fmt.Errorf("sprite dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("sprite dir %s is not a directory", cfg.SpriteDir)
		}
	}

	return cfg, nil
}
