package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"CHESSBOARD_SPRITE_DIR", "CHESSBOARD_DATA_DIR", "CHESSBOARD_NO_STORAGE", "CHESSBOARD_SOUND"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.SpriteDir)
	assert.Empty(t, cfg.DataDir)
	assert.False(t, cfg.StorageDisabled)
	assert.Nil(t, cfg.Sound)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("CHESSBOARD_SPRITE_DIR", dir)
	t.Setenv("CHESSBOARD_DATA_DIR", "/tmp/dragboard")
	t.Setenv("CHESSBOARD_NO_STORAGE", "1")
	t.Setenv("CHESSBOARD_SOUND", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.SpriteDir)
	assert.Equal(t, "/tmp/dragboard", cfg.DataDir)
	assert.True(t, cfg.StorageDisabled)
	require.NotNil(t, cfg.Sound)
	assert.False(t, *cfg.Sound)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHESSBOARD_SOUND", "loud")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("CHESSBOARD_NO_STORAGE", "maybe")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsMissingSpriteDir(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHESSBOARD_SPRITE_DIR", filepath.Join(t.TempDir(), "missing"))
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	t.Setenv("CHESSBOARD_SPRITE_DIR", file)
	_, err = Load()
	assert.Error(t, err)
}
