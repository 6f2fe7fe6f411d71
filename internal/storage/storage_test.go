package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewMemoryStorage()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPreferences(t *testing.T) {
	s := newTestStorage(t)

	t.Run("Defaults", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		require.NoError(t, err)
		assert.True(t, prefs.SoundEnabled)
		assert.True(t, prefs.ShowToasts)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.SoundEnabled = false
		require.NoError(t, s.SavePreferences(prefs))

		loaded, err := s.LoadPreferences()
		require.NoError(t, err)
		assert.False(t, loaded.SoundEnabled)
		assert.True(t, loaded.ShowToasts)
	})
}

func TestRecordSession(t *testing.T) {
	s := newTestStorage(t)

	stats, err := s.LoadStats()
	require.NoError(t, err)
	assert.Zero(t, stats.Sessions)
	assert.Zero(t, stats.AverageMovesPerSession())

	require.NoError(t, s.RecordSession(SessionResult{PiecesMoved: 6, Undos: 1, Duration: time.Minute}))
	require.NoError(t, s.RecordSession(SessionResult{PiecesMoved: 2, Duration: time.Minute}))

	stats, err = s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Sessions)
	assert.Equal(t, 8, stats.PiecesMoved)
	assert.Equal(t, 1, stats.Undos)
	assert.Equal(t, 2*time.Minute, stats.TotalPlayTime)
	assert.Equal(t, 4.0, stats.AverageMovesPerSession())
}

func TestOnDiskStorage(t *testing.T) {
	dataDir := t.TempDir()

	s, err := NewStorage(dataDir)
	require.NoError(t, err)
	require.NoError(t, s.RecordSession(SessionResult{PiecesMoved: 3}))
	require.NoError(t, s.Close())

	_, err = os.Stat(filepath.Join(dataDir, "db"))
	require.NoError(t, err)

	s, err = NewStorage(dataDir)
	require.NoError(t, err)
	defer s.Close()

	stats, err := s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Sessions)
	assert.Equal(t, 3, stats.PiecesMoved)
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dataDir, err := GetDataDir()
	require.NoError(t, err)
	assert.Equal(t, appName, filepath.Base(dataDir))

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
