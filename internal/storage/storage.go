package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// UserPreferences stores user settings.
type UserPreferences struct {
	SoundEnabled bool      `json:"sound_enabled"`
	ShowToasts   bool      `json:"show_toasts"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		SoundEnabled: true,
		ShowToasts:   true,
		LastPlayed:   time.Now(),
	}
}

// UsageStats counts what happened across sessions. Board contents are never stored.
type UsageStats struct {
	Sessions      int           `json:"sessions"`
	PiecesMoved   int           `json:"pieces_moved"`
	Undos         int           `json:"undos"`
	TotalPlayTime time.Duration `json:"total_play_time"`
}

// SessionResult summarises one run of the board.
type SessionResult struct {
	PiecesMoved int
	Undos       int
	Duration    time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database under dataDir, or the platform data dir
// when dataDir is empty.
func NewStorage(dataDir string) (*Storage, error) {
	dbDir, err := GetDatabaseDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("database dir: %w", err)
	}
	return open(badger.DefaultOptions(dbDir))
}

// NewMemoryStorage opens a database that lives only in memory.
func NewMemoryStorage() (*Storage, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Storage, error) {
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	err := s.get(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves usage statistics
func (s *Storage) SaveStats(stats *UsageStats) error {
	return s.put(keyStats, stats)
}

// LoadStats loads usage statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*UsageStats, error) {
	stats := &UsageStats{}
	err := s.get(keyStats, stats)
	return stats, err
}

// RecordSession adds a finished session to the statistics.
func (s *Storage) RecordSession(result SessionResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.Sessions++
	stats.PiecesMoved += result.PiecesMoved
	stats.Undos += result.Undos
	stats.TotalPlayTime += result.Duration

	return s.SaveStats(stats)
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes key into v, leaving v untouched when the key is absent.
func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// AverageMovesPerSession returns moves per session, 0 before the first session.
func (s *UsageStats) AverageMovesPerSession() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.PiecesMoved) / float64(s.Sessions)
}
