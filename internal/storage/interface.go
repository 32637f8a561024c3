/*
Package storage implements the persistent layer for search analytics and recent searches.

This package provides SQLite-based storage with graceful degradation: if the
database cannot be opened, every operation becomes a no-op instead of failing.

The database is stored at ~/.toolbelt/history.db and uses modernc.org/sqlite
(a pure Go, CGo-free implementation).
*/
package storage

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Storage defines the interface for persistent storage operations.
type Storage interface {
	// Init initializes the database and runs migrations.
	Init() error

	// RecordSearch records a search query for analytics.
	RecordSearch(search SearchRecord) error

	// GetSearchHistory retrieves analytics records since a given time, newest first.
	GetSearchHistory(since time.Time) ([]SearchRecord, error)

	// SaveRecent replaces the persisted recent-search list (most recent first).
	SaveRecent(queries []string) error

	// LoadRecent returns the persisted recent-search list (most recent first).
	LoadRecent() ([]string, error)

	// Cleanup removes analytics records older than retention.
	Cleanup(retention time.Duration) error

	// Close closes the database connection.
	Close() error
}

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// DefaultPath returns ~/.toolbelt/history.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".toolbelt", "history.db"), nil
}

// NewStorage creates a storage instance at the default path.
//
// If the home directory cannot be resolved the storage is disabled, but
// operations will not fail.
func NewStorage() *SQLiteStorage {
	dbPath, err := DefaultPath()
	if err != nil {
		zap.L().Warn("storage disabled", zap.Error(err))
		return &SQLiteStorage{enabled: false}
	}
	return NewStorageAt(dbPath)
}

// NewStorageAt creates a storage instance backed by the database file at dbPath.
func NewStorageAt(dbPath string) *SQLiteStorage {
	return &SQLiteStorage{
		dbPath:  dbPath,
		enabled: true,
	}
}

// Enabled reports whether the database is usable.
func (s *SQLiteStorage) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled && s.db != nil
}

// Init initializes the database and runs migrations.
//
// If initialization fails, storage is disabled and subsequent operations
// become no-ops (graceful degradation).
func (s *SQLiteStorage) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		fail := func(err error) {
			initErr = err
			s.enabled = false
			if s.db != nil {
				s.db.Close()
				s.db = nil
			}
			zap.L().Warn("storage disabled", zap.String("path", s.dbPath), zap.Error(err))
		}

		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
			fail(fmt.Errorf("failed to create db directory: %w", err))
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			fail(fmt.Errorf("failed to open database: %w", err))
			return
		}
		s.db = db

		if err := db.Ping(); err != nil {
			fail(fmt.Errorf("failed to ping database: %w", err))
			return
		}

		if err := s.runMigrations(); err != nil {
			fail(fmt.Errorf("failed to run migrations: %w", err))
			return
		}
	})

	return initErr
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil {
		return nil
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	s.db = nil
	return nil
}

// HashQuery creates a SHA256 hash of a query string for privacy.
func HashQuery(query string) string {
	hash := sha256.Sum256([]byte(query))
	return hex.EncodeToString(hash[:])
}
