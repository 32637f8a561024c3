package storage

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// SaveRecent replaces the persisted recent-search list. Later entries that
// differ from an earlier one only in case are dropped.
func (s *SQLiteStorage) SaveRecent(queries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recent_searches"); err != nil {
		return fmt.Errorf("failed to clear recent searches: %w", err)
	}

	for i, q := range queries {
		if _, err := tx.Exec(
			"INSERT INTO recent_searches (query_key, query, position) VALUES (?, ?, ?) ON CONFLICT(query_key) DO NOTHING",
			strings.ToLower(q), q, i,
		); err != nil {
			return fmt.Errorf("failed to save recent search: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recent searches: %w", err)
	}

	return nil
}

// LoadRecent returns the persisted recent-search list, most recent first.
func (s *SQLiteStorage) LoadRecent() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil {
		return []string{}, nil
	}

	rows, err := s.db.Query("SELECT query FROM recent_searches ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query recent searches: %w", err)
	}
	defer rows.Close()

	queries := []string{}
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			zap.L().Warn("failed to scan recent search", zap.Error(err))
			continue
		}
		queries = append(queries, q)
	}

	return queries, rows.Err()
}
