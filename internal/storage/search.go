package storage

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// RecordSearch records a search query for analytics.
// Write failures are logged and swallowed; analytics must never break a search.
func (s *SQLiteStorage) RecordSearch(search SearchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil {
		return nil
	}

	_, err := s.db.Exec(`
		INSERT INTO search_history (search_id, query_hash, timestamp, results_count)
		VALUES (?, ?, ?, ?)
	`,
		search.SearchID,
		search.QueryHash,
		search.Timestamp.UTC().Format(timeLayout),
		search.ResultsCount,
	)
	if err != nil {
		zap.L().Warn("failed to record search", zap.String("search_id", search.SearchID), zap.Error(err))
	}

	return nil
}

// GetSearchHistory retrieves analytics records since a given time, newest first.
func (s *SQLiteStorage) GetSearchHistory(since time.Time) ([]SearchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil {
		return []SearchRecord{}, nil
	}

	rows, err := s.db.Query(`
		SELECT search_id, query_hash, timestamp, results_count
		FROM search_history
		WHERE timestamp >= ?
		ORDER BY timestamp DESC
	`, since.UTC().Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer rows.Close()

	records := []SearchRecord{}
	for rows.Next() {
		var rec SearchRecord
		var ts string
		if err := rows.Scan(&rec.SearchID, &rec.QueryHash, &ts, &rec.ResultsCount); err != nil {
			zap.L().Warn("failed to scan search row", zap.Error(err))
			continue
		}
		rec.Timestamp, err = time.Parse(timeLayout, ts)
		if err != nil {
			zap.L().Warn("failed to parse search timestamp", zap.String("value", ts), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Cleanup removes analytics records older than retention. A non-positive
// retention keeps every record.
func (s *SQLiteStorage) Cleanup(retention time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil || retention <= 0 {
		return nil
	}

	cutoff := time.Now().Add(-retention).UTC().Format(timeLayout)

	if _, err := s.db.Exec("DELETE FROM search_history WHERE timestamp < ?", cutoff); err != nil {
		return fmt.Errorf("failed to cleanup search_history: %w", err)
	}

	if _, err := s.db.Exec("VACUUM"); err != nil {
		zap.L().Warn("failed to vacuum database", zap.Error(err))
	}

	return nil
}
