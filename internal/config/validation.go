package config

import (
	"errors"
	"fmt"
)

// Validate checks settings for values the rest of the program cannot use.
func Validate(cfg *Config) error {
	if cfg == nil || cfg.Settings == nil {
		return errors.New("missing 'settings' field")
	}
	s := cfg.Settings

	if s.SearchLimit < 0 {
		return fmt.Errorf("searchLimit must not be negative (got %d)", s.SearchLimit)
	}
	if s.DebounceMillis < 0 {
		return fmt.Errorf("debounceMillis must not be negative (got %d)", s.DebounceMillis)
	}
	if s.RecentLimit < 0 {
		return fmt.Errorf("recentLimit must not be negative (got %d)", s.RecentLimit)
	}
	if s.HistoryRetentionDays < 0 {
		return fmt.Errorf("historyRetentionDays must not be negative (got %d)", s.HistoryRetentionDays)
	}

	switch s.Engine {
	case EngineRanker, EngineBM25:
	default:
		return fmt.Errorf("unknown engine %q (want %q or %q)", s.Engine, EngineRanker, EngineBM25)
	}

	return nil
}
