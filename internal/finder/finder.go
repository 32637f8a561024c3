/*
Package finder is the search service behind every front end.

It owns the ranking engine, the recent-searches store and the analytics
tracker, and wires them the same way for the CLI, the terminal UI and the MCP
server: rank first, then remember the query and report it.
*/
package finder

import (
	"fmt"
	"strings"

	"github.com/khanglvm/toolbelt/internal/analytics"
	"github.com/khanglvm/toolbelt/internal/catalog"
	"github.com/khanglvm/toolbelt/internal/config"
	"github.com/khanglvm/toolbelt/internal/recent"
	"github.com/khanglvm/toolbelt/internal/search"
	"github.com/khanglvm/toolbelt/internal/storage"
	"go.uber.org/zap"
)

// Options configures a Service.
type Options struct {
	// Limit is the result count used when a caller passes a non-positive limit.
	Limit int

	// Engine is config.EngineRanker (default) or config.EngineBM25.
	Engine string

	// RecentLimit caps the recent-searches list.
	RecentLimit int

	// Tracking enables search analytics.
	Tracking bool

	// Storage persists recent searches and analytics. Nil keeps both in memory only.
	Storage storage.Storage
}

// OptionsFromSettings maps config settings onto service options.
func OptionsFromSettings(s *config.Settings, st storage.Storage) Options {
	return Options{
		Limit:       s.SearchLimit,
		Engine:      s.Engine,
		RecentLimit: s.RecentLimit,
		Tracking:    s.TrackingEnabled,
		Storage:     st,
	}
}

// Service ranks catalog tools and records what was searched.
type Service struct {
	catalog *catalog.Catalog
	ranker  *search.Ranker
	indexer *search.Indexer
	recent  *recent.Store
	tracker *analytics.Tracker
	storage storage.Storage
	limit   int
}

// New builds a service over c.
func New(c *catalog.Catalog, opts Options) (*Service, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	s := &Service{
		catalog: c,
		ranker:  search.NewRanker(c),
		storage: opts.Storage,
		limit:   opts.Limit,
	}
	if s.limit <= 0 {
		s.limit = search.DefaultLimit
	}

	switch opts.Engine {
	case "", config.EngineRanker:
	case config.EngineBM25:
		indexer, err := search.NewIndexer(c)
		if err != nil {
			return nil, err
		}
		s.indexer = indexer
	default:
		return nil, fmt.Errorf("unknown engine %q", opts.Engine)
	}

	if opts.Storage != nil {
		// Failure disables the storage; the store and tracker then run without it.
		_ = opts.Storage.Init()
	}

	store, err := recent.Open(opts.Storage, opts.RecentLimit)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.recent = store

	if opts.Tracking {
		s.tracker = analytics.NewTracker(opts.Storage)
	}

	return s, nil
}

// Catalog returns the catalog the service searches.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Engine names the active ranking engine.
func (s *Service) Engine() string {
	if s.indexer != nil {
		return config.EngineBM25
	}
	return config.EngineRanker
}

// Query ranks tools against query without recording anything.
func (s *Service) Query(query string, limit int) []search.ScoredResult {
	if limit <= 0 {
		limit = s.limit
	}

	if s.indexer != nil {
		results, err := s.indexer.SearchBM25(query, limit)
		if err == nil {
			return results
		}
		zap.L().Warn("bm25 search failed, falling back to ranker", zap.String("query", query), zap.Error(err))
	}

	return s.ranker.Search(query, limit)
}

// Search ranks tools against query, then adds a non-blank query to the recent
// searches and reports it to analytics.
func (s *Service) Search(query string, limit int) []search.ScoredResult {
	results := s.Query(query, limit)
	s.Record(query, len(results))
	return results
}

// SearchInCategory is Search restricted to tools of one category.
func (s *Service) SearchInCategory(query, category string, limit int) []search.ScoredResult {
	if limit <= 0 {
		limit = s.limit
	}

	var results []search.ScoredResult
	if s.indexer != nil {
		var err error
		results, err = s.indexer.SearchByCategory(query, category, limit)
		if err != nil {
			zap.L().Warn("bm25 category search failed, falling back to ranker", zap.String("query", query), zap.Error(err))
			results = nil
		}
	}
	if results == nil {
		results = search.Rank(query, s.catalog.ByCategory(category), limit)
	}

	s.Record(query, len(results))
	return results
}

// Record remembers a query that was run elsewhere, such as in the terminal UI.
func (s *Service) Record(query string, resultCount int) {
	if strings.TrimSpace(query) == "" {
		return
	}
	s.recent.Add(query)
	if s.tracker != nil {
		s.tracker.TrackSearch(query, resultCount)
	}
}

// Popular returns the most popular tools.
func (s *Service) Popular(limit int) []search.ScoredResult {
	if limit <= 0 {
		limit = s.limit
	}
	return s.ranker.Popular(limit)
}

// Recent returns recent queries, most recent first.
func (s *Service) Recent() []string {
	return s.recent.List()
}

// ClearRecent forgets every recent query.
func (s *Service) ClearRecent() {
	s.recent.Clear()
}

// Close flushes analytics and releases the index and storage.
func (s *Service) Close() error {
	if s.tracker != nil {
		s.tracker.Stop()
	}

	var firstErr error
	if s.indexer != nil {
		if err := s.indexer.Close(); err != nil {
			firstErr = err
		}
	}
	if s.storage != nil {
		if err := s.storage.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
