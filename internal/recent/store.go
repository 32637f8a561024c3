/*
Package recent keeps the bounded list of recent search queries.

Queries are deduplicated case-insensitively; re-running a query moves it to
the front with its latest spelling. The list is mirrored to persistent storage
so it survives restarts.
*/
package recent

import (
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/khanglvm/toolbelt/internal/storage"
	"go.uber.org/zap"
)

// MaxRecent is the upper bound on remembered queries.
const MaxRecent = 10

// Store is a most-recent-first list of search queries.
type Store struct {
	mu      sync.Mutex
	cache   *lru.Cache[string, string]
	storage storage.Storage
}

// Open creates a store holding at most limit queries (clamped to [1, MaxRecent])
// and hydrates it from s. A nil s gives a memory-only store.
func Open(s storage.Storage, limit int) (*Store, error) {
	if limit <= 0 || limit > MaxRecent {
		limit = MaxRecent
	}

	cache, err := lru.New[string, string](limit)
	if err != nil {
		return nil, fmt.Errorf("failed to create recent cache: %w", err)
	}

	st := &Store{cache: cache, storage: s}

	if s != nil {
		queries, err := s.LoadRecent()
		if err != nil {
			zap.L().Warn("failed to load recent searches", zap.Error(err))
		}
		// Oldest first, so the newest ends up most recently used.
		for i := len(queries) - 1; i >= 0; i-- {
			st.put(queries[i])
		}
	}

	return st, nil
}

// Add records query as the most recent search. Blank queries are ignored.
func (st *Store) Add(query string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.put(query) {
		return
	}
	st.persist()
}

// List returns the remembered queries, most recent first.
func (st *Store) List() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.list()
}

// Clear forgets every query.
func (st *Store) Clear() {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.cache.Purge()
	st.persist()
}

func (st *Store) put(query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	st.cache.Add(strings.ToLower(q), q)
	return true
}

func (st *Store) list() []string {
	keys := st.cache.Keys()
	out := make([]string, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		if v, ok := st.cache.Peek(keys[i]); ok {
			out = append(out, v)
		}
	}
	return out
}

func (st *Store) persist() {
	if st.storage == nil {
		return
	}
	if err := st.storage.SaveRecent(st.list()); err != nil {
		zap.L().Warn("failed to persist recent searches", zap.Error(err))
	}
}
