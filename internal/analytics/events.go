/*
Package analytics records fire-and-forget search analytics.

Searches are queued without blocking the caller and flushed to storage by a
background goroutine. Raw query text is never stored, only its SHA-256 hash.
*/
package analytics

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/khanglvm/toolbelt/internal/storage"
)

// SearchEvent is one executed search.
type SearchEvent struct {
	// SearchID uniquely identifies the search.
	SearchID string

	// QueryHash is the SHA-256 of the normalized query.
	QueryHash string

	// ResultCount is how many results the search returned.
	ResultCount int

	// Timestamp is when the search ran.
	Timestamp time.Time
}

// NewSearchEvent builds an event for query. The query is lowercased and
// trimmed before hashing so equivalent searches share a hash.
func NewSearchEvent(query string, resultCount int) SearchEvent {
	return SearchEvent{
		SearchID:    uuid.NewString(),
		QueryHash:   storage.HashQuery(strings.ToLower(strings.TrimSpace(query))),
		ResultCount: resultCount,
		Timestamp:   time.Now(),
	}
}

// ToStorage converts the event to its storage model.
func (e SearchEvent) ToStorage() storage.SearchRecord {
	return storage.SearchRecord{
		SearchID:     e.SearchID,
		QueryHash:    e.QueryHash,
		Timestamp:    e.Timestamp,
		ResultsCount: e.ResultCount,
	}
}
