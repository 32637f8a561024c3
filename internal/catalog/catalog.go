/*
Package catalog holds the hand-curated list of tools that toolbelt searches.

A Catalog is constructed once (from the embedded default document or a file
named in the config) and is read-only afterwards. Callers receive copies of
its records, so nothing downstream can mutate the shared catalog.
*/
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDuplicateTitle is returned when two records share a title (case-insensitive).
	ErrDuplicateTitle = errors.New("duplicate tool title")

	// ErrInvalidPopularity is returned when popularity is outside [0,100].
	ErrInvalidPopularity = errors.New("popularity out of range")

	// ErrEmptyTitle is returned for a record without a title.
	ErrEmptyTitle = errors.New("empty tool title")
)

// ToolRecord describes a single tool in the catalog.
type ToolRecord struct {
	// Title is the display name, unique within the catalog.
	Title string `json:"title" yaml:"title"`

	// Description is a short prose summary.
	Description string `json:"description" yaml:"description"`

	// Href is the target path. It is opaque to the ranker.
	Href string `json:"href" yaml:"href"`

	// Category is a coarse grouping label such as "PDF" or "Image".
	Category string `json:"category" yaml:"category"`

	// Keywords lists synonyms and use-cases.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Popularity is a static prior in [0,100].
	Popularity int `json:"popularity" yaml:"popularity"`
}

// Catalog is an immutable, ordered collection of tool records.
type Catalog struct {
	records []ToolRecord
	byTitle map[string]int
}

// New validates records and returns a catalog holding a private copy of them.
// Record order is preserved; it is the tie-break order for ranking.
func New(records []ToolRecord) (*Catalog, error) {
	c := &Catalog{
		records: make([]ToolRecord, 0, len(records)),
		byTitle: make(map[string]int, len(records)),
	}

	for i, rec := range records {
		title := strings.TrimSpace(rec.Title)
		if title == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyTitle)
		}
		if rec.Popularity < 0 || rec.Popularity > 100 {
			return nil, fmt.Errorf("tool %q: %w: %d", title, ErrInvalidPopularity, rec.Popularity)
		}

		key := strings.ToLower(title)
		if _, exists := c.byTitle[key]; exists {
			return nil, fmt.Errorf("tool %q: %w", title, ErrDuplicateTitle)
		}

		c.byTitle[key] = len(c.records)
		c.records = append(c.records, cloneRecord(rec))
	}

	return c, nil
}

// Records returns a copy of all records in catalog order.
func (c *Catalog) Records() []ToolRecord {
	out := make([]ToolRecord, len(c.records))
	for i, rec := range c.records {
		out[i] = cloneRecord(rec)
	}
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// ByTitle looks up a record by title, ignoring case.
func (c *Catalog) ByTitle(title string) (ToolRecord, bool) {
	idx, ok := c.byTitle[strings.ToLower(strings.TrimSpace(title))]
	if !ok {
		return ToolRecord{}, false
	}
	return cloneRecord(c.records[idx]), true
}

// ByCategory returns the records whose category equals category (case-insensitive).
func (c *Catalog) ByCategory(category string) []ToolRecord {
	var out []ToolRecord
	for _, rec := range c.records {
		if strings.EqualFold(rec.Category, category) {
			out = append(out, cloneRecord(rec))
		}
	}
	return out
}

// Categories returns the sorted set of categories.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range c.records {
		if rec.Category == "" || seen[rec.Category] {
			continue
		}
		seen[rec.Category] = true
		out = append(out, rec.Category)
	}
	sort.Strings(out)
	return out
}

func cloneRecord(rec ToolRecord) ToolRecord {
	if rec.Keywords != nil {
		rec.Keywords = append([]string(nil), rec.Keywords...)
	}
	return rec
}
