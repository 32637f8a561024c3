package search

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/khanglvm/toolbelt/internal/catalog"
	"go.uber.org/zap"
)

// bm25ScoreScale converts Bleve's floating point scores into integer scores.
const bm25ScoreScale = 100

// Indexer is a full-text (BM25) index over catalog tools, backed by Bleve.
type Indexer struct {
	bleveIndex bleve.Index
	records    map[string]catalog.ToolRecord
	mu         sync.RWMutex
}

// NewIndexer creates an in-memory index and indexes every record of c.
func NewIndexer(c *catalog.Catalog) (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	i := &Indexer{
		bleveIndex: index,
		records:    make(map[string]catalog.ToolRecord),
	}

	if err := i.IndexRecords(c.Records()); err != nil {
		index.Close()
		return nil, err
	}

	return i, nil
}

// buildIndexMapping creates the Bleve index mapping for tool documents.
func buildIndexMapping() mapping.IndexMapping {
	toolMapping := bleve.NewDocumentMapping()

	toolMapping.AddFieldMappingsAt("title", bleve.NewTextFieldMapping())
	toolMapping.AddFieldMappingsAt("description", bleve.NewTextFieldMapping())
	toolMapping.AddFieldMappingsAt("keywords", bleve.NewTextFieldMapping())

	// Category is matched as a whole value for filtering.
	categoryMapping := bleve.NewTextFieldMapping()
	categoryMapping.Analyzer = keyword.Name
	toolMapping.AddFieldMappingsAt("category", categoryMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", toolMapping)

	return indexMapping
}

// IndexRecords adds records to the index, keyed by title.
func (i *Indexer) IndexRecords(records []catalog.ToolRecord) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()

	for _, rec := range records {
		doc := map[string]interface{}{
			"title":       rec.Title,
			"description": rec.Description,
			"keywords":    strings.Join(rec.Keywords, " "),
			"category":    strings.ToLower(rec.Category),
		}

		if err := batch.Index(rec.Title, doc); err != nil {
			zap.L().Warn("failed to index tool", zap.String("title", rec.Title), zap.Error(err))
			continue
		}

		i.records[rec.Title] = rec
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index tools: %w", err)
	}

	return nil
}

// SearchBM25 performs keyword search over title, description, keywords and category.
func (i *Indexer) SearchBM25(text string, limit int) ([]ScoredResult, error) {
	if strings.TrimSpace(text) == "" {
		return []ScoredResult{}, nil
	}
	return i.search(bleve.NewMatchQuery(text), limit)
}

// SearchByCategory performs BM25 search restricted to one category.
func (i *Indexer) SearchByCategory(text, category string, limit int) ([]ScoredResult, error) {
	if strings.TrimSpace(text) == "" {
		return []ScoredResult{}, nil
	}

	categoryQuery := bleve.NewTermQuery(strings.ToLower(category))
	categoryQuery.SetField("category")

	return i.search(bleve.NewConjunctionQuery(bleve.NewMatchQuery(text), categoryQuery), limit)
}

func (i *Indexer) search(q query.Query, limit int) ([]ScoredResult, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = DefaultLimit
	}

	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	results, err := i.bleveIndex.Search(req)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	out := make([]ScoredResult, 0, len(results.Hits))
	for _, hit := range results.Hits {
		rec, ok := i.records[hit.ID]
		if !ok {
			continue
		}
		out = append(out, ScoredResult{
			ToolRecord: rec,
			Score:      int(hit.Score*bm25ScoreScale + 0.5),
		})
	}

	return out, nil
}

// Count returns the number of indexed tools.
func (i *Indexer) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	docCount, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}

	return docCount, nil
}

// Close releases the index.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}

	return nil
}
