package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PreservesOrder(t *testing.T) {
	c, err := New([]ToolRecord{
		{Title: "B", Popularity: 10},
		{Title: "A", Popularity: 20},
	})
	require.NoError(t, err)

	recs := c.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "B", recs[0].Title)
	assert.Equal(t, "A", recs[1].Title)
	assert.Equal(t, 2, c.Len())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		records []ToolRecord
		wantErr error
	}{
		{"empty title", []ToolRecord{{Title: "  "}}, ErrEmptyTitle},
		{"negative popularity", []ToolRecord{{Title: "X", Popularity: -1}}, ErrInvalidPopularity},
		{"popularity over 100", []ToolRecord{{Title: "X", Popularity: 101}}, ErrInvalidPopularity},
		{"duplicate title", []ToolRecord{{Title: "PDF Merger"}, {Title: "pdf merger"}}, ErrDuplicateTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecords_ReturnsCopy(t *testing.T) {
	c, err := New([]ToolRecord{{Title: "A", Keywords: []string{"one"}}})
	require.NoError(t, err)

	recs := c.Records()
	recs[0].Title = "changed"
	recs[0].Keywords[0] = "changed"

	again := c.Records()
	assert.Equal(t, "A", again[0].Title)
	assert.Equal(t, "one", again[0].Keywords[0])
}

func TestByTitle(t *testing.T) {
	c, err := New([]ToolRecord{{Title: "JSON Formatter", Category: "Developer"}})
	require.NoError(t, err)

	rec, ok := c.ByTitle("json formatter")
	require.True(t, ok)
	assert.Equal(t, "Developer", rec.Category)

	_, ok = c.ByTitle("missing")
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	c, err := New([]ToolRecord{
		{Title: "a", Category: "PDF"},
		{Title: "b", Category: "Image"},
		{Title: "c", Category: "PDF"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Image", "PDF"}, c.Categories())
	assert.Len(t, c.ByCategory("pdf"), 2)
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.Len(), 20)

	for _, rec := range c.Records() {
		assert.NotEmpty(t, rec.Href, "tool %s has no href", rec.Title)
		assert.Greater(t, rec.Popularity, 0, "tool %s has no popularity", rec.Title)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "tools:\n  - title: Test Tool\n    href: /tools/test\n    category: Text\n    keywords: [test]\n    popularity: 40\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 40, c.Records()[0].Popularity)
}

func TestLoadFile_JSONC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.jsonc")
	doc := `{
  // hand-edited
  "tools": [
    {"title": "Test Tool", "href": "/tools/test", "popularity": 12,},
  ],
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	txt := filepath.Join(dir, "catalog.txt")
	require.NoError(t, os.WriteFile(txt, []byte("tools: []"), 0644))
	_, err = LoadFile(txt)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadFile(bad)
	assert.Error(t, err)
}
