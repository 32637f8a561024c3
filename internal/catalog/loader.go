package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// document is the on-disk catalog layout shared by YAML and JSON files.
type document struct {
	Tools []ToolRecord `json:"tools" yaml:"tools"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the built-in catalog. It is decoded once per process.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = ParseYAML(defaultDocument)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("built-in catalog: %w", defaultErr)
		}
	})
	return defaultCatalog, defaultErr
}

// LoadFile reads a catalog from disk. The format is chosen by extension:
// .yaml/.yml for YAML, .json/.jsonc for JSON (comments and trailing commas allowed).
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json", ".jsonc":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", path)
	}
}

// ParseYAML decodes a YAML catalog document.
func ParseYAML(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}
	return New(doc.Tools)
}

// ParseJSON decodes a JSON catalog document. Comments are stripped first.
func ParseJSON(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog json: %w", err)
	}
	return New(doc.Tools)
}
