package cli

import (
	"fmt"

	"github.com/khanglvm/toolbelt/internal/catalog"
	"github.com/khanglvm/toolbelt/internal/config"
	"github.com/khanglvm/toolbelt/internal/finder"
	"github.com/khanglvm/toolbelt/internal/storage"
	"go.uber.org/zap"
)

// Globals carries the root's persistent flags and lazily loaded state.
type Globals struct {
	ConfigPath string
	Verbose    bool

	cfg           *config.Config
	catalog       *catalog.Catalog
	restoreLogger func()
}

// Config loads the configuration once.
func (g *Globals) Config() (*config.Config, error) {
	if g.cfg != nil {
		return g.cfg, nil
	}
	cfg, err := config.LoadOrCreate(g.ConfigPath)
	if err != nil {
		return nil, err
	}
	g.cfg = cfg
	return cfg, nil
}

// Catalog returns the configured catalog file, or the built-in one.
func (g *Globals) Catalog() (*catalog.Catalog, error) {
	if g.catalog != nil {
		return g.catalog, nil
	}
	cfg, err := g.Config()
	if err != nil {
		return nil, err
	}

	var c *catalog.Catalog
	if path := cfg.Settings.ResolvedCatalogPath(); path != "" {
		c, err = catalog.LoadFile(path)
	} else {
		c, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	zap.L().Debug("catalog loaded", zap.Int("tools", c.Len()), zap.String("path", cfg.Settings.CatalogPath))
	g.catalog = c
	return c, nil
}

// OpenFinder builds the search service. A non-empty engine overrides the
// configured one. Callers must Close the service.
func (g *Globals) OpenFinder(engine string) (*finder.Service, error) {
	cfg, err := g.Config()
	if err != nil {
		return nil, err
	}
	c, err := g.Catalog()
	if err != nil {
		return nil, err
	}

	opts := finder.OptionsFromSettings(cfg.Settings, storage.NewStorage())
	if engine != "" {
		opts.Engine = engine
	}
	return finder.New(c, opts)
}

// Close flushes and restores the logger.
func (g *Globals) Close() {
	if g.restoreLogger != nil {
		g.restoreLogger()
		g.restoreLogger = nil
	}
}
