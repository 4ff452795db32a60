package main

import (
	"fmt"
	"io"
	"log/slog"
	"tagfacet/cmd/tagfacet/render"
	"tagfacet/internal/catalog"
	"tagfacet/internal/config"
	"tagfacet/internal/metrics"
	"tagfacet/internal/search"

	"github.com/prometheus/client_golang/prometheus"
)

type Globals struct {
	Store    *catalog.YAMLStore
	Cat      *catalog.Catalog
	Settings config.Settings
	Log      *slog.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Recorder
	Out      io.Writer
	Render   render.Renderer
}

// NewSession opens a query session over the loaded catalog, applying the
// user's settings before any per-command options.
func (g *Globals) NewSession(opts ...search.Option) *search.Session {
	base := []search.Option{
		search.WithLogger(g.Log),
		search.WithPageSize(g.Settings.PageSize),
		search.WithThumbSize(g.Settings.ThumbSize),
	}
	if g.Metrics != nil {
		base = append(base, search.WithObserver(g.Metrics))
	}
	return search.NewSession(g.Cat, append(base, opts...)...)
}

func (g *Globals) save() error {
	if err := g.Store.Save(g.Cat); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

// commit saves an edited copy of the catalog and adopts it only once the
// save succeeded.
func (g *Globals) commit(edited *catalog.Catalog) error {
	if err := g.Store.Save(edited); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	g.Cat = edited
	return nil
}
