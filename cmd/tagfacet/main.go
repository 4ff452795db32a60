package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"tagfacet/cmd/tagfacet/render"
	"tagfacet/internal/catalog"
	"tagfacet/internal/config"
	"tagfacet/internal/logging"
	"tagfacet/internal/metrics"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
)

type CLI struct {
	Photos PhotosCmd `cmd:"" aliases:"ls" help:"List photos matching tag filters"`
	Facets FacetsCmd `cmd:"" aliases:"f" help:"List tag families and their values"`
	Show   ShowCmd   `cmd:"" help:"Show a photo's thumbnail and tags"`
	Thumb  ThumbCmd  `cmd:"" help:"Print thumbnail paths for photo files"`
	Tag    TagCmd    `cmd:"" aliases:"t" help:"Attach tags to a photo"`
	Untag  UntagCmd  `cmd:"" help:"Detach tags from a photo"`
	Import ImportCmd `cmd:"" help:"Import photos from a gallery database or directory"`
	Export ExportCmd `cmd:"" help:"Write the catalog as a gallery script, JSON or YAML"`
	Browse BrowseCmd `cmd:"" aliases:"b" help:"Browse photos interactively"`
	Watch  WatchCmd  `cmd:"" help:"Reload the catalog on change and serve metrics"`

	CatalogPath  string `name:"catalog" short:"c" env:"TAGFACET_CATALOG" help:"Path to catalog file"`
	SettingsPath string `name:"config" env:"TAGFACET_CONFIG" help:"Path to settings file"`
	LogLevel     string `name:"log-level" help:"Log level (debug, info, warn, error)"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	settingsPath := c.SettingsPath
	if settingsPath == "" {
		settingsPath = config.DefaultSettingsPath()
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}
	if c.LogLevel != "" {
		settings.LogLevel = c.LogLevel
	}

	log, err := newLogger(os.Stderr, settings)
	if err != nil {
		return err
	}

	catalogPath := c.CatalogPath
	if catalogPath == "" {
		catalogPath = config.DefaultCatalogPath()
	}
	catalogPath, err = config.ExpandPath(catalogPath)
	if err != nil {
		return fmt.Errorf("invalid catalog path: %w", err)
	}

	store, err := catalog.NewYAMLStore(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to create catalog store: %w", err)
	}
	cat, err := store.Load()
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		log.Info("catalog not found, starting empty", "path", catalogPath)
		cat = catalog.New(cmp.Or(settings.ThumbSize, catalog.DefaultThumbSize))
	case err != nil:
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	reg := prometheus.NewRegistry()
	globals := &Globals{
		Store:    store,
		Cat:      cat,
		Settings: settings,
		Log:      log,
		Registry: reg,
		Metrics:  metrics.NewRecorder(reg),
		Out:      os.Stdout,
		Render:   render.NewLipglossRendererAuto(os.Stdout),
	}
	ctx.Bind(globals)
	return nil
}

const serviceName = "tagfacet"

func newLogger(w io.Writer, settings config.Settings) (*slog.Logger, error) {
	return logging.New(w, logging.Options{
		Level:   settings.LogLevel,
		Format:  logging.Format(settings.LogFormat),
		Service: serviceName,
	})
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("tagfacet"),
		kong.Description("Faceted tag search over a photo catalog"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
