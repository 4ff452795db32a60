package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"tagfacet/internal/catalog"
	"tagfacet/internal/config"
)

type ImportCmd struct {
	SQLite    string `name:"sqlite" xor:"source" type:"existingfile" help:"Import files and tags from a gallery SQLite database"`
	Scan      string `name:"scan" xor:"source" type:"existingdir" help:"Add image files found under a directory"`
	ThumbSize string `name:"thumb-size" help:"Thumbnail size for a newly built catalog"`
	Force     bool   `short:"f" help:"Replace a non-empty catalog when importing from SQLite"`
}

func (cmd *ImportCmd) Run(g *Globals) error {
	switch {
	case cmd.SQLite != "":
		return cmd.importSQLite(context.Background(), g)
	case cmd.Scan != "":
		return cmd.importScan(g)
	default:
		return errors.New("one of --sqlite or --scan is required")
	}
}

func (cmd *ImportCmd) thumbSize(g *Globals) string {
	return cmp.Or(cmd.ThumbSize, g.Settings.ThumbSize, g.Cat.Config.ThumbSize, catalog.DefaultThumbSize)
}

func (cmd *ImportCmd) importSQLite(ctx context.Context, g *Globals) error {
	if g.Cat.Count() > 0 && !cmd.Force {
		return fmt.Errorf("catalog %s already has %d photos, use --force to replace it",
			config.ShortenPath(g.Store.Path()), g.Cat.Count())
	}

	cat, err := catalog.ImportSQLite(ctx, cmd.SQLite, cmd.thumbSize(g))
	if err != nil {
		return fmt.Errorf("failed to import %q: %w", cmd.SQLite, err)
	}
	g.Cat = cat

	if err := g.save(); err != nil {
		return err
	}

	g.Log.Info("catalog imported", "source", cmd.SQLite, "photos", cat.Count(), "relations", len(cat.Relations))
	fmt.Fprintf(g.Out, "Imported: %d photos, %d tags from %s\n", cat.Count(), len(cat.Relations), cmd.SQLite)
	return nil
}

func (cmd *ImportCmd) importScan(g *Globals) error {
	photos, err := catalog.ScanDir(cmd.Scan)
	if err != nil {
		return fmt.Errorf("failed to scan %q: %w", cmd.Scan, err)
	}

	if g.Cat.Config.ThumbSize == "" {
		g.Cat.Config.ThumbSize = cmd.thumbSize(g)
	}

	added := 0
	for _, p := range photos {
		if g.Cat.HasPhoto(p.File) {
			continue
		}
		if err := g.Cat.AddPhoto(p.File); err != nil {
			return fmt.Errorf("failed to add %q: %w", p.File, err)
		}
		added++
	}

	if err := g.save(); err != nil {
		return err
	}

	g.Log.Info("directory scanned", "dir", cmd.Scan, "found", len(photos), "added", added)
	fmt.Fprintf(g.Out, "Added: %d new photos (%d found in %s)\n", added, len(photos), config.ShortenPath(cmd.Scan))
	return nil
}
