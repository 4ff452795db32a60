package main

import (
	"cmp"
	"errors"
	"fmt"
	"tagfacet/internal/search"
)

type ThumbCmd struct {
	Files []string `arg:"" help:"Photo file names"`
	Size  string   `short:"s" help:"Thumbnail size (defaults to settings, then the catalog)"`
}

func (cmd *ThumbCmd) Run(g *Globals) error {
	size := cmp.Or(cmd.Size, g.Settings.ThumbSize, g.Cat.Config.ThumbSize)
	if size == "" {
		return errors.New("no thumbnail size configured, pass --size")
	}
	for _, f := range cmd.Files {
		fmt.Fprintln(g.Out, search.ThumbnailName(f, size))
	}
	return nil
}
