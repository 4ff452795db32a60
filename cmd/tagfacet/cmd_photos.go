package main

import (
	"fmt"
	"tagfacet/internal/search"
	"tagfacet/internal/ui"
)

type PhotosCmd struct {
	FilterFlags `embed:""`

	More     int  `short:"m" help:"Reveal this many additional pages"`
	PageSize int  `short:"p" name:"page-size" help:"Photos per page (defaults to settings)"`
	Names    bool `short:"n" help:"Output only file names (one per line)"`
}

func (cmd *PhotosCmd) Run(g *Globals) error {
	var opts []search.Option
	if cmd.PageSize > 0 {
		opts = append(opts, search.WithPageSize(cmd.PageSize))
	}
	s := g.NewSession(opts...)
	if err := cmd.apply(s); err != nil {
		return err
	}

	// Evaluate before revealing: a fresh evaluation rewinds the cursor.
	total := s.Total()
	for range cmd.More {
		s.MorePhotos()
	}
	page := s.Photos()

	if cmd.Names {
		for _, p := range page {
			fmt.Fprintln(g.Out, p.File)
		}
		return nil
	}

	fmt.Fprint(g.Out, ui.RenderFacetPanel("Photos", s.CriteriaForDisplay()))
	fmt.Fprint(g.Out, g.Render.RenderResultList(resultView(g.Cat, page, total)))
	return nil
}
