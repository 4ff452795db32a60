package main

import (
	"fmt"
	"strings"
	"tagfacet/internal/search"
)

type ShowCmd struct {
	File  string `arg:"" help:"Photo file name"`
	Thumb bool   `help:"Output only the thumbnail path (for scripting)"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	if err := findPhoto(g.Cat, cmd.File); err != nil {
		return err
	}

	s := g.NewSession()
	thumb := search.ThumbnailName(cmd.File, s.Config().ThumbSize)

	if cmd.Thumb {
		fmt.Fprintln(g.Out, thumb)
		return nil
	}

	tags := formatTags(g.Cat.TagsOf(cmd.File))
	fmt.Fprintf(g.Out, "File:   %s\n", cmd.File)
	fmt.Fprintf(g.Out, "Thumb:  %s\n", thumb)
	if len(tags) > 0 {
		fmt.Fprintf(g.Out, "Tags:   %s\n", strings.Join(tags, ", "))
	}
	return nil
}
