package main

import (
	"fmt"
	"tagfacet/internal/ui"
)

type TagCmd struct {
	File string   `arg:"" help:"Photo file name"`
	Tags []string `arg:"" placeholder:"CATEGORY=VALUE" help:"Tags to attach"`
	Add  bool     `short:"a" help:"Add the photo to the catalog if it is missing"`
}

func (cmd *TagCmd) Run(g *Globals) error {
	tags, err := parseTags(cmd.Tags)
	if err != nil {
		return err
	}

	cat := g.Cat.Clone()
	if cmd.Add && !cat.HasPhoto(cmd.File) {
		if err := cat.AddPhoto(cmd.File); err != nil {
			return fmt.Errorf("failed to add photo %q: %w", cmd.File, err)
		}
	}

	for _, tag := range tags {
		if err := cat.Tag(cmd.File, tag.Category, tag.Value); err != nil {
			return fmt.Errorf("failed to tag %q: %w", cmd.File, err)
		}
	}

	if err := g.commit(cat); err != nil {
		return err
	}

	g.Log.Debug("photo tagged", "file", cmd.File, "tags", len(tags))
	fmt.Fprint(g.Out, ui.RenderTagged("Tagged", cmd.File, g.Cat.TagsOf(cmd.File)))
	return nil
}

type UntagCmd struct {
	File string   `arg:"" help:"Photo file name"`
	Tags []string `arg:"" placeholder:"CATEGORY=VALUE" help:"Tags to detach"`
}

func (cmd *UntagCmd) Run(g *Globals) error {
	tags, err := parseTags(cmd.Tags)
	if err != nil {
		return err
	}

	cat := g.Cat.Clone()
	for _, tag := range tags {
		if err := cat.Untag(cmd.File, tag.Category, tag.Value); err != nil {
			return fmt.Errorf("failed to untag %q: %w", cmd.File, err)
		}
	}

	if err := g.commit(cat); err != nil {
		return err
	}

	g.Log.Debug("photo untagged", "file", cmd.File, "tags", len(tags))
	fmt.Fprint(g.Out, ui.RenderTagged("Untagged", cmd.File, g.Cat.TagsOf(cmd.File)))
	return nil
}
