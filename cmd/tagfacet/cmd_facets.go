package main

import (
	"fmt"
	"text/tabwriter"
)

type FacetsCmd struct {
	Category string `arg:"" optional:"" help:"Only list values of this tag family"`
	Names    bool   `short:"n" help:"Output only family names, or values when a family is given"`
}

func (cmd *FacetsCmd) Run(g *Globals) error {
	if cmd.Category != "" {
		return cmd.printValues(g)
	}

	families := g.Cat.TagFamilies()
	if cmd.Names {
		for _, f := range families {
			fmt.Fprintln(g.Out, f)
		}
		return nil
	}

	if len(families) == 0 {
		fmt.Fprintln(g.Out, "No tags found.")
		return nil
	}

	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tVALUE\tPHOTOS")
	fmt.Fprintln(w, "------\t-----\t------")
	for _, family := range families {
		for _, value := range g.Cat.Values(family) {
			fmt.Fprintf(w, "%s\t%s\t%d\n", family, value, g.Cat.CountTagged(family, value))
		}
	}
	return w.Flush()
}

func (cmd *FacetsCmd) printValues(g *Globals) error {
	values := g.Cat.Values(cmd.Category)
	if len(values) == 0 {
		return fmt.Errorf("no tag family named %q", cmd.Category)
	}

	if cmd.Names {
		for _, v := range values {
			fmt.Fprintln(g.Out, v)
		}
		return nil
	}

	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tPHOTOS")
	fmt.Fprintln(w, "-----\t------")
	for _, v := range values {
		fmt.Fprintf(w, "%s\t%d\n", v, g.Cat.CountTagged(cmd.Category, v))
	}
	return w.Flush()
}
