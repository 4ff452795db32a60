package main

import (
	"errors"
	"fmt"
	"slices"
	"tagfacet/internal/search"
	"tagfacet/internal/ui"

	"github.com/charmbracelet/huh"
)

const (
	actionAdd    = "add"
	actionRemove = "remove"
	actionToggle = "toggle"
	actionMore   = "more"
	actionReset  = "reset"
	actionQuit   = "quit"
)

// selectFunc asks the user to pick one option and returns its value.
type selectFunc func(title string, options []huh.Option[string]) (string, error)

type BrowseCmd struct {
	FilterFlags `embed:""`
}

func (cmd *BrowseCmd) Run(g *Globals) error {
	s := g.NewSession()
	if err := cmd.apply(s); err != nil {
		return err
	}
	return handleBrowseError(browse(g, s, huhSelect))
}

func huhSelect(title string, options []huh.Option[string]) (string, error) {
	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&choice),
		),
	).WithTheme(ui.FacetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func handleBrowseError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

func browse(g *Globals, s *search.Session, sel selectFunc) error {
	for {
		fmt.Fprint(g.Out, ui.RenderFacetPanel("Photos", s.CriteriaForDisplay()))
		fmt.Fprint(g.Out, g.Render.RenderResultList(resultView(g.Cat, s.Photos(), s.Total())))

		action, err := sel("What next?", actionOptions(g, s))
		if err != nil {
			return err
		}

		switch action {
		case actionQuit:
			return nil
		case actionAdd:
			if err := browseAdd(g, s, sel); err != nil {
				return err
			}
		case actionRemove:
			choice, err := sel("Remove filter", activeOptions(s))
			if err != nil {
				return err
			}
			tag, err := parseTag(choice)
			if err != nil {
				return err
			}
			s.RemoveCriterion(tag.Category, tag.Value)
		case actionToggle:
			category, err := sel("Switch AND/OR for", toggleOptions(s))
			if err != nil {
				return err
			}
			s.ToggleBoolOp(category)
		case actionMore:
			s.MorePhotos()
		case actionReset:
			s.Reset()
		}
	}
}

func browseAdd(g *Globals, s *search.Session, sel selectFunc) error {
	family, err := sel("Tag family", huh.NewOptions(g.Cat.TagFamilies()...))
	if err != nil {
		return err
	}

	values := unselectedValues(g, s, family)
	if len(values) == 0 {
		fmt.Fprintf(g.Out, "Every %s value is already selected.\n", family)
		return nil
	}

	value, err := sel(family, huh.NewOptions(values...))
	if err != nil {
		return err
	}
	s.AddCriterion(family, value)
	return nil
}

func actionOptions(g *Globals, s *search.Session) []huh.Option[string] {
	view := s.CriteriaForDisplay()

	var opts []huh.Option[string]
	if len(g.Cat.TagFamilies()) > 0 {
		opts = append(opts, huh.NewOption("Add a filter", actionAdd))
	}
	if len(view) > 0 {
		opts = append(opts, huh.NewOption("Remove a filter", actionRemove))
	}
	if len(toggleOptions(s)) > 0 {
		opts = append(opts, huh.NewOption("Switch AND/OR", actionToggle))
	}
	if !s.AllPhotosDisplayed() {
		opts = append(opts, huh.NewOption("Show more photos", actionMore))
	}
	if len(view) > 0 {
		opts = append(opts, huh.NewOption("Clear filters", actionReset))
	}
	return append(opts, huh.NewOption("Quit", actionQuit))
}

func activeOptions(s *search.Session) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, c := range s.CriteriaForDisplay() {
		for _, v := range c.Values {
			key := c.Category + "=" + v
			opts = append(opts, huh.NewOption(key, key))
		}
	}
	return opts
}

func toggleOptions(s *search.Session) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, c := range s.CriteriaForDisplay() {
		if c.OnlyOne {
			continue
		}
		label := fmt.Sprintf("%s (now %s, switch to %s)", c.Category, c.BoolOp, c.BoolOp.Toggle())
		opts = append(opts, huh.NewOption(label, c.Category))
	}
	return opts
}

func unselectedValues(g *Globals, s *search.Session, family string) []string {
	var selected []string
	for _, c := range s.Criteria() {
		if c.Category == family {
			selected = c.Values
			break
		}
	}

	var values []string
	for _, v := range g.Cat.Values(family) {
		if !slices.Contains(selected, v) {
			values = append(values, v)
		}
	}
	return values
}
