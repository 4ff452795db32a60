package ui

import (
	"strings"
	"tagfacet/internal/catalog"
	"tagfacet/internal/search"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	multiSymbol  = "◆"
	singleSymbol = "◇"
	separator    = " · "
	borderTop    = "┌"
	borderSide   = "│"
	borderBottom = "└"
	checkSymbol  = "✓"
	crossSymbol  = "✗"
)

func FacetTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString(crossSymbol).Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString(crossSymbol).Foreground(red)
	return t
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

func opStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

// RenderFacetPanel draws the active criteria. Criteria holding several
// values are marked with ◆ and show their operator between values; a
// single-value criterion has no operator to toggle and is marked with ◇.
func RenderFacetPanel(title string, criteria []search.DisplayCriterion) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	if len(criteria) == 0 {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" no filters, showing every photo\n")
	}

	for _, c := range criteria {
		b.WriteString(renderCriterion(c))
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

// RenderTagged confirms the tags now attached to a photo.
func RenderTagged(verb, file string, tags []catalog.Tag) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(multiSymbol)
	b.WriteString(" ")
	b.WriteString(verb)
	b.WriteString(" ")
	b.WriteString(file)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, tag := range tags {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(checkSymbol)
		b.WriteString(" ")
		b.WriteString(tag.Category)
		b.WriteString("=")
		b.WriteString(tag.Value)
		b.WriteString("\n")
	}
	if len(tags) == 0 {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" no tags\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

func renderCriterion(c search.DisplayCriterion) string {
	var b strings.Builder

	if c.OnlyOne {
		b.WriteString(singleSymbol)
	} else {
		b.WriteString(multiSymbol)
	}
	b.WriteString(" ")
	b.WriteString(c.Category)
	b.WriteString(separator)

	joiner := " " + opStyle().Render(string(c.BoolOp)) + " "
	b.WriteString(strings.Join(c.Values, joiner))

	return b.String()
}
