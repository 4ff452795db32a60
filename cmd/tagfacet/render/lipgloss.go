package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	fileStyle   lipgloss.Style
	thumbStyle  lipgloss.Style
	tagStyle    lipgloss.Style
	footerStyle lipgloss.Style
	moreStyle   lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:       width,
		r:           r,
		fileStyle:   r.NewStyle().Bold(true),
		thumbStyle:  r.NewStyle().Faint(true),
		tagStyle:    r.NewStyle(),
		footerStyle: r.NewStyle().Faint(true),
		moreStyle:   r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderResultList(view ResultListView) string {
	if view.IsEmpty() {
		return "No photos match.\n"
	}

	var sb strings.Builder
	for i, item := range view.Items {
		last := i == len(view.Items)-1
		sb.WriteString(r.renderItem(item, last))
	}
	sb.WriteString("\n\n")
	sb.WriteString(r.renderFooter(view))
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item ResultListItem, last bool) string {
	file := r.fileStyle.Render(item.File)
	thumb := r.thumbStyle.Render(item.ThumbFile)

	padding := max(1, r.width-lipgloss.Width(file)-lipgloss.Width(thumb))
	headerLine := file + strings.Repeat(" ", padding) + thumb

	var lines []string
	lines = append(lines, headerLine)
	if len(item.Tags) > 0 {
		lines = append(lines, r.tagStyle.Render("  "+strings.Join(item.Tags, ", ")))
	}
	if !last {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (r *LipglossRenderer) renderFooter(view ResultListView) string {
	if view.Exhausted() {
		return r.footerStyle.Render(fmt.Sprintf("all %d photos shown", view.Total))
	}
	shown := r.footerStyle.Render(fmt.Sprintf("showing %d of %d", len(view.Items), view.Total))
	return shown + r.footerStyle.Render(" · ") + r.moreStyle.Render("more available")
}
