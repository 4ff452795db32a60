package main

import (
	"errors"
	"fmt"
	"strings"
	"tagfacet/cmd/tagfacet/render"
	"tagfacet/internal/catalog"
	"tagfacet/internal/search"
)

var ErrInvalidTag = errors.New("invalid tag, want category=value")

func parseTag(raw string) (catalog.Tag, error) {
	category, value, ok := strings.Cut(raw, "=")
	category = strings.TrimSpace(category)
	value = strings.TrimSpace(value)
	if !ok || category == "" || value == "" {
		return catalog.Tag{}, fmt.Errorf("%w: %q", ErrInvalidTag, raw)
	}
	return catalog.Tag{Category: category, Value: value}, nil
}

func parseTags(raws []string) ([]catalog.Tag, error) {
	tags := make([]catalog.Tag, 0, len(raws))
	for _, raw := range raws {
		tag, err := parseTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func formatTags(tags []catalog.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.Category + "=" + t.Value
	}
	return out
}

// FilterFlags are the tag filters shared by commands that run a query.
type FilterFlags struct {
	Tags []string `short:"t" name:"tag" placeholder:"CATEGORY=VALUE" help:"Filter by tag (repeatable)"`
	Or   []string `name:"or" placeholder:"CATEGORY" help:"Combine this category's values with OR instead of AND (repeatable)"`
}

func (f FilterFlags) apply(s *search.Session) error {
	tags, err := parseTags(f.Tags)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		s.AddCriterion(tag.Category, tag.Value)
	}

	seen := make(map[string]bool, len(f.Or))
	for _, category := range f.Or {
		if !hasCriterion(s, category) {
			return fmt.Errorf("--or %s: no --tag filter for that category", category)
		}
		// Criteria built from --tag start as AND, so one toggle per category.
		if seen[category] {
			continue
		}
		seen[category] = true
		s.ToggleBoolOp(category)
	}
	return nil
}

func hasCriterion(s *search.Session, category string) bool {
	for _, c := range s.Criteria() {
		if c.Category == category {
			return true
		}
	}
	return false
}

func resultView(cat *catalog.Catalog, page []search.ResultItem, total int) render.ResultListView {
	items := make([]render.ResultListItem, len(page))
	for i, r := range page {
		items[i] = render.ResultListItem{
			File:      r.File,
			ThumbFile: r.ThumbFile,
			Tags:      formatTags(cat.TagsOf(r.File)),
		}
	}
	return render.ResultListView{Items: items, Total: total}
}

func findPhoto(cat *catalog.Catalog, file string) error {
	if !cat.HasPhoto(file) {
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, file)
	}
	return nil
}
