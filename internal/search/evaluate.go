package search

import (
	"slices"
	"tagfacet/internal/catalog"
)

// ResultItem is a matching photo with its thumbnail path, derived at
// evaluation time from the catalog's thumbnail size.
type ResultItem struct {
	File      string `json:"file"`
	ThumbFile string `json:"thumbFile"`
}

// Evaluate returns the photos of cat matching every Criterion.
//
// With no criteria every photo matches, in catalog order. Otherwise each
// Criterion's values are combined with its operator (And intersects, Or
// unions) and the per-criterion sets are intersected. Order follows the
// first Criterion's matches, narrowed by the later ones; each file appears
// once. Unknown categories or values match nothing, and a Criterion with no
// values empties the result.
func Evaluate(cat *catalog.Catalog, criteria []Criterion) []ResultItem {
	if cat == nil {
		return []ResultItem{}
	}

	if len(criteria) == 0 {
		files := make([]string, len(cat.Images))
		for i, p := range cat.Images {
			files[i] = p.File
		}
		return annotate(files, cat.Config.ThumbSize)
	}

	var selected []string
	for i, c := range criteria {
		matched := combine(cat.Relations, c)
		if i == 0 {
			selected = matched
		} else {
			selected = intersect(selected, matched)
		}
		if len(selected) == 0 {
			break
		}
	}

	return annotate(selected, cat.Config.ThumbSize)
}

func combine(relations []catalog.Relation, c Criterion) []string {
	var combined []string
	for i, value := range c.Values {
		matched := matchTag(relations, c.Category, value)
		switch {
		case i == 0:
			combined = matched
		case c.BoolOp == Or:
			combined = union(combined, matched)
		default:
			combined = intersect(combined, matched)
		}
	}
	return combined
}

// matchTag scans relations for category=value, returning each file once in
// first-occurrence order.
func matchTag(relations []catalog.Relation, category, value string) []string {
	var files []string
	seen := make(map[string]bool)
	for _, r := range relations {
		if r.Category != category || r.Value != value || seen[r.File] {
			continue
		}
		seen[r.File] = true
		files = append(files, r.File)
	}
	return files
}

// intersect keeps the elements of a present in b, in a's order.
func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	inB := make(map[string]bool, len(b))
	for _, f := range b {
		inB[f] = true
	}
	return slices.DeleteFunc(slices.Clone(a), func(f string) bool { return !inB[f] })
}

// union appends the elements of b missing from a; the first occurrence of a
// file wins.
func union(a, b []string) []string {
	out := slices.Clone(a)
	seen := make(map[string]bool, len(a)+len(b))
	for _, f := range a {
		seen[f] = true
	}
	for _, f := range b {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

func annotate(files []string, thumbSize string) []ResultItem {
	items := make([]ResultItem, len(files))
	for i, f := range files {
		items[i] = ResultItem{File: f, ThumbFile: ThumbnailName(f, thumbSize)}
	}
	return items
}
