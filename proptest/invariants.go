package proptest

import (
	"tagfacet/internal/catalog"
	"tagfacet/internal/search"

	"pgregory.net/rapid"
)

// verifyResultInvariants checks what every result list must satisfy
// regardless of the query: each item names a catalog photo exactly once and
// carries the thumbnail derived from thumbSize.
func verifyResultInvariants(t *rapid.T, cat *catalog.Catalog, thumbSize string, items []search.ResultItem) {
	t.Helper()
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if !cat.HasPhoto(item.File) {
			t.Fatalf("result %d: %q is not a catalog photo", i, item.File)
		}
		if seen[item.File] {
			t.Fatalf("result %d: %q appears more than once", i, item.File)
		}
		seen[item.File] = true

		if item.ThumbFile == "" {
			t.Fatalf("result %d: %q has no thumbnail", i, item.File)
		}
		if want := search.ThumbnailName(item.File, thumbSize); item.ThumbFile != want {
			t.Fatalf("result %d: thumbnail %q, want %q", i, item.ThumbFile, want)
		}
	}
}

// verifyCriteriaInvariants checks the shape of a query: one Criterion per
// category, never empty, no repeated values, a known operator.
func verifyCriteriaInvariants(t *rapid.T, criteria []search.Criterion) {
	t.Helper()
	categories := make(map[string]bool, len(criteria))
	for _, c := range criteria {
		if categories[c.Category] {
			t.Fatalf("category %q has more than one criterion", c.Category)
		}
		categories[c.Category] = true

		if len(c.Values) == 0 {
			t.Fatalf("criterion %q has no values", c.Category)
		}
		values := make(map[string]bool, len(c.Values))
		for _, v := range c.Values {
			if values[v] {
				t.Fatalf("criterion %q repeats value %q", c.Category, v)
			}
			values[v] = true
		}

		if c.BoolOp != search.And && c.BoolOp != search.Or {
			t.Fatalf("criterion %q has operator %q", c.Category, c.BoolOp)
		}
	}
}

// verifyDisplayInvariants checks a display projection against the query it
// was taken from.
func verifyDisplayInvariants(t *rapid.T, criteria []search.Criterion, view []search.DisplayCriterion) {
	t.Helper()
	if len(view) != len(criteria) {
		t.Fatalf("display has %d criteria, query has %d", len(view), len(criteria))
	}
	for i, d := range view {
		if d.OnlyOne != (len(d.Values) == 1) {
			t.Fatalf("display %q: OnlyOne=%v with %d values", d.Category, d.OnlyOne, len(d.Values))
		}
		c := criteria[i]
		if d.Category != c.Category || d.BoolOp != c.BoolOp || len(d.Values) != len(c.Values) {
			t.Fatalf("display %d diverges from query: %+v vs %+v", i, d, c)
		}
	}
}
