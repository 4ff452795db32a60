package proptest

import (
	"slices"
	"tagfacet/internal/search"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func files(items []search.ResultItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.File
	}
	return out
}

func assertFilesEqual(t *rapid.T, expected, actual []string) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

// assertSameFiles compares two results ignoring order.
func assertSameFiles(t *rapid.T, expected, actual []string) {
	t.Helper()
	opts := cmp.Options{
		cmpopts.EquateEmpty(),
		cmpopts.SortSlices(func(a, b string) bool { return a < b }),
	}
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Fatalf("result set mismatch (-want +got):\n%s", diff)
	}
}

func assertSubset(t *rapid.T, subset, superset []string) {
	t.Helper()
	for _, f := range subset {
		if !slices.Contains(superset, f) {
			t.Fatalf("subset contains %q not in superset %v", f, superset)
		}
	}
}

func assertPrefix(t *rapid.T, prefix, full []string) {
	t.Helper()
	if len(prefix) > len(full) {
		t.Fatalf("prefix of length %d longer than list of length %d", len(prefix), len(full))
	}
	if diff := cmp.Diff(full[:len(prefix)], prefix, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("page is not a prefix of the full result (-want +got):\n%s", diff)
	}
}

func assertCriteriaEqual(t *rapid.T, expected, actual []search.Criterion) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("criteria mismatch (-want +got):\n%s", diff)
	}
}
