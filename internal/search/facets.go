package search

import "slices"

// DisplayCriterion is a render-ready copy of a Criterion for facet panels.
type DisplayCriterion struct {
	Category string   `json:"category"`
	Values   []string `json:"values"`
	BoolOp   BoolOp   `json:"boolOp"`
	// OnlyOne is set when a single value is selected, in which case the
	// operator has no effect and UIs usually hide its toggle.
	OnlyOne  bool     `json:"onlyOne"`
}

// Project returns an independent display copy of criteria; mutating the
// result never affects the query it came from.
func Project(criteria []Criterion) []DisplayCriterion {
	out := make([]DisplayCriterion, len(criteria))
	for i, c := range criteria {
		out[i] = DisplayCriterion{
			Category: c.Category,
			Values:   slices.Clone(c.Values),
			BoolOp:   c.BoolOp,
			OnlyOne:  len(c.Values) == 1,
		}
	}
	return out
}
