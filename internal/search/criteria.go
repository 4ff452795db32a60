package search

import "slices"

type BoolOp string

const (
	And BoolOp = "AND"
	Or  BoolOp = "OR"
)

func (op BoolOp) Toggle() BoolOp {
	if op == And {
		return Or
	}
	return And
}

// Criterion is one category's selected values and the operator combining
// them. Values is an ordered set: insertion order, no duplicates.
type Criterion struct {
	Category string
	Values   []string
	BoolOp   BoolOp
}

func (c Criterion) clone() Criterion {
	c.Values = slices.Clone(c.Values)
	return c
}

// Criteria is the query: at most one Criterion per category, in the order
// categories were first filtered on. No Criterion is ever left with empty
// Values. All mutations tolerate unknown categories and values silently.
type Criteria struct {
	items []Criterion
}

func (q *Criteria) indexOf(category string) int {
	return slices.IndexFunc(q.items, func(c Criterion) bool { return c.Category == category })
}

// Add appends value to the category's Criterion, creating it with And when
// absent. A value already selected is ignored.
func (q *Criteria) Add(category, value string) {
	i := q.indexOf(category)
	if i < 0 {
		q.items = append(q.items, Criterion{Category: category, Values: []string{value}, BoolOp: And})
		return
	}
	if !slices.Contains(q.items[i].Values, value) {
		q.items[i].Values = append(q.items[i].Values, value)
	}
}

// Remove drops value from the category's Criterion and removes the
// Criterion once it has no values left.
func (q *Criteria) Remove(category, value string) {
	i := q.indexOf(category)
	if i < 0 {
		return
	}
	values := q.items[i].Values
	if j := slices.Index(values, value); j >= 0 {
		q.items[i].Values = slices.Delete(values, j, j+1)
	}
	if len(q.items[i].Values) == 0 {
		q.items = slices.Delete(q.items, i, i+1)
	}
}

func (q *Criteria) Toggle(category string) {
	for i := range q.items {
		if q.items[i].Category == category {
			q.items[i].BoolOp = q.items[i].BoolOp.Toggle()
		}
	}
}

func (q *Criteria) Reset() {
	q.items = nil
}

func (q *Criteria) Len() int {
	return len(q.items)
}

// Snapshot returns a deep copy of the current criteria.
func (q *Criteria) Snapshot() []Criterion {
	out := make([]Criterion, len(q.items))
	for i, c := range q.items {
		out[i] = c.clone()
	}
	return out
}
