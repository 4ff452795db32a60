package proptest

import (
	"slices"
	"tagfacet/internal/catalog"
	"tagfacet/internal/search"

	"pgregory.net/rapid"
)

// SessionModel is a deliberately naive session: criteria kept in a plain
// slice and results recomputed by scanning every relation per value.
type SessionModel struct {
	cat         *catalog.Catalog
	criteria    []search.Criterion
	pageSize    int
	shown       int
	stale       bool
	results     []string
	evaluations int
}

func newSessionModel(cat *catalog.Catalog, pageSize int) *SessionModel {
	return &SessionModel{
		cat:      cat,
		pageSize: pageSize,
		shown:    pageSize,
		stale:    true,
	}
}

func (m *SessionModel) find(category string) int {
	for i, c := range m.criteria {
		if c.Category == category {
			return i
		}
	}
	return -1
}

func (m *SessionModel) Add(category, value string) {
	m.stale = true
	i := m.find(category)
	if i < 0 {
		m.criteria = append(m.criteria, search.Criterion{Category: category, Values: []string{value}, BoolOp: search.And})
		return
	}
	if !slices.Contains(m.criteria[i].Values, value) {
		m.criteria[i].Values = append(m.criteria[i].Values, value)
	}
}

func (m *SessionModel) Remove(category, value string) {
	m.stale = true
	i := m.find(category)
	if i < 0 {
		return
	}
	var kept []string
	for _, v := range m.criteria[i].Values {
		if v != value {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		m.criteria = append(m.criteria[:i], m.criteria[i+1:]...)
		return
	}
	m.criteria[i].Values = kept
}

func (m *SessionModel) Toggle(category string) {
	m.stale = true
	if i := m.find(category); i >= 0 {
		if m.criteria[i].BoolOp == search.And {
			m.criteria[i].BoolOp = search.Or
		} else {
			m.criteria[i].BoolOp = search.And
		}
	}
}

func (m *SessionModel) Reset() {
	m.criteria = nil
	m.shown = m.pageSize
	m.stale = true
}

func (m *SessionModel) More() {
	m.shown += m.pageSize
}

func (m *SessionModel) Criteria() []search.Criterion {
	out := make([]search.Criterion, len(m.criteria))
	for i, c := range m.criteria {
		out[i] = search.Criterion{Category: c.Category, Values: slices.Clone(c.Values), BoolOp: c.BoolOp}
	}
	return out
}

func (m *SessionModel) read() {
	if !m.stale {
		return
	}
	m.results = naiveEvaluate(m.cat, m.criteria)
	m.stale = false
	m.evaluations++
	m.shown = m.pageSize
}

func (m *SessionModel) Page() []string {
	m.read()
	return m.results[:min(m.shown, len(m.results))]
}

func (m *SessionModel) Exhausted() bool {
	m.read()
	return m.shown >= len(m.results)
}

func (m *SessionModel) Total() int {
	m.read()
	return len(m.results)
}

// hasTag reports whether any relation assigns category=value to file.
func hasTag(cat *catalog.Catalog, file, category, value string) bool {
	for _, r := range cat.Relations {
		if r.File == file && r.Category == category && r.Value == value {
			return true
		}
	}
	return false
}

func satisfies(cat *catalog.Catalog, file string, c search.Criterion) bool {
	if c.BoolOp == search.Or {
		return slices.ContainsFunc(c.Values, func(v string) bool { return hasTag(cat, file, c.Category, v) })
	}
	return !slices.ContainsFunc(c.Values, func(v string) bool { return !hasTag(cat, file, c.Category, v) })
}

// naiveEvaluate orders candidates by the relations of the first criterion's
// values, value by value, then keeps those satisfying every criterion.
func naiveEvaluate(cat *catalog.Catalog, criteria []search.Criterion) []string {
	if len(criteria) == 0 {
		var all []string
		for _, p := range cat.Images {
			all = append(all, p.File)
		}
		return all
	}

	var candidates []string
	first := criteria[0]
	for _, v := range first.Values {
		for _, r := range cat.Relations {
			if r.Category == first.Category && r.Value == v && !slices.Contains(candidates, r.File) {
				candidates = append(candidates, r.File)
			}
		}
	}

	var out []string
	for _, f := range candidates {
		if !slices.ContainsFunc(criteria, func(c search.Criterion) bool { return !satisfies(cat, f, c) }) {
			out = append(out, f)
		}
	}
	return out
}

// CheckedSession drives a real session and the model in lockstep and fails
// on the first divergence.
type CheckedSession struct {
	real  *search.Session
	model *SessionModel
	cat   *catalog.Catalog
	t     *rapid.T
}

func NewCheckedSession(t *rapid.T, cat *catalog.Catalog, pageSize int) *CheckedSession {
	return &CheckedSession{
		real:  search.NewSession(cat, search.WithPageSize(pageSize)),
		model: newSessionModel(cat, pageSize),
		cat:   cat,
		t:     t,
	}
}

func (c *CheckedSession) Model() *SessionModel {
	return c.model
}

func (c *CheckedSession) checkCriteria() {
	c.t.Helper()
	got := c.real.Criteria()
	verifyCriteriaInvariants(c.t, got)
	assertCriteriaEqual(c.t, c.model.Criteria(), got)
	if !c.real.Stale() {
		c.t.Fatalf("session not stale after mutation")
	}
}

func (c *CheckedSession) AddCriterion(category, value string) {
	c.real.AddCriterion(category, value)
	c.model.Add(category, value)
	c.checkCriteria()
}

func (c *CheckedSession) RemoveCriterion(category, value string) {
	c.real.RemoveCriterion(category, value)
	c.model.Remove(category, value)
	c.checkCriteria()
}

func (c *CheckedSession) ToggleBoolOp(category string) {
	c.real.ToggleBoolOp(category)
	c.model.Toggle(category)
	c.checkCriteria()
}

func (c *CheckedSession) Reset() {
	c.real.Reset()
	c.model.Reset()
	c.checkCriteria()
}

func (c *CheckedSession) MorePhotos() {
	c.real.MorePhotos()
	c.model.More()
}

func (c *CheckedSession) checkEvaluations() {
	c.t.Helper()
	if got, want := c.real.Evaluations(), c.model.evaluations; got != want {
		c.t.Fatalf("evaluation count divergence: real=%d model=%d", got, want)
	}
}

func (c *CheckedSession) Photos() []search.ResultItem {
	page := c.real.Photos()
	assertFilesEqual(c.t, c.model.Page(), files(page))
	verifyResultInvariants(c.t, c.cat, c.cat.Config.ThumbSize, page)
	c.checkEvaluations()
	return page
}

func (c *CheckedSession) AllPhotosDisplayed() bool {
	got := c.real.AllPhotosDisplayed()
	if want := c.model.Exhausted(); got != want {
		c.t.Fatalf("AllPhotosDisplayed divergence: real=%v model=%v", got, want)
	}
	c.checkEvaluations()
	return got
}

func (c *CheckedSession) Total() int {
	got := c.real.Total()
	if want := c.model.Total(); got != want {
		c.t.Fatalf("Total divergence: real=%d model=%d", got, want)
	}
	c.checkEvaluations()
	return got
}

func (c *CheckedSession) CriteriaForDisplay() []search.DisplayCriterion {
	view := c.real.CriteriaForDisplay()
	verifyDisplayInvariants(c.t, c.real.Criteria(), view)
	return view
}
