package search

import (
	"log/slog"
	"slices"
	"sync"
	"tagfacet/internal/catalog"
	"tagfacet/internal/logging"
	"time"

	"github.com/google/uuid"
)

// Observer receives evaluation events. metrics.Recorder implements it.
type Observer interface {
	ObserveEvaluation(d time.Duration, results int)
	ObserveCacheHit()
}

type Option func(*Session)

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func WithPageSize(n int) Option {
	return func(s *Session) {
		s.cursor = NewCursor(n)
	}
}

// WithThumbSize overrides the catalog's configured thumbnail size. An empty
// size keeps the catalog's.
func WithThumbSize(size string) Option {
	return func(s *Session) {
		s.thumbSize = size
	}
}

func WithObserver(o Observer) Option {
	return func(s *Session) {
		s.observer = o
	}
}

// Session owns one user's query over a catalog: the criteria, the cached
// evaluation and the display cursor. Mutations only mark the cache stale;
// the next read recomputes it. Every method is safe for concurrent use, and
// the stale check and cache write happen under one lock.
type Session struct {
	mu sync.Mutex

	id        string
	cat       *catalog.Catalog
	thumbSize string
	criteria  Criteria
	results   []ResultItem
	stale     bool
	cursor    Cursor

	evaluations int
	log         *slog.Logger
	observer    Observer
}

func NewSession(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		id:     uuid.New().String(),
		cat:    cat,
		stale:  true,
		cursor: NewCursor(DefaultPageSize),
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session", s.id)
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) AddCriterion(category, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria.Add(category, value)
	s.stale = true
	s.log.Debug("criterion added", "category", category, "value", value)
}

func (s *Session) RemoveCriterion(category, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria.Remove(category, value)
	s.stale = true
	s.log.Debug("criterion removed", "category", category, "value", value)
}

func (s *Session) ToggleBoolOp(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria.Toggle(category)
	s.stale = true
	s.log.Debug("operator toggled", "category", category)
}

// Reset clears the query and rewinds the cursor to one page.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria.Reset()
	s.cursor.Reset()
	s.stale = true
	s.log.Debug("criteria reset")
}

// ReplaceCatalog swaps in a reloaded catalog, keeping the criteria.
func (s *Session) ReplaceCatalog(cat *catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cat = cat
	s.stale = true
	if cat != nil {
		s.log.Info("catalog replaced", "photos", cat.Count())
	}
}

// Photos returns the visible page of results, re-evaluating first if the
// query or catalog changed since the last read. A re-evaluation rewinds the
// cursor to one page.
func (s *Session) Photos() []ResultItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refresh()
	return slices.Clone(s.cursor.Page(s.results))
}

// MorePhotos reveals one more page on the next read.
func (s *Session) MorePhotos() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor.More()
}

func (s *Session) AllPhotosDisplayed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refresh()
	return s.cursor.Exhausted(len(s.results))
}

// Total is the number of photos matching the query.
func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refresh()
	return len(s.results)
}

func (s *Session) CriteriaForDisplay() []DisplayCriterion {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Project(s.criteria.Snapshot())
}

func (s *Session) Criteria() []Criterion {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.criteria.Snapshot()
}

// Evaluations counts how many times the result list has been recomputed.
func (s *Session) Evaluations() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.evaluations
}

func (s *Session) Stale() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stale
}

func (s *Session) Catalog() *catalog.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cat
}

// Config returns the effective catalog configuration, including a thumbnail
// size override.
func (s *Session) Config() catalog.Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cat := s.effectiveCatalog(); cat != nil {
		return cat.Config
	}
	return catalog.Config{ThumbSize: s.thumbSize}
}

func (s *Session) PageSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursor.PageSize()
}

func (s *Session) effectiveCatalog() *catalog.Catalog {
	if s.cat == nil {
		return nil
	}
	if s.thumbSize == "" || s.thumbSize == s.cat.Config.ThumbSize {
		return s.cat
	}
	view := *s.cat
	view.Config.ThumbSize = s.thumbSize
	return &view
}

// refresh must be called with s.mu held.
func (s *Session) refresh() {
	if !s.stale {
		if s.observer != nil {
			s.observer.ObserveCacheHit()
		}
		return
	}

	start := time.Now()
	s.results = Evaluate(s.effectiveCatalog(), s.criteria.Snapshot())
	elapsed := time.Since(start)

	s.stale = false
	s.evaluations++
	s.cursor.Reset()

	s.log.Debug("photos evaluated",
		"criteria", s.criteria.Len(),
		"results", len(s.results),
		"duration", elapsed)
	if s.observer != nil {
		s.observer.ObserveEvaluation(elapsed, len(s.results))
	}
}
