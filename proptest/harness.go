package proptest

import (
	"os"
	"path/filepath"
	"slices"
	"tagfacet/internal/catalog"
	"tagfacet/internal/search"
	"testing"

	"pgregory.net/rapid"
)

const (
	minPhotos        = 0
	maxPhotos        = 25
	typicalMinPhotos = 1
	typicalMaxPhotos = 15
	maxRelations     = 60
	maxUnusedTags    = 3
)

type CatalogGenOpt func(*catalogGenConfig)

type catalogGenConfig struct {
	minPhotos int
	maxPhotos int
	thumbSize *string
}

func WithPhotos(minCount, maxCount int) CatalogGenOpt {
	return func(c *catalogGenConfig) {
		c.minPhotos = minCount
		c.maxPhotos = maxCount
	}
}

func WithThumbSize(size string) CatalogGenOpt {
	return func(c *catalogGenConfig) {
		c.thumbSize = &size
	}
}

// GenCatalog draws a valid catalog: distinct photo files, relations that
// only name those files (duplicates allowed, as in hand-edited galleries),
// and a Categories list holding every related tag plus a few nobody uses.
func GenCatalog(t *rapid.T, opts ...CatalogGenOpt) *catalog.Catalog {
	cfg := &catalogGenConfig{minPhotos: minPhotos, maxPhotos: maxPhotos}
	for _, opt := range opts {
		opt(cfg)
	}

	var size string
	if cfg.thumbSize != nil {
		size = *cfg.thumbSize
	} else {
		size = thumbSizeGen.Draw(t, "thumbSize")
	}
	cat := catalog.New(size)

	files := rapid.SliceOfNDistinct(photoFileGen, cfg.minPhotos, cfg.maxPhotos, rapid.ID[string]).Draw(t, "files")
	for _, f := range files {
		cat.Images = append(cat.Images, catalog.Photo{File: f})
	}

	if len(files) > 0 {
		n := rapid.IntRange(0, maxRelations).Draw(t, "numRelations")
		for range n {
			file := rapid.SampledFrom(files).Draw(t, "relationFile")
			tag := tagGen().Draw(t, "relationTag")
			cat.Relations = append(cat.Relations, catalog.Relation{File: file, Category: tag.Category, Value: tag.Value})
		}
	}

	for _, r := range cat.Relations {
		if !slices.Contains(cat.Categories, r.Tag()) {
			cat.Categories = append(cat.Categories, r.Tag())
		}
	}
	unused := rapid.IntRange(0, maxUnusedTags).Draw(t, "numUnusedTags")
	for range unused {
		tag := tagGen().Draw(t, "unusedTag")
		if !slices.Contains(cat.Categories, tag) {
			cat.Categories = append(cat.Categories, tag)
		}
	}

	if err := cat.Validate(); err != nil {
		t.Fatalf("generated invalid catalog: %v", err)
	}
	return cat
}

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenCatalog(opts ...CatalogGenOpt) *catalog.Catalog {
	return GenCatalog(h.T, opts...)
}

type SessionHarness struct {
	Harness
	Catalog  *catalog.Catalog
	PageSize int
	Session  *search.Session
}

// DrawTag draws a tag to filter on, usually one cat knows.
func DrawTag(t *rapid.T, cat *catalog.Catalog) catalog.Tag {
	if len(cat.Categories) > 0 && rapid.Bool().Draw(t, "fromCatalog") {
		return rapid.SampledFrom(cat.Categories).Draw(t, "catalogTag")
	}
	return queryTagGen().Draw(t, "queryTag")
}

func (h *SessionHarness) GenTag() catalog.Tag {
	return DrawTag(h.T, h.Catalog)
}

// AddCriteria applies between minCount and maxCount random AddCriterion
// calls and returns the tags used.
func (h *SessionHarness) AddCriteria(minCount, maxCount int) []catalog.Tag {
	var added []catalog.Tag
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numCriteria")
	for range n {
		tag := h.GenTag()
		h.Session.AddCriterion(tag.Category, tag.Value)
		added = append(added, tag)
	}
	return added
}

func RunWithSession(t *testing.T, fn func(h *SessionHarness), opts ...CatalogGenOpt) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		cat := GenCatalog(rt, opts...)
		pageSize := pageSizeGen.Draw(rt, "pageSize")

		harness := &SessionHarness{
			Harness: Harness{
				T:   rt,
				Dir: iterDir,
			},
			Catalog:  cat,
			PageSize: pageSize,
			Session:  search.NewSession(cat, search.WithPageSize(pageSize)),
		}

		fn(harness)
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		harness := &Harness{
			T:   rt,
			Dir: iterDir,
		}

		fn(harness)
	})
}
