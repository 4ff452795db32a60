package proptest

import (
	"fmt"
	"tagfacet/internal/catalog"
	"tagfacet/internal/search"

	"pgregory.net/rapid"
)

var (
	iterDirGen   = rapid.StringMatching(`[a-z]{8}`)
	photoFileGen = rapid.StringMatching(`[a-z][a-z0-9_-]{0,8}(\.[a-z]{1,3}){0,2}`)
	thumbSizeGen = rapid.SampledFrom([]string{"150", "300", "600", "1024"})
	pageSizeGen  = rapid.IntRange(1, 8)
	boolOpGen    = rapid.SampledFrom([]search.BoolOp{search.And, search.Or})
)

// tagPool keeps categories and values small so random relations overlap
// and criteria actually select something.
var tagPool = map[string][]string{
	"color":  {"red", "blue", "green", "white"},
	"year":   {"2019", "2020", "2021"},
	"place":  {"beach", "city", "forest", "mountain", "lake"},
	"season": {"summer", "winter"},
}

var tagCategories = []string{"color", "year", "place", "season"}

func categoryGen() *rapid.Generator[string] {
	return rapid.SampledFrom(tagCategories)
}

func tagGen() *rapid.Generator[catalog.Tag] {
	return rapid.Custom(func(t *rapid.T) catalog.Tag {
		category := categoryGen().Draw(t, "category")
		value := rapid.SampledFrom(tagPool[category]).Draw(t, "value")
		return catalog.Tag{Category: category, Value: value}
	})
}

// queryTagGen mostly draws known tags and occasionally one no photo can
// carry.
func queryTagGen() *rapid.Generator[catalog.Tag] {
	return rapid.OneOf(
		tagGen(),
		tagGen(),
		tagGen(),
		rapid.Custom(func(t *rapid.T) catalog.Tag {
			return catalog.Tag{
				Category: categoryGen().Draw(t, "category"),
				Value:    rapid.StringMatching(`zz[a-z]{1,4}`).Draw(t, "unknownValue"),
			}
		}),
		rapid.Just(catalog.Tag{Category: "lens", Value: "50mm"}),
	)
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("Images_data: [unclosed"),
		rapid.Just("config: {unclosed"),
		rapid.Just("- file\n  bad indent"),
		rapid.Just("\t\ttabs: everywhere"),
		rapid.Just("config:\n  ThumbSize: \"unmatched quote"),
		rapid.Just("var photosDatabase = {\"Images_data\": [;"),
		rapid.Just("var photosDatabase = ;"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

// invalidCatalog is a well-formed document that breaks a catalog rule.
type invalidCatalog struct {
	doc     string
	wantErr error
}

func invalidCatalogGen() *rapid.Generator[invalidCatalog] {
	return rapid.Custom(func(t *rapid.T) invalidCatalog {
		file := photoFileGen.Draw(t, "file")
		size := thumbSizeGen.Draw(t, "thumbSize")

		cases := []invalidCatalog{
			{
				doc:     fmt.Sprintf("Images_data:\n  - file: %q\n", file),
				wantErr: catalog.ErrEmptyThumbSize,
			},
			{
				doc:     fmt.Sprintf("config:\n  ThumbSize: %q\nImages_data:\n  - file: \"\"\n", size),
				wantErr: catalog.ErrEmptyFile,
			},
			{
				doc:     fmt.Sprintf("config:\n  ThumbSize: %q\nImages_data:\n  - file: %q\n  - file: %q\n", size, file, file),
				wantErr: catalog.ErrDuplicatePhoto,
			},
			{
				doc: fmt.Sprintf("config:\n  ThumbSize: %q\nImages_data:\n  - file: %q\nRelations:\n  - file: %q\n    category: color\n    value: red\n",
					size, file, file+"x"),
				wantErr: catalog.ErrUnknownPhoto,
			},
			{
				doc: fmt.Sprintf("config:\n  ThumbSize: %q\nImages_data:\n  - file: %q\nRelations:\n  - file: %q\n    category: color\n",
					size, file, file),
				wantErr: catalog.ErrEmptyTag,
			},
			{
				doc:     fmt.Sprintf("config:\n  ThumbSize: %q\nCategories:\n  - category: \"\"\n    value: red\n", size),
				wantErr: catalog.ErrEmptyTag,
			},
		}
		return rapid.SampledFrom(cases).Draw(t, "case")
	})
}
