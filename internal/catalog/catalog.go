package catalog

import (
	"errors"
	"slices"
)

var (
	ErrNotFound          = errors.New("photo not found")
	ErrEmptyFile         = errors.New("photo file cannot be empty")
	ErrDuplicatePhoto    = errors.New("photo already exists in catalog")
	ErrUnknownPhoto      = errors.New("relation refers to a photo not in the catalog")
	ErrEmptyThumbSize    = errors.New("thumbnail size cannot be empty")
	ErrEmptyTag          = errors.New("tag category and value cannot be empty")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// Tag is a (category, value) pair. Both parts are compared by exact,
// case-sensitive string equality.
type Tag struct {
	Category string `yaml:"category" json:"category"`
	Value    string `yaml:"value" json:"value"`
}

type Photo struct {
	File string `yaml:"file" json:"file"`
}

// Relation assigns one Tag to one photo.
type Relation struct {
	File     string `yaml:"file" json:"file"`
	Category string `yaml:"category" json:"category"`
	Value    string `yaml:"value" json:"value"`
}

func (r Relation) Tag() Tag {
	return Tag{Category: r.Category, Value: r.Value}
}

type Config struct {
	ThumbSize string `yaml:"ThumbSize" json:"ThumbSize"`
}

// Catalog is the in-memory photo database the gallery filters over. It is
// treated as immutable for the duration of a query session.
type Catalog struct {
	Categories []Tag      `yaml:"Categories" json:"Categories"`
	Images     []Photo    `yaml:"Images_data" json:"Images_data"`
	Relations  []Relation `yaml:"Relations" json:"Relations"`
	Config     Config     `yaml:"config" json:"config"`
}

// DefaultThumbSize is used for catalogs created from scratch.
const DefaultThumbSize = "300"

func New(thumbSize string) *Catalog {
	return &Catalog{Config: Config{ThumbSize: thumbSize}}
}

func (c *Catalog) Count() int {
	return len(c.Images)
}

func (c *Catalog) HasPhoto(file string) bool {
	return slices.ContainsFunc(c.Images, func(p Photo) bool { return p.File == file })
}

// CategoriesInOrder returns the distinct categories of Categories in the
// order they first appear.
func (c *Catalog) CategoriesInOrder() []string {
	seen := make(map[string]bool)
	var families []string
	for _, t := range c.Categories {
		if seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		families = append(families, t.Category)
	}
	return families
}

// TagFamilies returns the distinct categories sorted lexically.
func (c *Catalog) TagFamilies() []string {
	families := c.CategoriesInOrder()
	slices.Sort(families)
	return families
}

// Values returns the values known for category, in catalog order.
func (c *Catalog) Values(category string) []string {
	var values []string
	for _, t := range c.Categories {
		if t.Category == category && !slices.Contains(values, t.Value) {
			values = append(values, t.Value)
		}
	}
	return values
}

// TagsOf returns the tags assigned to file in relation order.
func (c *Catalog) TagsOf(file string) []Tag {
	var tags []Tag
	for _, r := range c.Relations {
		if r.File == file {
			tags = append(tags, r.Tag())
		}
	}
	return tags
}

// CountTagged returns how many relations carry the given tag.
func (c *Catalog) CountTagged(category, value string) int {
	n := 0
	for _, r := range c.Relations {
		if r.Category == category && r.Value == value {
			n++
		}
	}
	return n
}

func (c *Catalog) AddPhoto(file string) error {
	if err := ValidateFile(file); err != nil {
		return err
	}
	if c.HasPhoto(file) {
		return ErrDuplicatePhoto
	}
	c.Images = append(c.Images, Photo{File: file})
	return nil
}

// Tag assigns category=value to file and registers the pair in Categories.
// Tagging a photo twice with the same pair is a no-op.
func (c *Catalog) Tag(file, category, value string) error {
	if category == "" || value == "" {
		return ErrEmptyTag
	}
	if !c.HasPhoto(file) {
		return ErrNotFound
	}

	rel := Relation{File: file, Category: category, Value: value}
	if !slices.Contains(c.Relations, rel) {
		c.Relations = append(c.Relations, rel)
	}

	tag := rel.Tag()
	if !slices.Contains(c.Categories, tag) {
		c.Categories = append(c.Categories, tag)
	}
	return nil
}

// Untag removes category=value from file. The pair stays registered in
// Categories so facet pickers keep offering it.
func (c *Catalog) Untag(file, category, value string) error {
	if !c.HasPhoto(file) {
		return ErrNotFound
	}
	rel := Relation{File: file, Category: category, Value: value}
	c.Relations = slices.DeleteFunc(c.Relations, func(r Relation) bool { return r == rel })
	return nil
}

// Clone returns a deep copy of c.
func (c *Catalog) Clone() *Catalog {
	return &Catalog{
		Categories: slices.Clone(c.Categories),
		Images:     slices.Clone(c.Images),
		Relations:  slices.Clone(c.Relations),
		Config:     c.Config,
	}
}
