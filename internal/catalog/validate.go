package catalog

import (
	"fmt"
	"strings"
)

func ValidateFile(file string) error {
	if strings.TrimSpace(file) == "" {
		return ErrEmptyFile
	}
	return nil
}

// Validate checks the structural invariants the search core relies on:
// photo files are non-empty and unique, every relation names a known photo
// and a full tag, and a thumbnail size is configured.
func (c *Catalog) Validate() error {
	if strings.TrimSpace(c.Config.ThumbSize) == "" {
		return ErrEmptyThumbSize
	}

	seen := make(map[string]bool, len(c.Images))
	for i, p := range c.Images {
		if err := ValidateFile(p.File); err != nil {
			return fmt.Errorf("Images_data[%d]: %w", i, err)
		}
		if seen[p.File] {
			return fmt.Errorf("%w: %s", ErrDuplicatePhoto, p.File)
		}
		seen[p.File] = true
	}

	for i, r := range c.Relations {
		if r.Category == "" || r.Value == "" {
			return fmt.Errorf("Relations[%d]: %w", i, ErrEmptyTag)
		}
		if !seen[r.File] {
			return fmt.Errorf("%w: %q (Relations[%d])", ErrUnknownPhoto, r.File, i)
		}
	}

	for i, t := range c.Categories {
		if t.Category == "" || t.Value == "" {
			return fmt.Errorf("Categories[%d]: %w", i, ErrEmptyTag)
		}
	}

	return nil
}
