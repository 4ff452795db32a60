package search

const DefaultPageSize = 20

// Cursor counts how many evaluated results are exposed. It starts at one
// page and only grows, until Reset.
type Cursor struct {
	pageSize int
	shown    int
}

// NewCursor returns a cursor showing one page. A non-positive page size
// falls back to DefaultPageSize.
func NewCursor(pageSize int) Cursor {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Cursor{pageSize: pageSize, shown: pageSize}
}

func (c Cursor) PageSize() int {
	return c.pageSize
}

func (c Cursor) Shown() int {
	return c.shown
}

// More reveals one more page. There is no upper bound; Page truncates.
func (c *Cursor) More() {
	c.shown += c.pageSize
}

func (c *Cursor) Reset() {
	c.shown = c.pageSize
}

// Page returns results[:min(shown, len(results))].
func (c Cursor) Page(results []ResultItem) []ResultItem {
	return results[:min(c.shown, len(results))]
}

func (c Cursor) Exhausted(total int) bool {
	return c.shown >= total
}
