package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gallerySchema = `
CREATE TABLE IF NOT EXISTS files (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	filename TEXT,
	path TEXT,
	description TEXT DEFAULT ''
);
CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE
);
CREATE TABLE IF NOT EXISTS tags (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	category_id INTEGER,
	value TEXT,
	UNIQUE(category_id, value)
);
CREATE TABLE IF NOT EXISTS file_tags (
	file_id INTEGER,
	tag_id INTEGER,
	UNIQUE(file_id, tag_id)
);
`

func newGalleryDB(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(gallerySchema)
	require.NoError(t, err)
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return path
}

func TestImportSQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("imports files, tags and relations", func(t *testing.T) {
		path := newGalleryDB(t,
			`INSERT INTO files (id, filename, path) VALUES (1, 'a.jpg', '/up/a.jpg'), (2, 'b.jpg', '/up/b.jpg'), (3, 'c.jpg', '/up/c.jpg')`,
			`INSERT INTO categories (id, name) VALUES (1, 'color'), (2, 'year')`,
			`INSERT INTO tags (id, category_id, value) VALUES (1, 1, 'red'), (2, 1, 'blue'), (3, 2, '2020')`,
			`INSERT INTO file_tags (file_id, tag_id) VALUES (1, 1), (1, 3), (2, 1), (3, 2)`,
		)

		cat, err := ImportSQLite(ctx, path, "300")

		require.NoError(t, err)
		assert.Equal(t, []Photo{{File: "a.jpg"}, {File: "b.jpg"}, {File: "c.jpg"}}, cat.Images)
		assert.Equal(t, []Tag{
			{Category: "color", Value: "blue"},
			{Category: "color", Value: "red"},
			{Category: "year", Value: "2020"},
		}, cat.Categories)
		assert.Equal(t, []Relation{
			{File: "a.jpg", Category: "color", Value: "red"},
			{File: "a.jpg", Category: "year", Value: "2020"},
			{File: "b.jpg", Category: "color", Value: "red"},
			{File: "c.jpg", Category: "color", Value: "blue"},
		}, cat.Relations)
		assert.Equal(t, "300", cat.Config.ThumbSize)
	})

	t.Run("skips duplicate filenames and their tags", func(t *testing.T) {
		path := newGalleryDB(t,
			`INSERT INTO files (id, filename) VALUES (1, 'a.jpg'), (2, 'a.jpg')`,
			`INSERT INTO categories (id, name) VALUES (1, 'color')`,
			`INSERT INTO tags (id, category_id, value) VALUES (1, 1, 'red'), (2, 1, 'blue')`,
			`INSERT INTO file_tags (file_id, tag_id) VALUES (1, 1), (2, 2)`,
		)

		cat, err := ImportSQLite(ctx, path, "300")

		require.NoError(t, err)
		assert.Equal(t, []Photo{{File: "a.jpg"}}, cat.Images)
		assert.Equal(t, []Tag{{Category: "color", Value: "red"}}, cat.TagsOf("a.jpg"))
	})

	t.Run("empty database yields empty catalog", func(t *testing.T) {
		cat, err := ImportSQLite(ctx, newGalleryDB(t), "300")

		require.NoError(t, err)
		assert.Equal(t, 0, cat.Count())
	})

	t.Run("missing thumb size fails validation", func(t *testing.T) {
		_, err := ImportSQLite(ctx, newGalleryDB(t), "")

		assert.ErrorIs(t, err, ErrEmptyThumbSize)
	})

	t.Run("missing database returns error", func(t *testing.T) {
		_, err := ImportSQLite(ctx, filepath.Join(t.TempDir(), "missing.db"), "300")

		assert.Error(t, err)
	})
}
