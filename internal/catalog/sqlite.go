package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"path"

	_ "github.com/mattn/go-sqlite3"
)

// ImportSQLite builds a catalog from a tag gallery database (files,
// categories, tags, file_tags). Photos keep database id order; a file whose
// name is already in the catalog is skipped along with its tags.
func ImportSQLite(ctx context.Context, dbPath, thumbSize string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	cat := New(thumbSize)
	ids := make(map[int64]string)

	if err := importFiles(ctx, db, cat, ids); err != nil {
		return nil, err
	}
	if err := importCategories(ctx, db, cat); err != nil {
		return nil, err
	}
	if err := importRelations(ctx, db, cat, ids); err != nil {
		return nil, err
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func importFiles(ctx context.Context, db *sql.DB, cat *Catalog, ids map[int64]string) error {
	rows, err := db.QueryContext(ctx, `SELECT id, COALESCE(filename, '') FROM files ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       int64
			filename string
		)
		if err := rows.Scan(&id, &filename); err != nil {
			return fmt.Errorf("failed to scan file row: %w", err)
		}
		if filename == "" {
			continue
		}
		name := path.Base(filename)
		if cat.HasPhoto(name) {
			continue
		}
		cat.Images = append(cat.Images, Photo{File: name})
		ids[id] = name
	}
	return rows.Err()
}

func importCategories(ctx context.Context, db *sql.DB, cat *Catalog) error {
	rows, err := db.QueryContext(ctx, `
		SELECT c.name, t.value
		FROM tags t
		JOIN categories c ON c.id = t.category_id
		ORDER BY c.name, t.value
	`)
	if err != nil {
		return fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.Category, &t.Value); err != nil {
			return fmt.Errorf("failed to scan tag row: %w", err)
		}
		if t.Category == "" || t.Value == "" {
			continue
		}
		cat.Categories = append(cat.Categories, t)
	}
	return rows.Err()
}

func importRelations(ctx context.Context, db *sql.DB, cat *Catalog, ids map[int64]string) error {
	rows, err := db.QueryContext(ctx, `
		SELECT ft.file_id, c.name, t.value
		FROM file_tags ft
		JOIN tags t ON t.id = ft.tag_id
		JOIN categories c ON c.id = t.category_id
		ORDER BY ft.file_id, ft.rowid
	`)
	if err != nil {
		return fmt.Errorf("failed to query file tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			fileID int64
			r      Relation
		)
		if err := rows.Scan(&fileID, &r.Category, &r.Value); err != nil {
			return fmt.Errorf("failed to scan file tag row: %w", err)
		}
		file, ok := ids[fileID]
		if !ok || r.Category == "" || r.Value == "" {
			continue
		}
		r.File = file
		cat.Relations = append(cat.Relations, r)
	}
	return rows.Err()
}
