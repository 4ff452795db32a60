package catalog

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".tif", ".tiff", ".heic"}

func IsImage(name string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(filepath.Ext(name)))
}

// ScanDir walks dir and returns the image files below it as slash-separated
// paths relative to dir, in lexical walk order. Thumbnail directories are
// skipped.
func ScanDir(dir string) ([]Photo, error) {
	var photos []Photo
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), "thumbnails-") {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsImage(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		photos = append(photos, Photo{File: filepath.ToSlash(rel)})
		return nil
	})
	return photos, err
}
