package search

import "strings"

// ThumbnailName derives the gallery thumbnail path for a photo file:
//
//	ThumbnailName("photo.jpg", "300") == "thumbnails-300/photo-300.jpg"
//
// Only the last dot-separated segment is the extension. The segments before
// it are concatenated without their dots ("a.b.jpg" gives "ab-300.jpg"),
// which matches the names of thumbnails the gallery export already produced.
// A name without any dot has no extension and keeps its whole name as the
// base: "README" gives "thumbnails-300/README-300". A trailing dot is an
// empty extension and is dropped: "photo." gives "thumbnails-300/photo-300".
func ThumbnailName(file, thumbSize string) string {
	var b strings.Builder
	b.WriteString("thumbnails-")
	b.WriteString(thumbSize)
	b.WriteString("/")

	segments := strings.Split(file, ".")
	if len(segments) == 1 {
		b.WriteString(file)
		b.WriteString("-")
		b.WriteString(thumbSize)
		return b.String()
	}

	last := len(segments) - 1
	for _, s := range segments[:last] {
		b.WriteString(s)
	}
	b.WriteString("-")
	b.WriteString(thumbSize)
	if segments[last] == "" {
		return b.String()
	}
	b.WriteString(".")
	b.WriteString(segments[last])
	return b.String()
}
