package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// YAMLStore reads and writes a catalog file. YAML and JSON files are read
// directly; a JavaScript gallery export ("var photosDatabase = {...};") is
// unwrapped first.
type YAMLStore struct {
	path string
	mu   sync.Mutex
}

func NewYAMLStore(path string) (*YAMLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &YAMLStore{path: path}, nil
}

func (s *YAMLStore) Path() string {
	return s.path
}

// Load reads and validates the catalog. A missing file yields ErrNotFound.
func (s *YAMLStore) Load() (*Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %q: %w", s.path, err)
	}
	return cat, nil
}

func (s *YAMLStore) Save(cat *Catalog) error {
	if err := cat.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(cat)
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

// Parse decodes a catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	data = unwrapScript(data)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrUnsupportedFormat
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// unwrapScript strips a leading "var name =" assignment and a trailing
// semicolon so the object literal can be decoded as JSON.
func unwrapScript(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	if !bytes.HasPrefix(trimmed, []byte("var ")) {
		return data
	}
	eq := bytes.IndexByte(trimmed, '=')
	if eq < 0 {
		return data
	}
	body := bytes.TrimSpace(trimmed[eq+1:])
	body = bytes.TrimSuffix(body, []byte(";"))
	return body
}
