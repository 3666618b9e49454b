package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrEmptyCatalog is returned when a source yields no items. An engine must
// never be built from an empty catalog.
var ErrEmptyCatalog = errors.New("catalog contains no items")

// Source supplies the full ordered catalog. It is consulted at startup and on
// explicit reloads only; the core never fetches data on its own.
type Source interface {
	Load() ([]Item, error)
}

// FileSource reads the catalog from a JSON file on disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads and validates the catalog file.
func (s *FileSource) Load() ([]Item, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", s.Path, err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", s.Path, err)
	}

	if err := Validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Validate checks the ingestion contract: at least one item, every item with
// a non-empty unique id.
func Validate(items []Item) error {
	if len(items) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if it.ID == "" {
			return fmt.Errorf("catalog item %d has no id", i)
		}
		if seen[it.ID] {
			return fmt.Errorf("duplicate catalog id %q", it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}
