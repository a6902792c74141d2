// Package file reads and writes the catalog artifact as a JSON file on
// local disk. Writes are atomic: the artifact is staged in a temp file
// and renamed into place so a crashed build never leaves a truncated
// catalog behind.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driven"
)

var (
	_ driven.CatalogSource = (*Store)(nil)
	_ driven.CatalogWriter = (*Store)(nil)
)

// Store is a catalog source and writer backed by a single JSON file.
type Store struct {
	path string
}

// NewStore creates a store for the artifact at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the artifact location.
func (s *Store) Path() string {
	return s.path
}

// Fetch reads and decodes the artifact. Any read or decode error is
// returned wrapped; no partial catalog is ever produced.
func (s *Store) Fetch(_ context.Context) (*domain.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, s.path)
		}
		return nil, fmt.Errorf("reading catalog %s: %w", s.path, err)
	}
	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", s.path, err)
	}
	return &catalog, nil
}

// Write encodes the catalog and atomically replaces the artifact.
func (s *Store) Write(_ context.Context, catalog *domain.Catalog) error {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
