package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
)

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Pages: []domain.Record{
			{
				ID:        "intro",
				Title:     "Introducción",
				URL:       "index.html",
				Type:      domain.TypePage,
				Available: true,
			},
		},
		Topics: []domain.Record{
			{
				ID:          "3a36",
				Title:       "Política Monetaria",
				URL:         "temario/tercer-ejercicio/tema_36.html",
				Type:        domain.TypeTopic,
				ThemeNumber: "3.A.36",
				Available:   true,
			},
		},
		LastUpdated: "2025-08-01T12:30:00Z",
	}
}

func TestStore_WriteThenFetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	store := NewStore(path)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, testCatalog()))

	got, err := store.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, testCatalog(), got)
}

func TestStore_WriteCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "deep", "search-index.json")
	store := NewStore(path)

	require.NoError(t, store.Write(context.Background(), testCatalog()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_WriteReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	store := NewStore(path)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, testCatalog()))

	updated := testCatalog()
	updated.LastUpdated = "2025-08-02T00:00:00Z"
	require.NoError(t, store.Write(ctx, updated))

	got, err := store.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-02T00:00:00Z", got.LastUpdated)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestStore_FetchMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))

	_, err := store.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestStore_FetchMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewStore(path).Fetch(context.Background())
	assert.Error(t, err)
}
