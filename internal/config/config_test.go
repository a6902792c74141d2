package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("content_dir = \"posts\"\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "posts", cfg.ContentDir)
	assert.Equal(t, Default().IndexPath, cfg.IndexPath)
	assert.Equal(t, Default().ResultLimit, cfg.ResultLimit)
	assert.Equal(t, Default().ListenAddr, cfg.ListenAddr)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("content_dir = [broken"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_ZeroLimitFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("result_limit = 0\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().ResultLimit, cfg.ResultLimit)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Config{
		ContentDir:  "blog/posts",
		IndexPath:   "out/search-index.json",
		SiteURL:     "https://example.org",
		ResultLimit: 25,
		ListenAddr:  "127.0.0.1:9000",
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
