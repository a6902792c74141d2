package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
)

func TestBuildCommand(t *testing.T) {
	contentDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "aranceles-2025.qmd"), []byte(`---
title: "Los aranceles de 2025"
date: "2025-07-15"
description: "Análisis del giro proteccionista"
categories: [comercio internacional]
---

Contenido.
`), 0644))
	output := filepath.Join(t.TempDir(), "search-index.json")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{
		"build",
		"--content", contentDir,
		"--output", output,
		"--config", filepath.Join(t.TempDir(), "config.toml"),
	})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Indexed")

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var catalog domain.Catalog
	require.NoError(t, json.Unmarshal(data, &catalog))
	assert.NoError(t, catalog.Validate())
	assert.Len(t, catalog.Pages, 6)
	assert.Len(t, catalog.Articles, 1)
	assert.Equal(t, "aranceles-2025", catalog.Articles[0].ID)
	assert.NotEmpty(t, catalog.LastUpdated)
}

func TestBuildCommand_MissingContentDirStillBuilds(t *testing.T) {
	output := filepath.Join(t.TempDir(), "search-index.json")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{
		"build",
		"--content", filepath.Join(t.TempDir(), "absent"),
		"--output", output,
		"--config", filepath.Join(t.TempDir(), "config.toml"),
	})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	var catalog domain.Catalog
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &catalog))
	assert.Empty(t, catalog.Articles)
	assert.NotEmpty(t, catalog.Topics)
}
