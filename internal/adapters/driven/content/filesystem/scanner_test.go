package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScanner_Documents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "aranceles-2025.qmd", `---
title: "Los aranceles de 2025"
date: "2025-07-15"
description: "Análisis del giro proteccionista"
categories: [comercio internacional, economía]
---

El contenido del artículo.
`)
	writeFile(t, dir, "bce-tipos.md", `---
title: "El BCE y los tipos de interés"
date: "2025-06-01"
slug: bce-y-tipos
categories: economía
theme: 3.A.36
---

Cuerpo.
`)
	writeFile(t, dir, "notas.txt", "no es una fuente")

	docs, err := NewScanner(dir).Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	newest := docs[0]
	assert.Equal(t, "Los aranceles de 2025", newest.Title)
	assert.Equal(t, "2025-07-15", newest.Date)
	assert.Equal(t, "aranceles-2025", newest.Slug, "slug falls back to file name")
	assert.Equal(t, "comercio internacional", newest.Category)

	older := docs[1]
	assert.Equal(t, "bce-y-tipos", older.Slug, "explicit slug wins")
	assert.Equal(t, "economía", older.Category, "scalar categories accepted")
	assert.Equal(t, "3.A.36", older.ThemeNumber)
}

func TestScanner_SortsNewestFirstThenSlug(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"beta", "alfa"} {
		writeFile(t, dir, name+".md", `---
title: "T"
date: "2025-01-01"
---
`)
	}

	docs, err := NewScanner(dir).Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "alfa", docs[0].Slug)
	assert.Equal(t, "beta", docs[1].Slug)
}

func TestScanner_SkipsUnreadableFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sin-cabecera.md", "Texto sin front matter.\n")
	writeFile(t, dir, "roto.md", `---
title: [unclosed
---
`)
	writeFile(t, dir, "valido.md", `---
title: "Válido"
date: "2025-01-01"
---
`)

	docs, err := NewScanner(dir).Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "valido", docs[0].Slug)
}

func TestScanner_WalksSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("2025", "post.qmd"), `---
title: "Anidado"
date: "2025-02-02"
---
`)

	docs, err := NewScanner(dir).Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "post", docs[0].Slug)
}

func TestScanner_MissingRoot(t *testing.T) {
	_, err := NewScanner(filepath.Join(t.TempDir(), "absent")).Documents(context.Background())
	assert.Error(t, err)
}
