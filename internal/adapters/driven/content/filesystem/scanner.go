// Package filesystem discovers blog documents by scanning a content
// root for Markdown and Quarto sources and parsing their YAML front
// matter. Files without a front-matter block or with unparseable YAML
// are skipped with a warning rather than failing the scan.
package filesystem

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driven"
	"github.com/vgutierrezmarcos/oposearch/internal/logger"
)

var _ driven.ContentSource = (*Scanner)(nil)

var frontMatterDelim = []byte("---")

// frontMatter mirrors the YAML header of a blog source file.
type frontMatter struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Theme       string `yaml:"theme"`

	// Categories accepts both a single string and a list.
	Categories categories `yaml:"categories"`
}

// categories decodes a YAML scalar or sequence into a string slice.
type categories []string

func (c *categories) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*c = categories{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*c = categories(list)
		return nil
	default:
		return fmt.Errorf("categories: unsupported YAML node kind %d", value.Kind)
	}
}

// Scanner reads blog documents from a directory tree.
type Scanner struct {
	root string
}

// NewScanner creates a scanner over root.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root}
}

// Documents walks the content root and returns one document per
// readable source file, newest first, slug as tie-break. A missing root
// is an error; the builder decides how to degrade.
func (s *Scanner) Documents(ctx context.Context) ([]domain.ContentDocument, error) {
	if _, err := os.Stat(s.root); err != nil {
		return nil, fmt.Errorf("content root: %w", err)
	}

	var docs []domain.ContentDocument
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !isSourceFile(path) {
			return nil
		}
		doc, ok := s.parseFile(path)
		if ok {
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].Date != docs[j].Date {
			return docs[i].Date > docs[j].Date
		}
		return docs[i].Slug < docs[j].Slug
	})
	return docs, nil
}

func isSourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".qmd":
		return true
	}
	return false
}

// parseFile extracts the front matter of one source file. The slug
// defaults to the file name without extension when the header does not
// set one.
func (s *Scanner) parseFile(path string) (domain.ContentDocument, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("skipping %s: %v", path, err)
		return domain.ContentDocument{}, false
	}
	header, ok := extractFrontMatter(data)
	if !ok {
		logger.Warn("skipping %s: no front matter block", path)
		return domain.ContentDocument{}, false
	}
	var fm frontMatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		logger.Warn("skipping %s: %v", path, err)
		return domain.ContentDocument{}, false
	}

	slug := fm.Slug
	if slug == "" {
		base := filepath.Base(path)
		slug = strings.TrimSuffix(base, filepath.Ext(base))
	}
	var category string
	if len(fm.Categories) > 0 {
		category = fm.Categories[0]
	}
	return domain.ContentDocument{
		Path:        path,
		Title:       fm.Title,
		Date:        fm.Date,
		Slug:        slug,
		Description: fm.Description,
		Category:    category,
		ThemeNumber: fm.Theme,
	}, true
}

// extractFrontMatter returns the YAML between the leading "---" fence
// and its closing fence.
func extractFrontMatter(data []byte) ([]byte, bool) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), frontMatterDelim) {
		return nil, false
	}
	var header []byte
	for _, line := range lines[1:] {
		if bytes.Equal(bytes.TrimSpace(line), frontMatterDelim) {
			return header, true
		}
		header = append(header, line...)
	}
	return nil, false
}
