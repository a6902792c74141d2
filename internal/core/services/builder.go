package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driven"
	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driving"
	"github.com/vgutierrezmarcos/oposearch/internal/curriculum"
	"github.com/vgutierrezmarcos/oposearch/internal/logger"
	"github.com/vgutierrezmarcos/oposearch/internal/textnorm"
)

var _ driving.IndexBuilder = (*Builder)(nil)

// Builder assembles the catalog artifact from the curriculum tables and
// the content scan, validates it and hands it to the writer. Identical
// inputs produce an identical artifact except for the timestamp.
type Builder struct {
	content driven.ContentSource
	writer  driven.CatalogWriter

	// now is swapped in tests for a fixed clock.
	now func() time.Time
}

// NewBuilder creates a builder. content may be nil when no content root
// is configured; the catalog is then built without articles.
func NewBuilder(content driven.ContentSource, writer driven.CatalogWriter) *Builder {
	return &Builder{content: content, writer: writer, now: time.Now}
}

// Build assembles the full catalog and writes it out.
func (b *Builder) Build(ctx context.Context) (domain.BuildStats, error) {
	logger.Section("Index Build")

	var stats domain.BuildStats
	catalog := &domain.Catalog{
		Pages:       curriculum.Pages(),
		Resources:   curriculum.Resources(),
		LastUpdated: b.now().UTC().Format(time.RFC3339),
	}
	catalog.Topics = buildTopics(&stats)

	used := make(map[string]struct{}, catalog.Len())
	for _, rec := range catalog.All() {
		used[rec.ID] = struct{}{}
	}
	catalog.Articles = b.buildArticles(ctx, &stats, used)

	stats.Pages = len(catalog.Pages)
	stats.Topics = len(catalog.Topics)
	stats.Resources = len(catalog.Resources)
	stats.Articles = len(catalog.Articles)

	if err := catalog.Validate(); err != nil {
		return stats, fmt.Errorf("catalog validation: %w", err)
	}
	if err := b.writer.Write(ctx, catalog); err != nil {
		return stats, fmt.Errorf("writing catalog: %w", err)
	}

	logger.Info("indexed %d records: %d pages, %d topics (%d available), %d resources, %d articles",
		stats.Total(), stats.Pages, stats.Topics, stats.TopicsAvailable, stats.Resources, stats.Articles)
	if stats.Skipped > 0 {
		logger.Warn("skipped %d content documents with incomplete front matter", stats.Skipped)
	}
	return stats, nil
}

// buildTopics flattens the exercise programme into records: one record
// per exercise, per curated subtopic and per numbered topic.
func buildTopics(stats *domain.BuildStats) []domain.Record {
	var topics []domain.Record
	for _, ex := range curriculum.Exercises() {
		topics = append(topics, domain.Record{
			ID:          ex.ID,
			Title:       ex.Title,
			URL:         ex.URL,
			Keywords:    ex.Keywords,
			Type:        domain.TypeExercise,
			ParentLabel: ex.Label,
			Available:   true,
		})
		for _, sub := range ex.Subtopics {
			topics = append(topics, domain.Record{
				ID:          sub.ID,
				Title:       sub.Title,
				URL:         sub.URL,
				Keywords:    sub.Keywords,
				Type:        domain.TypeSubtopic,
				ParentLabel: ex.Label,
				Available:   sub.Available,
			})
		}
		for _, part := range ex.Parts {
			for _, t := range part.Topics {
				topics = append(topics, topicRecord(ex, part, t))
				if t.Available {
					stats.TopicsAvailable++
				}
			}
		}
	}
	return topics
}

// topicRecord builds the record for one numbered topic. The keyword set
// is the exercise's base keywords plus the title's significant words and
// every spelling variant of the theme number, so both free-text and
// identifier queries land on it.
func topicRecord(ex curriculum.Exercise, part curriculum.Part, t curriculum.Topic) domain.Record {
	n := ex.ThemeNumber(part, t)

	base := ex.TopicKeywords
	if base == nil {
		base = ex.Keywords
	}
	keywords := make([]string, 0, len(base)+8)
	keywords = append(keywords, base...)
	keywords = append(keywords, significantWords(t.Title, 2)...)
	keywords = append(keywords, n.KeywordVariants()...)

	return domain.Record{
		ID:          strings.ToLower(strings.ReplaceAll(n.String(), ".", "")),
		Title:       t.Title,
		URL:         part.URL(t),
		Keywords:    keywords,
		Type:        domain.TypeTopic,
		ThemeNumber: n.String(),
		Group:       part.Name,
		ParentLabel: ex.Label,
		Available:   t.Available,
	}
}

// buildArticles scans the content root for blog posts. A missing or
// failing content source degrades to a catalog without articles rather
// than failing the build; individual documents with incomplete or
// invalid front matter are skipped and counted. Only the curated
// tables can fail the build through validation.
func (b *Builder) buildArticles(ctx context.Context, stats *domain.BuildStats, used map[string]struct{}) []domain.Record {
	if b.content == nil {
		return nil
	}
	docs, err := b.content.Documents(ctx)
	if err != nil {
		logger.Warn("content scan failed, building without articles: %v", err)
		return nil
	}

	var articles []domain.Record
	for _, doc := range docs {
		if !doc.Complete() {
			logger.Warn("skipping %s: incomplete front matter", doc.Path)
			stats.Skipped++
			continue
		}
		if doc.ThemeNumber != "" {
			if _, err := domain.ParseThemeNumber(doc.ThemeNumber); err != nil {
				logger.Warn("skipping %s: %v", doc.Path, err)
				stats.Skipped++
				continue
			}
		}
		if _, dup := used[doc.Slug]; dup {
			logger.Warn("skipping %s: slug %q collides with an existing record", doc.Path, doc.Slug)
			stats.Skipped++
			continue
		}
		used[doc.Slug] = struct{}{}
		keywords := []string{"blog", "artículo"}
		keywords = append(keywords, significantWords(doc.Title, 2)...)
		keywords = append(keywords, significantWords(doc.Description, 3)...)
		articles = append(articles, domain.Record{
			ID:          doc.Slug,
			Title:       doc.Title,
			URL:         "blog/" + doc.Slug + ".html",
			Description: doc.Description,
			Keywords:    keywords,
			Type:        domain.TypeArticle,
			ThemeNumber: doc.ThemeNumber,
			Group:       doc.Category,
			Available:   true,
		})
	}
	return articles
}

// significantWords returns the normalized words of s longer than minLen
// runes, for use as derived keywords.
func significantWords(s string, minLen int) []string {
	var words []string
	for _, w := range strings.Fields(textnorm.Normalize(s)) {
		if utf8.RuneCountInString(w) > minLen {
			words = append(words, w)
		}
	}
	return words
}
