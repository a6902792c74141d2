package services

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driven"
	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driving"
	"github.com/vgutierrezmarcos/oposearch/internal/fuzzy"
	"github.com/vgutierrezmarcos/oposearch/internal/logger"
	"github.com/vgutierrezmarcos/oposearch/internal/textnorm"
)

// Ensure Engine implements the interface.
var _ driving.Searcher = (*Engine)(nil)

// engineState tracks the catalog lifecycle. There is no reload
// transition distinct from constructing a new engine; a retry after a
// failed load is a full reload.
type engineState int

const (
	stateUninitialized engineState = iota
	stateLoading
	stateReady
	stateFailed
)

const (
	// maxResults caps a search response.
	maxResults = 50

	// minQueryLen is the minimum trimmed query length searched at all.
	minQueryLen = 2

	// defaultSuggestLimit is the type-ahead result count.
	defaultSuggestLimit = 5

	// fuzzyThreshold is the minimum normalized similarity for a fuzzy
	// signal to contribute; minFuzzyLen keeps short tokens out of the
	// fuzzy path entirely.
	fuzzyThreshold = 0.8
	minFuzzyLen    = 3
)

// Relevance signal weights. The absolute values are calibration; only
// their ordering is load-bearing. Theme-number signals dominate all text
// signals so an identifier query always surfaces its topic first.
const (
	weightThemeExact   = 200.0
	weightThemeKeyword = 180.0
	weightThemePrefix  = 150.0
	weightTitle        = 50.0
	weightTitlePrefix  = 20.0
	weightKeyword      = 30.0
	weightGroup        = 25.0
	weightParentLabel  = 25.0
	weightDescription  = 15.0
	weightContent      = 10.0
	weightFuzzyTitle   = 20.0
	weightFuzzyKeyword = 15.0

	// unavailablePenalty halves the score of records without backing
	// material; they still appear, ranked below their available twins.
	unavailablePenalty = 0.5
)

var (
	// themeQueryRe detects theme-number-shaped queries after
	// normalization and whitespace stripping: "3a5", "3.a.5", "3a05".
	themeQueryRe = regexp.MustCompile(`^\d+\.?[a-z]\.?\d+$`)

	// themeCompactRe and themeDottedRe split a normalized theme number
	// into its components for variant expansion.
	themeCompactRe = regexp.MustCompile(`^(\d+)([a-z])(\d+)$`)
	themeDottedRe  = regexp.MustCompile(`^(\d+)\.([a-z])\.(\d+)$`)
)

// Engine is the in-memory search engine. It loads the catalog once via
// its CatalogSource and then serves any number of stateless, read-only
// searches; concurrent Search calls are safe.
type Engine struct {
	source driven.CatalogSource

	mu      sync.RWMutex
	state   engineState
	records []domain.Record
}

// NewEngine creates an uninitialized engine over the given source.
func NewEngine(source driven.CatalogSource) *Engine {
	return &Engine{source: source}
}

// Initialize fetches and loads the catalog artifact. It is idempotent
// while ready and retryable after a failure; either way the load is
// all-or-nothing.
func (e *Engine) Initialize(ctx context.Context) bool {
	e.mu.Lock()
	if e.state == stateReady {
		e.mu.Unlock()
		return true
	}
	e.state = stateLoading
	e.mu.Unlock()

	catalog, err := e.source.Fetch(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		logger.Warn("catalog load failed: %v", err)
		e.state = stateFailed
		e.records = nil
		return false
	}
	e.records = catalog.All()
	e.state = stateReady
	logger.Info("catalog loaded: %d records (last updated %s)", len(e.records), catalog.LastUpdated)
	return true
}

// Search scores every catalog record against the query and returns the
// positive-scoring ones, sorted by descending relevance with ties broken
// by catalog order, capped at 50. It returns an empty slice when the
// engine is not ready or the query is below the minimum length.
func (e *Engine) Search(query string) []domain.ScoredResult {
	e.mu.RLock()
	ready := e.state == stateReady
	records := e.records
	e.mu.RUnlock()

	results := []domain.ScoredResult{}
	if !ready {
		return results
	}
	if utf8.RuneCountInString(strings.TrimSpace(query)) < minQueryLen {
		return results
	}

	normalized := textnorm.Normalize(query)
	if normalized == "" {
		return results
	}
	isTheme := isThemeNumberQuery(normalized)
	terms := textnorm.Terms(normalized, minQueryLen)
	if len(terms) == 0 && !isTheme {
		return results
	}

	logger.Debug("search: query=%q terms=%v theme=%v", query, terms, isTheme)

	for _, rec := range records {
		score := scoreRecord(rec, terms, normalized, isTheme)
		if score > 0 {
			results = append(results, domain.ScoredResult{Record: rec, Relevance: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// Suggest returns the top results for type-ahead rendering.
func (e *Engine) Suggest(query string, limit int) []domain.ScoredResult {
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	results := e.Search(query)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// isThemeNumberQuery reports whether a normalized query looks like a
// theme number once whitespace is stripped: digits, optional separator,
// one letter, optional separator, digits.
func isThemeNumberQuery(normalized string) bool {
	return themeQueryRe.MatchString(strings.ReplaceAll(normalized, " ", ""))
}

// themeVariants expands a normalized theme-number string into its
// canonical set of equivalent spellings: dotted/undotted, spaced/dashed,
// zero-padded and unpadded minor. Identifier matching is exact string
// equality across this set, never fuzzy, so "3a5" cannot collide with
// "3a50".
func themeVariants(normalized string) []string {
	if normalized == "" {
		return nil
	}
	variants := []string{
		normalized,
		strings.ReplaceAll(normalized, ".", ""),
		strings.ReplaceAll(normalized, ".", " "),
		strings.ReplaceAll(normalized, ".", "-"),
	}
	if m := themeCompactRe.FindStringSubmatch(normalized); m != nil {
		padded := padMinor(m[3])
		variants = append(variants,
			m[1]+"."+m[2]+"."+m[3],
			m[1]+"."+m[2]+"."+padded,
			m[1]+m[2]+padded,
		)
	}
	if m := themeDottedRe.FindStringSubmatch(normalized); m != nil {
		padded := padMinor(m[3])
		variants = append(variants,
			m[1]+m[2]+m[3],
			m[1]+m[2]+padded,
		)
	}
	return dedupe(variants)
}

// padMinor zero-pads the minor component to two digits.
func padMinor(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// scoreRecord computes the relevance of one record for one query:
// independent signal contributions summed, then the type boost and
// availability penalty applied multiplicatively. Deterministic for
// identical inputs.
func scoreRecord(rec domain.Record, terms []string, normalizedQuery string, isTheme bool) float64 {
	var score float64

	if isTheme && rec.ThemeNumber != "" {
		score += themeScore(rec, normalizedQuery)
	}

	titleNorm := textnorm.Normalize(rec.Title)
	for _, term := range terms {
		if strings.Contains(titleNorm, term) {
			score += weightTitle
			if strings.HasPrefix(titleNorm, term) {
				score += weightTitlePrefix
			}
		}
	}

	if len(rec.Keywords) > 0 {
		joined := normalizeKeywordsJoined(rec.Keywords)
		for _, term := range terms {
			if strings.Contains(joined, term) {
				score += weightKeyword
			}
		}
	}

	if rec.Description != "" {
		descNorm := textnorm.Normalize(rec.Description)
		for _, term := range terms {
			if strings.Contains(descNorm, term) {
				score += weightDescription
			}
		}
	}

	if rec.Content != "" {
		contentNorm := textnorm.Normalize(rec.Content)
		for _, term := range terms {
			if strings.Contains(contentNorm, term) {
				score += weightContent
			}
		}
	}

	if rec.Group != "" {
		groupNorm := textnorm.Normalize(rec.Group)
		for _, term := range terms {
			if strings.Contains(groupNorm, term) {
				score += weightGroup
			}
		}
	}

	if rec.ParentLabel != "" {
		parentNorm := textnorm.Normalize(rec.ParentLabel)
		for _, term := range terms {
			if strings.Contains(parentNorm, term) {
				score += weightParentLabel
			}
		}
	}

	score += fuzzyScore(rec, titleNorm, terms)

	score *= rec.Type.Boost()
	if !rec.Available {
		score *= unavailablePenalty
	}
	return score
}

// themeScore returns the dominant theme-number contribution: exact
// canonical match, match inside the record's keywords, or prefix overlap
// in either direction. Only the strongest tier counts.
func themeScore(rec domain.Record, normalizedQuery string) float64 {
	recVariants := themeVariants(textnorm.Normalize(rec.ThemeNumber))
	queryVariants := themeVariants(normalizedQuery)

	var score float64
	for _, rv := range recVariants {
		for _, qv := range queryVariants {
			if rv == qv {
				return weightThemeExact
			}
			if strings.HasPrefix(rv, qv) || strings.HasPrefix(qv, rv) {
				score = weightThemePrefix
			}
		}
	}

	for _, kw := range rec.Keywords {
		kwNorm := textnorm.Normalize(kw)
		for _, qv := range queryVariants {
			if kwNorm == qv || strings.Contains(kwNorm, qv) {
				if score < weightThemeKeyword {
					score = weightThemeKeyword
				}
			}
		}
	}
	return score
}

// fuzzyScore adds edit-distance similarity contributions for terms that
// did not match exactly. Both sides must be at least minFuzzyLen runes
// to keep short tokens from matching noisily.
func fuzzyScore(rec domain.Record, titleNorm string, terms []string) float64 {
	var score float64
	titleWords := strings.Fields(titleNorm)
	for _, term := range terms {
		if utf8.RuneCountInString(term) < minFuzzyLen {
			continue
		}
		for _, word := range titleWords {
			if utf8.RuneCountInString(word) < minFuzzyLen {
				continue
			}
			if sim := fuzzy.Similarity(term, word); sim > fuzzyThreshold {
				score += weightFuzzyTitle * sim
			}
		}
		for _, kw := range rec.Keywords {
			if sim := fuzzy.Similarity(term, textnorm.Normalize(kw)); sim > fuzzyThreshold {
				score += weightFuzzyKeyword * sim
			}
		}
	}
	return score
}

func normalizeKeywordsJoined(keywords []string) string {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		normalized = append(normalized, textnorm.Normalize(kw))
	}
	return strings.Join(normalized, " ")
}
