// Package textnorm provides the text normalization used by both the
// index builder and the search engine: lower-casing, diacritic stripping
// via Unicode decomposition, and punctuation folding. Dots are preserved
// so theme-number separators survive normalization.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Span is a byte range [Start, End) into an original string.
type Span struct {
	Start int
	End   int
}

// isWord reports whether r is an ASCII word rune after folding.
// Matching is intentionally ASCII-only: Spanish diacritics decompose to
// ASCII plus combining marks, which folding removes.
func isWord(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
}

// foldRune lower-cases r, strips its combining marks after NFD
// decomposition, and maps punctuation other than '.' to a space.
func foldRune(r rune) []rune {
	decomposed := norm.NFD.String(string(unicode.ToLower(r)))
	out := make([]rune, 0, 1)
	for _, d := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, d):
			// combining mark, dropped
		case unicode.IsSpace(d):
			out = append(out, ' ')
		case isWord(d) || d == '.':
			out = append(out, d)
		default:
			out = append(out, ' ')
		}
	}
	return out
}

// Normalize lower-cases s, strips diacritics, replaces punctuation other
// than '.' with spaces, collapses whitespace runs and trims. It makes
// "Política Monetaria" and "politica monetaria" equivalent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		for _, f := range foldRune(r) {
			b.WriteRune(f)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Terms splits an already-normalized string into whitespace-delimited
// terms of at least minLen runes.
func Terms(normalized string, minLen int) []string {
	fields := strings.Fields(normalized)
	terms := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= minLen {
			terms = append(terms, f)
		}
	}
	return terms
}

// Fold returns the folded form of s as a rune slice together with, for
// each folded rune, the byte span of the source rune it came from.
// Unlike Normalize it performs no whitespace collapsing, so matches in
// the folded text map back to exact spans of s. Used for highlighting.
func Fold(s string) ([]rune, []Span) {
	folded := make([]rune, 0, len(s))
	spans := make([]Span, 0, len(s))
	for i, r := range s {
		end := i + len(string(r))
		for _, f := range foldRune(r) {
			folded = append(folded, f)
			spans = append(spans, Span{Start: i, End: end})
		}
	}
	return folded, spans
}
