package services

import (
	"strings"

	"github.com/vgutierrezmarcos/oposearch/internal/textnorm"
)

const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// Highlight wraps every occurrence of each query term in text with
// <mark> tags. Matching is accent- and case-insensitive while the
// wrapped fragments keep their original spelling, so "politica" marks
// "Política". Terms are applied one after another over the evolving
// string; when terms overlap, the later term's marks win. Text without
// matches is returned unchanged.
func (e *Engine) Highlight(text, query string) string {
	if text == "" || query == "" {
		return text
	}
	terms := textnorm.Terms(textnorm.Normalize(query), minQueryLen)
	if len(terms) == 0 {
		return text
	}
	for _, term := range terms {
		text = markTerm(text, term)
	}
	return text
}

// markTerm wraps each non-overlapping occurrence of the folded term in
// text. Occurrences are located in the folded form and mapped back to
// byte spans of the original string, so the marked fragment is the
// original accented text.
func markTerm(text, term string) string {
	termRunes := []rune(term)
	if len(termRunes) == 0 {
		return text
	}
	folded, spans := textnorm.Fold(text)

	type match struct{ start, end int }
	var matches []match
	for i := 0; i+len(termRunes) <= len(folded); {
		if runesEqual(folded[i:i+len(termRunes)], termRunes) {
			matches = append(matches, match{
				start: spans[i].Start,
				end:   spans[i+len(termRunes)-1].End,
			})
			i += len(termRunes)
			continue
		}
		i++
	}
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(matches)*(len(markOpen)+len(markClose)))
	prev := 0
	for _, m := range matches {
		if m.start < prev {
			continue
		}
		b.WriteString(text[prev:m.start])
		b.WriteString(markOpen)
		b.WriteString(text[m.start:m.end])
		b.WriteString(markClose)
		prev = m.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
