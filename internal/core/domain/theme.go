package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var themeNumberRe = regexp.MustCompile(`^(\d+)\.([A-Za-z])\.(\d+)$`)

// ThemeNumber is a structured curriculum identifier of the form
// major.letter.minor, e.g. "3.A.36": exercise 3, part A, topic 36.
type ThemeNumber struct {
	// Exercise is the exam exercise ordinal (the major component).
	Exercise int

	// Part is the single part letter, upper case.
	Part string

	// Topic is the topic ordinal within the part (the minor component).
	Topic int
}

// ParseThemeNumber parses a dotted theme number string.
func ParseThemeNumber(s string) (ThemeNumber, error) {
	m := themeNumberRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ThemeNumber{}, fmt.Errorf("%w: %q", ErrInvalidThemeNumber, s)
	}
	exercise, err := strconv.Atoi(m[1])
	if err != nil {
		return ThemeNumber{}, fmt.Errorf("%w: %q", ErrInvalidThemeNumber, s)
	}
	topic, err := strconv.Atoi(m[3])
	if err != nil {
		return ThemeNumber{}, fmt.Errorf("%w: %q", ErrInvalidThemeNumber, s)
	}
	return ThemeNumber{
		Exercise: exercise,
		Part:     strings.ToUpper(m[2]),
		Topic:    topic,
	}, nil
}

// String returns the canonical dotted form, e.g. "3.A.36".
func (n ThemeNumber) String() string {
	return fmt.Sprintf("%d.%s.%d", n.Exercise, n.Part, n.Topic)
}

// KeywordVariants returns the spelling variants embedded in a topic's
// keyword list so free-text search finds the number in any of the forms
// users actually type: dotted and compact, original and lower case.
func (n ThemeNumber) KeywordVariants() []string {
	dotted := n.String()
	compact := strings.ReplaceAll(dotted, ".", "")
	return dedupeStrings([]string{
		dotted,
		compact,
		strings.ToLower(dotted),
		strings.ToLower(compact),
	})
}

// dedupeStrings removes duplicates preserving first-seen order.
func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
