package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThemeNumber(t *testing.T) {
	tests := []struct {
		input    string
		exercise int
		part     string
		topic    int
	}{
		{"3.A.36", 3, "A", 36},
		{"4.B.1", 4, "B", 1},
		{"5.c.12", 5, "C", 12},
		{" 3.A.8 ", 3, "A", 8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := ParseThemeNumber(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.exercise, n.Exercise)
			assert.Equal(t, tt.part, n.Part)
			assert.Equal(t, tt.topic, n.Topic)
		})
	}
}

func TestParseThemeNumber_Invalid(t *testing.T) {
	invalid := []string{"", "3.A", "3A36", "A.3.36", "3..36", "3.AB.36", "tema 36"}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			_, err := ParseThemeNumber(input)
			assert.ErrorIs(t, err, ErrInvalidThemeNumber)
		})
	}
}

func TestThemeNumber_String(t *testing.T) {
	n := ThemeNumber{Exercise: 3, Part: "A", Topic: 36}
	assert.Equal(t, "3.A.36", n.String())
}

func TestThemeNumber_KeywordVariants(t *testing.T) {
	n := ThemeNumber{Exercise: 4, Part: "B", Topic: 12}
	variants := n.KeywordVariants()

	assert.Equal(t, []string{"4.B.12", "4B12", "4.b.12", "4b12"}, variants)
}

func TestThemeNumber_KeywordVariants_NoDuplicates(t *testing.T) {
	// Lower-case part letters collapse the cased variants.
	n, err := ParseThemeNumber("3.a.8")
	require.NoError(t, err)

	variants := n.KeywordVariants()
	seen := map[string]int{}
	for _, v := range variants {
		seen[v]++
		assert.Equal(t, 1, seen[v], "variant %q duplicated", v)
	}
}
