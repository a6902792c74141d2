package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "ECONOMÍA", "economia"},
		{"accents", "Política Monetaria", "politica monetaria"},
		{"enye folds to n", "España", "espana"},
		{"diaeresis", "cigüeña", "ciguena"},
		{"punctuation to spaces", "renta, riqueza; consumo!", "renta riqueza consumo"},
		{"dots preserved", "Tema 3.A.36", "tema 3.a.36"},
		{"dashes to spaces", "3-A-05", "3 a 05"},
		{"whitespace collapsed", "  la   política \t monetaria ", "la politica monetaria"},
		{"guillemets", "las tablas «input-output»", "las tablas input output"},
		{"empty", "", ""},
		{"only punctuation", "¡¿!?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestTerms(t *testing.T) {
	assert.Equal(t, []string{"la", "politica", "monetaria"}, Terms("la politica monetaria", 2))
	assert.Equal(t, []string{"politica", "monetaria"}, Terms("la politica monetaria", 3))
	assert.Empty(t, Terms("", 2))
	assert.Empty(t, Terms("a b c", 2))
}

func TestFold_SpansMapBack(t *testing.T) {
	text := "Política"
	folded, spans := Fold(text)

	require.Equal(t, []rune("politica"), folded)
	require.Len(t, spans, len(folded))

	// The folded 'i' at index 3 comes from the two-byte 'í'.
	span := spans[3]
	assert.Equal(t, "í", text[span.Start:span.End])

	// First and last spans cover the string boundaries.
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, len(text), spans[len(spans)-1].End)
}

func TestFold_NoCollapsing(t *testing.T) {
	folded, spans := Fold("a,  b")
	// ',' folds to a space and both source spaces survive.
	require.Equal(t, []rune("a   b"), folded)
	assert.Len(t, spans, 5)
}
