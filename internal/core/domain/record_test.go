package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordType_Boost(t *testing.T) {
	assert.Equal(t, 1.2, TypeTopic.Boost())
	assert.Equal(t, 1.1, TypeExercise.Boost())
	assert.Equal(t, 1.0, TypePage.Boost())
	assert.Equal(t, 1.0, TypeArticle.Boost())
	assert.Equal(t, 1.0, RecordType("unknown").Boost())
}

func TestRecordType_Label(t *testing.T) {
	assert.Equal(t, "Tema", TypeTopic.Label())
	assert.Equal(t, "Ejercicio", TypeExercise.Label())
	assert.Equal(t, "Recurso", TypeSpreadsheet.Label())
	assert.Equal(t, "Recurso", RecordType("unknown").Label())
}

func TestRecordType_Icon_AlwaysNonEmpty(t *testing.T) {
	types := []RecordType{
		TypePage, TypeExercise, TypeTopic, TypeSubtopic, TypeArticle,
		TypePDF, TypeSpreadsheet, TypePresentation, TypeTemplate,
		RecordType("unknown"),
	}
	for _, rt := range types {
		assert.NotEmpty(t, rt.Icon(), "type %q", rt)
	}
}

func TestRecord_JSONShape(t *testing.T) {
	rec := Record{
		ID:          "3a36",
		Title:       "La política monetaria (I)",
		Keywords:    []string{"3.A.36", "3a36"},
		Type:        TypeTopic,
		ThemeNumber: "3.A.36",
		Group:       "Parte A: Economía general",
		ParentLabel: "Tercer ejercicio",
		Available:   true,
		URL:         "temario/tercer-ejercicio/3A36.pdf",
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// The artifact contract: available is always present, empty optionals
	// are omitted.
	assert.Contains(t, decoded, "available")
	assert.Contains(t, decoded, "themeNumber")
	assert.NotContains(t, decoded, "description")
	assert.NotContains(t, decoded, "content")
}
