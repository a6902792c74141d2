package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
)

func TestExercises_ProgrammeShape(t *testing.T) {
	exercises := Exercises()
	require.Len(t, exercises, 5)

	counts := map[string]int{}
	for _, ex := range exercises {
		for _, p := range ex.Parts {
			counts[ex.ID+p.Letter] = len(p.Topics)
		}
	}

	assert.Equal(t, 45, counts["ej3A"])
	assert.Equal(t, 45, counts["ej3B"])
	assert.Equal(t, 30, counts["ej4A"])
	assert.Equal(t, 26, counts["ej4B"])
	assert.Equal(t, 10, counts["ej5A"])
	assert.Equal(t, 6, counts["ej5B"])
	assert.Equal(t, 15, counts["ej5C"])
}

func TestExercises_OrdinalsMatchParts(t *testing.T) {
	for _, ex := range Exercises() {
		if len(ex.Parts) > 0 {
			assert.NotZero(t, ex.Ordinal, "exercise %s has parts but no ordinal", ex.ID)
		}
	}
}

func TestExercise_ThemeNumber(t *testing.T) {
	var ej3 Exercise
	for _, ex := range Exercises() {
		if ex.ID == "ej3" {
			ej3 = ex
		}
	}
	require.NotEmpty(t, ej3.ID)

	part := ej3.Parts[0]
	topic := part.Topics[35] // topic 36
	require.Equal(t, 36, topic.Number)

	n := ej3.ThemeNumber(part, topic)
	assert.Equal(t, "3.A.36", n.String())
}

func TestPart_URL(t *testing.T) {
	p := Part{BaseURL: "temario/tercer-ejercicio"}

	assert.Equal(t, "temario/tercer-ejercicio/3A36.pdf",
		p.URL(Topic{Number: 36, Available: true, File: "3A36.pdf"}))
	assert.Equal(t, "temario/tema-no-disponible.html",
		p.URL(Topic{Number: 5}))
}

func TestTopics_AvailableTopicsHaveFiles(t *testing.T) {
	for _, ex := range Exercises() {
		for _, p := range ex.Parts {
			for _, topic := range p.Topics {
				if topic.Available {
					assert.NotEmpty(t, topic.File,
						"%d.%s.%d available without file", ex.Ordinal, p.Letter, topic.Number)
				}
			}
		}
	}
}

func TestPagesAndResources(t *testing.T) {
	pages := Pages()
	require.Len(t, pages, 6)
	for _, p := range pages {
		assert.Equal(t, domain.TypePage, p.Type)
		assert.True(t, p.Available)
		assert.NotEmpty(t, p.URL)
	}

	resources := Resources()
	require.Len(t, resources, 4)
	for _, r := range resources {
		assert.NotEqual(t, domain.TypePage, r.Type)
		assert.True(t, r.Available)
	}
}
