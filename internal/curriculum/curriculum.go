// Package curriculum holds the operator-maintained tables behind the
// temario: the official exercise programme (BOE, OEP 2025 TCEE), the
// static site pages and the downloadable study resources. The index
// builder turns these tables into catalog records; updating the site
// content means editing this package and rebuilding.
package curriculum

import (
	"fmt"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
)

// Topic is one numbered topic within an exercise part.
type Topic struct {
	// Number is the topic ordinal within its part.
	Number int

	// Title is the official topic title.
	Title string

	// Available reports whether study material exists for the topic.
	Available bool

	// File is the backing file name, relative to the part's base URL.
	// Empty when the topic is unavailable.
	File string
}

// Part is a lettered section of an exercise ("Parte A: Economía general").
type Part struct {
	Letter  string
	Name    string
	BaseURL string
	Topics  []Topic
}

// Subtopic is a curated non-numbered entry under an exercise, such as the
// first exercise's mock test or a part-level PDF.
type Subtopic struct {
	ID        string
	Title     string
	URL       string
	Keywords  []string
	Available bool
}

// Exercise is one of the five exam exercises.
type Exercise struct {
	// ID is the stable record identifier ("ej3").
	ID string

	// Ordinal is the exercise number used as the theme-number major
	// component. Zero for exercises without numbered topics.
	Ordinal int

	// Label is the display name used as topic parent ("Tercer ejercicio").
	Label string

	// Title is the exercise headline ("Economía General y Economía
	// Internacional").
	Title string

	URL      string
	Keywords []string

	// TopicKeywords is the base keyword set attached to every numbered
	// topic of the exercise. Nil means Keywords is used.
	TopicKeywords []string

	Parts     []Part
	Subtopics []Subtopic
}

// ThemeNumber returns the structured identifier of a topic within a part
// of e, e.g. 3/A/36.
func (e Exercise) ThemeNumber(part Part, topic Topic) domain.ThemeNumber {
	return domain.ThemeNumber{Exercise: e.Ordinal, Part: part.Letter, Topic: topic.Number}
}

// URL returns the target for a topic: its backing file when available,
// the placeholder page otherwise.
func (p Part) URL(t Topic) string {
	if !t.Available || t.File == "" {
		return "temario/tema-no-disponible.html"
	}
	return fmt.Sprintf("%s/%s", p.BaseURL, t.File)
}

// Exercises returns the five exam exercises in programme order.
func Exercises() []Exercise {
	return []Exercise{
		{
			ID:       "ej1",
			Label:    "Primer ejercicio",
			Title:    "Test y Dictamen de coyuntura",
			URL:      "temario/primer-ejercicio.html",
			Keywords: []string{"test", "dictamen", "coyuntura", "ejercicio 1", "primer ejercicio"},
			Subtopics: []Subtopic{
				{
					ID:        "ej1-test",
					Title:     "Test",
					URL:       "temario/primer-ejercicio/test/examenes_oficiales_test.pdf",
					Keywords:  []string{"test", "exámenes", "oficiales", "ejercicio 1", "primer ejercicio"},
					Available: true,
				},
				{
					ID:        "ej1-test-simulacro",
					Title:     "Simulacro de Test",
					URL:       "temario/primer-ejercicio/test/simulacro.html",
					Keywords:  []string{"test", "simulacro", "ejercicio 1", "primer ejercicio"},
					Available: true,
				},
				{
					ID:        "ej1-dictamen",
					Title:     "Dictamen de coyuntura económica",
					URL:       "temario/primer-ejercicio/esquema_dictamen_economico.pdf",
					Keywords:  []string{"dictamen", "coyuntura", "económica", "ejercicio 1", "primer ejercicio"},
					Available: true,
				},
			},
		},
		{
			ID:       "ej2",
			Label:    "Segundo ejercicio",
			Title:    "Idiomas",
			URL:      "temario/segundo-ejercicio.html",
			Keywords: []string{"idiomas", "inglés", "francés", "alemán", "lenguas", "ejercicio 2", "segundo ejercicio"},
		},
		{
			ID:       "ej3",
			Ordinal:  3,
			Label:    "Tercer ejercicio",
			Title:    "Economía General y Economía Internacional",
			URL:      "temario/tercer-ejercicio.html",
			Keywords: []string{"economía general", "economía internacional", "ejercicio 3", "macro", "micro", "tercer ejercicio"},
			Parts: []Part{
				{
					Letter:  "A",
					Name:    "Parte A: Economía general",
					BaseURL: "temario/tercer-ejercicio",
					Topics:  tercerEjercicioParteA,
				},
				{
					Letter:  "B",
					Name:    "Parte B: Economía Financiera, Economía Internacional y Relaciones Económicas Internacionales",
					BaseURL: "temario/tercer-ejercicio",
					Topics:  tercerEjercicioParteB,
				},
			},
		},
		{
			ID:            "ej4",
			Ordinal:       4,
			Label:         "Cuarto ejercicio",
			Title:         "Economía Española y Hacienda Pública",
			URL:           "temario/cuarto-ejercicio.html",
			Keywords:      []string{"economía española", "hacienda pública", "ejercicio 4", "sector público", "cuarto ejercicio"},
			TopicKeywords: []string{"economía española", "hacienda pública", "ejercicio 4", "sector público", "España", "cuarto ejercicio"},
			Parts: []Part{
				{
					Letter:  "A",
					Name:    "Parte A: Economía española",
					BaseURL: "temario/cuarto-ejercicio",
					Topics:  cuartoEjercicioParteA,
				},
				{
					Letter:  "B",
					Name:    "Parte B: Economía del sector público",
					BaseURL: "temario/cuarto-ejercicio",
					Topics:  cuartoEjercicioParteB,
				},
			},
		},
		{
			ID:       "ej5",
			Ordinal:  5,
			Label:    "Quinto ejercicio",
			Title:    "Marketing, Econometría y Derecho",
			URL:      "temario/quinto-ejercicio.html",
			Keywords: []string{"marketing", "econometría", "derecho", "ejercicio 5", "quinto ejercicio"},
			Parts: []Part{
				{
					Letter:  "A",
					Name:    "Parte A: Marketing internacional y técnicas comerciales",
					BaseURL: "temario/quinto-ejercicio",
					Topics:  quintoEjercicioParteA,
				},
				{
					Letter:  "B",
					Name:    "Parte B: Econometría",
					BaseURL: "temario/quinto-ejercicio",
					Topics:  quintoEjercicioParteB,
				},
				{
					Letter:  "C",
					Name:    "Parte C: Derecho Administrativo y Organización del Estado",
					BaseURL: "temario/quinto-ejercicio",
					Topics:  quintoEjercicioParteC,
				},
			},
			Subtopics: []Subtopic{
				{
					ID:        "ej5-parte-a-pdf",
					Title:     "Parte A: Marketing internacional y técnicas comerciales (PDF completo)",
					URL:       "temario/quinto-ejercicio/parte_A.pdf",
					Keywords:  []string{"marketing", "internacional", "técnicas", "comerciales", "ejercicio 5", "quinto ejercicio", "parte a"},
					Available: true,
				},
				{
					ID:        "ej5-parte-b-pdf",
					Title:     "Parte B: Econometría (PDF completo)",
					URL:       "temario/quinto-ejercicio/parte_B.pdf",
					Keywords:  []string{"econometría", "ejercicio 5", "quinto ejercicio", "parte b"},
					Available: true,
				},
			},
		},
	}
}

// Pages returns the static site pages.
func Pages() []domain.Record {
	return []domain.Record{
		{
			ID:          "intro",
			Title:       "Introducción",
			URL:         "index.html",
			Description: "Materiales para la preparación a la Oposición a Técnico Comercial y Economista del Estado",
			Keywords:    []string{"introducción", "inicio", "bienvenida", "materiales", "oposición", "TCEE"},
			Content:     "Temario, organización, enlaces y recursos para la preparación de la oposición a TCEE",
			Type:        domain.TypePage,
			Available:   true,
		},
		{
			ID:          "temario",
			Title:       "Temario",
			URL:         "temario/index.html",
			Description: "Temario completo para la preparación a la Oposición",
			Keywords:    []string{"temario", "temas", "ejercicios", "contenidos"},
			Content:     "Materiales organizados por ejercicios según el programa oficial OEP 2025",
			Type:        domain.TypePage,
			Available:   true,
		},
		{
			ID:          "organizacion",
			Title:       "Organización",
			URL:         "organizacion.html",
			Description: "Archivos útiles para la organización del estudio",
			Keywords:    []string{"organización", "planificación", "estrategia", "horarios", "cronogramas"},
			Content:     "Estrategia, cronogramas, plantillas y recursos para organizar el estudio",
			Type:        domain.TypePage,
			Available:   true,
		},
		{
			ID:          "enlaces",
			Title:       "Enlaces",
			URL:         "enlaces.html",
			Description: "Enlaces útiles para preparar la oposición",
			Keywords:    []string{"enlaces", "recursos", "webs", "referencias"},
			Content:     "Blogs, think tanks y recursos en español, inglés y francés",
			Type:        domain.TypePage,
			Available:   true,
		},
		{
			ID:          "sobre-mi",
			Title:       "Sobre mí",
			URL:         "sobre-mi.html",
			Description: "Víctor Gutiérrez Marcos - TCEE Promoción LXXIII",
			Keywords:    []string{"contacto", "autor", "víctor", "gutiérrez", "marcos"},
			Content:     "Técnico Comercial y Economista del Estado, Promoción LXXIII",
			Type:        domain.TypePage,
			Available:   true,
		},
		{
			ID:          "blog",
			Title:       "Blog",
			URL:         "blog/index.html",
			Description: "Artículos y análisis sobre economía, política económica y comercio internacional",
			Keywords:    []string{"blog", "artículos", "análisis", "economía", "comercio"},
			Content:     "Artículos sobre política económica y comercio internacional",
			Type:        domain.TypePage,
			Available:   true,
		},
	}
}

// Resources returns the downloadable study resources.
func Resources() []domain.Record {
	return []domain.Record{
		{
			ID:          "estrategia",
			Title:       "Estrategia y organización",
			Description: "Excel con probabilidades, simulador de sorteos y cronogramas",
			URL:         "organizacion/Estrategia y organización.zip",
			Group:       "organización",
			Keywords:    []string{"estrategia", "organización", "cronograma", "probabilidades", "excel", "horarios"},
			Type:        domain.TypeSpreadsheet,
			Available:   true,
		},
		{
			ID:          "estructura",
			Title:       "Estructura del temario",
			Description: "Presentación PowerPoint sobre cómo estructurar el temario",
			URL:         "organizacion/ver-presentacion.html",
			Group:       "organización",
			Keywords:    []string{"estructura", "temario", "presentación", "powerpoint", "visión global"},
			Type:        domain.TypePresentation,
			Available:   true,
		},
		{
			ID:          "como-cantar",
			Title:       "Cómo cantar un tema",
			Description: "Guía sobre formato y organización de los temas",
			URL:         "organizacion/como_cantar_un_tema.pdf",
			Group:       "organización",
			Keywords:    []string{"cantar", "tema", "formato", "consejos", "guía"},
			Type:        domain.TypePDF,
			Available:   true,
		},
		{
			ID:          "plantillas",
			Title:       "Plantillas para elaborar temas",
			Description: "Plantillas de Word para temas largos y cortos",
			URL:         "organizacion/Plantillas.zip",
			Group:       "organización",
			Keywords:    []string{"plantillas", "word", "elaborar", "temas", "esquemas"},
			Type:        domain.TypeTemplate,
			Available:   true,
		},
	}
}
