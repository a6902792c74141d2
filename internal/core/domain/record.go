package domain

// RecordType classifies a searchable record. It drives result boosting,
// grouping and presentation (icon/label), never ownership.
type RecordType string

// Record type variants. The resource kinds mirror the file formats the
// site links to.
const (
	TypePage         RecordType = "page"
	TypeExercise     RecordType = "exercise"
	TypeTopic        RecordType = "topic"
	TypeSubtopic     RecordType = "subtopic"
	TypeArticle      RecordType = "article"
	TypePDF          RecordType = "pdf"
	TypeSpreadsheet  RecordType = "spreadsheet"
	TypePresentation RecordType = "presentation"
	TypeTemplate     RecordType = "template"
)

// Boost returns the multiplicative relevance boost for the type.
// Topics outrank exercises which outrank everything else.
func (t RecordType) Boost() float64 {
	switch t {
	case TypeTopic:
		return 1.2
	case TypeExercise:
		return 1.1
	default:
		return 1.0
	}
}

// Label returns the badge text shown next to a result.
func (t RecordType) Label() string {
	switch t {
	case TypePage:
		return "Página"
	case TypeExercise:
		return "Ejercicio"
	case TypeTopic:
		return "Tema"
	case TypeSubtopic:
		return "Subtema"
	case TypeArticle:
		return "Artículo"
	case TypePDF, TypeSpreadsheet, TypePresentation, TypeTemplate:
		return "Recurso"
	default:
		return "Recurso"
	}
}

// Icon returns the presentation icon for the type.
func (t RecordType) Icon() string {
	switch t {
	case TypePage:
		return "🏠"
	case TypeExercise:
		return "📋"
	case TypeTopic:
		return "📄"
	case TypeSubtopic:
		return "📝"
	case TypeArticle:
		return "📰"
	case TypePDF:
		return "📕"
	case TypeSpreadsheet:
		return "📊"
	case TypePresentation:
		return "🎯"
	case TypeTemplate:
		return "📄"
	default:
		return "📌"
	}
}

// Record is one searchable unit: a page, curriculum topic, downloadable
// resource or blog article. Records are immutable once a catalog is built.
type Record struct {
	// ID is the stable unique identifier within a catalog.
	ID string `json:"id"`

	// Title is the display string. Required.
	Title string `json:"title"`

	// Description is an optional free-text body, searched with lower
	// weight than the title.
	Description string `json:"description,omitempty"`

	// Content is an optional longer body, searched with the lowest weight.
	Content string `json:"content,omitempty"`

	// Keywords are secondary weighted search tags.
	Keywords []string `json:"keywords,omitempty"`

	// Type classifies the record for boosting and presentation.
	Type RecordType `json:"type"`

	// ThemeNumber is the optional curriculum position ("3.A.36").
	// It carries its own exact-match rules distinct from free text.
	ThemeNumber string `json:"themeNumber,omitempty"`

	// Group is the part label within an exercise
	// ("Parte A: Economía general").
	Group string `json:"group,omitempty"`

	// ParentLabel is the exercise label ("Tercer ejercicio").
	ParentLabel string `json:"parentLabel,omitempty"`

	// Available reports whether the backing material exists. Unavailable
	// records still match but are penalized and rendered non-navigable.
	Available bool `json:"available"`

	// URL is the target resource locator.
	URL string `json:"url"`
}
