package domain

// ContentDocument is a document read from the content root: the parsed
// front matter of one source file, before it becomes a catalog record.
type ContentDocument struct {
	// Path is the source file location, for diagnostics.
	Path string

	// Title, Date and Slug are required. A document missing any of them
	// is skipped with a warning during a build.
	Title string
	Date  string
	Slug  string

	// Description and Category are optional front-matter fields.
	Description string
	Category    string

	// ThemeNumber optionally ties the document to a curriculum topic.
	ThemeNumber string
}

// Complete reports whether the required front-matter fields are present.
func (d ContentDocument) Complete() bool {
	return d.Title != "" && d.Date != "" && d.Slug != ""
}
