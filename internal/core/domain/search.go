package domain

// ScoredResult is a catalog record augmented with its relevance for one
// query. It exists only for the duration of a search call and its
// immediate rendering; it is never persisted.
type ScoredResult struct {
	Record

	// Relevance is the non-negative score computed from additive
	// text-match signals and multiplicative boosts and penalties.
	Relevance float64 `json:"relevance"`
}

// BuildStats summarises one index build.
type BuildStats struct {
	// Pages, Topics, Resources and Articles count the records emitted
	// per catalog group.
	Pages     int
	Topics    int
	Resources int
	Articles  int

	// TopicsAvailable counts the numbered topics with backing material.
	TopicsAvailable int

	// Skipped counts content documents dropped for missing required
	// front matter.
	Skipped int
}

// Total returns the number of records across all groups.
func (s BuildStats) Total() int {
	return s.Pages + s.Topics + s.Resources + s.Articles
}
