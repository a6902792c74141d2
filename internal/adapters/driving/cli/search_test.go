package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driving"
)

// stubSearcher returns canned results regardless of the query.
type stubSearcher struct {
	results []domain.ScoredResult
}

func (s *stubSearcher) Initialize(_ context.Context) bool { return true }

func (s *stubSearcher) Search(_ string) []domain.ScoredResult { return s.results }

func (s *stubSearcher) Suggest(_ string, limit int) []domain.ScoredResult {
	if len(s.results) > limit {
		return s.results[:limit]
	}
	return s.results
}

func (s *stubSearcher) Highlight(text, _ string) string { return text }

func stubResults() []domain.ScoredResult {
	return []domain.ScoredResult{
		{
			Record: domain.Record{
				ID:          "3a36",
				Title:       "Política Monetaria",
				URL:         "temario/tercer-ejercicio/tema_36.html",
				Type:        domain.TypeTopic,
				ThemeNumber: "3.A.36",
				ParentLabel: "Tercer ejercicio",
				Available:   true,
			},
			Relevance: 294,
		},
		{
			Record: domain.Record{
				ID:        "intro",
				Title:     "Introducción",
				URL:       "index.html",
				Type:      domain.TypePage,
				Available: true,
			},
			Relevance: 60,
		},
	}
}

// runCommand executes the root command with args plus an isolated
// config file, capturing output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag variables persist across executions; reset to defaults.
	searchLimit = 0
	searchJSON = false
	suggestLimit = 5

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.toml")))
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func swapSearcher(t *testing.T, searcher driving.Searcher, err error) {
	t.Helper()
	old := newSearcher
	newSearcher = func(_ context.Context) (driving.Searcher, error) {
		return searcher, err
	}
	t.Cleanup(func() { newSearcher = old })
}

func TestSearchCommand(t *testing.T) {
	swapSearcher(t, &stubSearcher{results: stubResults()}, nil)

	out, err := runCommand(t, "search", "politica", "monetaria")
	require.NoError(t, err)
	assert.Contains(t, out, "Política Monetaria")
	assert.Contains(t, out, "Tema 3.A.36")
	assert.Contains(t, out, "temario/tercer-ejercicio/tema_36.html")
}

func TestSearchCommand_JSON(t *testing.T) {
	swapSearcher(t, &stubSearcher{results: stubResults()}, nil)

	out, err := runCommand(t, "search", "politica", "--json")
	require.NoError(t, err)

	var results []domain.ScoredResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "3a36", results[0].ID)
	assert.Equal(t, float64(294), results[0].Relevance)
}

func TestSearchCommand_Limit(t *testing.T) {
	swapSearcher(t, &stubSearcher{results: stubResults()}, nil)

	out, err := runCommand(t, "search", "politica", "--json", "--limit", "1")
	require.NoError(t, err)

	var results []domain.ScoredResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results, 1)
}

func TestSearchCommand_NoResults(t *testing.T) {
	swapSearcher(t, &stubSearcher{}, nil)

	out, err := runCommand(t, "search", "zzzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCommand_EngineUnavailable(t *testing.T) {
	swapSearcher(t, nil, errors.New("could not load the catalog"))

	_, err := runCommand(t, "search", "politica")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not load the catalog")
}

func TestSuggestCommand(t *testing.T) {
	swapSearcher(t, &stubSearcher{results: stubResults()}, nil)

	out, err := runCommand(t, "suggest", "poli")
	require.NoError(t, err)
	assert.Contains(t, out, "Política Monetaria")
}

func TestSuggestCommand_Empty(t *testing.T) {
	swapSearcher(t, &stubSearcher{}, nil)

	out, err := runCommand(t, "suggest", "zzzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No suggestions.")
}
