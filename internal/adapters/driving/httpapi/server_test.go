package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
)

// fakeSearcher returns a canned result list for any query.
type fakeSearcher struct {
	results []domain.ScoredResult
}

func (f *fakeSearcher) Initialize(_ context.Context) bool { return true }

func (f *fakeSearcher) Search(_ string) []domain.ScoredResult { return f.results }

func (f *fakeSearcher) Suggest(_ string, limit int) []domain.ScoredResult {
	if limit <= 0 {
		limit = 5
	}
	if len(f.results) > limit {
		return f.results[:limit]
	}
	return f.results
}

func (f *fakeSearcher) Highlight(text, _ string) string { return text }

func canned(n int) []domain.ScoredResult {
	results := make([]domain.ScoredResult, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, domain.ScoredResult{
			Record: domain.Record{
				ID:        string(rune('a' + i)),
				Title:     "Política Monetaria",
				URL:       "temario/tema.html",
				Type:      domain.TypeTopic,
				Available: true,
			},
			Relevance: float64(100 - i),
		})
	}
	return results
}

type apiResponse struct {
	Query   string                `json:"query"`
	Count   int                   `json:"count"`
	Results []domain.ScoredResult `json:"results"`
}

func doRequest(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestServer_Search(t *testing.T) {
	srv := New(&fakeSearcher{results: canned(3)}, "")

	rec := doRequest(t, srv, "/api/search?q=politica")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "politica", resp.Query)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "Política Monetaria", resp.Results[0].Title)
}

func TestServer_SearchLimit(t *testing.T) {
	srv := New(&fakeSearcher{results: canned(20)}, "")

	rec := doRequest(t, srv, "/api/search?q=politica&limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestServer_SearchMissingQuery(t *testing.T) {
	srv := New(&fakeSearcher{}, "")

	rec := doRequest(t, srv, "/api/search")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Suggest(t *testing.T) {
	srv := New(&fakeSearcher{results: canned(10)}, "")

	rec := doRequest(t, srv, "/api/suggest?q=pol")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Count, "suggest defaults to five results")
}

func TestServer_ServesArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search-index.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pages":[]}`), 0644))

	srv := New(&fakeSearcher{}, path)

	rec := doRequest(t, srv, "/search-index.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"pages":[]}`, rec.Body.String())
}

func TestServer_Health(t *testing.T) {
	srv := New(&fakeSearcher{}, "")

	rec := doRequest(t, srv, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}
