// Package httpapi exposes the search engine over HTTP for local
// preview: the same queries the site's search box runs client-side,
// served as JSON, plus the catalog artifact itself.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driving"
	"github.com/vgutierrezmarcos/oposearch/internal/logger"
)

const (
	defaultLimit    = 10
	maxLimit        = 50
	shutdownTimeout = 5 * time.Second
)

// Server serves the search API and the catalog artifact.
type Server struct {
	searcher  driving.Searcher
	indexPath string
	router    *gin.Engine
}

// New creates a server over an initialized searcher. indexPath is the
// catalog artifact served at /search-index.json; empty disables that
// route.
func New(searcher driving.Searcher, indexPath string) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		searcher:  searcher,
		indexPath: indexPath,
		router:    gin.New(),
	}
	s.router.Use(gin.Recovery())
	s.routes()
	return s
}

// Router exposes the handler, for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/api/search", s.handleSearch)
	s.router.GET("/api/suggest", s.handleSuggest)
	if s.indexPath != "" {
		s.router.StaticFile("/search-index.json", s.indexPath)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	limit := parseLimit(c.Query("limit"), defaultLimit)

	results := s.searcher.Search(query)
	if len(results) > limit {
		results = results[:limit]
	}
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

func (s *Server) handleSuggest(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	limit := parseLimit(c.Query("limit"), 0)

	results := s.searcher.Suggest(query, limit)
	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// parseLimit clamps the limit parameter to (0, maxLimit], falling back
// on garbage.
func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}

// Run serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
