package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driving"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog",
	Long: `Searches the catalog the way the site's search box does: free
text with accent-insensitive matching and typo tolerance, or a theme
number in any of its spellings ("3.A.36", "3a36", "3 A 36").`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default from config)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	searcher, err := newSearcher(cmd.Context())
	if err != nil {
		return err
	}

	limit := searchLimit
	if limit <= 0 {
		limit = cfg.ResultLimit
	}
	results := searcher.Search(query)
	if len(results) > limit {
		results = results[:limit]
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchList(cmd, searcher, query, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.ScoredResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchList(cmd *cobra.Command, searcher driving.Searcher, query string, results []domain.ScoredResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i, r := range results {
		cmd.Printf("  [%d] %s %s (%.1f)\n", i+1, r.Type.Icon(), searcher.Highlight(r.Title, query), r.Relevance)
		cmd.Printf("      %s", r.Type.Label())
		if r.ThemeNumber != "" {
			cmd.Printf(" · Tema %s", r.ThemeNumber)
		}
		if r.ParentLabel != "" {
			cmd.Printf(" · %s", r.ParentLabel)
		}
		if !r.Available {
			cmd.Printf(" · no disponible")
		}
		cmd.Println()
		cmd.Printf("      %s\n", r.URL)
		cmd.Println()
	}
	return nil
}
