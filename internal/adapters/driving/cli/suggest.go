package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var suggestLimit int

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Show type-ahead suggestions for a query",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 5, "maximum number of suggestions")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	searcher, err := newSearcher(cmd.Context())
	if err != nil {
		return err
	}

	results := searcher.Suggest(query, suggestLimit)
	if len(results) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}
	for _, r := range results {
		cmd.Printf("%s %s · %s\n", r.Type.Icon(), r.Title, r.URL)
	}
	return nil
}
