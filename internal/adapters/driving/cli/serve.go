package cli

import (
	"github.com/spf13/cobra"

	"github.com/vgutierrezmarcos/oposearch/internal/adapters/driving/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search API locally",
	Long: `Starts a local HTTP server exposing the search engine as JSON
endpoints (/api/search, /api/suggest) and serving the catalog artifact
at /search-index.json, for previewing search behaviour before
publishing the site.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	searcher, err := newSearcher(cmd.Context())
	if err != nil {
		return err
	}

	indexPath := cfg.IndexPath
	if cfg.SiteURL != "" {
		// Catalog comes from the published site; nothing local to serve.
		indexPath = ""
	}
	addr := serveAddr
	if addr == "" {
		addr = cfg.ListenAddr
	}
	return httpapi.New(searcher, indexPath).Run(cmd.Context(), addr)
}
