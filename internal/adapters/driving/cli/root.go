// Package cli wires the cobra command tree: index builds, searches,
// suggestions and the local preview server.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vgutierrezmarcos/oposearch/internal/adapters/driven/catalog/file"
	"github.com/vgutierrezmarcos/oposearch/internal/adapters/driven/catalog/httpsource"
	"github.com/vgutierrezmarcos/oposearch/internal/adapters/driven/content/filesystem"
	"github.com/vgutierrezmarcos/oposearch/internal/config"
	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driven"
	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driving"
	"github.com/vgutierrezmarcos/oposearch/internal/core/services"
	"github.com/vgutierrezmarcos/oposearch/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	cfg     config.Config
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "oposearch",
	Short: "Search index tooling for the TCEE study site",
	Long: `oposearch builds and queries the search catalog of the TCEE
study site: the curriculum topics, static pages, study resources and
blog articles, ranked the same way the site's own search box ranks
them.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.oposearch/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

func loadConfig(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	path := cfgPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	var err error
	cfg, err = config.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("config loaded from %s", path)
	return nil
}

// newSearcher builds an initialized engine over the configured catalog
// source. Swapped in tests.
var newSearcher = func(ctx context.Context) (driving.Searcher, error) {
	var source driven.CatalogSource
	if cfg.SiteURL != "" {
		source = httpsource.New(cfg.SiteURL)
	} else {
		source = file.NewStore(cfg.IndexPath)
	}
	engine := services.NewEngine(source)
	if !engine.Initialize(ctx) {
		return nil, fmt.Errorf("could not load the catalog; run 'oposearch build' first")
	}
	return engine, nil
}

// newBuilder assembles the index builder for the configured content
// root and artifact path. Swapped in tests.
var newBuilder = func() driving.IndexBuilder {
	return services.NewBuilder(
		filesystem.NewScanner(cfg.ContentDir),
		file.NewStore(cfg.IndexPath),
	)
}

// Execute runs the command tree.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
