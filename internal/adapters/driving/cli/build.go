package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/vgutierrezmarcos/oposearch/internal/logger"
)

var (
	buildContentDir string
	buildOutput     string
	buildWatch      bool
)

// debounceDelay coalesces editor save bursts into one rebuild.
const debounceDelay = 300 * time.Millisecond

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the search catalog artifact",
	Long: `Assembles the search catalog from the curriculum tables and the
blog content scan and writes it as a JSON artifact the site serves
next to its static files.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildContentDir, "content", "", "content root to scan for blog posts (overrides config)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "artifact path (overrides config)")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild whenever the content root changes")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if buildContentDir != "" {
		cfg.ContentDir = buildContentDir
	}
	if buildOutput != "" {
		cfg.IndexPath = buildOutput
	}

	ctx := cmd.Context()
	if err := buildOnce(ctx, cmd); err != nil {
		return err
	}
	if !buildWatch {
		return nil
	}
	return watchAndRebuild(ctx, cmd)
}

func buildOnce(ctx context.Context, cmd *cobra.Command) error {
	stats, err := newBuilder().Build(ctx)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	cmd.Printf("Indexed %d records (%d pages, %d topics, %d resources, %d articles) -> %s\n",
		stats.Total(), stats.Pages, stats.Topics, stats.Resources, stats.Articles, cfg.IndexPath)
	if stats.Skipped > 0 {
		cmd.Printf("Skipped %d documents with incomplete front matter\n", stats.Skipped)
	}
	return nil
}

// watchAndRebuild blocks rebuilding on every change under the content
// root until the context is cancelled. Rebuild failures are logged and
// watching continues; only watcher errors end the loop.
func watchAndRebuild(ctx context.Context, cmd *cobra.Command) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.ContentDir); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.ContentDir, err)
	}
	cmd.Printf("Watching %s for changes (Ctrl-C to stop)\n", cfg.ContentDir)

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("change detected: %s", event)
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				timerCh = timer.C
			} else {
				timer.Reset(debounceDelay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		case <-timerCh:
			if err := buildOnce(ctx, cmd); err != nil {
				logger.Warn("rebuild failed: %v", err)
			}
		}
	}
}
