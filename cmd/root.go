package cmd

import (
	"fmt"
	"os"

	"spendwise/internal/config"
	"spendwise/internal/pipeline"
	"spendwise/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagMonth   string
	flagNoCache bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "spendwise",
	Short: "Personal finance transaction analyzer",
	Long:  "Analyze CSV bank statements: spending by category, trends, projections, and budgets.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory of CSV statements (default: config, then ./data)")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Target month as YYYY-MM (default: latest month in the data)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse everything")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// dataDir resolves the statement directory: flag, then config, then ./data.
func dataDir(cfg config.Config) string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return config.DataDir(cfg)
}

// loadData is the shared data loading path used by all commands.
// Uses the SQLite parse cache when available for fast subsequent runs.
func loadData(cfg config.Config) (*pipeline.LoadResult, error) {
	dir := dataDir(cfg)

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		if current%10 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Parsing [%d/%d]", current, total)
		}
	}

	// Try cached load unless --no-cache
	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer cache.Close()

			cr, err := pipeline.LoadWithCache(dir, cache, progressFn)
			if err != nil {
				if !flagQuiet {
					fmt.Fprintf(os.Stderr, "\n  Cache error, falling back to full parse\n")
				}
			} else {
				if !flagQuiet && cr.TotalFiles > 0 {
					if cr.Reparsed == 0 {
						fmt.Fprintf(os.Stderr, "\r  Loaded %d transactions from cache    \n",
							len(cr.Transactions))
					} else {
						fmt.Fprintf(os.Stderr, "\r  %d files cached + %d reparsed    \n",
							cr.CacheHits, cr.Reparsed)
					}
				}
				return &cr.LoadResult, nil
			}
		}
	}

	// Uncached path
	result, err := pipeline.Load(dir, progressFn)
	if err != nil {
		return nil, err
	}

	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintf(os.Stderr, "\r  Parsed %d transactions from %d files    \n",
			len(result.Transactions), result.ParsedFiles)
	}

	return result, nil
}

// reportIssues prints parse problem counts to stderr after the main output.
func reportIssues(result *pipeline.LoadResult) {
	if result.FileErrors > 0 {
		fmt.Fprintf(os.Stderr, "\n  %d files could not be parsed\n", result.FileErrors)
	}
	if result.RowErrors > 0 {
		fmt.Fprintf(os.Stderr, "  %d malformed rows skipped\n", result.RowErrors)
	}
}
