package cmd

import (
	"fmt"
	"os"
	"time"

	"cartscope/internal/cli"
	"cartscope/internal/config"
	"cartscope/internal/model"
	"cartscope/internal/pipeline"
	"cartscope/internal/store"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	flagDataDir       string
	flagDSN           string
	flagYear          int
	flagMonth         int
	flagBaselineYear  int
	flagBaselineMonth int
	flagTopN          int
	flagStatus        string
	flagState         string
	flagNoCache       bool
	flagQuiet         bool
)

var rootCmd = &cobra.Command{
	Use:   "cartscope",
	Short: "E-commerce Business Metrics CLI",
	Long:  "Analyze cleaned e-commerce transaction data: revenue, products, geography, and customer experience.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", cfg.General.DataDir, "Directory of cleaned transaction CSV files")
	rootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "MySQL DSN or mysql:// URL to load transactions from instead of CSV")
	rootCmd.PersistentFlags().IntVarP(&flagYear, "year", "y", cfg.Analysis.CurrentYear, "Analysis year")
	rootCmd.PersistentFlags().IntVarP(&flagMonth, "month", "m", cfg.Analysis.CurrentMonth, "Analysis month (0 = full year)")
	rootCmd.PersistentFlags().IntVar(&flagBaselineYear, "baseline-year", cfg.Analysis.BaselineYear, "Baseline year for comparison")
	rootCmd.PersistentFlags().IntVar(&flagBaselineMonth, "baseline-month", cfg.Analysis.BaselineMonth, "Baseline month (0 = full year)")
	rootCmd.PersistentFlags().IntVarP(&flagTopN, "top", "t", cfg.General.TopN, "Number of entries in rankings")
	rootCmd.PersistentFlags().StringVarP(&flagStatus, "status", "s", cfg.General.Status, "Order status filter (\"all\" disables)")
	rootCmd.PersistentFlags().StringVar(&flagState, "state", "", "Restrict to one customer state (e.g. SP)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse everything")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// currentPeriod returns the analysis window from flags.
func currentPeriod() model.PeriodConfig {
	return model.PeriodConfig{Year: flagYear, Month: time.Month(flagMonth)}
}

// baselinePeriod returns the comparison window from flags.
func baselinePeriod() model.PeriodConfig {
	return model.PeriodConfig{Year: flagBaselineYear, Month: time.Month(flagBaselineMonth)}
}

// newProgressBar builds the stderr parse progress bar, or nil when quiet.
func newProgressBar(total int) *progressbar.ProgressBar {
	if flagQuiet || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("  Parsing files"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
	)
}

// loadData is the shared loading path used by all commands. CSV files
// go through the SQLite cache unless --no-cache; --dsn bypasses files
// entirely and reads from MySQL.
func loadData() (*pipeline.LoadResult, error) {
	if flagDSN != "" {
		return loadFromMySQL()
	}

	var bar *progressbar.ProgressBar
	progressFn := func(current, total int) {
		if bar == nil {
			bar = newProgressBar(total)
		}
		if bar != nil {
			_ = bar.Set(current)
		}
	}

	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer cache.Close()

			cr, err := pipeline.LoadWithCache(flagDataDir, cache, progressFn)
			if err != nil {
				if !flagQuiet {
					fmt.Fprintf(os.Stderr, "  Cache error, falling back to full parse\n")
				}
			} else {
				if !flagQuiet && cr.TotalFiles > 0 {
					if cr.Reparsed == 0 {
						fmt.Fprintf(os.Stderr, "  Loaded %s transactions from cache\n",
							cli.FormatNumber(int64(len(cr.Transactions))))
					} else {
						fmt.Fprintf(os.Stderr, "  %d files cached, %d reparsed (%s transactions)\n",
							cr.CacheHits, cr.Reparsed,
							cli.FormatNumber(int64(len(cr.Transactions))))
					}
				}
				return &cr.LoadResult, nil
			}
		}
	}

	result, err := pipeline.Load(flagDataDir, progressFn)
	if err != nil {
		return nil, err
	}

	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintf(os.Stderr, "  Parsed %s transactions from %d files\n",
			cli.FormatNumber(int64(len(result.Transactions))), result.ParsedFiles)
	}

	return result, nil
}

func loadFromMySQL() (*pipeline.LoadResult, error) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading transactions from MySQL...\n")
	}
	result, err := pipeline.LoadFromDB(flagDSN)
	if err != nil {
		return nil, err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loaded %s transactions\n",
			cli.FormatNumber(int64(len(result.Transactions))))
	}
	return result, nil
}

// summarize runs the full calculator set for one period. Summarize does
// the period filter itself, so only the status and state filters are
// applied here.
func summarize(txns []model.TransactionRecord, period model.PeriodConfig) (*pipeline.Summary, error) {
	if flagStatus != "" && flagStatus != "all" {
		txns = pipeline.FilterByStatus(txns, model.OrderStatus(flagStatus))
	}
	txns = pipeline.FilterByState(txns, flagState)
	return pipeline.Summarize(txns, period, flagTopN)
}

// warnFileErrors prints a parse failure notice after command output.
func warnFileErrors(result *pipeline.LoadResult) {
	if result.FileErrors > 0 {
		fmt.Fprintf(os.Stderr, "\n  %d files could not be parsed", result.FileErrors)
		if result.FirstErr != nil {
			fmt.Fprintf(os.Stderr, " (first: %v)", result.FirstErr)
		}
		fmt.Fprintln(os.Stderr)
	}
}
