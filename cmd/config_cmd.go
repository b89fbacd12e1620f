// Package cmd implements the cartscope CLI commands.
package cmd

import (
	"fmt"

	"cartscope/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data directory: %s\n", cfg.General.DataDir)
	} else {
		fmt.Println("    Data directory: not set (use --data-dir)")
	}
	fmt.Printf("    Top N:          %d\n", cfg.General.TopN)
	fmt.Printf("    Status filter:  %s\n", cfg.General.Status)
	fmt.Println()

	fmt.Println("  [Analysis]")
	fmt.Printf("    Current period:  %s\n", cfg.Analysis.CurrentPeriod().Label())
	fmt.Printf("    Baseline period: %s\n", cfg.Analysis.BaselinePeriod().Label())
	fmt.Println()

	fmt.Println("  [Target]")
	if cfg.Target.MonthlyRevenue > 0 {
		fmt.Printf("    Monthly revenue: $%.0f\n", cfg.Target.MonthlyRevenue)
	} else {
		fmt.Println("    Monthly revenue: not set")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `cartscope setup` to reconfigure.")
	return nil
}
