package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"cartscope/internal/config"
	"cartscope/internal/model"
	"cartscope/internal/source"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	dataDir := cfg.General.DataDir
	if flagDataDir != "" {
		dataDir = flagDataDir
	}

	files, _ := source.ScanDir(dataDir)

	fmt.Println()
	fmt.Println("  Welcome to cartscope!")
	if len(files) > 0 {
		fmt.Printf("  Found %d transaction files in %s\n", len(files), dataDir)
	}
	fmt.Println()

	yearStr := strconv.Itoa(cfg.Analysis.CurrentYear)
	baselineStr := strconv.Itoa(cfg.Analysis.BaselineYear)
	targetStr := ""
	if cfg.Target.MonthlyRevenue > 0 {
		targetStr = strconv.FormatFloat(cfg.Target.MonthlyRevenue, 'f', -1, 64)
	}
	status := cfg.General.Status
	theme := cfg.Appearance.Theme

	validYear := func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 2000 || n > 2100 {
			return fmt.Errorf("enter a four-digit year")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Where your cleaned transaction CSV exports live.").
				Value(&dataDir),
			huh.NewInput().
				Title("Analysis year").
				Validate(validYear).
				Value(&yearStr),
			huh.NewInput().
				Title("Baseline year").
				Description("Comparison baseline for period-over-period metrics.").
				Validate(validYear).
				Value(&baselineStr),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default order status filter").
				Options(
					huh.NewOption("Delivered only (recommended)", string(model.StatusDelivered)),
					huh.NewOption("All statuses", "all"),
					huh.NewOption("Shipped", string(model.StatusShipped)),
					huh.NewOption("Canceled", string(model.StatusCanceled)),
				).
				Value(&status),
			huh.NewInput().
				Title("Monthly revenue target").
				Description("Optional. Leave blank to disable target tracking.").
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("enter a number or leave blank")
					}
					return nil
				}).
				Value(&targetStr),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&theme),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.DataDir = strings.TrimSpace(dataDir)
	cfg.General.Status = status
	cfg.Analysis.CurrentYear, _ = strconv.Atoi(strings.TrimSpace(yearStr))
	cfg.Analysis.BaselineYear, _ = strconv.Atoi(strings.TrimSpace(baselineStr))
	cfg.Appearance.Theme = theme
	if s := strings.TrimSpace(targetStr); s != "" {
		cfg.Target.MonthlyRevenue, _ = strconv.ParseFloat(s, 64)
	} else {
		cfg.Target.MonthlyRevenue = 0
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `cartscope setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
