package cmd

import (
	"fmt"

	"cartscope/internal/cli"
	"cartscope/internal/config"
	"cartscope/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Revenue summary with period-over-period comparison",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	if len(result.Transactions) == 0 {
		fmt.Println("\n  No transactions found.")
		fmt.Printf("  Point --data-dir at your cleaned CSV exports (current: %s)\n", flagDataDir)
		return nil
	}

	cur, err := summarize(result.Transactions, currentPeriod())
	if err != nil {
		return err
	}
	base, err := summarize(result.Transactions, baselinePeriod())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("REVENUE SUMMARY  %s", cur.Period.Label())))
	fmt.Println()

	comparisons := pipeline.Compare(cur.Metrics(), base.Metrics())
	changeFor := make(map[string]string, len(comparisons))
	for _, cr := range comparisons {
		changeFor[cr.Metric] = cli.RenderTrendChange(cli.FormatChange(cr), int(cr.Trend))
	}

	metrics := cur.Metrics()
	row := func(name string) []string {
		return []string{cli.MetricLabel(name), cli.FormatMetric(metrics[name]), changeFor[name]}
	}

	rows := [][]string{
		row(pipeline.MetricTotalRevenue),
		row(pipeline.MetricTotalFreight),
		row(pipeline.MetricOrderCount),
		row(pipeline.MetricItemCount),
		row(pipeline.MetricAvgOrderValue),
		{"---"},
		row(pipeline.MetricAvgReviewScore),
		row(pipeline.MetricAvgDeliveryDays),
		row(pipeline.MetricOnTimeRate),
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", cur.Period.Label(), fmt.Sprintf("vs %s", base.Period.Label())},
		Rows:    rows,
	}))

	// Monthly sparkline only makes sense for a full-year window
	if cur.Period.Month == 0 && len(cur.Monthly) > 1 {
		values := make([]float64, len(cur.Monthly))
		for i, m := range cur.Monthly {
			values[i] = m.Revenue
		}
		fmt.Printf("\n  Monthly revenue  %s\n", cli.RenderSparkline(values))
	}

	cfg, _ := config.Load()
	if target := pipeline.TargetProgress(cur.Period, cur.Revenue, cfg.Target.MonthlyRevenue); target.PeriodTarget > 0 {
		fmt.Printf("\n  Target: %s of %s (%s)\n",
			cli.FormatCurrency(target.CurrentRevenue),
			cli.FormatCurrency(target.PeriodTarget),
			cli.FormatPercent(target.AchievedPercent))
	}
	fmt.Println()

	warnFileErrors(result)
	return nil
}
