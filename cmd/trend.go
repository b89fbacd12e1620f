package cmd

import (
	"fmt"

	"cartscope/internal/cli"

	"github.com/spf13/cobra"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Monthly revenue trend for the analysis year",
	RunE:  runTrend,
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

func runTrend(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	// Trend always looks at the whole year, regardless of --month
	period := currentPeriod()
	period.Month = 0
	baseline := baselinePeriod()
	baseline.Month = 0

	cur, err := summarize(result.Transactions, period)
	if err != nil {
		return err
	}
	base, err := summarize(result.Transactions, baseline)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY REVENUE  %d", period.Year)))
	fmt.Println()

	if len(cur.Monthly) == 0 {
		fmt.Println("  No transactions in the selected year.")
		fmt.Println()
		return nil
	}

	maxRevenue := 0.0
	for _, m := range cur.Monthly {
		if m.Revenue > maxRevenue {
			maxRevenue = m.Revenue
		}
	}

	for _, m := range cur.Monthly {
		label := fmt.Sprintf("%s %d", cli.FormatMonth(m.Month), m.Month.Year())
		value := fmt.Sprintf("%s (%s orders)", cli.FormatCurrency(m.Revenue), cli.FormatNumber(int64(m.Orders)))
		fmt.Println(cli.RenderHorizontalBar(label, value, m.Revenue, maxRevenue, 30))
	}

	// Year-over-year footer
	if base.Revenue.OrderCount > 0 {
		delta := cur.Revenue.TotalRevenue - base.Revenue.TotalRevenue
		pct := 0.0
		if base.Revenue.TotalRevenue > 0 {
			pct = delta / base.Revenue.TotalRevenue * 100
		}
		fmt.Printf("\n  %d total: %s   vs %d: %s (%+.1f%%)\n",
			period.Year, cli.FormatCurrency(cur.Revenue.TotalRevenue),
			baseline.Year, cli.FormatCurrency(base.Revenue.TotalRevenue), pct)
	} else {
		fmt.Printf("\n  %d total: %s\n", period.Year, cli.FormatCurrency(cur.Revenue.TotalRevenue))
	}
	fmt.Println()

	warnFileErrors(result)
	return nil
}
