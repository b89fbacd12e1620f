package cmd

import (
	"fmt"

	"cartscope/internal/cli"
	"cartscope/internal/pipeline"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Full metric comparison between two periods",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	cur, err := summarize(result.Transactions, currentPeriod())
	if err != nil {
		return err
	}
	base, err := summarize(result.Transactions, baselinePeriod())
	if err != nil {
		return err
	}

	curLabel := cur.Period.Label()
	baseLabel := base.Period.Label()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s vs %s", curLabel, baseLabel)))
	fmt.Println()

	curMetrics := cur.Metrics()
	baseMetrics := base.Metrics()
	comparisons := pipeline.Compare(curMetrics, baseMetrics)

	rows := make([][]string, 0, len(comparisons))
	for _, cr := range comparisons {
		rows = append(rows, []string{
			cli.MetricLabel(cr.Metric),
			cli.FormatMetric(curMetrics[cr.Metric]),
			cli.FormatMetric(baseMetrics[cr.Metric]),
			cli.RenderTrendChange(cli.FormatChange(cr), int(cr.Trend)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", curLabel, baseLabel, "Change"},
		Rows:    rows,
	}))
	fmt.Println()

	warnFileErrors(result)
	return nil
}
