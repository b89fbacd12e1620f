package cmd

import (
	"fmt"

	"cartscope/internal/cli"
	"cartscope/internal/pipeline"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Order status distribution for the period",
	RunE:  runStatusDist,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// runStatusDist ignores the --status filter: a distribution of a
// pre-filtered status set would always read 100%.
func runStatusDist(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	period := currentPeriod()
	subset, err := pipeline.FilterPeriod(result.Transactions, period)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ORDER STATUS  %s", period.Label())))
	fmt.Println()

	shares := pipeline.StatusDistribution(subset)
	if len(shares) == 0 {
		fmt.Println("  No transactions in the selected period.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{
			string(s.Status),
			cli.FormatNumber(int64(s.Orders)),
			cli.FormatPercent(s.Percent),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Status", "Orders", "Share"},
		Rows:    rows,
	}))
	fmt.Println()

	warnFileErrors(result)
	return nil
}
