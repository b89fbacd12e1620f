package cmd

import (
	"fmt"

	"cartscope/internal/cli"

	"github.com/spf13/cobra"
)

var geographyCmd = &cobra.Command{
	Use:     "geography",
	Aliases: []string{"geo", "states"},
	Short:   "Revenue breakdown by customer state",
	RunE:    runGeography,
}

func init() {
	rootCmd.AddCommand(geographyCmd)
}

func runGeography(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	sum, err := summarize(result.Transactions, currentPeriod())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("REVENUE BY STATE  %s", sum.Period.Label())))
	fmt.Println()

	if len(sum.States) == 0 {
		fmt.Println("  No transactions in the selected period.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(sum.States))
	for i, s := range sum.States {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.State,
			cli.FormatCurrency(s.Revenue),
			cli.FormatNumber(int64(s.Orders)),
			cli.FormatPercent(s.SharePercent),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "State", "Revenue", "Orders", "Share"},
		Rows:    rows,
	}))
	fmt.Println()

	warnFileErrors(result)
	return nil
}
