package cmd

import (
	"fmt"

	"cartscope/internal/cli"

	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Top product categories by revenue",
	RunE:  runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

func runProducts(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	sum, err := summarize(result.Transactions, currentPeriod())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TOP CATEGORIES  %s", sum.Period.Label())))
	fmt.Println()

	if len(sum.Categories) == 0 {
		fmt.Println("  No transactions in the selected period.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(sum.Categories))
	for i, c := range sum.Categories {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			c.Category,
			cli.FormatCurrency(c.Revenue),
			cli.FormatPercent(c.SharePercent),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Category", "Revenue", "Share"},
		Rows:    rows,
	}))

	// Bar chart against the leader
	maxRevenue := sum.Categories[0].Revenue
	fmt.Println()
	for _, c := range sum.Categories {
		fmt.Println(cli.RenderHorizontalBar(truncate(c.Category, 12), cli.FormatCurrency(c.Revenue), c.Revenue, maxRevenue, 30))
	}
	fmt.Println()

	warnFileErrors(result)
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
