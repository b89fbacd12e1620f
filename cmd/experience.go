package cmd

import (
	"fmt"

	"cartscope/internal/cli"
	"cartscope/internal/pipeline"

	"github.com/spf13/cobra"
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Customer experience: reviews, delivery times, on-time rate",
	RunE:  runExperience,
}

func init() {
	rootCmd.AddCommand(experienceCmd)
}

func runExperience(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	sum, err := summarize(result.Transactions, currentPeriod())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CUSTOMER EXPERIENCE  %s", sum.Period.Label())))
	fmt.Println()

	metrics := sum.Metrics()
	exp := sum.Experience

	rows := [][]string{
		{"Avg Review Score", cli.FormatMetric(metrics[pipeline.MetricAvgReviewScore])},
		{"Avg Delivery Time", cli.FormatMetric(metrics[pipeline.MetricAvgDeliveryDays])},
		{"On-Time Delivery", cli.FormatMetric(metrics[pipeline.MetricOnTimeRate])},
		{"---"},
		{"Delivered Items", cli.FormatNumber(int64(exp.Delivered))},
		{"Reviewed Items", cli.FormatNumber(int64(exp.Reviewed))},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Satisfaction vs delivery speed, one row per populated bucket
	if len(sum.Satisfaction) > 0 {
		fmt.Println()
		bucketRows := make([][]string, 0, len(sum.Satisfaction))
		for _, b := range sum.Satisfaction {
			bucketRows = append(bucketRows, []string{
				b.Bucket,
				cli.FormatScore(b.AvgScore),
				cli.FormatNumber(int64(b.Orders)),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Satisfaction by Delivery Speed",
			Headers: []string{"Delivery Time", "Avg Score", "Orders"},
			Rows:    bucketRows,
		}))
	}
	fmt.Println()

	warnFileErrors(result)
	return nil
}
