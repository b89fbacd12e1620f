package tui

import (
	"fmt"
	"strings"

	"cartscope/internal/cli"
	"cartscope/internal/pipeline"
	"cartscope/internal/tui/components"
	"cartscope/internal/tui/theme"
)

func (a App) renderExperienceTab(cw int) string {
	t := theme.Active
	sum := a.current
	metrics := sum.Metrics()
	var b strings.Builder

	cards := []struct{ Label, Value, Delta string }{
		{"Review Score", cli.FormatMetric(metrics[pipeline.MetricAvgReviewScore]), a.changeStr(pipeline.MetricAvgReviewScore)},
		{"Delivery Time", cli.FormatMetric(metrics[pipeline.MetricAvgDeliveryDays]), a.changeStr(pipeline.MetricAvgDeliveryDays)},
		{"On-Time Rate", cli.FormatMetric(metrics[pipeline.MetricOnTimeRate]), a.changeStr(pipeline.MetricOnTimeRate)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if len(sum.Satisfaction) > 0 {
		labels := make([]string, len(sum.Satisfaction))
		values := make([]string, len(sum.Satisfaction))
		nums := make([]float64, len(sum.Satisfaction))
		for i, bs := range sum.Satisfaction {
			labels[i] = bs.Bucket
			values[i] = fmt.Sprintf("%s  %s orders", cli.FormatScore(bs.AvgScore), cli.FormatNumber(int64(bs.Orders)))
			nums[i] = bs.AvgScore
		}
		b.WriteString(components.ContentCard(
			"Satisfaction by Delivery Speed",
			components.HBarList(labels, values, nums, t.Yellow, components.CardInnerWidth(cw)),
			cw,
		))
		b.WriteString("\n")
	}

	rows := []string{
		fmt.Sprintf("Delivered items  %s", cli.FormatNumber(int64(sum.Experience.Delivered))),
		fmt.Sprintf("Reviewed items   %s", cli.FormatNumber(int64(sum.Experience.Reviewed))),
	}
	b.WriteString(components.ContentCard("Coverage", strings.Join(rows, "\n"), cw))

	return b.String()
}
