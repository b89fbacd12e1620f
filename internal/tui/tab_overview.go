package tui

import (
	"fmt"
	"strings"

	"cartscope/internal/cli"
	"cartscope/internal/config"
	"cartscope/internal/pipeline"
	"cartscope/internal/tui/components"
	"cartscope/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	sum := a.current
	metrics := sum.Metrics()
	var b strings.Builder

	// Row 1: headline metric cards with baseline deltas
	cards := []struct{ Label, Value, Delta string }{
		{"Revenue", cli.FormatMetric(metrics[pipeline.MetricTotalRevenue]), a.changeStr(pipeline.MetricTotalRevenue)},
		{"Orders", cli.FormatMetric(metrics[pipeline.MetricOrderCount]), a.changeStr(pipeline.MetricOrderCount)},
		{"Avg Order", cli.FormatMetric(metrics[pipeline.MetricAvgOrderValue]), a.changeStr(pipeline.MetricAvgOrderValue)},
		{"Review Score", cli.FormatMetric(metrics[pipeline.MetricAvgReviewScore]), a.changeStr(pipeline.MetricAvgReviewScore)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: monthly revenue chart
	if len(sum.Monthly) > 0 {
		vals := make([]float64, len(sum.Monthly))
		labels := make([]string, len(sum.Monthly))
		for i, m := range sum.Monthly {
			vals[i] = m.Revenue
			labels[i] = cli.FormatMonth(m.Month)
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Monthly Revenue (%s)", sum.Period.Label()),
			components.BarChart(vals, labels, t.Blue, components.CardInnerWidth(cw), 10),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: revenue target, when configured
	cfg, _ := config.Load()
	if target := pipeline.TargetProgress(sum.Period, sum.Revenue, cfg.Target.MonthlyRevenue); target.PeriodTarget > 0 {
		body := components.TargetBar(
			fmt.Sprintf("%s of %s", cli.FormatCurrency(target.CurrentRevenue), cli.FormatCurrency(target.PeriodTarget)),
			target.AchievedPercent/100,
			24, components.CardInnerWidth(cw)-34,
		)
		b.WriteString(components.ContentCard("Revenue Target", body, cw))
		b.WriteString("\n")
	}

	// Row 4: order status distribution
	if len(sum.Statuses) > 0 {
		labels := make([]string, len(sum.Statuses))
		values := make([]string, len(sum.Statuses))
		nums := make([]float64, len(sum.Statuses))
		for i, s := range sum.Statuses {
			labels[i] = string(s.Status)
			values[i] = fmt.Sprintf("%s (%s)", cli.FormatNumber(int64(s.Orders)), cli.FormatPercent(s.Percent))
			nums[i] = float64(s.Orders)
		}
		b.WriteString(components.ContentCard(
			"Order Status",
			components.HBarList(labels, values, nums, t.Accent, components.CardInnerWidth(cw)),
			cw,
		))
	}

	return b.String()
}
