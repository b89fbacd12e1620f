package tui

import (
	"fmt"
	"strings"

	"cartscope/internal/cli"
	"cartscope/internal/tui/components"
	"cartscope/internal/tui/theme"
)

func (a App) renderGeographyTab(cw int) string {
	t := theme.Active
	sum := a.current
	var b strings.Builder

	if len(sum.States) == 0 {
		return lipglossMuted("\n  No transactions in the selected period.")
	}

	labels := make([]string, len(sum.States))
	values := make([]string, len(sum.States))
	nums := make([]float64, len(sum.States))
	for i, s := range sum.States {
		labels[i] = s.State
		values[i] = fmt.Sprintf("%s  %s", cli.FormatCurrency(s.Revenue), cli.FormatPercent(s.SharePercent))
		nums[i] = s.Revenue
	}

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Revenue by State (%s)", sum.Period.Label()),
		components.HBarList(labels, values, nums, t.Blue, components.CardInnerWidth(cw)),
		cw,
	))
	b.WriteString("\n")

	var rows []string
	for _, s := range sum.States {
		rows = append(rows, fmt.Sprintf("%-4s %10s orders", s.State, cli.FormatNumber(int64(s.Orders))))
	}
	b.WriteString(components.ContentCard("Orders", strings.Join(rows, "\n"), cw))

	return b.String()
}
