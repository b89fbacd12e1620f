package tui

import (
	"fmt"
	"strings"

	"cartscope/internal/cli"
	"cartscope/internal/tui/components"
	"cartscope/internal/tui/theme"
)

func (a App) renderProductsTab(cw int) string {
	t := theme.Active
	sum := a.current
	var b strings.Builder

	if len(sum.Categories) == 0 {
		return lipglossMuted("\n  No transactions in the selected period.")
	}

	labels := make([]string, len(sum.Categories))
	values := make([]string, len(sum.Categories))
	nums := make([]float64, len(sum.Categories))
	for i, c := range sum.Categories {
		labels[i] = truncStr(c.Category, 24)
		values[i] = fmt.Sprintf("%s  %s", cli.FormatCurrency(c.Revenue), cli.FormatPercent(c.SharePercent))
		nums[i] = c.Revenue
	}

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Top Categories by Revenue (%s)", sum.Period.Label()),
		components.HBarList(labels, values, nums, t.Green, components.CardInnerWidth(cw)),
		cw,
	))
	b.WriteString("\n")

	// Baseline comparison card, when the baseline period has data
	if base := a.baseline; base != nil && len(base.Categories) > 0 {
		baseShare := make(map[string]float64, len(base.Categories))
		for _, c := range base.Categories {
			baseShare[c.Category] = c.SharePercent
		}

		var rows []string
		for _, c := range sum.Categories {
			prev, ok := baseShare[c.Category]
			if !ok {
				rows = append(rows, fmt.Sprintf("%-26s %8s  new", truncStr(c.Category, 24), cli.FormatPercent(c.SharePercent)))
				continue
			}
			rows = append(rows, fmt.Sprintf("%-26s %8s  %+.1fpp", truncStr(c.Category, 24), cli.FormatPercent(c.SharePercent), c.SharePercent-prev))
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Share vs %s", base.Period.Label()),
			strings.Join(rows, "\n"),
			cw,
		))
	}

	return b.String()
}
