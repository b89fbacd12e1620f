package components

import (
	"fmt"

	"cartscope/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// transaction count and load time on the right.
func RenderStatusBar(width int, txnCount int, dataAge string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if txnCount > 0 {
		right = fmt.Sprintf("%d transactions", txnCount)
	}
	if dataAge != "" {
		if right != "" {
			right += " · "
		}
		right += fmt.Sprintf("loaded in %s", dataAge)
	}
	if right != "" {
		right += " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
