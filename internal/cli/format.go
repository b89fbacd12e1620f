// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"cartscope/internal/model"
)

// noDataMark renders metrics whose denominator was empty. Distinct from
// "0": no orders is not the same as zero revenue per order.
const noDataMark = "n/a"

// FormatCurrency formats a monetary amount with K/M suffixes for large
// values. e.g., 1234567 -> "$1.2M", 340500 -> "$340.5K", 75 -> "$75.00"
func FormatCurrency(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.1fK", v/1_000)
	case abs >= 100:
		return fmt.Sprintf("$%.0f", v)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatScore formats a 1-5 review score.
func FormatScore(s float64) string {
	return fmt.Sprintf("%.2f/5", s)
}

// FormatDays formats a day count that may be fractional.
func FormatDays(d float64) string {
	return fmt.Sprintf("%.1f days", d)
}

// FormatMetric renders a metric result by its unit. No-data metrics
// render as a marker, never as a misleading zero.
func FormatMetric(m model.MetricResult) string {
	if m.NoData {
		return noDataMark
	}
	switch m.Unit {
	case model.UnitCurrency:
		return FormatCurrency(m.Value)
	case model.UnitPercent:
		return FormatPercent(m.Value)
	case model.UnitCount:
		return FormatNumber(int64(m.Value))
	case model.UnitDays:
		return FormatDays(m.Value)
	case model.UnitScore:
		return FormatScore(m.Value)
	default:
		return fmt.Sprintf("%.2f", m.Value)
	}
}

// FormatTrend returns the arrow for a comparison trend.
func FormatTrend(t model.Trend) string {
	switch t {
	case model.TrendUp:
		return "↑"
	case model.TrendDown:
		return "↓"
	default:
		return "→"
	}
}

// FormatChange renders a comparison's percent change with sign and
// arrow, or the no-data marker when the baseline was zero.
func FormatChange(cr model.ComparisonResult) string {
	if cr.PercentChange == nil {
		return noDataMark
	}
	return fmt.Sprintf("%s %+.1f%%", FormatTrend(cr.Trend), *cr.PercentChange)
}

// MetricLabel maps a metric name to its display label.
func MetricLabel(name string) string {
	labels := map[string]string{
		"total_revenue":     "Total Revenue",
		"total_freight":     "Total Freight",
		"order_count":       "Orders",
		"item_count":        "Items Sold",
		"avg_order_value":   "Avg Order Value",
		"avg_review_score":  "Avg Review Score",
		"avg_delivery_days": "Avg Delivery Time",
		"on_time_rate":      "On-Time Delivery",
	}
	if label, ok := labels[name]; ok {
		return label
	}
	return name
}

// FormatMonth returns a 3-letter month abbreviation.
func FormatMonth(t time.Time) string {
	return t.Month().String()[:3]
}
