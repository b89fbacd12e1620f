package pipeline

import "cartscope/internal/model"

// TargetProgress measures period revenue against a configured monthly
// target. A full-year period scales the target by twelve. A zero or
// negative target disables tracking and yields zeroed stats.
func TargetProgress(period model.PeriodConfig, revenue model.RevenueStats, monthlyTarget float64) model.TargetStats {
	stats := model.TargetStats{
		MonthlyTarget:  monthlyTarget,
		CurrentRevenue: revenue.TotalRevenue,
	}
	if monthlyTarget <= 0 {
		return stats
	}

	months := 1.0
	if period.Month == 0 {
		months = 12
	}
	stats.PeriodTarget = monthlyTarget * months
	stats.AchievedPercent = revenue.TotalRevenue / stats.PeriodTarget * 100
	return stats
}
