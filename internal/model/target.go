package model

// TargetStats holds revenue-target tracking for the current period.
type TargetStats struct {
	MonthlyTarget   float64
	PeriodTarget    float64 // monthly target scaled to the period length
	CurrentRevenue  float64
	AchievedPercent float64
}
