package model

import "time"

// Unit tags a metric value so presentation layers can format it without
// the core doing any rounding or symbol work.
type Unit string

// Metric units.
const (
	UnitCurrency Unit = "currency"
	UnitPercent  Unit = "percent"
	UnitCount    Unit = "count"
	UnitDays     Unit = "days"
	UnitScore    Unit = "score"
)

// MetricResult is one named metric value for one period. NoData marks a
// metric whose denominator was empty (no orders, no reviews); the value
// is zero in that case and should render as "no data", not "0".
type MetricResult struct {
	Name        string
	Value       float64
	Unit        Unit
	PeriodLabel string
	NoData      bool
}

// Trend is the direction of a period-over-period change.
type Trend int

// Trend directions. Strict sign comparison, no epsilon: exact equality
// is flat.
const (
	TrendDown Trend = -1
	TrendFlat Trend = 0
	TrendUp   Trend = 1
)

// ComparisonResult pairs one metric's current and baseline values.
// PercentChange is nil when the baseline is zero or has no data; growth
// from nothing is undefined, not infinite.
type ComparisonResult struct {
	Metric        string
	Current       float64
	Baseline      float64
	Delta         float64
	PercentChange *float64
	Trend         Trend
}

// RevenueStats holds the top-level revenue aggregate for one period.
// Revenue is item price only; freight is a pass-through cost and is
// tracked separately.
type RevenueStats struct {
	TotalRevenue  float64
	TotalFreight  float64
	OrderCount    int
	ItemCount     int
	AvgOrderValue float64
}

// MonthRevenue is one point of the monthly revenue series. The series is
// sparse: months with no transactions are absent, not zero-filled.
type MonthRevenue struct {
	Month   time.Time // first day of the month, UTC
	Revenue float64
	Orders  int
}

// CategoryStats holds revenue for a single product category.
type CategoryStats struct {
	Category     string
	Revenue      float64
	SharePercent float64
}

// StateStats holds revenue and order volume for a single customer state.
type StateStats struct {
	State        string
	Revenue      float64
	Orders       int
	SharePercent float64
}

// ExperienceStats holds delivery and review metrics for one period.
// Nil pointers mean the underlying population was empty (no delivered
// orders, no submitted reviews).
type ExperienceStats struct {
	AvgReviewScore  *float64
	AvgDeliveryDays *float64
	OnTimeRate      *float64 // percent of delivered records at or before the estimate
	Delivered       int      // records with an actual delivery date
	Reviewed        int      // records with a submitted review
}

// BucketScore is the average review score for orders within one
// delivery-speed bucket.
type BucketScore struct {
	Bucket   string
	AvgScore float64
	Orders   int
}

// StatusShare is the portion of distinct orders in one lifecycle status.
type StatusShare struct {
	Status  OrderStatus
	Orders  int
	Percent float64
}
