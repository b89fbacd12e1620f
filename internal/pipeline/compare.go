package pipeline

import (
	"sort"

	"cartscope/internal/model"
)

// Metric names shared between period summaries and the comparison
// engine. Presentation layers key off these.
const (
	MetricTotalRevenue    = "total_revenue"
	MetricTotalFreight    = "total_freight"
	MetricOrderCount      = "order_count"
	MetricItemCount       = "item_count"
	MetricAvgOrderValue   = "avg_order_value"
	MetricAvgReviewScore  = "avg_review_score"
	MetricAvgDeliveryDays = "avg_delivery_days"
	MetricOnTimeRate      = "on_time_rate"
)

// Compare derives period-over-period deltas for every metric present in
// both result sets. Metrics on only one side are skipped: schema drift
// across periods is tolerated, not an error. A zero or no-data baseline
// leaves the percent change nil with trend forced flat; growth from
// nothing is undefined, not infinite. Results are sorted by metric name.
func Compare(current, baseline map[string]model.MetricResult) []model.ComparisonResult {
	names := make([]string, 0, len(current))
	for name := range current {
		if _, ok := baseline[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	results := make([]model.ComparisonResult, 0, len(names))
	for _, name := range names {
		cur, base := current[name], baseline[name]
		cr := model.ComparisonResult{
			Metric:   name,
			Current:  cur.Value,
			Baseline: base.Value,
			Delta:    cur.Value - base.Value,
		}

		if base.NoData || base.Value == 0 {
			cr.Trend = model.TrendFlat
		} else {
			pct := cr.Delta / base.Value * 100
			cr.PercentChange = &pct
			switch {
			case cr.Delta > 0:
				cr.Trend = model.TrendUp
			case cr.Delta < 0:
				cr.Trend = model.TrendDown
			default:
				cr.Trend = model.TrendFlat
			}
		}
		results = append(results, cr)
	}
	return results
}

// Summary bundles every calculator's output for one period. Calculators
// have no cross-dependencies; the struct exists so callers compute the
// period filter once.
type Summary struct {
	Period       model.PeriodConfig
	Revenue      model.RevenueStats
	Monthly      []model.MonthRevenue
	Categories   []model.CategoryStats
	States       []model.StateStats
	Experience   model.ExperienceStats
	Satisfaction []model.BucketScore
	Statuses     []model.StatusShare
}

// Summarize filters the table to the period and runs every calculator
// over the subset. topN bounds the ranked metrics; 0 keeps everything.
func Summarize(txns []model.TransactionRecord, period model.PeriodConfig, topN int) (*Summary, error) {
	subset, err := FilterPeriod(txns, period)
	if err != nil {
		return nil, err
	}

	satisfaction, err := SatisfactionByBucket(subset)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Period:       period,
		Revenue:      AggregateRevenue(subset),
		Monthly:      MonthlyRevenue(subset),
		Categories:   RankCategories(subset, topN),
		States:       RankStates(subset, topN),
		Experience:   AggregateExperience(subset),
		Satisfaction: satisfaction,
		Statuses:     StatusDistribution(subset),
	}, nil
}

// Metrics flattens the summary into named metric results for the
// comparison engine and presentation layers. Empty denominators yield
// no-data results so "nothing happened" renders distinctly from zero.
func (s *Summary) Metrics() map[string]model.MetricResult {
	label := s.Period.Label()
	empty := s.Revenue.ItemCount == 0

	m := make(map[string]model.MetricResult)
	add := func(name string, value float64, unit model.Unit, noData bool) {
		m[name] = model.MetricResult{
			Name:        name,
			Value:       value,
			Unit:        unit,
			PeriodLabel: label,
			NoData:      noData,
		}
	}
	addNullable := func(name string, value *float64, unit model.Unit) {
		if value != nil {
			add(name, *value, unit, false)
		} else {
			add(name, 0, unit, true)
		}
	}

	add(MetricTotalRevenue, s.Revenue.TotalRevenue, model.UnitCurrency, empty)
	add(MetricTotalFreight, s.Revenue.TotalFreight, model.UnitCurrency, empty)
	add(MetricOrderCount, float64(s.Revenue.OrderCount), model.UnitCount, empty)
	add(MetricItemCount, float64(s.Revenue.ItemCount), model.UnitCount, empty)
	add(MetricAvgOrderValue, s.Revenue.AvgOrderValue, model.UnitCurrency, s.Revenue.OrderCount == 0)
	addNullable(MetricAvgReviewScore, s.Experience.AvgReviewScore, model.UnitScore)
	addNullable(MetricAvgDeliveryDays, s.Experience.AvgDeliveryDays, model.UnitDays)
	addNullable(MetricOnTimeRate, s.Experience.OnTimeRate, model.UnitPercent)

	return m
}
