package pipeline

import (
	"testing"
	"time"

	"cartscope/internal/model"
)

func metricMap(entries ...model.MetricResult) map[string]model.MetricResult {
	m := make(map[string]model.MetricResult, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return m
}

func TestCompare_SelfIsFlat(t *testing.T) {
	m := metricMap(
		model.MetricResult{Name: MetricTotalRevenue, Value: 500, Unit: model.UnitCurrency},
		model.MetricResult{Name: MetricOrderCount, Value: 12, Unit: model.UnitCount},
	)

	for _, cr := range Compare(m, m) {
		if cr.Delta != 0 {
			t.Errorf("%s: Delta = %v, want 0", cr.Metric, cr.Delta)
		}
		if cr.Trend != model.TrendFlat {
			t.Errorf("%s: Trend = %d, want flat", cr.Metric, cr.Trend)
		}
		if cr.PercentChange == nil || *cr.PercentChange != 0 {
			t.Errorf("%s: PercentChange = %v, want 0", cr.Metric, cr.PercentChange)
		}
	}
}

func TestCompare_ZeroBaseline(t *testing.T) {
	cur := metricMap(model.MetricResult{Name: MetricTotalRevenue, Value: 100})
	base := metricMap(model.MetricResult{Name: MetricTotalRevenue, Value: 0})

	results := Compare(cur, base)
	if len(results) != 1 {
		t.Fatalf("len = %d, want 1", len(results))
	}

	cr := results[0]
	if cr.PercentChange != nil {
		t.Errorf("PercentChange = %v, want nil for zero baseline", *cr.PercentChange)
	}
	if cr.Trend != model.TrendFlat {
		t.Errorf("Trend = %d, want flat for zero baseline", cr.Trend)
	}
	if !almostEqual(cr.Delta, 100) {
		t.Errorf("Delta = %v, want 100", cr.Delta)
	}
}

func TestCompare_NoDataBaseline(t *testing.T) {
	cur := metricMap(model.MetricResult{Name: MetricAvgReviewScore, Value: 4.2})
	base := metricMap(model.MetricResult{Name: MetricAvgReviewScore, Value: 0, NoData: true})

	cr := Compare(cur, base)[0]
	if cr.PercentChange != nil || cr.Trend != model.TrendFlat {
		t.Errorf("no-data baseline: got pct=%v trend=%d, want nil/flat", cr.PercentChange, cr.Trend)
	}
}

func TestCompare_IntersectionOnly(t *testing.T) {
	cur := metricMap(
		model.MetricResult{Name: MetricTotalRevenue, Value: 100},
		model.MetricResult{Name: MetricOrderCount, Value: 5},
	)
	base := metricMap(model.MetricResult{Name: MetricTotalRevenue, Value: 50})

	results := Compare(cur, base)
	if len(results) != 1 || results[0].Metric != MetricTotalRevenue {
		t.Errorf("got %v, want only total_revenue", results)
	}
}

// End-to-end: two periods through the full summarize + compare path.
// Jan 2023 has two orders ($100, $50); Jan 2022 has one order ($90).
func TestSummarizeAndCompare(t *testing.T) {
	txns := []model.TransactionRecord{
		txn("a", day(2023, 1, 10), 100),
		txn("b", day(2023, 1, 20), 50),
		txn("c", day(2022, 1, 15), 90),
	}

	cur, err := Summarize(txns, model.PeriodConfig{Year: 2023, Month: time.January}, 0)
	if err != nil {
		t.Fatalf("Summarize current: %v", err)
	}
	base, err := Summarize(txns, model.PeriodConfig{Year: 2022, Month: time.January}, 0)
	if err != nil {
		t.Fatalf("Summarize baseline: %v", err)
	}

	if !almostEqual(cur.Revenue.TotalRevenue, 150) || cur.Revenue.OrderCount != 2 {
		t.Errorf("current = %+v, want revenue 150, 2 orders", cur.Revenue)
	}
	if !almostEqual(cur.Revenue.AvgOrderValue, 75) {
		t.Errorf("current AOV = %v, want 75", cur.Revenue.AvgOrderValue)
	}

	byName := make(map[string]model.ComparisonResult)
	for _, cr := range Compare(cur.Metrics(), base.Metrics()) {
		byName[cr.Metric] = cr
	}

	rev := byName[MetricTotalRevenue]
	if !almostEqual(rev.Delta, 60) {
		t.Errorf("revenue delta = %v, want 60", rev.Delta)
	}
	if rev.PercentChange == nil || !almostEqual(*rev.PercentChange, 200.0/3) {
		t.Errorf("revenue pct = %v, want 66.67", rev.PercentChange)
	}
	if rev.Trend != model.TrendUp {
		t.Errorf("revenue trend = %d, want up", rev.Trend)
	}
}

func TestSummaryMetrics_EmptyPeriodIsNoData(t *testing.T) {
	sum, err := Summarize(nil, model.PeriodConfig{Year: 2023}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, m := range sum.Metrics() {
		if !m.NoData {
			t.Errorf("%s: NoData = false, want true for empty period", name)
		}
	}
}

func TestSummaryMetrics_PeriodLabel(t *testing.T) {
	sum, err := Summarize(
		[]model.TransactionRecord{txn("o1", day(2023, 3, 5), 10)},
		model.PeriodConfig{Year: 2023, Month: time.March}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := sum.Metrics()[MetricTotalRevenue]
	if m.PeriodLabel != "Mar 2023" {
		t.Errorf("PeriodLabel = %q, want Mar 2023", m.PeriodLabel)
	}
}
