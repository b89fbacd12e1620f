package pipeline

import (
	"math"
	"testing"
	"time"

	"cartscope/internal/model"
)

// txn builds a minimal delivered line item for tests.
func txn(order string, date time.Time, price float64) model.TransactionRecord {
	return model.TransactionRecord{
		OrderID:         order,
		OrderItemID:     1,
		OrderDate:       date,
		CustomerID:      "cust-" + order,
		CustomerState:   "SP",
		ProductID:       "prod-1",
		ProductCategory: "toys",
		Price:           price,
		Status:          model.StatusDelivered,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregateRevenue_DistinctOrders(t *testing.T) {
	// Two items on the same order count once for order_count
	a := txn("o1", day(2023, 1, 5), 100)
	b := txn("o1", day(2023, 1, 5), 50)
	b.OrderItemID = 2
	c := txn("o2", day(2023, 1, 8), 30)

	stats := AggregateRevenue([]model.TransactionRecord{a, b, c})

	if !almostEqual(stats.TotalRevenue, 180) {
		t.Errorf("TotalRevenue = %v, want 180", stats.TotalRevenue)
	}
	if stats.OrderCount != 2 {
		t.Errorf("OrderCount = %d, want 2", stats.OrderCount)
	}
	if stats.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", stats.ItemCount)
	}
	if !almostEqual(stats.AvgOrderValue, 90) {
		t.Errorf("AvgOrderValue = %v, want 90", stats.AvgOrderValue)
	}
}

func TestAggregateRevenue_FreightExcluded(t *testing.T) {
	a := txn("o1", day(2023, 3, 1), 100)
	a.FreightValue = 15.5

	stats := AggregateRevenue([]model.TransactionRecord{a})

	if !almostEqual(stats.TotalRevenue, 100) {
		t.Errorf("TotalRevenue = %v, want 100 (freight excluded)", stats.TotalRevenue)
	}
	if !almostEqual(stats.TotalFreight, 15.5) {
		t.Errorf("TotalFreight = %v, want 15.5", stats.TotalFreight)
	}
}

func TestAggregateRevenue_Empty(t *testing.T) {
	stats := AggregateRevenue(nil)
	if stats.TotalRevenue != 0 || stats.OrderCount != 0 || stats.AvgOrderValue != 0 {
		t.Errorf("empty subset should yield zeros, got %+v", stats)
	}
}

func TestMonthlyRevenue_SparseSorted(t *testing.T) {
	txns := []model.TransactionRecord{
		txn("o1", day(2023, 5, 10), 40),
		txn("o2", day(2023, 1, 3), 10),
		txn("o3", day(2023, 5, 20), 60),
	}

	series := MonthlyRevenue(txns)

	if len(series) != 2 {
		t.Fatalf("len(series) = %d, want 2 (sparse months)", len(series))
	}
	if series[0].Month.Month() != time.January || series[1].Month.Month() != time.May {
		t.Errorf("series not sorted ascending: %v, %v", series[0].Month, series[1].Month)
	}
	if !almostEqual(series[1].Revenue, 100) {
		t.Errorf("May revenue = %v, want 100", series[1].Revenue)
	}
	if series[1].Orders != 2 {
		t.Errorf("May orders = %d, want 2", series[1].Orders)
	}
}

// Monthly slices partition the year: their sum must equal the full-year
// aggregate for the same subset.
func TestMonthlyRevenue_Additivity(t *testing.T) {
	txns := []model.TransactionRecord{
		txn("o1", day(2023, 1, 5), 11),
		txn("o2", day(2023, 2, 5), 22),
		txn("o3", day(2023, 7, 5), 33),
		txn("o4", day(2023, 12, 30), 44),
	}

	var sum float64
	for _, m := range MonthlyRevenue(txns) {
		sum += m.Revenue
	}

	total := AggregateRevenue(txns).TotalRevenue
	if !almostEqual(sum, total) {
		t.Errorf("monthly sum %v != annual total %v", sum, total)
	}
}
