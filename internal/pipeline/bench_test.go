package pipeline

import (
	"fmt"
	"testing"
	"time"

	"cartscope/internal/model"
)

// benchTxns builds a year of synthetic line items spread over orders,
// categories, and states.
func benchTxns(n int) []model.TransactionRecord {
	categories := []string{"toys", "books", "garden", "electronics", "sports"}
	states := []string{"SP", "RJ", "MG", "RS", "BA"}

	txns := make([]model.TransactionRecord, 0, n)
	for i := 0; i < n; i++ {
		ordered := time.Date(2023, time.Month(i%12+1), i%28+1, 10, 0, 0, 0, time.UTC)
		r := model.TransactionRecord{
			OrderID:         fmt.Sprintf("o%d", i/2), // two items per order
			OrderItemID:     i%2 + 1,
			OrderDate:       ordered,
			CustomerID:      fmt.Sprintf("c%d", i/2),
			CustomerState:   states[i%len(states)],
			ProductID:       fmt.Sprintf("p%d", i%100),
			ProductCategory: categories[i%len(categories)],
			Price:           float64(i%200) + 9.90,
			FreightValue:    12.5,
			Status:          model.StatusDelivered,
		}
		delivery := ordered.AddDate(0, 0, i%20+1)
		r.DeliveryDate = &delivery
		estimate := ordered.AddDate(0, 0, 15)
		r.EstimatedDelivery = &estimate
		score := i%5 + 1
		r.ReviewScore = &score
		txns = append(txns, r)
	}
	return txns
}

func BenchmarkAggregateRevenue(b *testing.B) {
	txns := benchTxns(100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AggregateRevenue(txns)
	}
}

func BenchmarkSummarize(b *testing.B) {
	txns := benchTxns(100_000)
	period := model.PeriodConfig{Year: 2023}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Summarize(txns, period, 10); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare(b *testing.B) {
	txns := benchTxns(100_000)
	cur, err := Summarize(txns, model.PeriodConfig{Year: 2023, Month: time.June}, 10)
	if err != nil {
		b.Fatal(err)
	}
	base, err := Summarize(txns, model.PeriodConfig{Year: 2023, Month: time.May}, 10)
	if err != nil {
		b.Fatal(err)
	}
	curM, baseM := cur.Metrics(), base.Metrics()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compare(curM, baseM)
	}
}
