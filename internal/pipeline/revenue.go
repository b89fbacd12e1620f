package pipeline

import (
	"sort"
	"time"

	"cartscope/internal/model"
)

// AggregateRevenue computes the revenue aggregate over a filtered
// subset. Revenue sums item prices only; freight is accumulated
// separately and never counted as sales. An empty subset yields zeros.
func AggregateRevenue(txns []model.TransactionRecord) model.RevenueStats {
	var stats model.RevenueStats
	orders := make(map[string]struct{})

	for _, t := range txns {
		stats.TotalRevenue += t.Price
		stats.TotalFreight += t.FreightValue
		stats.ItemCount++
		orders[t.OrderID] = struct{}{}
	}

	stats.OrderCount = len(orders)
	if stats.OrderCount > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.OrderCount)
	}
	return stats
}

// MonthlyRevenue groups revenue by calendar month within the subset.
// The series is sparse (months with no data are absent) and sorted
// ascending by month.
func MonthlyRevenue(txns []model.TransactionRecord) []model.MonthRevenue {
	type monthAccum struct {
		revenue float64
		orders  map[string]struct{}
	}
	months := make(map[time.Time]*monthAccum)

	for _, t := range txns {
		key := time.Date(t.OrderDate.Year(), t.OrderDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		ma, ok := months[key]
		if !ok {
			ma = &monthAccum{orders: make(map[string]struct{})}
			months[key] = ma
		}
		ma.revenue += t.Price
		ma.orders[t.OrderID] = struct{}{}
	}

	series := make([]model.MonthRevenue, 0, len(months))
	for key, ma := range months {
		series = append(series, model.MonthRevenue{
			Month:   key,
			Revenue: ma.revenue,
			Orders:  len(ma.orders),
		})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Month.Before(series[j].Month)
	})
	return series
}
