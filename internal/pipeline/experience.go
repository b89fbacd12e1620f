package pipeline

import (
	"sort"

	"cartscope/internal/model"
)

// AggregateExperience computes delivery and review metrics over a
// filtered subset. Missing reviews and undelivered orders are excluded
// from their denominators, never treated as zeros; an empty population
// leaves the corresponding average nil.
func AggregateExperience(txns []model.TransactionRecord) model.ExperienceStats {
	var stats model.ExperienceStats
	var (
		scoreSum int
		daySum   int
		onTime   int
	)

	for _, t := range txns {
		if t.ReviewScore != nil {
			stats.Reviewed++
			scoreSum += *t.ReviewScore
		}
		if days, ok := t.DeliveryDays(); ok {
			stats.Delivered++
			daySum += days
			// A delivery with no estimate on record cannot be on time.
			if t.EstimatedDelivery != nil && !t.DeliveryDate.After(*t.EstimatedDelivery) {
				onTime++
			}
		}
	}

	if stats.Reviewed > 0 {
		avg := float64(scoreSum) / float64(stats.Reviewed)
		stats.AvgReviewScore = &avg
	}
	if stats.Delivered > 0 {
		avg := float64(daySum) / float64(stats.Delivered)
		stats.AvgDeliveryDays = &avg
		rate := float64(onTime) / float64(stats.Delivered) * 100
		stats.OnTimeRate = &rate
	}
	return stats
}

// StatusDistribution computes the share of distinct orders per lifecycle
// status, sorted descending by order count with alphabetical tie-break.
func StatusDistribution(txns []model.TransactionRecord) []model.StatusShare {
	orderStatus := make(map[string]model.OrderStatus)
	for _, t := range txns {
		orderStatus[t.OrderID] = t.Status
	}

	counts := make(map[model.OrderStatus]int)
	for _, status := range orderStatus {
		counts[status]++
	}

	total := len(orderStatus)
	shares := make([]model.StatusShare, 0, len(counts))
	for status, n := range counts {
		ss := model.StatusShare{Status: status, Orders: n}
		if total > 0 {
			ss.Percent = float64(n) / float64(total) * 100
		}
		shares = append(shares, ss)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Orders != shares[j].Orders {
			return shares[i].Orders > shares[j].Orders
		}
		return shares[i].Status < shares[j].Status
	})
	return shares
}
