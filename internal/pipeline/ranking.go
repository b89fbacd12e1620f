package pipeline

import (
	"sort"

	"cartscope/internal/model"
)

// RankCategories groups revenue by product category and ranks descending
// by revenue, alphabetical on ties so "Top N" output is reproducible.
// Share percentages are computed against the full subset's revenue
// before the top-N cut, so they always describe the whole period.
func RankCategories(txns []model.TransactionRecord, topN int) []model.CategoryStats {
	revenue := make(map[string]float64)
	var total float64

	for _, t := range txns {
		revenue[t.ProductCategory] += t.Price
		total += t.Price
	}

	ranked := make([]model.CategoryStats, 0, len(revenue))
	for category, rev := range revenue {
		cs := model.CategoryStats{Category: category, Revenue: rev}
		if total > 0 {
			cs.SharePercent = rev / total * 100
		}
		ranked = append(ranked, cs)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].Category < ranked[j].Category
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// RankStates groups revenue and distinct order counts by customer state,
// with the same ordering rule as RankCategories.
func RankStates(txns []model.TransactionRecord, topN int) []model.StateStats {
	type stateAccum struct {
		revenue float64
		orders  map[string]struct{}
	}
	states := make(map[string]*stateAccum)
	var total float64

	for _, t := range txns {
		sa, ok := states[t.CustomerState]
		if !ok {
			sa = &stateAccum{orders: make(map[string]struct{})}
			states[t.CustomerState] = sa
		}
		sa.revenue += t.Price
		sa.orders[t.OrderID] = struct{}{}
		total += t.Price
	}

	ranked := make([]model.StateStats, 0, len(states))
	for state, sa := range states {
		ss := model.StateStats{
			State:   state,
			Revenue: sa.revenue,
			Orders:  len(sa.orders),
		}
		if total > 0 {
			ss.SharePercent = sa.revenue / total * 100
		}
		ranked = append(ranked, ss)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].State < ranked[j].State
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
