package pipeline

import (
	"testing"

	"cartscope/internal/model"
)

func catTxn(order, category string, price float64) model.TransactionRecord {
	r := txn(order, day(2023, 6, 15), price)
	r.ProductCategory = category
	return r
}

func TestRankCategories_OrderAndShares(t *testing.T) {
	txns := []model.TransactionRecord{
		catTxn("o1", "toys", 50),
		catTxn("o2", "toys", 50),
		catTxn("o3", "books", 300),
		catTxn("o4", "garden", 100),
	}

	ranked := RankCategories(txns, 0)

	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}
	if ranked[0].Category != "books" || ranked[1].Category != "toys" || ranked[2].Category != "garden" {
		t.Errorf("order = %s, %s, %s; want books, toys, garden",
			ranked[0].Category, ranked[1].Category, ranked[2].Category)
	}
	if !almostEqual(ranked[0].SharePercent, 60) {
		t.Errorf("books share = %v, want 60", ranked[0].SharePercent)
	}

	var sum float64
	for _, c := range ranked {
		sum += c.SharePercent
	}
	if !almostEqual(sum, 100) {
		t.Errorf("shares sum to %v, want 100", sum)
	}
}

func TestRankCategories_TieBreakAlphabetical(t *testing.T) {
	txns := []model.TransactionRecord{
		catTxn("o1", "zebra", 10),
		catTxn("o2", "apple", 10),
	}

	ranked := RankCategories(txns, 0)
	if ranked[0].Category != "apple" {
		t.Errorf("tie should rank alphabetically, got %s first", ranked[0].Category)
	}
}

// Shares are computed against the whole period before the top-N cut, so
// a truncated list still reports each category's true share.
func TestRankCategories_TopNKeepsFullShares(t *testing.T) {
	txns := []model.TransactionRecord{
		catTxn("o1", "books", 60),
		catTxn("o2", "toys", 30),
		catTxn("o3", "garden", 10),
	}

	ranked := RankCategories(txns, 1)
	if len(ranked) != 1 {
		t.Fatalf("len = %d, want 1", len(ranked))
	}
	if !almostEqual(ranked[0].SharePercent, 60) {
		t.Errorf("share = %v, want 60 (of full subset, not of top-N)", ranked[0].SharePercent)
	}
}

func TestRankStates_DistinctOrders(t *testing.T) {
	a := txn("o1", day(2023, 6, 1), 100)
	b := txn("o1", day(2023, 6, 1), 50)
	b.OrderItemID = 2
	c := txn("o2", day(2023, 6, 2), 25)
	c.CustomerState = "RJ"

	ranked := RankStates([]model.TransactionRecord{a, b, c}, 0)

	if len(ranked) != 2 {
		t.Fatalf("len = %d, want 2", len(ranked))
	}
	if ranked[0].State != "SP" || ranked[0].Orders != 1 {
		t.Errorf("SP: got %+v, want 1 distinct order", ranked[0])
	}
	if !almostEqual(ranked[0].Revenue, 150) {
		t.Errorf("SP revenue = %v, want 150", ranked[0].Revenue)
	}
}

func TestRankStates_Empty(t *testing.T) {
	if got := RankStates(nil, 5); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
