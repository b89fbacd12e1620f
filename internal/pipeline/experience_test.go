package pipeline

import (
	"testing"
	"time"

	"cartscope/internal/model"
)

func deliveredTxn(order string, ordered time.Time, days int, score int) model.TransactionRecord {
	r := txn(order, ordered, 10)
	delivery := ordered.AddDate(0, 0, days)
	r.DeliveryDate = &delivery
	estimate := ordered.AddDate(0, 0, days+2)
	r.EstimatedDelivery = &estimate
	if score > 0 {
		r.ReviewScore = &score
	}
	return r
}

func TestAggregateExperience_Averages(t *testing.T) {
	txns := []model.TransactionRecord{
		deliveredTxn("o1", day(2023, 1, 1), 4, 5),
		deliveredTxn("o2", day(2023, 1, 2), 8, 3),
	}

	stats := AggregateExperience(txns)

	if stats.AvgReviewScore == nil || !almostEqual(*stats.AvgReviewScore, 4) {
		t.Errorf("AvgReviewScore = %v, want 4", stats.AvgReviewScore)
	}
	if stats.AvgDeliveryDays == nil || !almostEqual(*stats.AvgDeliveryDays, 6) {
		t.Errorf("AvgDeliveryDays = %v, want 6", stats.AvgDeliveryDays)
	}
	if stats.OnTimeRate == nil || !almostEqual(*stats.OnTimeRate, 100) {
		t.Errorf("OnTimeRate = %v, want 100", stats.OnTimeRate)
	}
	if stats.Delivered != 2 || stats.Reviewed != 2 {
		t.Errorf("Delivered/Reviewed = %d/%d, want 2/2", stats.Delivered, stats.Reviewed)
	}
}

func TestAggregateExperience_LateDelivery(t *testing.T) {
	late := deliveredTxn("o1", day(2023, 1, 1), 10, 2)
	estimate := late.OrderDate.AddDate(0, 0, 5) // delivered 10 days, promised 5
	late.EstimatedDelivery = &estimate

	stats := AggregateExperience([]model.TransactionRecord{late})

	if stats.OnTimeRate == nil || !almostEqual(*stats.OnTimeRate, 0) {
		t.Errorf("OnTimeRate = %v, want 0", stats.OnTimeRate)
	}
}

func TestAggregateExperience_MissingDataExcluded(t *testing.T) {
	// No reviews, no deliveries: averages must be nil, not zero
	undelivered := txn("o1", day(2023, 1, 1), 10)
	undelivered.Status = model.StatusShipped

	stats := AggregateExperience([]model.TransactionRecord{undelivered})

	if stats.AvgReviewScore != nil {
		t.Errorf("AvgReviewScore = %v, want nil", *stats.AvgReviewScore)
	}
	if stats.AvgDeliveryDays != nil {
		t.Errorf("AvgDeliveryDays = %v, want nil", *stats.AvgDeliveryDays)
	}
	if stats.OnTimeRate != nil {
		t.Errorf("OnTimeRate = %v, want nil", *stats.OnTimeRate)
	}
}

func TestAggregateExperience_NoEstimateIsNotOnTime(t *testing.T) {
	r := deliveredTxn("o1", day(2023, 1, 1), 3, 4)
	r.EstimatedDelivery = nil

	stats := AggregateExperience([]model.TransactionRecord{r})

	if stats.OnTimeRate == nil || !almostEqual(*stats.OnTimeRate, 0) {
		t.Errorf("OnTimeRate = %v, want 0 (no estimate on record)", stats.OnTimeRate)
	}
	if stats.Delivered != 1 {
		t.Errorf("Delivered = %d, want 1", stats.Delivered)
	}
}

func TestStatusDistribution(t *testing.T) {
	a := txn("o1", day(2023, 1, 1), 10)
	b := txn("o1", day(2023, 1, 1), 20) // same order, counts once
	b.OrderItemID = 2
	c := txn("o2", day(2023, 1, 2), 10)
	d := txn("o3", day(2023, 1, 3), 10)
	d.Status = model.StatusCanceled

	shares := StatusDistribution([]model.TransactionRecord{a, b, c, d})

	if len(shares) != 2 {
		t.Fatalf("len = %d, want 2", len(shares))
	}
	if shares[0].Status != model.StatusDelivered || shares[0].Orders != 2 {
		t.Errorf("first share = %+v, want delivered with 2 orders", shares[0])
	}
	if !almostEqual(shares[0].Percent, 200.0/3) {
		t.Errorf("delivered percent = %v, want 66.67", shares[0].Percent)
	}
	if !almostEqual(shares[1].Percent, 100.0/3) {
		t.Errorf("canceled percent = %v, want 33.33", shares[1].Percent)
	}
}
