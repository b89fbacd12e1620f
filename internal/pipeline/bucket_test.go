package pipeline

import (
	"errors"
	"testing"

	"cartscope/internal/model"
)

func TestDeliveryBucket(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{0, "1-3 days"}, // same-day delivery lands in the fastest bucket
		{1, "1-3 days"},
		{3, "1-3 days"},
		{4, "4-7 days"},
		{7, "4-7 days"},
		{8, "8-14 days"},
		{14, "8-14 days"},
		{15, "15-30 days"},
		{29, "15-30 days"},
		{30, "30+ days"},
		{365, "30+ days"},
	}

	for _, c := range cases {
		got, err := DeliveryBucket(c.days)
		if err != nil {
			t.Errorf("DeliveryBucket(%d): unexpected error %v", c.days, err)
			continue
		}
		if got != c.want {
			t.Errorf("DeliveryBucket(%d) = %q, want %q", c.days, got, c.want)
		}
	}
}

func TestDeliveryBucket_NegativeDays(t *testing.T) {
	_, err := DeliveryBucket(-1)

	var derr *InvalidDeliveryValueError
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want InvalidDeliveryValueError", err)
	}
	if derr.Days != -1 {
		t.Errorf("derr.Days = %d, want -1", derr.Days)
	}
}

func TestSatisfactionByBucket_OneSamplePerOrder(t *testing.T) {
	a := deliveredTxn("o1", day(2023, 1, 1), 2, 5)
	b := deliveredTxn("o1", day(2023, 1, 1), 2, 5) // duplicate order line
	b.OrderItemID = 2
	c := deliveredTxn("o2", day(2023, 1, 2), 2, 3)
	d := deliveredTxn("o3", day(2023, 1, 3), 20, 1)

	scores, err := SatisfactionByBucket([]model.TransactionRecord{a, b, c, d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scores) != 2 {
		t.Fatalf("len = %d, want 2 (empty buckets omitted)", len(scores))
	}
	if scores[0].Bucket != "1-3 days" || scores[0].Orders != 2 {
		t.Errorf("fast bucket = %+v, want 2 orders", scores[0])
	}
	if !almostEqual(scores[0].AvgScore, 4) {
		t.Errorf("fast bucket avg = %v, want 4", scores[0].AvgScore)
	}
	if scores[1].Bucket != "15-30 days" {
		t.Errorf("slow bucket = %q, want 15-30 days", scores[1].Bucket)
	}
}

func TestSatisfactionByBucket_SkipsUnreviewedAndUndelivered(t *testing.T) {
	noReview := deliveredTxn("o1", day(2023, 1, 1), 2, 0)
	noDelivery := txn("o2", day(2023, 1, 2), 10)
	score := 4
	noDelivery.ReviewScore = &score

	scores, err := SatisfactionByBucket([]model.TransactionRecord{noReview, noDelivery})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("len = %d, want 0", len(scores))
	}
}

func TestSatisfactionByBucket_NegativeDurationPropagates(t *testing.T) {
	bad := deliveredTxn("o1", day(2023, 1, 10), 2, 5)
	delivery := bad.OrderDate.AddDate(0, 0, -3)
	bad.DeliveryDate = &delivery

	_, err := SatisfactionByBucket([]model.TransactionRecord{bad})

	var derr *InvalidDeliveryValueError
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want InvalidDeliveryValueError", err)
	}
}

func TestBucketLabels(t *testing.T) {
	want := []string{"1-3 days", "4-7 days", "8-14 days", "15-30 days", "30+ days"}
	got := BucketLabels()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
