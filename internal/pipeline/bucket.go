package pipeline

import (
	"fmt"
	"sort"

	"cartscope/internal/model"
)

// InvalidDeliveryValueError reports a negative delivery duration. A
// delivery before its order is a data-integrity violation, not a valid
// bucket, and is never absorbed.
type InvalidDeliveryValueError struct {
	Days int
}

func (e *InvalidDeliveryValueError) Error() string {
	return fmt.Sprintf("invalid delivery duration %d days", e.Days)
}

// deliveryBuckets are the labeled delivery-speed ranges, inclusive on
// the lower bound and exclusive on the upper, except the last which is
// unbounded.
var deliveryBuckets = []struct {
	Label string
	Upper int // exclusive
}{
	{"1-3 days", 4},
	{"4-7 days", 8},
	{"8-14 days", 15},
	{"15-30 days", 30},
}

const slowestBucket = "30+ days"

// BucketLabels returns all bucket labels in display order.
func BucketLabels() []string {
	labels := make([]string, 0, len(deliveryBuckets)+1)
	for _, b := range deliveryBuckets {
		labels = append(labels, b.Label)
	}
	return append(labels, slowestBucket)
}

// DeliveryBucket maps a delivery-day count onto its labeled range.
// Same-day deliveries (0 days) fall into the fastest bucket.
func DeliveryBucket(days int) (string, error) {
	if days < 0 {
		return "", &InvalidDeliveryValueError{Days: days}
	}
	for _, b := range deliveryBuckets {
		if days < b.Upper {
			return b.Label, nil
		}
	}
	return slowestBucket, nil
}

// SatisfactionByBucket groups reviewed, delivered orders by delivery
// speed and averages the review score per bucket. One sample per
// distinct order; results appear in bucket order, buckets with no
// orders omitted.
func SatisfactionByBucket(txns []model.TransactionRecord) ([]model.BucketScore, error) {
	type accum struct {
		scoreSum int
		orders   int
	}
	buckets := make(map[string]*accum)
	seen := make(map[string]struct{})

	for _, t := range txns {
		if t.ReviewScore == nil {
			continue
		}
		days, ok := t.DeliveryDays()
		if !ok {
			continue
		}
		if _, dup := seen[t.OrderID]; dup {
			continue
		}
		seen[t.OrderID] = struct{}{}

		label, err := DeliveryBucket(days)
		if err != nil {
			return nil, err
		}
		a, ok := buckets[label]
		if !ok {
			a = &accum{}
			buckets[label] = a
		}
		a.scoreSum += *t.ReviewScore
		a.orders++
	}

	order := BucketLabels()
	rank := make(map[string]int, len(order))
	for i, label := range order {
		rank[label] = i
	}

	scores := make([]model.BucketScore, 0, len(buckets))
	for label, a := range buckets {
		scores = append(scores, model.BucketScore{
			Bucket:   label,
			AvgScore: float64(a.scoreSum) / float64(a.orders),
			Orders:   a.orders,
		})
	}
	sort.Slice(scores, func(i, j int) bool {
		return rank[scores[i].Bucket] < rank[scores[j].Bucket]
	})
	return scores, nil
}
