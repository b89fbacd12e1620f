package pipeline

import (
	"cartscope/internal/model"
)

// FilterPeriod returns the records whose order date falls in the
// half-open window of the period. A window with no data yields an empty
// subset; only an out-of-range month is an error.
func FilterPeriod(txns []model.TransactionRecord, period model.PeriodConfig) ([]model.TransactionRecord, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	start, end := period.Window()
	var result []model.TransactionRecord
	for _, t := range txns {
		if t.OrderDate.Before(start) || !t.OrderDate.Before(end) {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

// FilterByStatus returns records in the given order status. An empty
// status means no restriction.
func FilterByStatus(txns []model.TransactionRecord, status model.OrderStatus) []model.TransactionRecord {
	if status == "" {
		return txns
	}
	var result []model.TransactionRecord
	for _, t := range txns {
		if t.Status == status {
			result = append(result, t)
		}
	}
	return result
}

// FilterByState returns records whose customer state matches.
func FilterByState(txns []model.TransactionRecord, state string) []model.TransactionRecord {
	if state == "" {
		return txns
	}
	var result []model.TransactionRecord
	for _, t := range txns {
		if t.CustomerState == state {
			result = append(result, t)
		}
	}
	return result
}
