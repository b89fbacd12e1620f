package pipeline

import (
	"errors"
	"testing"
	"time"

	"cartscope/internal/model"
)

func TestFilterPeriod_MonthBoundaries(t *testing.T) {
	txns := []model.TransactionRecord{
		txn("before", time.Date(2023, 1, 31, 23, 59, 59, 0, time.UTC), 1),
		txn("first", time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), 1),
		txn("last", time.Date(2023, 2, 28, 23, 59, 59, 0, time.UTC), 1),
		txn("after", time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), 1),
	}

	got, err := FilterPeriod(txns, model.PeriodConfig{Year: 2023, Month: time.February})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].OrderID != "first" || got[1].OrderID != "last" {
		t.Errorf("got orders %s, %s; want first, last", got[0].OrderID, got[1].OrderID)
	}
}

func TestFilterPeriod_FullYear(t *testing.T) {
	txns := []model.TransactionRecord{
		txn("o22", day(2022, 12, 31), 1),
		txn("o23a", day(2023, 1, 1), 1),
		txn("o23b", day(2023, 12, 31), 1),
		txn("o24", day(2024, 1, 1), 1),
	}

	got, err := FilterPeriod(txns, model.PeriodConfig{Year: 2023})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestFilterPeriod_InvalidMonth(t *testing.T) {
	_, err := FilterPeriod(nil, model.PeriodConfig{Year: 2023, Month: 13})

	var perr *model.InvalidPeriodError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want InvalidPeriodError", err)
	}
	if perr.Month != 13 {
		t.Errorf("perr.Month = %d, want 13", perr.Month)
	}
}

func TestFilterPeriod_EmptyWindowIsNotError(t *testing.T) {
	got, err := FilterPeriod([]model.TransactionRecord{txn("o1", day(2023, 1, 1), 1)},
		model.PeriodConfig{Year: 1999})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFilterByStatus(t *testing.T) {
	delivered := txn("o1", day(2023, 1, 1), 1)
	canceled := txn("o2", day(2023, 1, 2), 1)
	canceled.Status = model.StatusCanceled

	got := FilterByStatus([]model.TransactionRecord{delivered, canceled}, model.StatusDelivered)
	if len(got) != 1 || got[0].OrderID != "o1" {
		t.Errorf("got %v, want just o1", got)
	}

	// Empty status keeps everything
	got = FilterByStatus([]model.TransactionRecord{delivered, canceled}, "")
	if len(got) != 2 {
		t.Errorf("empty status filtered records: len = %d, want 2", len(got))
	}
}

func TestFilterByState(t *testing.T) {
	sp := txn("o1", day(2023, 1, 1), 1)
	rj := txn("o2", day(2023, 1, 2), 1)
	rj.CustomerState = "RJ"

	got := FilterByState([]model.TransactionRecord{sp, rj}, "RJ")
	if len(got) != 1 || got[0].OrderID != "o2" {
		t.Errorf("got %v, want just o2", got)
	}
}
