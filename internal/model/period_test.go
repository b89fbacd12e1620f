package model

import (
	"errors"
	"testing"
	"time"
)

func TestPeriodWindow_Month(t *testing.T) {
	p := PeriodConfig{Year: 2023, Month: time.February}
	start, end := p.Window()

	if !start.Equal(time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestPeriodWindow_December(t *testing.T) {
	start, end := PeriodConfig{Year: 2023, Month: time.December}.Window()

	if start.Year() != 2023 || start.Month() != time.December {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v, want Jan 1 2024", end)
	}
}

func TestPeriodWindow_FullYear(t *testing.T) {
	start, end := PeriodConfig{Year: 2023}.Window()

	if !start.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}

func TestPeriodContains_HalfOpen(t *testing.T) {
	p := PeriodConfig{Year: 2023, Month: time.February}

	cases := []struct {
		t    time.Time
		want bool
	}{
		{time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2023, 2, 28, 23, 59, 59, 0, time.UTC), true},
		{time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), false}, // end is exclusive
		{time.Date(2023, 1, 31, 23, 59, 59, 0, time.UTC), false},
	}

	for _, c := range cases {
		if got := p.Contains(c.t); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestPeriodValidate(t *testing.T) {
	for m := time.Month(0); m <= 12; m++ {
		if err := (PeriodConfig{Year: 2023, Month: m}).Validate(); err != nil {
			t.Errorf("month %d: unexpected error %v", m, err)
		}
	}

	err := (PeriodConfig{Year: 2023, Month: 13}).Validate()
	var perr *InvalidPeriodError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want InvalidPeriodError", err)
	}
	if perr.Month != 13 {
		t.Errorf("perr.Month = %d, want 13", perr.Month)
	}
}

func TestPeriodLabel(t *testing.T) {
	if got := (PeriodConfig{Year: 2023}).Label(); got != "2023" {
		t.Errorf("full year label = %q", got)
	}
	if got := (PeriodConfig{Year: 2023, Month: time.January}).Label(); got != "Jan 2023" {
		t.Errorf("month label = %q", got)
	}
}

func TestDeliveryDays(t *testing.T) {
	ordered := time.Date(2023, 5, 10, 10, 0, 0, 0, time.UTC)
	delivered := ordered.AddDate(0, 0, 5).Add(6 * time.Hour)

	rec := TransactionRecord{OrderDate: ordered, DeliveryDate: &delivered, Status: StatusDelivered}
	days, ok := rec.DeliveryDays()
	if !ok {
		t.Fatal("DeliveryDays: ok = false, want true")
	}
	if days != 5 {
		t.Errorf("days = %d, want 5 (partial days truncate)", days)
	}

	rec.DeliveryDate = nil
	if _, ok := rec.DeliveryDays(); ok {
		t.Error("DeliveryDays without delivery date: ok = true, want false")
	}
}
