package model

import (
	"fmt"
	"time"
)

// PeriodConfig selects an analysis window: a calendar year, optionally
// narrowed to a single month. Month 0 means the full year.
type PeriodConfig struct {
	Year  int
	Month time.Month
}

// InvalidPeriodError reports a month outside 1..12.
type InvalidPeriodError struct {
	Month time.Month
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period month %d: must be 1-12", int(e.Month))
}

// Validate checks the month constraint. A year with no data is not a
// configuration error; it just selects an empty window.
func (p PeriodConfig) Validate() error {
	if p.Month < 0 || p.Month > 12 {
		return &InvalidPeriodError{Month: p.Month}
	}
	return nil
}

// Window derives the half-open UTC interval [start, end) covered by the
// period. Full year: [Jan 1, Jan 1 of next year). Single month: [first of
// month, first of next month).
func (p PeriodConfig) Window() (start, end time.Time) {
	if p.Month == 0 {
		start = time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	}
	start = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the period window.
func (p PeriodConfig) Contains(t time.Time) bool {
	start, end := p.Window()
	return !t.Before(start) && t.Before(end)
}

// Label returns a display label: "2023" or "Jan 2023". Presentation
// layers use it verbatim as the period tag on metric results.
func (p PeriodConfig) Label() string {
	if p.Month == 0 {
		return fmt.Sprintf("%d", p.Year)
	}
	return fmt.Sprintf("%s %d", p.Month.String()[:3], p.Year)
}
