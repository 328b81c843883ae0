package domain

import (
	"fmt"
	"time"
)

// Month identifies a calendar month. The day of month is irrelevant;
// all month arithmetic is calendar-correct, including December/January
// rollover.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses "YYYY-Mon" (e.g. "2026-Jan") or "YYYY-MM" (e.g. "2026-01").
func ParseMonth(s string) (Month, error) {
	for _, layout := range []string{"2006-Jan", "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return MonthOf(t), nil
		}
	}
	return Month{}, fmt.Errorf("invalid month %q (want YYYY-Mon or YYYY-MM)", s)
}

// Start returns the first day of the month at start-of-day UTC.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the preceding calendar month.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Days returns the number of days in the month, leap-year-correct.
func (m Month) Days() int {
	return m.Next().Start().AddDate(0, 0, -1).Day()
}

// Contains reports whether t falls within [Start, Next.Start).
func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.Start()) && t.Before(m.Next().Start())
}

// String formats the month as "2026-Jan".
func (m Month) String() string {
	return m.Start().Format("2006-Jan")
}
