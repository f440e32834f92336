// Package period implements calendar-month arithmetic shared by every caller that
// walks months: period windows, "next month" for copy-forward and current-month
// defaults for new drafts.
package period

import (
	"fmt"
	"time"
)

type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func New(year, month int) YearMonth {
	return YearMonth{Year: year, Month: month}
}

// Current returns the calendar month containing now, in now's location.
func Current(now time.Time) YearMonth {
	return YearMonth{Year: now.Year(), Month: int(now.Month())}
}

func (ym YearMonth) Valid() bool {
	return ym.Month >= 1 && ym.Month <= 12
}

// AddMonths moves offset months forward (or backward when negative).
// The month is normalized 1-indexed: year + floor((m-1)/12), ((m-1) mod 12) + 1.
func (ym YearMonth) AddMonths(offset int) YearMonth {
	target := ym.Month + offset
	return YearMonth{
		Year:  ym.Year + floorDiv(target-1, 12),
		Month: floorMod(target-1, 12) + 1,
	}
}

func (ym YearMonth) Next() YearMonth {
	return ym.AddMonths(1)
}

func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC)
}

// LastDay is the number of the last calendar day of the month.
func (ym YearMonth) LastDay() int {
	return ym.FirstDay().AddDate(0, 1, -1).Day()
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// Window returns count consecutive months starting at start, oldest first.
func Window(start YearMonth, count int) []YearMonth {
	if count <= 0 {
		return nil
	}
	months := make([]YearMonth, count)
	for offset := 0; offset < count; offset++ {
		months[offset] = start.AddMonths(offset)
	}
	return months
}

// WindowEndingAt returns count consecutive months whose last element is end.
func WindowEndingAt(end YearMonth, count int) []YearMonth {
	if count <= 0 {
		return nil
	}
	return Window(end.AddMonths(-(count - 1)), count)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
