package calendarview

import (
	"cmp"
	"fmt"
)

// Month identifies a single month in a calendar system.
// Months are immutable values and are safe to use as map keys.
type Month struct {
	Era      int    // 0 for eras before the calendar's epoch (BCE), 1 otherwise
	Year     int    // Year within the era, always >= 1
	Month    int    // 1..12
	Calendar string // Identifier of the calendar system that produced the month
}

// correctedYear maps the year onto a single increasing line. Years in eras
// before the epoch count down, so they are negated.
func (m Month) correctedYear() int {
	if m.Era == 0 {
		return -m.Year
	}
	return m.Year
}

// Compare orders months chronologically: by era, corrected year, then month.
func (m Month) Compare(other Month) int {
	if c := cmp.Compare(m.Era, other.Era); c != 0 {
		return c
	}
	if c := cmp.Compare(m.correctedYear(), other.correctedYear()); c != 0 {
		return c
	}
	return cmp.Compare(m.Month, other.Month)
}

// Before reports whether m is chronologically earlier than other.
func (m Month) Before(other Month) bool { return m.Compare(other) < 0 }

// After reports whether m is chronologically later than other.
func (m Month) After(other Month) bool { return m.Compare(other) > 0 }

func (m Month) String() string {
	if m.Era == 0 {
		return fmt.Sprintf("%d-%02d BCE", m.Year, m.Month)
	}
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Day identifies a single day within a month.
type Day struct {
	Month Month
	Day   int // Day of month, starting at 1
}

// Compare orders days by month, then day of month.
func (d Day) Compare(other Day) int {
	if c := d.Month.Compare(other.Month); c != 0 {
		return c
	}
	return cmp.Compare(d.Day, other.Day)
}

// Before reports whether d is chronologically earlier than other.
func (d Day) Before(other Day) bool { return d.Compare(other) < 0 }

// After reports whether d is chronologically later than other.
func (d Day) After(other Day) bool { return d.Compare(other) > 0 }

func (d Day) String() string {
	return fmt.Sprintf("%s-%02d", d.Month, d.Day)
}

// DayOfWeekPosition is the column of a weekday in a week row, 0..6,
// counted from the calendar's first weekday.
type DayOfWeekPosition int

// NumberOfDaysInWeek is the number of columns in a month grid.
const NumberOfDaysInWeek = 7

// MonthRange is a closed interval of months.
type MonthRange struct {
	Lower, Upper Month
}

// NewMonthRange returns the range [lower, upper]. It panics when lower is after upper.
func NewMonthRange(lower, upper Month) MonthRange {
	if lower.After(upper) {
		panic(fmt.Sprintf("calendarview: invalid month range %s...%s", lower, upper))
	}
	return MonthRange{Lower: lower, Upper: upper}
}

// Contains reports whether m lies within the range.
func (r MonthRange) Contains(m Month) bool {
	return m.Compare(r.Lower) >= 0 && m.Compare(r.Upper) <= 0
}

// DayRange is a closed interval of days.
type DayRange struct {
	Lower, Upper Day
}

// NewDayRange returns the range [lower, upper]. It panics when lower is after upper.
func NewDayRange(lower, upper Day) DayRange {
	if lower.After(upper) {
		panic(fmt.Sprintf("calendarview: invalid day range %s...%s", lower, upper))
	}
	return DayRange{Lower: lower, Upper: upper}
}

// Contains reports whether d lies within the range.
func (r DayRange) Contains(d Day) bool {
	return d.Compare(r.Lower) >= 0 && d.Compare(r.Upper) <= 0
}

// Months returns the range of months spanned by the day range.
func (r DayRange) Months() MonthRange {
	return MonthRange{Lower: r.Lower.Month, Upper: r.Upper.Month}
}
