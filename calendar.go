package calendarview

import (
	"fmt"
	"time"
)

// Calendar is the date arithmetic provider consumed by the layout engine.
// Implementations must be deterministic and free of side effects.
type Calendar interface {
	// Identifier names the calendar system; it is stamped on every Month.
	Identifier() string
	// FirstWeekday is the weekday shown in the first column of a month grid.
	FirstWeekday() time.Weekday

	MonthContaining(t time.Time) Month
	DayContaining(t time.Time) Day
	FirstDate(m Month) time.Time
	LastDate(m Month) time.Time
	// Date returns the instant used to represent d.
	Date(d Day) time.Time

	AddMonths(m Month, n int) Month
	AddDays(d Day, n int) Day

	// RowInMonth returns the zero-based week row of t within its month.
	RowInMonth(t time.Time) int
	// DayOfWeekPosition returns the column of t within its week row.
	DayOfWeekPosition(t time.Time) DayOfWeekPosition
	// WeekdayIndex maps a column back to a weekday.
	WeekdayIndex(pos DayOfWeekPosition) time.Weekday
}

// Calendar system identifiers.
const (
	GregorianIdentifier = "gregorian"
	ISO8601Identifier   = "iso8601"
)

// Gregorian is a proleptic Gregorian calendar backed by time.Time.
// Years before 1 CE belong to era 0 and count down (1 BCE, 2 BCE, ...).
type Gregorian struct {
	identifier   string
	firstWeekday time.Weekday
	location     *time.Location
}

// GregorianOption configures a Gregorian calendar.
type GregorianOption func(*Gregorian)

// WithFirstWeekday sets the weekday shown in the first column.
func WithFirstWeekday(wd time.Weekday) GregorianOption {
	return func(g *Gregorian) { g.firstWeekday = wd }
}

// WithLocation sets the time zone used to interpret instants.
func WithLocation(loc *time.Location) GregorianOption {
	return func(g *Gregorian) {
		if loc != nil {
			g.location = loc
		}
	}
}

// NewGregorian creates a Gregorian calendar. Weeks start on Sunday unless
// configured otherwise; instants are interpreted in UTC by default.
func NewGregorian(opts ...GregorianOption) *Gregorian {
	g := &Gregorian{
		identifier:   GregorianIdentifier,
		firstWeekday: time.Sunday,
		location:     time.UTC,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.firstWeekday < time.Sunday || g.firstWeekday > time.Saturday {
		panic(fmt.Sprintf("calendarview: invalid first weekday %d", g.firstWeekday))
	}
	return g
}

// NewISO8601 creates the ISO 8601 calendar: Gregorian with Monday-first weeks.
func NewISO8601(opts ...GregorianOption) *Gregorian {
	g := NewGregorian(append([]GregorianOption{WithFirstWeekday(time.Monday)}, opts...)...)
	g.identifier = ISO8601Identifier
	return g
}

func (g *Gregorian) Identifier() string         { return g.identifier }
func (g *Gregorian) FirstWeekday() time.Weekday { return g.firstWeekday }

// Location returns the time zone used by the calendar.
func (g *Gregorian) Location() *time.Location { return g.location }

// Month returns the month for an astronomical year (as used by time.Date,
// where year 0 is 1 BCE) and a month number.
func (g *Gregorian) Month(year int, month time.Month) Month {
	if month < time.January || month > time.December {
		panic(fmt.Sprintf("calendarview: invalid month %d", month))
	}
	era, y := eraAndYear(year)
	return Month{Era: era, Year: y, Month: int(month), Calendar: g.identifier}
}

// Day returns the day for an astronomical year, month and day of month.
func (g *Gregorian) Day(year int, month time.Month, day int) Day {
	m := g.Month(year, month)
	if day < 1 || day > g.NumberOfDays(m) {
		panic(fmt.Sprintf("calendarview: day %d out of range for %s", day, m))
	}
	return Day{Month: m, Day: day}
}

func (g *Gregorian) MonthContaining(t time.Time) Month {
	y, mo, _ := t.In(g.location).Date()
	return g.Month(y, mo)
}

func (g *Gregorian) DayContaining(t time.Time) Day {
	y, mo, d := t.In(g.location).Date()
	return Day{Month: g.Month(y, mo), Day: d}
}

// FirstDate returns noon on the first day of m. Noon keeps day arithmetic
// clear of daylight saving transitions.
func (g *Gregorian) FirstDate(m Month) time.Time {
	g.validate(m)
	return time.Date(astronomicalYear(m), time.Month(m.Month), 1, 12, 0, 0, 0, g.location)
}

func (g *Gregorian) LastDate(m Month) time.Time {
	return g.FirstDate(m).AddDate(0, 1, -1)
}

func (g *Gregorian) Date(d Day) time.Time {
	if d.Day < 1 || d.Day > g.NumberOfDays(d.Month) {
		panic(fmt.Sprintf("calendarview: day %d out of range for %s", d.Day, d.Month))
	}
	return g.FirstDate(d.Month).AddDate(0, 0, d.Day-1)
}

// NumberOfDays returns the number of days in m.
func (g *Gregorian) NumberOfDays(m Month) int {
	return g.LastDate(m).Day()
}

func (g *Gregorian) AddMonths(m Month, n int) Month {
	if n == 0 {
		g.validate(m)
		return m
	}
	return g.MonthContaining(g.FirstDate(m).AddDate(0, n, 0))
}

func (g *Gregorian) AddDays(d Day, n int) Day {
	if n == 0 {
		g.Date(d)
		return d
	}
	return g.DayContaining(g.Date(d).AddDate(0, 0, n))
}

func (g *Gregorian) RowInMonth(t time.Time) int {
	first := g.FirstDate(g.MonthContaining(t))
	return (t.In(g.location).Day() - 1 + int(g.DayOfWeekPosition(first))) / NumberOfDaysInWeek
}

func (g *Gregorian) DayOfWeekPosition(t time.Time) DayOfWeekPosition {
	wd := int(t.In(g.location).Weekday())
	return DayOfWeekPosition((wd - int(g.firstWeekday) + NumberOfDaysInWeek) % NumberOfDaysInWeek)
}

func (g *Gregorian) WeekdayIndex(pos DayOfWeekPosition) time.Weekday {
	if pos < 0 || pos >= NumberOfDaysInWeek {
		panic(fmt.Sprintf("calendarview: invalid day of week position %d", pos))
	}
	return time.Weekday((int(g.firstWeekday) + int(pos)) % NumberOfDaysInWeek)
}

func (g *Gregorian) validate(m Month) {
	switch {
	case m.Calendar != g.identifier:
		panic(fmt.Sprintf("calendarview: month %s belongs to calendar %q, not %q", m, m.Calendar, g.identifier))
	case m.Era != 0 && m.Era != 1:
		panic(fmt.Sprintf("calendarview: invalid era %d", m.Era))
	case m.Year < 1:
		panic(fmt.Sprintf("calendarview: invalid year %d", m.Year))
	case m.Month < 1 || m.Month > 12:
		panic(fmt.Sprintf("calendarview: invalid month %d", m.Month))
	}
}

// eraAndYear splits an astronomical year into era and year-of-era.
func eraAndYear(astronomical int) (era, year int) {
	if astronomical >= 1 {
		return 1, astronomical
	}
	return 0, 1 - astronomical
}

func astronomicalYear(m Month) int {
	if m.Era == 0 {
		return 1 - m.Year
	}
	return m.Year
}

// NumberOfRows returns the number of week rows needed to show m.
func NumberOfRows(cal Calendar, m Month) int {
	return cal.RowInMonth(cal.LastDate(m)) + 1
}
