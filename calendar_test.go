package calendarview_test

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/go-theft-auto/calendarview"
)

func TestMonthOrderingAcrossEras(t *testing.T) {
	g := calendarview.NewGregorian()
	months := []calendarview.Month{
		g.Month(-1, time.March),     // 2 BCE
		g.Month(0, time.January),    // 1 BCE
		g.Month(0, time.December),   // 1 BCE
		g.Month(1, time.January),    // 1 CE
		g.Month(1999, time.December),
		g.Month(2024, time.February),
	}

	if months[1].Era != 0 || months[1].Year != 1 {
		t.Fatalf("expected astronomical year 0 to be 1 BCE, got era %d year %d", months[1].Era, months[1].Year)
	}

	for i, a := range months {
		for j, b := range months {
			want := g.FirstDate(a).Compare(g.FirstDate(b))
			if got := a.Compare(b); got != want {
				t.Errorf("%s.Compare(%s): expected %d, got %d", a, b, want, got)
			}
			if (i < j) != a.Before(b) {
				t.Errorf("%s.Before(%s) disagrees with chronological order", a, b)
			}
		}
	}
}

func TestDayOrderingAcrossEras(t *testing.T) {
	g := calendarview.NewGregorian()
	lastBCE := g.Day(0, time.December, 31)
	firstCE := g.Day(1, time.January, 1)

	if !lastBCE.Before(firstCE) {
		t.Errorf("expected %s before %s", lastBCE, firstCE)
	}
	if got := g.AddDays(firstCE, -1); got != lastBCE {
		t.Errorf("expected day before %s to be %s, got %s", firstCE, lastBCE, got)
	}
	if got := g.AddDays(lastBCE, 1); got != firstCE {
		t.Errorf("expected day after %s to be %s, got %s", lastBCE, firstCE, got)
	}
}

func TestAddMonthsRoundTrip(t *testing.T) {
	g := calendarview.NewGregorian()
	starts := []calendarview.Month{
		g.Month(-2, time.November),
		g.Month(0, time.June),
		g.Month(1, time.January),
		g.Month(2024, time.February),
	}
	for _, m := range starts {
		for _, n := range []int{-30, -13, -1, 0, 1, 12, 25} {
			if got := g.AddMonths(g.AddMonths(m, -n), n); got != m {
				t.Errorf("round trip of %s by %d: got %s", m, n, got)
			}
		}
	}

	if got := g.AddMonths(g.Month(0, time.December), 1); got != g.Month(1, time.January) {
		t.Errorf("expected month after 1 BCE December to be 1 CE January, got %s", got)
	}
}

func TestAddDaysRoundTrip(t *testing.T) {
	g := calendarview.NewGregorian()
	d := g.Day(2024, time.February, 29)
	for _, n := range []int{-400, -1, 0, 1, 366} {
		if got := g.AddDays(g.AddDays(d, n), -n); got != d {
			t.Errorf("round trip of %s by %d: got %s", d, n, got)
		}
	}
}

func TestMonthString(t *testing.T) {
	g := calendarview.NewGregorian()
	if got := g.Month(2024, time.March).String(); got != "2024-03" {
		t.Errorf("expected 2024-03, got %q", got)
	}
	if got := g.Month(0, time.December).String(); got != "1-12 BCE" {
		t.Errorf("expected 1-12 BCE, got %q", got)
	}
}

func TestNumberOfDays(t *testing.T) {
	g := calendarview.NewGregorian()
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		m := g.Month(tt.year, tt.month)
		if got := g.NumberOfDays(m); got != tt.want {
			t.Errorf("%s: expected %d days, got %d", m, tt.want, got)
		}
	}
}

func TestNumberOfRows(t *testing.T) {
	g := calendarview.NewGregorian()
	iso := calendarview.NewISO8601()

	tests := []struct {
		name string
		cal  calendarview.Calendar
		m    calendarview.Month
		want int
	}{
		// February 2015 starts on a Sunday and has 28 days.
		{"feb 2015 sunday first", g, g.Month(2015, time.February), 4},
		{"feb 2015 monday first", iso, iso.Month(2015, time.February), 5},
		// March 2024 starts on a Friday and has 31 days.
		{"mar 2024 sunday first", g, g.Month(2024, time.March), 6},
		{"mar 2024 monday first", iso, iso.Month(2024, time.March), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendarview.NumberOfRows(tt.cal, tt.m); got != tt.want {
				t.Errorf("expected %d rows, got %d", tt.want, got)
			}
		})
	}
}

func TestDayOfWeekPosition(t *testing.T) {
	g := calendarview.NewGregorian()
	iso := calendarview.NewISO8601()

	// 2024-01-01 is a Monday.
	date := g.Date(g.Day(2024, time.January, 1))
	if got := g.DayOfWeekPosition(date); got != 1 {
		t.Errorf("gregorian: expected column 1, got %d", got)
	}
	if got := iso.DayOfWeekPosition(date); got != 0 {
		t.Errorf("iso8601: expected column 0, got %d", got)
	}

	if got := g.WeekdayIndex(0); got != time.Sunday {
		t.Errorf("gregorian: expected Sunday in column 0, got %s", got)
	}
	if got := iso.WeekdayIndex(6); got != time.Sunday {
		t.Errorf("iso8601: expected Sunday in column 6, got %s", got)
	}

	for pos := calendarview.DayOfWeekPosition(0); pos < calendarview.NumberOfDaysInWeek; pos++ {
		d := date.AddDate(0, 0, int(pos))
		if got := iso.DayOfWeekPosition(d); iso.WeekdayIndex(got) != d.Weekday() {
			t.Errorf("weekday %s does not map back from column %d", d.Weekday(), got)
		}
	}
}

func TestRowInMonth(t *testing.T) {
	g := calendarview.NewGregorian()
	// March 2024: the 1st is a Friday, the 3rd the first Sunday.
	tests := []struct {
		day  int
		want int
	}{
		{1, 0}, {2, 0}, {3, 1}, {9, 1}, {10, 2}, {31, 5},
	}
	for _, tt := range tests {
		date := g.Date(g.Day(2024, time.March, tt.day))
		if got := g.RowInMonth(date); got != tt.want {
			t.Errorf("March %d: expected row %d, got %d", tt.day, tt.want, got)
		}
	}
}

func TestOutOfRangeComponentsPanic(t *testing.T) {
	g := calendarview.NewGregorian()
	tests := []struct {
		name string
		fn   func()
	}{
		{"day 29 of february 2023", func() { g.Day(2023, time.February, 29) }},
		{"month 13", func() { g.Month(2024, 13) }},
		{"day zero", func() { g.Date(calendarview.Day{Month: g.Month(2024, time.May), Day: 0}) }},
		{"foreign calendar", func() { g.FirstDate(calendarview.NewISO8601().Month(2024, time.May)) }},
		{"inverted range", func() {
			calendarview.NewDayRange(g.Day(2024, time.May, 2), g.Day(2024, time.May, 1))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestFirstWeekdayForLocale(t *testing.T) {
	tests := []struct {
		tag  string
		want time.Weekday
	}{
		{"en-US", time.Sunday},
		{"en-GB", time.Monday},
		{"de-DE", time.Monday},
		{"ar-EG", time.Saturday},
		{"dv-MV", time.Friday},
		{"ja", time.Sunday},
		{"de", time.Monday},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got := calendarview.FirstWeekdayForLocale(language.MustParse(tt.tag))
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestWithLocale(t *testing.T) {
	g := calendarview.NewGregorian(calendarview.WithLocale(language.BritishEnglish))
	if got := g.FirstWeekday(); got != time.Monday {
		t.Errorf("expected Monday, got %s", got)
	}
	if got := g.Identifier(); got != calendarview.GregorianIdentifier {
		t.Errorf("expected identifier %q, got %q", calendarview.GregorianIdentifier, got)
	}
}

func TestRanges(t *testing.T) {
	g := calendarview.NewGregorian()
	r := calendarview.NewDayRange(g.Day(2024, time.January, 15), g.Day(2024, time.March, 10))

	if !r.Contains(g.Day(2024, time.February, 29)) {
		t.Error("expected range to contain February 29")
	}
	if r.Contains(g.Day(2024, time.March, 11)) {
		t.Error("expected range to exclude March 11")
	}

	months := r.Months()
	if months.Lower != g.Month(2024, time.January) || months.Upper != g.Month(2024, time.March) {
		t.Errorf("unexpected month range %s...%s", months.Lower, months.Upper)
	}
	if !months.Contains(g.Month(2024, time.February)) {
		t.Error("expected month range to contain February")
	}
}
