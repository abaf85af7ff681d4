// Command termcal shows a scrolling calendar in the terminal.
//
//	go run ./cmd/termcal -from 2024-01 -to 2026-12 -locale en-GB
//
// Arrows and the wheel scroll, PgUp/PgDn step months, Home/End jump to the
// ends, t centers today, q quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"

	"github.com/go-theft-auto/calendarview"
	"github.com/go-theft-auto/calendarview/backend/terminal"
)

const frameInterval = time.Second / 60

type options struct {
	from, to   string
	horizontal bool
	months     float64
	pin        bool
	locale     string
	iso        bool
	logFile    string
}

func main() {
	var opts options
	flag.StringVar(&opts.from, "from", "", "first month shown, YYYY-MM (default: a year ago)")
	flag.StringVar(&opts.to, "to", "", "last month shown, YYYY-MM (default: a year ahead)")
	flag.BoolVar(&opts.horizontal, "horizontal", false, "scroll months horizontally with paging")
	flag.Float64Var(&opts.months, "months", 1, "months sharing the width in horizontal mode")
	flag.BoolVar(&opts.pin, "pin", false, "pin the day-of-week row to the top")
	flag.StringVar(&opts.locale, "locale", "", "BCP 47 tag deciding the first weekday")
	flag.BoolVar(&opts.iso, "iso", false, "use the ISO 8601 calendar")
	flag.StringVar(&opts.logFile, "log", "", "write debug logs to this file")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.logFile != "" {
		f, err := os.Create(opts.logFile)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		calendarview.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var calOpts []calendarview.GregorianOption
	if opts.locale != "" {
		tag, err := language.Parse(opts.locale)
		if err != nil {
			return fmt.Errorf("parse locale %q: %w", opts.locale, err)
		}
		calOpts = append(calOpts, calendarview.WithLocale(tag))
	}
	cal := calendarview.NewGregorian(calOpts...)
	if opts.iso {
		cal = calendarview.NewISO8601(calOpts...)
	}

	now := time.Now()
	today := cal.DayContaining(now)
	first, err := parseMonth(opts.from, now.AddDate(-1, 0, 0))
	if err != nil {
		return err
	}
	last, err := parseMonth(opts.to, now.AddDate(1, 0, 0))
	if err != nil {
		return err
	}
	if last.Before(first) {
		return fmt.Errorf("-to %s is before -from %s", opts.to, opts.from)
	}
	lower := cal.DayContaining(first)
	upper := cal.DayContaining(cal.LastDate(cal.MonthContaining(last)))

	layout := calendarview.MonthsLayout{Axis: calendarview.Vertical, PinDaysOfWeekToTop: opts.pin}
	if opts.horizontal {
		layout = calendarview.HorizontalMonths(opts.months)
	}
	metrics := terminal.FrameMetrics()
	if opts.horizontal {
		metrics.DaySize = calendarview.Vec2{}
		metrics.DayAspectRatio = 0.25
	}

	engine := calendarview.New(calendarview.Content{
		Calendar:   cal,
		Days:       calendarview.NewDayRange(lower, upper),
		Overlays:   []calendarview.OverlaidLocation{calendarview.DayLocation(today)},
		DayEnabled: func(d calendarview.Day) bool { return cal.Date(d).Weekday() != time.Sunday },
	},
		calendarview.WithMonthsLayout(layout),
		calendarview.WithFrameMetrics(metrics),
		calendarview.WithOverscan(4),
		calendarview.WithScrollToItemSpeed(120),
		calendarview.WithInitialDay(today, calendarview.Centered()),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	renderer := terminal.NewRenderer(screen, terminal.DefaultStyles())
	controller := terminal.NewController(screen, engine, &today)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	lastTick := time.Now()
	for {
		select {
		case ev := <-events:
			if !controller.HandleEvent(ev) {
				return nil
			}
		case t := <-ticker.C:
			engine.Tick(t.Sub(lastTick).Seconds())
			lastTick = t
		}
		renderer.Draw(engine.Layout(renderer.Viewport(calendarview.EdgeInsets{Left: 1, Right: 1})))
		screen.Show()
	}
}

// parseMonth parses YYYY-MM, returning the first instant of fallback's month
// when s is empty.
func parseMonth(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return time.Date(fallback.Year(), fallback.Month(), 1, 12, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return t.Add(12 * time.Hour), nil
}
