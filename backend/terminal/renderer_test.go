package terminal_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/calendarview"
	"github.com/go-theft-auto/calendarview/backend/terminal"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newEngine(content calendarview.Content) *calendarview.Engine {
	return calendarview.New(content,
		calendarview.WithFrameMetrics(terminal.FrameMetrics()),
		calendarview.WithOverscan(4),
	)
}

func content2024(g *calendarview.Gregorian) calendarview.Content {
	return calendarview.Content{
		Calendar: g,
		Days:     calendarview.NewDayRange(g.Day(2024, time.January, 1), g.Day(2024, time.December, 31)),
	}
}

func readRow(screen tcell.Screen, y, from, to int) string {
	var s []rune
	for x := from; x < to; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		s = append(s, r)
	}
	return string(s)
}

func TestRendererDrawsMonthGrid(t *testing.T) {
	screen := newScreen(t, 30, 20)
	g := calendarview.NewGregorian()
	e := newEngine(content2024(g))
	r := terminal.NewRenderer(screen, terminal.DefaultStyles())

	r.Draw(e.Layout(r.Viewport(calendarview.EdgeInsets{})))

	if got := readRow(screen, 0, 1, 13); got != "January 2024" {
		t.Errorf("expected month header %q, got %q", "January 2024", got)
	}
	// Columns are 3 cells wide with a 1 cell gap, after a 1 cell inset.
	if got := readRow(screen, 1, 2, 4); got != "Su" {
		t.Errorf("expected first weekday Su, got %q", got)
	}
	if got := readRow(screen, 1, 6, 8); got != "Mo" {
		t.Errorf("expected second weekday Mo, got %q", got)
	}
	// January 1, 2024 is a Monday.
	if got := readRow(screen, 2, 6, 7); got != "1" {
		t.Errorf("expected January 1 under Mo, got %q", got)
	}
	if got := readRow(screen, 3, 5, 8); got != " 8 " {
		t.Errorf("expected January 8 on the second row, got %q", got)
	}
}

func TestRendererStyles(t *testing.T) {
	screen := newScreen(t, 30, 20)
	g := calendarview.NewGregorian()
	content := content2024(g)
	content.DayEnabled = func(d calendarview.Day) bool { return g.Date(d).Weekday() != time.Sunday }
	content.DayRanges = []calendarview.DayRange{
		calendarview.NewDayRange(g.Day(2024, time.January, 1), g.Day(2024, time.January, 2)),
	}
	e := newEngine(content)
	styles := terminal.DefaultStyles()
	r := terminal.NewRenderer(screen, styles)

	r.Draw(e.Layout(r.Viewport(calendarview.EdgeInsets{})))

	// January 7 is a Sunday in the first column of the second row.
	_, _, style, _ := screen.GetContent(2, 3)
	if fg, _, _ := style.Decompose(); fg != tcell.ColorGray {
		t.Errorf("expected disabled day in gray, got %v", fg)
	}

	_, rangeBg, _ := styles.Range.Decompose()
	mainc, _, style, _ := screen.GetContent(6, 2)
	if mainc != '1' {
		t.Fatalf("expected January 1 at (6, 2), got %q", mainc)
	}
	if _, bg, _ := style.Decompose(); bg != rangeBg {
		t.Errorf("expected the day label to keep the range background, got %v", bg)
	}
	_, _, style, _ = screen.GetContent(5, 2)
	if _, bg, _ := style.Decompose(); bg != rangeBg {
		t.Error("expected the whole day cell to be highlighted")
	}
}

func TestRendererPinnedRowMasksContent(t *testing.T) {
	screen := newScreen(t, 30, 12)
	g := calendarview.NewGregorian()
	e := calendarview.New(content2024(g),
		calendarview.WithFrameMetrics(terminal.FrameMetrics()),
		calendarview.WithMonthsLayout(calendarview.MonthsLayout{Axis: calendarview.Vertical, PinDaysOfWeekToTop: true}),
	)
	r := terminal.NewRenderer(screen, terminal.DefaultStyles())
	vp := r.Viewport(calendarview.EdgeInsets{})
	e.Layout(vp)

	e.ScrollBy(1)
	r.Draw(e.Layout(vp))

	if got := readRow(screen, 0, 0, 30); got != "  Su  Mo  Tu  We  Th  Fr  Sa  " {
		t.Errorf("expected only weekdays on the pinned row, got %q", got)
	}
}

func TestControllerWheelScrolls(t *testing.T) {
	screen := newScreen(t, 30, 20)
	g := calendarview.NewGregorian()
	e := newEngine(content2024(g))
	r := terminal.NewRenderer(screen, terminal.DefaultStyles())
	c := terminal.NewController(screen, e, nil)
	e.Layout(r.Viewport(calendarview.EdgeInsets{}))
	start := e.Surface().Offset.Y

	if !c.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone)) {
		t.Fatal("expected wheel events to keep running")
	}
	if got := e.Surface().Offset.Y; got != start+terminal.WheelStep {
		t.Errorf("expected offset %v, got %v", start+terminal.WheelStep, got)
	}

	c.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if got := e.Surface().Offset.Y; got != start {
		t.Errorf("expected offset back at %v, got %v", start, got)
	}
}

func TestControllerResize(t *testing.T) {
	screen := newScreen(t, 30, 20)
	g := calendarview.NewGregorian()
	e := newEngine(content2024(g))
	r := terminal.NewRenderer(screen, terminal.DefaultStyles())
	c := terminal.NewController(screen, e, nil)
	before := e.Layout(r.Viewport(calendarview.EdgeInsets{}))

	screen.SetSize(30, 30)
	if !c.HandleEvent(tcell.NewEventResize(30, 30)) {
		t.Fatal("expected resize events to keep running")
	}
	after := e.Layout(r.Viewport(calendarview.EdgeInsets{}))
	if len(after.Instructions) <= len(before.Instructions) {
		t.Errorf("expected a taller screen to show more items, got %d then %d",
			len(before.Instructions), len(after.Instructions))
	}
}
