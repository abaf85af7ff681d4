// Package terminal draws calendarview layouts on a tcell screen and turns
// tcell events into engine input. One content unit is one character cell.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/calendarview"
)

// Styles are the cell styles used for each kind of item.
type Styles struct {
	Background  tcell.Style
	Header      tcell.Style
	Weekday     tcell.Style
	Day         tcell.Style
	DayDisabled tcell.Style
	Range       tcell.Style
	Overlay     tcell.Style
}

// DefaultStyles returns styles for a dark terminal. Text styles leave the
// background unset so text drawn over a range keeps the range color.
func DefaultStyles() Styles {
	text := tcell.StyleDefault
	return Styles{
		Background:  tcell.StyleDefault.Background(tcell.ColorBlack),
		Header:      text.Foreground(tcell.ColorWhite).Bold(true),
		Weekday:     text.Foreground(tcell.ColorSilver),
		Day:         text.Foreground(tcell.ColorWhite),
		DayDisabled: text.Foreground(tcell.ColorGray),
		Range:       tcell.StyleDefault.Background(tcell.NewRGBColor(40, 70, 140)).Foreground(tcell.ColorWhite),
		Overlay:     text.Foreground(tcell.ColorYellow).Bold(true),
	}
}

// FrameMetrics returns month geometry sized in character cells.
func FrameMetrics() calendarview.FrameMetrics {
	return calendarview.FrameMetrics{
		DaySize:             calendarview.Vec2{X: 3, Y: 1},
		HorizontalDayMargin: 1,
		MonthHeaderHeight:   1,
		DayOfWeekHeight:     1,
		MonthDayInsets:      calendarview.EdgeInsets{Left: 1, Right: 1, Bottom: 1},
		InterMonthSpacing:   1,
	}
}

// CellPainter is implemented by host views that draw themselves in cells.
// frame is the view's cell rectangle within the screen.
type CellPainter interface {
	PaintCells(screen tcell.Screen, frame CellRect, styles *Styles)
}

// CellRect is a rectangle of whole cells.
type CellRect struct {
	X, Y, W, H int
}

func toCells(r calendarview.Rect) CellRect {
	x0, y0 := int(math.Round(r.X)), int(math.Round(r.Y))
	x1, y1 := int(math.Round(r.MaxX())), int(math.Round(r.MaxY()))
	return CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Renderer draws layout results on a screen.
type Renderer struct {
	screen tcell.Screen
	styles Styles
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen tcell.Screen, styles Styles) *Renderer {
	return &Renderer{screen: screen, styles: styles}
}

// Viewport returns the engine viewport covering the whole screen.
func (r *Renderer) Viewport(margins calendarview.EdgeInsets) calendarview.Viewport {
	w, h := r.screen.Size()
	return calendarview.Viewport{
		Size:    calendarview.Vec2{X: float64(w), Y: float64(h)},
		Margins: margins,
	}
}

// Draw clears the screen and paints result back to front. It does not call
// Show.
func (r *Renderer) Draw(result calendarview.LayoutResult) {
	r.screen.SetStyle(r.styles.Background)
	r.screen.Clear()
	pinnedRow, hasPinned := calendarview.PinnedRowFrame(result)
	for _, in := range result.Instructions {
		if hasPinned && in.Item.Pinned {
			r.blank(toCells(pinnedRow))
			hasPinned = false
		}
		frame := toCells(in.Frame)
		switch v := in.View.(type) {
		case CellPainter:
			v.PaintCells(r.screen, frame, &r.styles)
		case *calendarview.BasicView:
			r.paintBasic(v, frame)
		default:
			calendarview.Logger().Warn("terminal: view cannot paint cells",
				"item", in.Item.String())
		}
	}
}

func (r *Renderer) paintBasic(v *calendarview.BasicView, frame CellRect) {
	switch v.Tag {
	case calendarview.TagMonthHeader:
		r.text(frame.X+1, frame.Y, frame.X+frame.W, v.Label, r.styles.Header)
	case calendarview.TagDayOfWeek:
		r.centered(frame, v.Label, r.styles.Weekday)
	case calendarview.TagDay:
		style := r.styles.Day
		if v.Disabled {
			style = r.styles.DayDisabled
		}
		r.centered(frame, v.Label, style)
	case calendarview.TagDayRange:
		ctx, ok := v.Content.(calendarview.DayRangeLayoutContext)
		if !ok {
			return
		}
		for _, d := range ctx.Days {
			r.fill(toCells(d.Frame.Offset(calendarview.Vec2{X: float64(frame.X), Y: float64(frame.Y)})), r.styles.Range)
		}
	case calendarview.TagOverlay:
		ctx, ok := v.Content.(calendarview.OverlayLayoutContext)
		if !ok {
			return
		}
		loc := toCells(ctx.LocationFrame.Offset(calendarview.Vec2{X: float64(frame.X), Y: float64(frame.Y)}))
		r.text(loc.X-1, loc.Y, loc.X, "[", r.styles.Overlay)
		r.text(loc.X+loc.W, loc.Y, loc.X+loc.W+1, "]", r.styles.Overlay)
	}
}

// blank clears frame to the background.
func (r *Renderer) blank(frame CellRect) {
	for y := frame.Y; y < frame.Y+frame.H; y++ {
		for x := frame.X; x < frame.X+frame.W; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.styles.Background)
		}
	}
}

// fill sets the style of every cell in frame, keeping its rune.
func (r *Renderer) fill(frame CellRect, style tcell.Style) {
	for y := frame.Y; y < frame.Y+frame.H; y++ {
		for x := frame.X; x < frame.X+frame.W; x++ {
			mainc, combc, _, _ := r.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			r.screen.SetContent(x, y, mainc, combc, style)
		}
	}
}

func (r *Renderer) centered(frame CellRect, s string, style tcell.Style) {
	w := runewidth.StringWidth(s)
	x := frame.X + (frame.W-w+1)/2
	y := frame.Y + (frame.H-1)/2
	r.text(x, y, frame.X+frame.W, s, style)
}

// text writes s starting at (x, y), stopping before column limit. Cells
// keep their background when style has none of its own.
func (r *Renderer) text(x, y, limit int, s string, style tcell.Style) {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > limit {
			return
		}
		cell := style
		if _, bg, _ := style.Decompose(); bg == tcell.ColorDefault {
			_, _, existing, _ := r.screen.GetContent(x, y)
			_, ebg, _ := existing.Decompose()
			cell = style.Background(ebg)
		}
		r.screen.SetContent(x, y, ch, nil, cell)
		x += w
	}
}
