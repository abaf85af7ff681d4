package calendarview

import "math"

// FrameMetrics holds the fixed geometry parameters of a month.
type FrameMetrics struct {
	// DaySize fixes the day cell size. A zero width derives the cell width
	// from the month width and the height from DayAspectRatio.
	DaySize             Vec2
	DayAspectRatio      float64 // Height / width for derived cells; 0 means 1
	HorizontalDayMargin float64 // Gap between columns
	VerticalDayMargin   float64 // Gap between rows
	MonthHeaderHeight   float64
	DayOfWeekHeight     float64 // 0 uses the day cell height
	MonthDayInsets      EdgeInsets
	InterMonthSpacing   float64
}

// DefaultFrameMetrics returns square derived cells with a modest header.
func DefaultFrameMetrics() FrameMetrics {
	return FrameMetrics{
		DayAspectRatio:      1,
		HorizontalDayMargin: 4,
		VerticalDayMargin:   4,
		MonthHeaderHeight:   40,
		MonthDayInsets:      EdgeInsets{Top: 8, Left: 8, Bottom: 8, Right: 8},
		InterMonthSpacing:   24,
	}
}

// frameProvider computes deterministic frames for one viewport size.
// All frames are in scroll content coordinates.
type frameProvider struct {
	calendar Calendar
	layout   MonthsLayout
	metrics  FrameMetrics
	size     Vec2
	margins  EdgeInsets // Effective layout margins, including any pinned row
}

func newFrameProvider(cal Calendar, layout MonthsLayout, metrics FrameMetrics, size Vec2, margins EdgeInsets) *frameProvider {
	p := &frameProvider{
		calendar: cal,
		layout:   layout,
		metrics:  metrics,
		size:     size,
		margins:  margins,
	}
	if layout.pinsDaysOfWeek() {
		p.margins.Top += p.dayOfWeekHeight()
	}
	return p
}

// monthWidth is the width of every month frame.
func (p *frameProvider) monthWidth() float64 {
	m := p.metrics
	if m.DaySize.X > 0 {
		return m.MonthDayInsets.Left + m.MonthDayInsets.Right +
			NumberOfDaysInWeek*m.DaySize.X + (NumberOfDaysInWeek-1)*m.HorizontalDayMargin
	}
	available := math.Max(0, p.size.X-p.margins.Left-p.margins.Right)
	if p.layout.Axis == Horizontal {
		n := p.layout.fullyVisibleMonths()
		return math.Max(0, (available-(n-1)*m.InterMonthSpacing)/n)
	}
	return available
}

func (p *frameProvider) daySize() Vec2 {
	m := p.metrics
	aspect := m.DayAspectRatio
	if aspect <= 0 {
		aspect = 1
	}
	if m.DaySize.X > 0 {
		if m.DaySize.Y > 0 {
			return m.DaySize
		}
		return Vec2{X: m.DaySize.X, Y: m.DaySize.X * aspect}
	}
	inner := p.monthWidth() - m.MonthDayInsets.Left - m.MonthDayInsets.Right -
		(NumberOfDaysInWeek-1)*m.HorizontalDayMargin
	w := math.Max(0, inner/NumberOfDaysInWeek)
	return Vec2{X: w, Y: w * aspect}
}

func (p *frameProvider) dayOfWeekHeight() float64 {
	if p.metrics.DayOfWeekHeight > 0 {
		return p.metrics.DayOfWeekHeight
	}
	return p.daySize().Y
}

// daysTop is the distance from the month origin to the first day row.
func (p *frameProvider) daysTop() float64 {
	m := p.metrics
	top := m.MonthHeaderHeight + m.MonthDayInsets.Top
	if !p.layout.pinsDaysOfWeek() {
		top += p.dayOfWeekHeight() + m.VerticalDayMargin
	}
	return top
}

func (p *frameProvider) monthHeight(month Month) float64 {
	rows := float64(NumberOfRows(p.calendar, month))
	ds := p.daySize()
	return p.daysTop() + rows*ds.Y + (rows-1)*p.metrics.VerticalDayMargin + p.metrics.MonthDayInsets.Bottom
}

// monthExtent is the size of a month along the scroll axis.
func (p *frameProvider) monthExtent(month Month) float64 {
	if p.layout.Axis == Horizontal {
		return p.monthWidth()
	}
	return p.monthHeight(month)
}

// monthOrigin places a month whose leading edge along the scroll axis is at main.
// The cross-axis position comes from the viewport bounds and margins.
func (p *frameProvider) monthOrigin(main float64, bounds Rect) Vec2 {
	if p.layout.Axis == Horizontal {
		return Vec2{X: main, Y: bounds.Y + p.margins.Top}
	}
	return Vec2{X: bounds.X + p.margins.Left, Y: main}
}

func (p *frameProvider) nextMonthOrigin(month Month, origin Vec2) Vec2 {
	step := p.monthExtent(month) + p.metrics.InterMonthSpacing
	return origin.Add(p.layout.Axis.vec(step))
}

// previousMonthOrigin returns the origin of prev, the month before the one at origin.
func (p *frameProvider) previousMonthOrigin(prev Month, origin Vec2) Vec2 {
	step := p.monthExtent(prev) + p.metrics.InterMonthSpacing
	return origin.Sub(p.layout.Axis.vec(step))
}

func (p *frameProvider) monthFrame(month Month, origin Vec2) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: p.monthWidth(), H: p.monthHeight(month)}
}

func (p *frameProvider) headerFrame(origin Vec2) Rect {
	return Rect{X: origin.X, Y: origin.Y, W: p.monthWidth(), H: p.metrics.MonthHeaderHeight}
}

func (p *frameProvider) columnX(pos DayOfWeekPosition) float64 {
	ds := p.daySize()
	return p.metrics.MonthDayInsets.Left + float64(pos)*(ds.X+p.metrics.HorizontalDayMargin)
}

func (p *frameProvider) dayOfWeekFrame(origin Vec2, pos DayOfWeekPosition) Rect {
	return Rect{
		X: origin.X + p.columnX(pos),
		Y: origin.Y + p.metrics.MonthHeaderHeight + p.metrics.MonthDayInsets.Top,
		W: p.daySize().X,
		H: p.dayOfWeekHeight(),
	}
}

// pinnedDayOfWeekFrame places a pinned header at the top of the viewport.
func (p *frameProvider) pinnedDayOfWeekFrame(bounds Rect, pos DayOfWeekPosition) Rect {
	h := p.dayOfWeekHeight()
	return Rect{
		X: bounds.X + p.margins.Left + p.columnX(pos),
		Y: bounds.Y + p.margins.Top - h,
		W: p.daySize().X,
		H: h,
	}
}

func (p *frameProvider) dayFrame(day Day, origin Vec2) Rect {
	date := p.calendar.Date(day)
	row := p.calendar.RowInMonth(date)
	ds := p.daySize()
	return Rect{
		X: origin.X + p.columnX(p.calendar.DayOfWeekPosition(date)),
		Y: origin.Y + p.daysTop() + float64(row)*(ds.Y+p.metrics.VerticalDayMargin),
		W: ds.X,
		H: ds.Y,
	}
}

// relativeMainOffset is the distance along the scroll axis from the origin of
// the item's month to the item's leading edge.
func (p *frameProvider) relativeMainOffset(t ItemType) float64 {
	var r Rect
	switch t.Kind {
	case KindMonthHeader:
		r = p.headerFrame(Vec2{})
	case KindDayOfWeekHeader:
		r = p.dayOfWeekFrame(Vec2{}, t.Position)
	case KindDay:
		r = p.dayFrame(t.Day, Vec2{})
	default:
		panic("calendarview: " + t.Kind.String() + " items cannot anchor a layout")
	}
	return p.layout.Axis.minOf(r)
}

// frameOf returns the frame of an anchorable item in a month placed at origin.
func (p *frameProvider) frameOf(t ItemType, origin Vec2) Rect {
	switch t.Kind {
	case KindMonthHeader:
		return p.headerFrame(origin)
	case KindDayOfWeekHeader:
		return p.dayOfWeekFrame(origin, t.Position)
	case KindDay:
		return p.dayFrame(t.Day, origin)
	}
	panic("calendarview: no month frame for " + t.Kind.String())
}
