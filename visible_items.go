package calendarview

import (
	"fmt"
	"math"
	"slices"
)

// DefaultOverscan is the distance beyond each end of the viewport, along the
// scroll axis, that is still laid out.
const DefaultOverscan = 200.0

// VisibleItemsSnapshot is the result of one layout pass. It is rebuilt from
// scratch every pass and never patched.
type VisibleItemsSnapshot struct {
	Bounds         Rect         // Viewport in content coordinates
	VisibleItems   []LayoutItem // Items intersecting the overscanned viewport, in item order
	CentermostItem LayoutItem

	MonthFrames       map[Month]Rect
	MonthHeaderFrames map[Month]Rect
	DayFrames         map[Day]Rect

	// Scroll boundaries along the scroll axis, known once the first or last
	// content month has been laid out.
	MinimumScrollOffset *float64
	MaximumScrollOffset *float64
}

// Item returns the visible item of type t.
func (s *VisibleItemsSnapshot) Item(t ItemType) (LayoutItem, bool) {
	for _, item := range s.VisibleItems {
		if item.Type == t {
			return item, true
		}
	}
	return LayoutItem{}, false
}

// MonthSpan returns the earliest and latest months laid out in the pass.
func (s *VisibleItemsSnapshot) MonthSpan() (first, last Month, ok bool) {
	for m := range s.MonthFrames {
		if !ok || m.Before(first) {
			first = m
		}
		if !ok || m.After(last) {
			last = m
		}
		ok = true
	}
	return first, last, ok
}

func (s *VisibleItemsSnapshot) daysIn(r DayRange) []DayFrame {
	var days []DayFrame
	for d, f := range s.DayFrames {
		if r.Contains(d) {
			days = append(days, DayFrame{Day: d, Frame: f})
		}
	}
	slices.SortFunc(days, func(a, b DayFrame) int { return a.Day.Compare(b.Day) })
	return days
}

func (s *VisibleItemsSnapshot) locationFrame(loc OverlaidLocation) (Rect, bool) {
	if loc.Kind == KindDay {
		f, ok := s.DayFrames[loc.Day]
		return f, ok
	}
	f, ok := s.MonthHeaderFrames[loc.Month]
	return f, ok
}

// VisibleItemsProvider is the incremental layout engine. Given an anchor item
// it lays out only the months around the viewport.
type VisibleItemsProvider struct {
	content  *Content
	layout   MonthsLayout
	metrics  FrameMetrics
	overscan float64
}

// NewVisibleItemsProvider creates a provider for content. A negative overscan
// is treated as zero.
func NewVisibleItemsProvider(content *Content, layout MonthsLayout, metrics FrameMetrics, overscan float64) *VisibleItemsProvider {
	content.validate()
	return &VisibleItemsProvider{
		content:  content,
		layout:   layout,
		metrics:  metrics,
		overscan: math.Max(0, overscan),
	}
}

// Layout returns the months layout the provider was created with.
func (p *VisibleItemsProvider) Layout() MonthsLayout { return p.layout }

func (p *VisibleItemsProvider) frames(size Vec2, margins EdgeInsets) *frameProvider {
	return newFrameProvider(p.content.Calendar, p.layout, p.metrics, size, margins)
}

// MonthWidth returns the width of each month frame for a viewport size.
func (p *VisibleItemsProvider) MonthWidth(size Vec2, margins EdgeInsets) float64 {
	return p.frames(size, margins).monthWidth()
}

// ContainsAnchor reports whether anchor still refers to laid-out content.
func (p *VisibleItemsProvider) ContainsAnchor(anchor LayoutItem) bool {
	if !anchor.Type.anchorable() {
		return false
	}
	m, _ := anchor.Type.MonthOf()
	if m.Calendar != p.content.Calendar.Identifier() || !p.content.Months().Contains(m) {
		return false
	}
	if anchor.Type.Kind == KindDay {
		return p.content.Days.Contains(anchor.Type.Day)
	}
	if anchor.Type.Kind == KindDayOfWeekHeader && p.layout.pinsDaysOfWeek() {
		return false
	}
	return true
}

// DetailsForVisibleItems lays out the viewport at offset with the given size,
// walking outward from anchor one month at a time. A zero-sized viewport
// yields an empty snapshot whose centermost item is the anchor.
func (p *VisibleItemsProvider) DetailsForVisibleItems(anchor LayoutItem, offset, size Vec2, margins EdgeInsets) VisibleItemsSnapshot {
	snap := VisibleItemsSnapshot{
		Bounds:            Rect{X: offset.X, Y: offset.Y, W: size.X, H: size.Y},
		CentermostItem:    anchor,
		MonthFrames:       make(map[Month]Rect),
		MonthHeaderFrames: make(map[Month]Rect),
		DayFrames:         make(map[Day]Rect),
	}
	if size.X <= 0 || size.Y <= 0 {
		return snap
	}
	if !p.ContainsAnchor(anchor) {
		panic(fmt.Sprintf("calendarview: stale anchor %s", anchor.Type))
	}

	pass := &layoutPass{
		provider: p,
		frames:   p.frames(size, margins),
		snap:     &snap,
		extended: p.layout.Axis.outset(snap.Bounds, p.overscan),
	}
	pass.walk(anchor)
	pass.addPinnedDaysOfWeek()
	pass.addDayRanges()
	pass.addOverlays()

	slices.SortFunc(snap.VisibleItems, LayoutItem.Compare)
	if item, ok := p.centermostItem(&snap); ok {
		snap.CentermostItem = item
	}
	return snap
}

// centermostItem picks the anchorable item inside the viewport whose center
// is closest to the viewport center along the scroll axis. Ties go to the
// earlier item.
func (p *VisibleItemsProvider) centermostItem(snap *VisibleItemsSnapshot) (LayoutItem, bool) {
	axis := p.layout.Axis
	center := axis.main(snap.Bounds.Center())
	var best LayoutItem
	bestDist := math.Inf(1)
	found := false
	for _, item := range snap.VisibleItems {
		if !item.Type.anchorable() || !item.Frame.Intersects(snap.Bounds) {
			continue
		}
		dist := math.Abs(axis.main(item.Frame.Center()) - center)
		if dist < bestDist || (dist == bestDist && item.Compare(best) < 0) {
			best, bestDist, found = item, dist, true
		}
	}
	return best, found
}

// AnchorItemForMonth returns a month header item placed so that, used as the
// anchor for a viewport at offset, month m lands at position. It panics when
// m is outside the content range.
func (p *VisibleItemsProvider) AnchorItemForMonth(m Month, offset, size Vec2, margins EdgeInsets, position ScrollPosition) LayoutItem {
	if m.Calendar != p.content.Calendar.Identifier() || !p.content.Months().Contains(m) {
		panic(fmt.Sprintf("calendarview: month %s is outside the content range", m))
	}
	fp := p.frames(size, margins)
	bounds := Rect{X: offset.X, Y: offset.Y, W: size.X, H: size.Y}
	main := p.targetMain(fp, bounds, fp.monthExtent(m), position)
	origin := fp.monthOrigin(main, bounds)
	return LayoutItem{Type: MonthHeader(m), Frame: fp.headerFrame(origin)}
}

// AnchorItemForDay returns a day item placed so that, used as the anchor for
// a viewport at offset, day d lands at position. It panics when d is outside
// the content range.
func (p *VisibleItemsProvider) AnchorItemForDay(d Day, offset, size Vec2, margins EdgeInsets, position ScrollPosition) LayoutItem {
	if d.Month.Calendar != p.content.Calendar.Identifier() || !p.content.Days.Contains(d) {
		panic(fmt.Sprintf("calendarview: day %s is outside the content range", d))
	}
	fp := p.frames(size, margins)
	bounds := Rect{X: offset.X, Y: offset.Y, W: size.X, H: size.Y}
	t := DayItem(d)
	dayExtent := p.layout.Axis.extentOf(fp.dayFrame(d, Vec2{}))
	main := p.targetMain(fp, bounds, dayExtent, position) - fp.relativeMainOffset(t)
	origin := fp.monthOrigin(main, bounds)
	return LayoutItem{Type: t, Frame: fp.dayFrame(d, origin)}
}

// targetMain returns the content coordinate, along the scroll axis, at which a
// target of the given extent must start to rest at position.
func (p *VisibleItemsProvider) targetMain(fp *frameProvider, bounds Rect, extent float64, position ScrollPosition) float64 {
	axis := p.layout.Axis
	leading := axis.leading(fp.margins)
	trailing := axis.extentOf(bounds) - axis.trailing(fp.margins)
	return axis.minOf(bounds) + position.targetMin(leading, trailing, extent)
}

// DesiredOffset returns the scroll-axis offset at which frame rests at
// position for a viewport of the given size.
func (p *VisibleItemsProvider) DesiredOffset(frame Rect, size Vec2, margins EdgeInsets, position ScrollPosition) float64 {
	fp := p.frames(size, margins)
	axis := p.layout.Axis
	leading := axis.leading(fp.margins)
	trailing := axis.main(size) - axis.trailing(fp.margins)
	return axis.minOf(frame) - position.targetMin(leading, trailing, axis.extentOf(frame))
}

// layoutPass accumulates the results of one DetailsForVisibleItems call.
type layoutPass struct {
	provider *VisibleItemsProvider
	frames   *frameProvider
	snap     *VisibleItemsSnapshot
	extended Rect
}

// walk lays out the anchor's month, then months after it until the extended
// bounds are covered, then months before it.
func (lp *layoutPass) walk(anchor LayoutItem) {
	axis := lp.provider.layout.Axis
	cal := lp.provider.content.Calendar
	months := lp.provider.content.Months()
	fp := lp.frames

	month, _ := anchor.Type.MonthOf()
	origin := fp.monthOrigin(axis.minOf(anchor.Frame)-fp.relativeMainOffset(anchor.Type), lp.snap.Bounds)

	m, o := month, origin
	for {
		frame := lp.layoutMonth(m, o)
		if axis.maxOf(frame) >= axis.maxOf(lp.extended) || m == months.Upper {
			break
		}
		o = fp.nextMonthOrigin(m, o)
		m = cal.AddMonths(m, 1)
	}

	m, o = month, origin
	for axis.minOf(fp.monthFrame(m, o)) > axis.minOf(lp.extended) && m != months.Lower {
		prev := cal.AddMonths(m, -1)
		o = fp.previousMonthOrigin(prev, o)
		m = prev
		lp.layoutMonth(m, o)
	}
}

// layoutMonth records boundaries for m and, when m reaches into the extended
// bounds, its frames and items. It returns the month frame.
func (lp *layoutPass) layoutMonth(m Month, origin Vec2) Rect {
	p := lp.provider
	axis := p.layout.Axis
	fp := lp.frames
	frame := fp.monthFrame(m, origin)

	months := p.content.Months()
	if m == months.Lower {
		v := axis.minOf(frame) - axis.leading(fp.margins)
		lp.snap.MinimumScrollOffset = &v
	}
	if m == months.Upper {
		v := axis.maxOf(frame) + axis.trailing(fp.margins)
		lp.snap.MaximumScrollOffset = &v
	}

	if axis.maxOf(frame) <= axis.minOf(lp.extended) || axis.minOf(frame) >= axis.maxOf(lp.extended) {
		return frame
	}

	lp.snap.MonthFrames[m] = frame
	header := fp.headerFrame(origin)
	lp.snap.MonthHeaderFrames[m] = header
	lp.add(MonthHeader(m), header)

	if !p.layout.pinsDaysOfWeek() {
		for pos := DayOfWeekPosition(0); pos < NumberOfDaysInWeek; pos++ {
			lp.add(DayOfWeekHeader(m, pos), fp.dayOfWeekFrame(origin, pos))
		}
	}

	cal := p.content.Calendar
	last := cal.LastDate(m).Day()
	for n := 1; n <= last; n++ {
		d := Day{Month: m, Day: n}
		if !p.content.Days.Contains(d) {
			continue
		}
		f := fp.dayFrame(d, origin)
		lp.snap.DayFrames[d] = f
		lp.add(DayItem(d), f)
	}
	return frame
}

func (lp *layoutPass) add(t ItemType, frame Rect) {
	if frame.Intersects(lp.extended) {
		lp.snap.VisibleItems = append(lp.snap.VisibleItems, LayoutItem{Type: t, Frame: frame})
	}
}

func (lp *layoutPass) addPinnedDaysOfWeek() {
	if !lp.provider.layout.pinsDaysOfWeek() {
		return
	}
	for pos := DayOfWeekPosition(0); pos < NumberOfDaysInWeek; pos++ {
		lp.snap.VisibleItems = append(lp.snap.VisibleItems, LayoutItem{
			Type:  PinnedDayOfWeekHeader(pos),
			Frame: lp.frames.pinnedDayOfWeekFrame(lp.snap.Bounds, pos),
		})
	}
}

// addDayRanges adds one item per configured range with at least one laid-out
// day; its frame is the union of those days' frames.
func (lp *layoutPass) addDayRanges() {
	for _, r := range lp.provider.content.DayRanges {
		days := lp.snap.daysIn(r)
		if len(days) == 0 {
			continue
		}
		frame := days[0].Frame
		for _, df := range days[1:] {
			frame = frame.Union(df.Frame)
		}
		lp.add(DayRangeItem(r), frame)
	}
}

// addOverlays adds free overlays covering the viewport whose location was laid out.
func (lp *layoutPass) addOverlays() {
	for _, loc := range lp.provider.content.Overlays {
		if _, ok := lp.snap.locationFrame(loc); !ok {
			continue
		}
		lp.snap.VisibleItems = append(lp.snap.VisibleItems, LayoutItem{
			Type:  OverlayItem(loc),
			Frame: lp.snap.Bounds,
		})
	}
}
