package calendarview

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"
)

// Viewport is the host-supplied geometry for one layout pass.
type Viewport struct {
	Size    Vec2
	Margins EdgeInsets // Layout margins inside the viewport
}

// DrawInstruction tells the host where to draw one view.
type DrawInstruction struct {
	View       View
	Item       ItemType
	Descriptor ItemDescriptor
	Frame      Rect // Relative to the viewport's top-left corner
	ZIndex     int
}

// LayoutResult is the output of Engine.Layout.
type LayoutResult struct {
	// Instructions are sorted back to front: by ZIndex, then item order.
	Instructions []DrawInstruction
	// Reconciliation lists views created, adopted, updated, and released.
	Reconciliation Reconciliation
	Snapshot       *VisibleItemsSnapshot
}

// Engine drives a virtualized calendar. It owns the scroll surface, the
// anchor, the reuse pool, and any running animation. The host calls Layout
// once per frame, Tick while an animation runs, and the input methods as
// events arrive. An Engine is not safe for concurrent use.
type Engine struct {
	content          Content
	layout           MonthsLayout
	metrics          FrameMetrics
	overscan         float64
	contentExtent    float64
	scrollSpeed      float64
	decelerationRate float64
	registry         *ViewRegistry
	initial          *ScrollTarget

	provider *VisibleItemsProvider
	surface  *ScrollSurface
	mutator  *ScrollMetricsMutator
	reuse    *ReuseManager

	viewport    Viewport
	laidOut     bool
	needsLayout bool
	anchor      *LayoutItem
	pending     *ScrollTarget
	snapshot    VisibleItemsSnapshot
	assignments []Assignment
	result      LayoutResult

	animator        *ScrollAnimator
	dragging        bool
	dragStartOffset float64
}

// New creates an engine for content. It panics if content has no calendar
// or an inverted range.
func New(content Content, opts ...Option) *Engine {
	e := &Engine{
		content:          content,
		layout:           VerticalMonths(),
		metrics:          DefaultFrameMetrics(),
		overscan:         DefaultOverscan,
		contentExtent:    DefaultContentExtent,
		scrollSpeed:      DefaultScrollToItemSpeed,
		decelerationRate: DefaultDecelerationRate,
		surface:          NewScrollSurface(),
		needsLayout:      true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = NewBasicViewRegistry()
	}

	e.provider = NewVisibleItemsProvider(&e.content, e.layout, e.metrics, e.overscan)
	e.mutator = NewScrollMetricsMutator(e.surface, e.layout.Axis, e.contentExtent)
	e.reuse = NewReuseManager(e.registry)
	e.surface.OnScroll(func(*ScrollSurface) { e.needsLayout = true })
	return e
}

// Surface returns the scroll surface the engine drives.
func (e *Engine) Surface() *ScrollSurface { return e.surface }

// Content returns the current content.
func (e *Engine) Content() Content { return e.content }

// MonthsLayout returns the layout the engine was created with.
func (e *Engine) MonthsLayout() MonthsLayout { return e.layout }

// Snapshot returns the most recent layout snapshot, or nil before the first
// layout pass.
func (e *Engine) Snapshot() *VisibleItemsSnapshot {
	if !e.laidOut {
		return nil
	}
	return &e.snapshot
}

// Anchor returns the current anchor item.
func (e *Engine) Anchor() (LayoutItem, bool) {
	if e.anchor == nil {
		return LayoutItem{}, false
	}
	return *e.anchor, true
}

// PoolStats returns the reuse pool counters.
func (e *Engine) PoolStats() PoolStats { return e.reuse.Stats() }

// Drain empties the pool of free views and returns them.
func (e *Engine) Drain() []View { return e.reuse.Drain() }

// SetNeedsLayout forces the next Layout call to run a full pass.
func (e *Engine) SetNeedsLayout() { e.needsLayout = true }

// SetContent replaces the content. The anchor survives if it still refers to
// visible content; otherwise the next pass re-anchors near it.
func (e *Engine) SetContent(content Content) {
	e.content = content
	e.provider = NewVisibleItemsProvider(&e.content, e.layout, e.metrics, e.overscan)
	e.cancelAnimation()
	e.needsLayout = true
}

// Layout runs one layout pass for vp and returns what to draw. When nothing
// changed since the previous pass, the previous result is returned. A
// viewport with a zero dimension is ignored.
func (e *Engine) Layout(vp Viewport) LayoutResult {
	if vp.Size.X <= 0 || vp.Size.Y <= 0 {
		return e.result
	}
	if vp != e.viewport {
		e.viewport = vp
		e.needsLayout = true
	}
	if !e.needsLayout {
		return e.result
	}
	e.needsLayout = false

	e.mutator.SetUpInitialMetrics()
	e.mutator.UpdateSizePerpendicularToScrollAxis(vp.Size)

	anchor := e.resolveAnchor()
	before := e.mutator.Offset()
	anchor = e.mutator.LoopOffsetIfNeeded(anchor)
	if delta := e.mutator.Offset() - before; delta != 0 {
		e.translate(delta)
	}
	snap := e.provider.DetailsForVisibleItems(anchor, e.surface.Offset, vp.Size, vp.Margins)
	e.mutator.UpdateScrollBoundaries(snap.MinimumScrollOffset, snap.MaximumScrollOffset)

	if clamped := e.surface.Clamp(e.surface.Offset); clamped != e.surface.Offset {
		e.surface.PerformWithoutNotifying(func() { e.surface.Offset = clamped })
		snap = e.provider.DetailsForVisibleItems(anchor, clamped, vp.Size, vp.Margins)
		e.mutator.UpdateScrollBoundaries(snap.MinimumScrollOffset, snap.MaximumScrollOffset)
	}

	centermost := snap.CentermostItem
	e.anchor = &centermost
	e.snapshot = snap
	e.laidOut = true

	views := make([]VisibleView, len(snap.VisibleItems))
	for i, item := range snap.VisibleItems {
		views[i] = VisibleView{Item: item, Descriptor: e.content.descriptor(item, &e.snapshot)}
	}
	rec := e.reuse.Reconcile(views, e.assignments)
	e.assignments = rec.Assignments()

	toViewport := Vec2{X: -snap.Bounds.X, Y: -snap.Bounds.Y}
	draws := make([]DrawInstruction, 0, len(e.assignments))
	for _, a := range e.assignments {
		draws = append(draws, DrawInstruction{
			View:       a.View,
			Item:       a.Item.Type,
			Descriptor: a.Descriptor,
			Frame:      a.Item.Frame.Offset(toViewport),
			ZIndex:     a.Item.Type.ZIndex(),
		})
	}
	slices.SortFunc(draws, func(a, b DrawInstruction) int {
		if c := cmp.Compare(a.ZIndex, b.ZIndex); c != 0 {
			return c
		}
		return a.Item.Compare(b.Item)
	})

	e.result = LayoutResult{Instructions: draws, Reconciliation: rec, Snapshot: &e.snapshot}
	return e.result
}

// translate moves offsets the engine holds outside the surface by delta,
// after the coordinate space was re-centered.
func (e *Engine) translate(delta float64) {
	if e.animator != nil {
		e.animator.translate(delta)
	}
	if e.dragging {
		e.dragStartOffset += delta
	}
}

// resolveAnchor returns the anchor for this pass: a requested scroll target,
// the previous anchor, or a fallback when there is none or it went stale.
func (e *Engine) resolveAnchor() LayoutItem {
	offset := e.surface.Offset
	if e.pending != nil {
		t := *e.pending
		e.pending = nil
		if e.targetInRange(t) {
			return e.anchorFor(t, offset)
		}
		Logger().Warn("calendarview: dropping scroll target outside content", slog.String("target", t.String()))
	}
	if e.anchor != nil {
		if e.provider.ContainsAnchor(*e.anchor) {
			return *e.anchor
		}
		Logger().Debug("calendarview: discarding stale anchor", slog.String("anchor", e.anchor.Type.String()))
		m, _ := e.anchor.Type.MonthOf()
		return e.anchorFor(MonthTarget(e.nearestMonth(m), FirstFullyVisible(0)), offset)
	}
	if e.initial != nil && e.targetInRange(*e.initial) {
		return e.anchorFor(*e.initial, offset)
	}
	return e.anchorFor(MonthTarget(e.content.Months().Lower, FirstFullyVisible(0)), offset)
}

func (e *Engine) anchorFor(t ScrollTarget, offset Vec2) LayoutItem {
	vp := e.viewport
	if t.Kind == TargetDay {
		return e.provider.AnchorItemForDay(t.Day, offset, vp.Size, vp.Margins, t.Position)
	}
	return e.provider.AnchorItemForMonth(t.Month, offset, vp.Size, vp.Margins, t.Position)
}

// nearestMonth clamps m into the content range. Months from another
// calendar map to the first content month.
func (e *Engine) nearestMonth(m Month) Month {
	months := e.content.Months()
	switch {
	case m.Calendar != e.content.Calendar.Identifier():
		return months.Lower
	case m.Before(months.Lower):
		return months.Lower
	case m.After(months.Upper):
		return months.Upper
	}
	return m
}

func (e *Engine) targetInRange(t ScrollTarget) bool {
	id := e.content.Calendar.Identifier()
	switch t.Kind {
	case TargetMonth:
		return t.Month.Calendar == id && e.content.Months().Contains(t.Month)
	case TargetDay:
		return t.Day.Month.Calendar == id && e.content.Days.Contains(t.Day)
	}
	return true
}

// ScrollToMonth scrolls month m to position. Without animation the next
// layout pass shows it; with animation Tick moves toward it frame by frame.
// It panics if m is outside the content range.
func (e *Engine) ScrollToMonth(m Month, position ScrollPosition, animated bool) {
	t := MonthTarget(m, position)
	if !e.targetInRange(t) {
		panic(fmt.Sprintf("calendarview: cannot scroll to month %s outside the content range", m))
	}
	e.scrollTo(t, animated)
}

// ScrollToDay scrolls day d to position. It panics if d is outside the
// content range.
func (e *Engine) ScrollToDay(d Day, position ScrollPosition, animated bool) {
	t := DayTarget(d, position)
	if !e.targetInRange(t) {
		panic(fmt.Sprintf("calendarview: cannot scroll to day %s outside the content range", d))
	}
	e.scrollTo(t, animated)
}

func (e *Engine) scrollTo(t ScrollTarget, animated bool) {
	e.cancelAnimation()
	if !animated || !e.laidOut {
		e.pending = &t
		e.needsLayout = true
		return
	}
	e.animator = NewScrollAnimator(t, e.scrollSpeed)
	Logger().Debug("calendarview: scroll animation started", slog.String("target", t.String()))
}

// IsAnimating reports whether a scroll animation is running.
func (e *Engine) IsAnimating() bool { return e.animator != nil }

// Tick advances a running animation by elapsed seconds. Call it once per
// frame before Layout. It returns AnimationFinished when nothing is running.
func (e *Engine) Tick(elapsed float64) AnimationState {
	if e.animator == nil {
		return AnimationFinished
	}
	state := e.animator.Tick(elapsed, engineLocator{e})
	if state == AnimationFinished {
		e.finishAnimation()
	}
	return state
}

// finishAnimation lands exactly on the target, as a non-animated scroll would.
func (e *Engine) finishAnimation() {
	t := e.animator.Target()
	e.animator = nil
	if t.Kind == TargetOffset {
		e.setOffset(e.clampOffset(t.Offset))
	} else {
		e.pending = &t
	}
	e.needsLayout = true
	Logger().Debug("calendarview: scroll animation finished", slog.String("target", t.String()))
}

func (e *Engine) cancelAnimation() {
	if e.animator == nil {
		return
	}
	Logger().Debug("calendarview: scroll animation cancelled",
		slog.String("target", e.animator.Target().String()))
	e.animator = nil
}

// ScrollBy scrolls by delta along the scroll axis, clamped to the content.
// It cancels any running animation.
func (e *Engine) ScrollBy(delta float64) {
	e.cancelAnimation()
	if !e.laidOut {
		return
	}
	e.surface.ScrollBy(e.layout.Axis.vec(delta))
}

// BeginDragging marks the start of a user drag. It cancels any running
// animation and remembers where the drag began for paging.
func (e *Engine) BeginDragging() {
	e.cancelAnimation()
	e.dragging = true
	e.dragStartOffset = e.mutator.Offset()
}

// IsDragging reports whether a drag is in progress.
func (e *Engine) IsDragging() bool { return e.dragging }

// DragBy moves the content with the pointer. delta is the scroll offset
// change, the negation of the pointer's movement along the scroll axis.
func (e *Engine) DragBy(delta float64) {
	if !e.dragging {
		e.BeginDragging()
	}
	if !e.laidOut {
		return
	}
	e.surface.ScrollBy(e.layout.Axis.vec(delta))
}

// EndDragging ends a drag released with velocity, in scroll units per
// second. The fling is projected with the deceleration rate, snapped to a
// page when paging is enabled, and animated to its resting offset, which is
// returned.
func (e *Engine) EndDragging(velocity float64) float64 {
	e.dragging = false
	touchUp := e.mutator.Offset()
	if !e.laidOut {
		return touchUp
	}

	rate := e.decelerationRate
	projected := touchUp + velocity/1000*rate/(1-rate)
	dest := projected
	if e.layout.Paging.Enabled {
		if pageSize, origin := e.pageGeometry(); pageSize > 0 {
			switch e.layout.Paging.RestingAffinity {
			case RestClosestToTarget:
				dest = origin + ClosestPageOffset(projected-origin, touchUp-origin, velocity, pageSize)
			default:
				previous := ClosestPageIndex(e.dragStartOffset-origin, pageSize)
				dest = origin + AdjacentPageOffset(previous, projected-origin, velocity, pageSize)
			}
		}
	}
	dest = e.clampOffset(dest)

	if math.Abs(dest-touchUp) >= finishThreshold {
		e.animator = NewScrollAnimator(OffsetTarget(dest), e.scrollSpeed)
	}
	return dest
}

// pageGeometry returns the page size and the content coordinate of a page
// boundary. Pages are aligned to the leading edge of the anchor month less
// the leading margin.
func (e *Engine) pageGeometry() (pageSize, origin float64) {
	axis := e.layout.Axis
	vp := e.viewport
	switch e.layout.Paging.RestingPosition {
	case RestAtIncrementsOfCalendarWidth:
		pageSize = axis.main(vp.Size) - axis.leading(vp.Margins) - axis.trailing(vp.Margins) + e.metrics.InterMonthSpacing
	default:
		pageSize = e.provider.MonthWidth(vp.Size, vp.Margins) + e.metrics.InterMonthSpacing
	}

	origin = axis.minOf(e.snapshot.Bounds)
	if m, ok := e.snapshot.CentermostItem.Type.MonthOf(); ok {
		if frame, ok := e.snapshot.MonthFrames[m]; ok {
			origin = axis.minOf(frame) - axis.leading(vp.Margins)
		}
	}
	return pageSize, origin
}

func (e *Engine) clampOffset(v float64) float64 {
	axis := e.layout.Axis
	return axis.main(e.surface.Clamp(axis.vec(v)))
}

func (e *Engine) setOffset(v float64) {
	delta := v - e.mutator.Offset()
	e.mutator.ApplyOffset(delta)
}

// engineLocator lets animations read and move the engine's viewport.
type engineLocator struct{ e *Engine }

func (l engineLocator) ViewportExtent() float64 {
	return l.e.layout.Axis.main(l.e.viewport.Size)
}

func (l engineLocator) ApplyOffset(delta float64) {
	l.e.mutator.ApplyOffset(delta)
	l.e.needsLayout = true
}

func (l engineLocator) Locate(t ScrollTarget) (TargetRelation, float64) {
	e := l.e
	offset := e.mutator.Offset()
	if !e.laidOut {
		return TargetLaidOut, 0
	}

	var frame Rect
	var found bool
	target := t.Month
	switch t.Kind {
	case TargetOffset:
		return TargetLaidOut, e.clampOffset(t.Offset) - offset
	case TargetMonth:
		frame, found = e.snapshot.MonthFrames[t.Month]
	case TargetDay:
		frame, found = e.snapshot.DayFrames[t.Day]
		target = t.Day.Month
	}
	if found {
		desired := e.provider.DesiredOffset(frame, e.viewport.Size, e.viewport.Margins, t.Position)
		return TargetLaidOut, e.clampOffset(desired) - offset
	}

	first, _, ok := e.snapshot.MonthSpan()
	if !ok {
		return TargetLaidOut, 0
	}
	if target.Before(first) {
		return TargetBefore, 0
	}
	return TargetAfter, 0
}
