package calendarview

// Option configures an Engine.
type Option func(*Engine)

// DefaultDecelerationRate matches the normal deceleration of a platform
// scroll view: the velocity retained per millisecond after a fling.
const DefaultDecelerationRate = 0.998

// WithMonthsLayout sets the scroll axis and month arrangement.
func WithMonthsLayout(layout MonthsLayout) Option {
	return func(e *Engine) { e.layout = layout }
}

// WithFrameMetrics sets month geometry.
func WithFrameMetrics(metrics FrameMetrics) Option {
	return func(e *Engine) { e.metrics = metrics }
}

// WithOverscan sets how far beyond the viewport items are laid out.
func WithOverscan(overscan float64) Option {
	return func(e *Engine) { e.overscan = overscan }
}

// WithContentExtent sets the logical scroll-axis content length.
func WithContentExtent(extent float64) Option {
	return func(e *Engine) { e.contentExtent = extent }
}

// WithScrollToItemSpeed sets the animated scroll speed in units per second.
func WithScrollToItemSpeed(speed float64) Option {
	return func(e *Engine) { e.scrollSpeed = speed }
}

// WithDecelerationRate sets how quickly flings lose speed. Values outside
// (0, 1) keep the default.
func WithDecelerationRate(rate float64) Option {
	return func(e *Engine) {
		if rate > 0 && rate < 1 {
			e.decelerationRate = rate
		}
	}
}

// WithViewRegistry sets the registry used to build views. The default
// builds a BasicView for each standard tag.
func WithViewRegistry(registry *ViewRegistry) Option {
	return func(e *Engine) { e.registry = registry }
}

// WithInitialMonth sets the month shown by the first layout pass.
// The default is the first content month at the leading edge.
func WithInitialMonth(m Month, position ScrollPosition) Option {
	return func(e *Engine) {
		t := MonthTarget(m, position)
		e.initial = &t
	}
}

// WithInitialDay sets the day shown by the first layout pass.
func WithInitialDay(d Day, position ScrollPosition) Option {
	return func(e *Engine) {
		t := DayTarget(d, position)
		e.initial = &t
	}
}
