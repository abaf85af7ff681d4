package calendarview

import "log/slog"

// DefaultContentExtent is the logical content length along the scroll axis.
// It is large enough to feel unbounded; the offset is re-centered long
// before either end is reached.
const DefaultContentExtent = 10_000_000.0

// ScrollMetricsMutator translates the engine's logical scroll model into
// ScrollSurface state for one axis. Every mutation runs with scroll
// observers silenced.
type ScrollMetricsMutator struct {
	surface       *ScrollSurface
	axis          Axis
	contentExtent float64
	initialized   bool

	minimum, maximum *float64 // Known boundaries, nil while unbounded
}

// NewScrollMetricsMutator creates a mutator for surface. A non-positive
// extent uses DefaultContentExtent.
func NewScrollMetricsMutator(surface *ScrollSurface, axis Axis, contentExtent float64) *ScrollMetricsMutator {
	if contentExtent <= 0 {
		contentExtent = DefaultContentExtent
	}
	return &ScrollMetricsMutator{
		surface:       surface,
		axis:          axis,
		contentExtent: contentExtent,
	}
}

// Axis returns the scroll axis.
func (m *ScrollMetricsMutator) Axis() Axis { return m.axis }

// ContentExtent returns the logical content length.
func (m *ScrollMetricsMutator) ContentExtent() float64 { return m.contentExtent }

// Offset returns the current offset along the scroll axis.
func (m *ScrollMetricsMutator) Offset() float64 {
	return m.axis.main(m.surface.Offset)
}

// Boundaries returns the known minimum and maximum scroll offsets.
func (m *ScrollMetricsMutator) Boundaries() (minimum, maximum *float64) {
	return m.minimum, m.maximum
}

// SetUpInitialMetrics sizes the content to the logical extent and parks the
// offset at its midpoint. Later calls do nothing.
func (m *ScrollMetricsMutator) SetUpInitialMetrics() {
	if m.initialized {
		return
	}
	m.initialized = true
	m.surface.PerformWithoutNotifying(func() {
		s := m.surface
		if m.axis == Horizontal {
			s.ContentSize.X = m.contentExtent
			s.Offset.X = m.contentExtent / 2
			s.ContentInset.Left, s.ContentInset.Right = 0, 0
		} else {
			s.ContentSize.Y = m.contentExtent
			s.Offset.Y = m.contentExtent / 2
			s.ContentInset.Top, s.ContentInset.Bottom = 0, 0
		}
	})
}

// UpdateSizePerpendicularToScrollAxis matches the non-scrolling content
// dimension to the viewport. The scroll-axis extent is untouched.
func (m *ScrollMetricsMutator) UpdateSizePerpendicularToScrollAxis(viewportSize Vec2) {
	m.surface.PerformWithoutNotifying(func() {
		s := m.surface
		s.Size = viewportSize
		if m.axis == Horizontal {
			s.ContentSize.Y = viewportSize.Y
		} else {
			s.ContentSize.X = viewportSize.X
		}
	})
}

// UpdateScrollBoundaries sets the leading inset to cancel the content before
// minimum and the trailing inset to cancel the content after maximum. A nil
// boundary restores the unbounded default of zero. The offset never changes.
func (m *ScrollMetricsMutator) UpdateScrollBoundaries(minimum, maximum *float64) {
	m.minimum = copyFloat(minimum)
	m.maximum = copyFloat(maximum)
	m.applyInsets()
}

func (m *ScrollMetricsMutator) applyInsets() {
	leading, trailing := 0.0, 0.0
	if m.minimum != nil {
		leading = -*m.minimum
	}
	if m.maximum != nil {
		trailing = *m.maximum - m.contentExtent
	}
	m.surface.PerformWithoutNotifying(func() {
		s := m.surface
		if m.axis == Horizontal {
			s.ContentInset.Left, s.ContentInset.Right = leading, trailing
		} else {
			s.ContentInset.Top, s.ContentInset.Bottom = leading, trailing
		}
	})
}

// ApplyOffset adds delta to the offset along the scroll axis.
func (m *ScrollMetricsMutator) ApplyOffset(delta float64) {
	if delta == 0 {
		return
	}
	m.surface.PerformWithoutNotifying(func() {
		m.surface.Offset = m.surface.Offset.Add(m.axis.vec(delta))
	})
}

// LoopOffsetIfNeeded re-centers the coordinate space once the offset leaves
// the middle half of the content extent. The offset, the anchor, and any known
// boundaries move by the same delta, so nothing moves on screen. It returns
// the anchor expressed in the new coordinates.
func (m *ScrollMetricsMutator) LoopOffsetIfNeeded(anchor LayoutItem) LayoutItem {
	offset := m.Offset()
	if offset >= m.contentExtent*0.25 && offset <= m.contentExtent*0.75 {
		return anchor
	}

	delta := m.contentExtent/2 - offset
	m.ApplyOffset(delta)
	if m.minimum != nil {
		v := *m.minimum + delta
		m.minimum = &v
	}
	if m.maximum != nil {
		v := *m.maximum + delta
		m.maximum = &v
	}
	m.applyInsets()

	Logger().Debug("calendarview: looped scroll offset",
		slog.Float64("from", offset),
		slog.Float64("delta", delta),
		slog.String("anchor", anchor.Type.String()))

	anchor.Frame = anchor.Frame.Offset(m.axis.vec(delta))
	return anchor
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
