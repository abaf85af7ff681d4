package calendarview

import "math"

// ScrollSurface is the concrete state of a scrollable container: content
// size, offset, and content insets, in the same terms as a platform scroll
// view. The reachable offset range along an axis is
// [-leadingInset, contentExtent + trailingInset - viewportExtent].
type ScrollSurface struct {
	ContentSize  Vec2
	Offset       Vec2
	ContentInset EdgeInsets
	Size         Vec2 // Viewport size

	observers  []func(*ScrollSurface)
	suppressed int
}

// NewScrollSurface creates an empty surface.
func NewScrollSurface() *ScrollSurface {
	return &ScrollSurface{}
}

// OnScroll registers fn to be called whenever the offset changes outside a
// PerformWithoutNotifying block.
func (s *ScrollSurface) OnScroll(fn func(*ScrollSurface)) {
	s.observers = append(s.observers, fn)
}

// PerformWithoutNotifying runs fn with scroll observers silenced. Blocks may nest.
func (s *ScrollSurface) PerformWithoutNotifying(fn func()) {
	s.suppressed++
	defer func() { s.suppressed-- }()
	fn()
}

// Notifying reports whether observers would currently be called.
func (s *ScrollSurface) Notifying() bool {
	return s.suppressed == 0
}

func (s *ScrollSurface) notify() {
	if s.suppressed > 0 {
		return
	}
	for _, fn := range s.observers {
		fn(s)
	}
}

// SetOffset moves the viewport without clamping.
func (s *ScrollSurface) SetOffset(offset Vec2) {
	if offset == s.Offset {
		return
	}
	s.Offset = offset
	s.notify()
}

// ScrollBy moves the viewport by delta, clamped to the reachable range.
// This is the entry point for user-driven scrolling (wheel, drag).
func (s *ScrollSurface) ScrollBy(delta Vec2) {
	s.SetOffset(s.Clamp(s.Offset.Add(delta)))
}

// MinimumOffset returns the smallest reachable offset.
func (s *ScrollSurface) MinimumOffset() Vec2 {
	return Vec2{X: -s.ContentInset.Left, Y: -s.ContentInset.Top}
}

// MaximumOffset returns the largest reachable offset. It never falls below
// MinimumOffset, so content shorter than the viewport rests at its start.
func (s *ScrollSurface) MaximumOffset() Vec2 {
	minOffset := s.MinimumOffset()
	return Vec2{
		X: math.Max(minOffset.X, s.ContentSize.X+s.ContentInset.Right-s.Size.X),
		Y: math.Max(minOffset.Y, s.ContentSize.Y+s.ContentInset.Bottom-s.Size.Y),
	}
}

// Clamp limits offset to the reachable range.
func (s *ScrollSurface) Clamp(offset Vec2) Vec2 {
	minOffset, maxOffset := s.MinimumOffset(), s.MaximumOffset()
	return Vec2{
		X: clampf(offset.X, minOffset.X, maxOffset.X),
		Y: clampf(offset.Y, minOffset.Y, maxOffset.Y),
	}
}

// Bounds returns the viewport in content coordinates.
func (s *ScrollSurface) Bounds() Rect {
	return Rect{X: s.Offset.X, Y: s.Offset.Y, W: s.Size.X, H: s.Size.Y}
}

// clampf clamps a value to a range.
func clampf(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
