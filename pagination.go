package calendarview

import "math"

// velocityThreshold is the speed below which a fling counts as a release
// without momentum.
const velocityThreshold = 1e-3

// ClosestPageIndex returns the index of the page nearest offset, rounding
// halves away from zero. A non-positive page size yields page 0.
func ClosestPageIndex(offset, pageSize float64) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Round(offset / pageSize))
}

// ClosestPageOffset returns the page offset a fling should settle on.
//
// Without velocity it is the page nearest targetOffset. With velocity it is
// the page next to the one containing touchUpOffset in the direction of
// travel, or the page nearest targetOffset when that lies further still.
// A non-positive page size returns targetOffset unchanged.
func ClosestPageOffset(targetOffset, touchUpOffset, velocity, pageSize float64) float64 {
	if pageSize <= 0 {
		return targetOffset
	}
	target := ClosestPageIndex(targetOffset, pageSize)
	page := target
	switch {
	case math.Abs(velocity) < velocityThreshold:
	case velocity > 0:
		page = max(int(math.Floor(touchUpOffset/pageSize))+1, target)
	default:
		page = min(int(math.Ceil(touchUpOffset/pageSize))-1, target)
	}
	return float64(page) * pageSize
}

// AdjacentPageOffset returns the offset of the page one step from
// previousPageIndex in the direction of velocity, or of the projected target
// when there is no velocity. When the projected target lies behind the
// previous page relative to that direction, the previous page is kept. A
// non-positive page size returns targetOffset unchanged.
func AdjacentPageOffset(previousPageIndex int, targetOffset, velocity, pageSize float64) float64 {
	if pageSize <= 0 {
		return targetOffset
	}
	previous := float64(previousPageIndex) * pageSize

	var dir float64
	if math.Abs(velocity) >= velocityThreshold {
		dir = math.Copysign(1, velocity)
	} else if d := targetOffset - previous; d != 0 {
		dir = math.Copysign(1, d)
	}

	switch {
	case dir == 0:
		return previous
	case dir > 0 && targetOffset < previous, dir < 0 && targetOffset > previous:
		return previous
	}
	return previous + dir*pageSize
}
