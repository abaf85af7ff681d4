package calendarview

import (
	"fmt"
	"math"
)

// AnimationState is the result of one animation tick.
type AnimationState int

const (
	AnimationContinue AnimationState = iota
	AnimationFinished
)

func (s AnimationState) String() string {
	if s == AnimationFinished {
		return "finished"
	}
	return "continue"
}

// DefaultScrollToItemSpeed is the animated scroll speed in units per second.
const DefaultScrollToItemSpeed = 4000.0

// finishThreshold is the remaining distance below which an animation ends.
const finishThreshold = 1.0

// TargetKind selects what a ScrollTarget points at.
type TargetKind int

const (
	TargetMonth TargetKind = iota
	TargetDay
	TargetOffset
)

// ScrollTarget is the destination of a programmatic scroll.
type ScrollTarget struct {
	Kind     TargetKind
	Month    Month
	Day      Day
	Offset   float64 // Scroll-axis offset for TargetOffset
	Position ScrollPosition
}

// MonthTarget scrolls month m to position.
func MonthTarget(m Month, position ScrollPosition) ScrollTarget {
	return ScrollTarget{Kind: TargetMonth, Month: m, Position: position}
}

// DayTarget scrolls day d to position.
func DayTarget(d Day, position ScrollPosition) ScrollTarget {
	return ScrollTarget{Kind: TargetDay, Day: d, Position: position}
}

// OffsetTarget scrolls to a raw scroll-axis offset.
func OffsetTarget(offset float64) ScrollTarget {
	return ScrollTarget{Kind: TargetOffset, Offset: offset}
}

func (t ScrollTarget) String() string {
	switch t.Kind {
	case TargetMonth:
		return "month " + t.Month.String()
	case TargetDay:
		return "day " + t.Day.String()
	default:
		return fmt.Sprintf("offset %.1f", t.Offset)
	}
}

// TargetRelation describes where a target lies relative to the viewport.
type TargetRelation int

const (
	// TargetBefore means the target lies before the viewport along the scroll axis.
	TargetBefore TargetRelation = iota
	// TargetAfter means the target lies after the viewport.
	TargetAfter
	// TargetLaidOut means the target's frame is known and the remaining
	// distance is exact.
	TargetLaidOut
)

// TargetLocator is what an animation ticks against.
type TargetLocator interface {
	// Locate returns the target's relation to the viewport and, for
	// TargetLaidOut, the signed distance still to scroll.
	Locate(target ScrollTarget) (TargetRelation, float64)
	// ViewportExtent returns the viewport size along the scroll axis.
	ViewportExtent() float64
	// ApplyOffset moves the viewport along the scroll axis.
	ApplyOffset(delta float64)
}

// ScrollAnimator moves the viewport toward a target over successive ticks.
// It holds no timer; the host's frame loop calls Tick.
type ScrollAnimator struct {
	target   ScrollTarget
	speed    float64
	lastDir  float64 // Direction of the previous step, 0 before the first tick
	finished bool
}

// NewScrollAnimator creates an animation toward target. A non-positive speed
// uses DefaultScrollToItemSpeed.
func NewScrollAnimator(target ScrollTarget, speed float64) *ScrollAnimator {
	if speed <= 0 {
		speed = DefaultScrollToItemSpeed
	}
	return &ScrollAnimator{target: target, speed: speed}
}

// Target returns the animation's destination.
func (a *ScrollAnimator) Target() ScrollTarget { return a.target }

// Tick advances the animation by elapsed seconds. Each step is at most
// min(viewport extent, speed*elapsed). The animation finishes once the
// remaining distance is under one unit, or as soon as the target switches
// sides of the viewport, which means the last step jumped over it.
func (a *ScrollAnimator) Tick(elapsed float64, loc TargetLocator) AnimationState {
	if a.finished {
		return AnimationFinished
	}
	extent := loc.ViewportExtent()
	if extent <= 0 || elapsed <= 0 {
		return AnimationContinue
	}
	maxStep := math.Min(extent, a.speed*elapsed)

	relation, remaining := loc.Locate(a.target)
	var dir, step float64
	switch relation {
	case TargetBefore:
		dir, step = -1, -maxStep
	case TargetAfter:
		dir, step = 1, maxStep
	default:
		if math.Abs(remaining) < finishThreshold {
			return a.finish()
		}
		dir = math.Copysign(1, remaining)
		step = clampf(remaining, -maxStep, maxStep)
	}

	if a.lastDir != 0 && dir == -a.lastDir {
		return a.finish()
	}
	a.lastDir = dir
	loc.ApplyOffset(step)
	return AnimationContinue
}

// translate shifts an offset target by delta. Item targets are located
// through the layout and need no adjustment.
func (a *ScrollAnimator) translate(delta float64) {
	if a.target.Kind == TargetOffset {
		a.target.Offset += delta
	}
}

func (a *ScrollAnimator) finish() AnimationState {
	a.finished = true
	return AnimationFinished
}
