package calendarview

// ScrollPositionKind selects where a scroll target lands in the viewport.
type ScrollPositionKind int

const (
	PositionCentered ScrollPositionKind = iota
	PositionFirstFullyVisible
	PositionLastFullyVisible
)

// ScrollPosition is the requested resting place of a scroll target.
type ScrollPosition struct {
	Kind    ScrollPositionKind
	Padding float64 // Distance from the viewport edge for the fully-visible kinds
}

// Centered centers the target in the viewport.
func Centered() ScrollPosition {
	return ScrollPosition{Kind: PositionCentered}
}

// FirstFullyVisible puts the target's leading edge padding units after the
// viewport's leading edge.
func FirstFullyVisible(padding float64) ScrollPosition {
	return ScrollPosition{Kind: PositionFirstFullyVisible, Padding: padding}
}

// LastFullyVisible puts the target's trailing edge padding units before the
// viewport's trailing edge.
func LastFullyVisible(padding float64) ScrollPosition {
	return ScrollPosition{Kind: PositionLastFullyVisible, Padding: padding}
}

// targetMin returns where the target's leading edge should sit, given the
// visible region [leading, trailing] and the target's extent.
func (p ScrollPosition) targetMin(leading, trailing, extent float64) float64 {
	switch p.Kind {
	case PositionFirstFullyVisible:
		return leading + p.Padding
	case PositionLastFullyVisible:
		return trailing - p.Padding - extent
	default:
		return (leading+trailing)/2 - extent/2
	}
}
