package calendarview

// MonthsLayout selects how months are arranged along the scroll axis.
type MonthsLayout struct {
	Axis Axis

	// PinDaysOfWeekToTop keeps a single day-of-week row at the top of the
	// viewport instead of one row per month. Vertical layouts only.
	PinDaysOfWeekToTop bool

	// MaximumFullyVisibleMonths is the number of months sharing the viewport
	// width when day sizes are derived. Horizontal layouts only; values below
	// 1 are treated as 1. Fractions let the next month peek in.
	MaximumFullyVisibleMonths float64

	// Paging configures fling snapping. Horizontal layouts only.
	Paging PagingBehavior
}

// VerticalMonths stacks months top to bottom.
func VerticalMonths() MonthsLayout {
	return MonthsLayout{Axis: Vertical}
}

// HorizontalMonths places months side by side, with maxFullyVisible months
// sharing the viewport width.
func HorizontalMonths(maxFullyVisible float64) MonthsLayout {
	return MonthsLayout{
		Axis:                      Horizontal,
		MaximumFullyVisibleMonths: maxFullyVisible,
		Paging: PagingBehavior{
			Enabled:         true,
			RestingPosition: RestAtLeadingEdgeOfEachMonth,
			RestingAffinity: RestAdjacentToPrevious,
		},
	}
}

func (l MonthsLayout) pinsDaysOfWeek() bool {
	return l.Axis == Vertical && l.PinDaysOfWeekToTop
}

func (l MonthsLayout) fullyVisibleMonths() float64 {
	if l.MaximumFullyVisibleMonths < 1 {
		return 1
	}
	return l.MaximumFullyVisibleMonths
}

// RestingPosition chooses the page grid used when paging.
type RestingPosition int

const (
	// RestAtLeadingEdgeOfEachMonth pages one month (plus spacing) at a time.
	RestAtLeadingEdgeOfEachMonth RestingPosition = iota
	// RestAtIncrementsOfCalendarWidth pages by the visible calendar width.
	RestAtIncrementsOfCalendarWidth
)

// RestingAffinity chooses which page a fling settles on.
type RestingAffinity int

const (
	// RestAdjacentToPrevious moves at most one page per fling.
	RestAdjacentToPrevious RestingAffinity = iota
	// RestClosestToTarget settles on the page nearest the projected offset.
	RestClosestToTarget
)

// PagingBehavior configures snap-to-page flings.
type PagingBehavior struct {
	Enabled         bool
	RestingPosition RestingPosition
	RestingAffinity RestingAffinity
}
