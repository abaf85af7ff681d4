package calendarview

import (
	"fmt"
	"time"
)

// Standard view tags used when the host leaves a descriptor callback unset.
const (
	TagMonthHeader = "monthHeader"
	TagDayOfWeek   = "dayOfWeek"
	TagDay         = "day"
	TagDayRange    = "dayRange"
	TagOverlay     = "overlay"
)

// ViewDifferentiator decides whether two views are interchangeable.
// Config must be a comparable value; views are only reused between items
// with equal differentiators.
type ViewDifferentiator struct {
	Tag    string
	Config any
}

// ItemDescriptor describes the view for one item: the type tag selecting a
// ViewFactory, the invariant view configuration, and the per-item content.
type ItemDescriptor struct {
	Tag     string
	Config  any
	Content any
}

// Differentiator returns the reuse key of the descriptor.
func (d ItemDescriptor) Differentiator() ViewDifferentiator {
	return ViewDifferentiator{Tag: d.Tag, Config: d.Config}
}

// DayContent is the default content of a day item.
type DayContent struct {
	Day     Day
	Enabled bool
}

// DayFrame pairs a day with its frame.
type DayFrame struct {
	Day   Day
	Frame Rect
}

// DayRangeLayoutContext is passed to Content.DayRangeItem.
// Day frames are relative to Frame's origin.
type DayRangeLayoutContext struct {
	Range DayRange
	Frame Rect
	Days  []DayFrame
}

// OverlayLayoutContext is passed to Content.OverlayItem.
// LocationFrame is relative to the overlay frame, which covers the viewport.
type OverlayLayoutContext struct {
	Location      OverlaidLocation
	LocationFrame Rect
}

// Content describes what the calendar shows. Only Calendar and Days are
// required; unset callbacks produce descriptors with the standard tags, a
// nil Config, and the item's value as Content (DayContent for days).
type Content struct {
	Calendar Calendar
	// Days is the visible date range. Months at either end are shown whole,
	// but only days inside the range get day items.
	Days DayRange

	MonthHeader func(m Month) ItemDescriptor
	// DayOfWeek receives a nil month for pinned headers.
	DayOfWeek func(m *Month, weekday time.Weekday) ItemDescriptor
	Day       func(d Day) ItemDescriptor

	DayRanges    []DayRange
	DayRangeItem func(ctx DayRangeLayoutContext) ItemDescriptor

	Overlays    []OverlaidLocation
	OverlayItem func(ctx OverlayLayoutContext) ItemDescriptor

	// DayEnabled reports day availability. Nil means every day is enabled.
	DayEnabled func(d Day) bool
}

func (c *Content) validate() {
	if c.Calendar == nil {
		panic("calendarview: content has no calendar")
	}
	if c.Days.Lower.After(c.Days.Upper) {
		panic(fmt.Sprintf("calendarview: invalid content range %s...%s", c.Days.Lower, c.Days.Upper))
	}
	id := c.Calendar.Identifier()
	if c.Days.Lower.Month.Calendar != id || c.Days.Upper.Month.Calendar != id {
		panic(fmt.Sprintf("calendarview: content range does not belong to calendar %q", id))
	}
}

// Months returns the range of months shown.
func (c *Content) Months() MonthRange {
	return c.Days.Months()
}

// IsDayEnabled consults the host's availability signal.
func (c *Content) IsDayEnabled(d Day) bool {
	if c.DayEnabled == nil {
		return true
	}
	return c.DayEnabled(d)
}

// IsDayRangeEnabled reports whether every day of r is inside the content
// range and enabled.
func (c *Content) IsDayRangeEnabled(r DayRange) bool {
	if !c.Days.Contains(r.Lower) || !c.Days.Contains(r.Upper) {
		return false
	}
	for d := r.Lower; !d.After(r.Upper); d = c.Calendar.AddDays(d, 1) {
		if !c.IsDayEnabled(d) {
			return false
		}
	}
	return true
}

// descriptor builds the descriptor for a visible item.
func (c *Content) descriptor(item LayoutItem, snap *VisibleItemsSnapshot) ItemDescriptor {
	t := item.Type
	switch t.Kind {
	case KindMonthHeader:
		if c.MonthHeader != nil {
			return c.MonthHeader(t.Month)
		}
		return ItemDescriptor{Tag: TagMonthHeader, Content: t.Month}
	case KindDayOfWeekHeader:
		weekday := c.Calendar.WeekdayIndex(t.Position)
		if c.DayOfWeek != nil {
			if t.Pinned {
				return c.DayOfWeek(nil, weekday)
			}
			m := t.Month
			return c.DayOfWeek(&m, weekday)
		}
		return ItemDescriptor{Tag: TagDayOfWeek, Content: weekday}
	case KindDay:
		if c.Day != nil {
			return c.Day(t.Day)
		}
		return ItemDescriptor{Tag: TagDay, Content: DayContent{Day: t.Day, Enabled: c.IsDayEnabled(t.Day)}}
	case KindDayRange:
		ctx := DayRangeLayoutContext{Range: t.Range, Frame: item.Frame}
		for _, df := range snap.daysIn(t.Range) {
			ctx.Days = append(ctx.Days, DayFrame{
				Day:   df.Day,
				Frame: df.Frame.Offset(Vec2{X: -item.Frame.X, Y: -item.Frame.Y}),
			})
		}
		if c.DayRangeItem != nil {
			return c.DayRangeItem(ctx)
		}
		return ItemDescriptor{Tag: TagDayRange, Content: ctx}
	case KindOverlay:
		loc, _ := snap.locationFrame(t.Location)
		ctx := OverlayLayoutContext{
			Location:      t.Location,
			LocationFrame: loc.Offset(Vec2{X: -item.Frame.X, Y: -item.Frame.Y}),
		}
		if c.OverlayItem != nil {
			return c.OverlayItem(ctx)
		}
		return ItemDescriptor{Tag: TagOverlay, Content: ctx}
	}
	panic(fmt.Sprintf("calendarview: unknown item kind %d", t.Kind))
}
