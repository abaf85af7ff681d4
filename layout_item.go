package calendarview

import (
	"cmp"
	"fmt"
)

// ItemKind tags the variant held by an ItemType.
type ItemKind uint8

const (
	KindMonthHeader ItemKind = iota
	KindDayOfWeekHeader
	KindDay
	KindDayRange
	KindOverlay
)

func (k ItemKind) String() string {
	switch k {
	case KindMonthHeader:
		return "monthHeader"
	case KindDayOfWeekHeader:
		return "dayOfWeekHeader"
	case KindDay:
		return "day"
	case KindDayRange:
		return "dayRange"
	case KindOverlay:
		return "overlay"
	default:
		return fmt.Sprintf("ItemKind(%d)", k)
	}
}

// OverlaidLocation is the item a free overlay is attached to.
type OverlaidLocation struct {
	Kind  ItemKind // KindMonthHeader or KindDay
	Month Month    // Set for KindMonthHeader
	Day   Day      // Set for KindDay
}

// MonthHeaderLocation attaches an overlay to a month header.
func MonthHeaderLocation(m Month) OverlaidLocation {
	return OverlaidLocation{Kind: KindMonthHeader, Month: m}
}

// DayLocation attaches an overlay to a day.
func DayLocation(d Day) OverlaidLocation {
	return OverlaidLocation{Kind: KindDay, Day: d}
}

func (l OverlaidLocation) month() Month {
	if l.Kind == KindDay {
		return l.Day.Month
	}
	return l.Month
}

// ItemType is a closed variant describing what a layout item shows.
// Only the fields relevant to Kind are set, so ItemType values compare
// equal exactly when they describe the same logical item.
type ItemType struct {
	Kind     ItemKind
	Month    Month             // month header, day-of-week header (unless pinned)
	Pinned   bool              // day-of-week header pinned to the viewport edge
	Position DayOfWeekPosition // day-of-week header column
	Day      Day               // day
	Range    DayRange          // day range overlay
	Location OverlaidLocation  // free overlay
}

// MonthHeader returns the item type of m's header.
func MonthHeader(m Month) ItemType {
	return ItemType{Kind: KindMonthHeader, Month: m}
}

// DayOfWeekHeader returns the item type of a day-of-week header in m.
func DayOfWeekHeader(m Month, pos DayOfWeekPosition) ItemType {
	return ItemType{Kind: KindDayOfWeekHeader, Month: m, Position: pos}
}

// PinnedDayOfWeekHeader returns the item type of a day-of-week header pinned
// to the top of the viewport.
func PinnedDayOfWeekHeader(pos DayOfWeekPosition) ItemType {
	return ItemType{Kind: KindDayOfWeekHeader, Pinned: true, Position: pos}
}

// DayItem returns the item type of day d.
func DayItem(d Day) ItemType {
	return ItemType{Kind: KindDay, Day: d}
}

// DayRangeItem returns the item type of an overlay spanning r.
func DayRangeItem(r DayRange) ItemType {
	return ItemType{Kind: KindDayRange, Range: r}
}

// OverlayItem returns the item type of a free overlay attached to loc.
func OverlayItem(loc OverlaidLocation) ItemType {
	return ItemType{Kind: KindOverlay, Location: loc}
}

// MonthOf returns the month the item belongs to. Pinned headers have none.
func (t ItemType) MonthOf() (Month, bool) {
	switch t.Kind {
	case KindMonthHeader:
		return t.Month, true
	case KindDayOfWeekHeader:
		return t.Month, !t.Pinned
	case KindDay:
		return t.Day.Month, true
	case KindDayRange:
		return t.Range.Lower.Month, true
	case KindOverlay:
		return t.Location.month(), true
	}
	return Month{}, false
}

// anchorable reports whether the item can serve as a layout anchor.
func (t ItemType) anchorable() bool {
	switch t.Kind {
	case KindMonthHeader, KindDay:
		return true
	case KindDayOfWeekHeader:
		return !t.Pinned
	}
	return false
}

// rank orders kinds within one month.
func (t ItemType) rank() int {
	return int(t.Kind)
}

// Compare orders item types chronologically. Pinned headers come first; then
// within each month: header, day-of-week headers, days, day ranges, overlays.
func (t ItemType) Compare(other ItemType) int {
	tp := t.Kind == KindDayOfWeekHeader && t.Pinned
	op := other.Kind == KindDayOfWeekHeader && other.Pinned
	switch {
	case tp && op:
		return cmp.Compare(t.Position, other.Position)
	case tp:
		return -1
	case op:
		return 1
	}

	tm, _ := t.MonthOf()
	om, _ := other.MonthOf()
	if c := tm.Compare(om); c != 0 {
		return c
	}
	if c := cmp.Compare(t.rank(), other.rank()); c != 0 {
		return c
	}
	switch t.Kind {
	case KindDayOfWeekHeader:
		return cmp.Compare(t.Position, other.Position)
	case KindDay:
		return t.Day.Compare(other.Day)
	case KindDayRange:
		if c := t.Range.Lower.Compare(other.Range.Lower); c != 0 {
			return c
		}
		return t.Range.Upper.Compare(other.Range.Upper)
	case KindOverlay:
		if c := cmp.Compare(t.Location.Kind, other.Location.Kind); c != 0 {
			return c
		}
		return t.Location.Day.Compare(other.Location.Day)
	}
	return 0
}

// ZIndex returns the stacking order used when drawing the item.
// Day ranges sit behind days, pinned headers above them, overlays on top.
func (t ItemType) ZIndex() int {
	switch t.Kind {
	case KindDayRange:
		return 0
	case KindDayOfWeekHeader:
		if t.Pinned {
			return 2
		}
		return 1
	case KindOverlay:
		return 3
	default:
		return 1
	}
}

func (t ItemType) String() string {
	switch t.Kind {
	case KindMonthHeader:
		return fmt.Sprintf("monthHeader(%s)", t.Month)
	case KindDayOfWeekHeader:
		if t.Pinned {
			return fmt.Sprintf("pinnedDayOfWeek(%d)", t.Position)
		}
		return fmt.Sprintf("dayOfWeek(%s, %d)", t.Month, t.Position)
	case KindDay:
		return fmt.Sprintf("day(%s)", t.Day)
	case KindDayRange:
		return fmt.Sprintf("dayRange(%s...%s)", t.Range.Lower, t.Range.Upper)
	case KindOverlay:
		return fmt.Sprintf("overlay(%s)", t.Location.Kind)
	}
	return t.Kind.String()
}

// LayoutItem is an item type placed at a frame in scroll content coordinates.
type LayoutItem struct {
	Type  ItemType
	Frame Rect
}

// Compare orders layout items by their item type.
func (i LayoutItem) Compare(other LayoutItem) int {
	return i.Type.Compare(other.Type)
}
