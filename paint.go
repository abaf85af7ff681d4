package calendarview

import (
	"fmt"
	"strconv"
	"time"
)

// Painter is implemented by views that draw themselves into a DrawList.
// frame is relative to the viewport.
type Painter interface {
	Paint(dl *DrawList, frame Rect, style *Style, atlas *FontAtlas)
}

// BasicView is the built-in view for the standard tags. It keeps a text
// label derived from its content and paints a plain rendition of the item.
type BasicView struct {
	Tag      string
	Label    string
	Disabled bool
	Content  any
}

// NewBasicViewRegistry returns a registry that builds a BasicView for every
// standard tag.
func NewBasicViewRegistry() *ViewRegistry {
	r := NewViewRegistry()
	for _, tag := range []string{TagMonthHeader, TagDayOfWeek, TagDay, TagDayRange, TagOverlay} {
		r.Register(tag, ViewFactory{
			Make: func(any) View { return &BasicView{Tag: tag} },
			Update: func(v View, content any) {
				v.(*BasicView).SetContent(content)
			},
		})
	}
	return r
}

// SetContent stores content and refreshes the label.
func (v *BasicView) SetContent(content any) {
	v.Content = content
	v.Disabled = false
	switch c := content.(type) {
	case Month:
		v.Label = MonthLabel(c)
	case time.Weekday:
		v.Label = c.String()[:2]
	case DayContent:
		v.Label = strconv.Itoa(c.Day.Day)
		v.Disabled = !c.Enabled
	case Day:
		v.Label = strconv.Itoa(c.Day)
	case fmt.Stringer:
		v.Label = c.String()
	default:
		v.Label = ""
	}
}

// MonthLabel formats m as "January 2024", marking years before the common era.
func MonthLabel(m Month) string {
	name := strconv.Itoa(m.Month)
	if m.Month >= 1 && m.Month <= 12 {
		name = time.Month(m.Month).String()
	}
	if m.Era == 0 {
		return fmt.Sprintf("%s %d BCE", name, m.Year)
	}
	return fmt.Sprintf("%s %d", name, m.Year)
}

// Paint draws the view.
func (v *BasicView) Paint(dl *DrawList, frame Rect, style *Style, atlas *FontAtlas) {
	scale := style.FontScale
	if scale <= 0 {
		scale = 1
	}
	switch v.Tag {
	case TagMonthHeader:
		dl.AddRect(frame, style.HeaderBgColor)
		if atlas != nil {
			_, h := atlas.Measure(v.Label, scale)
			pos := Vec2{X: frame.X + SpaceMD, Y: frame.Center().Y - float64(h)/2}
			dl.AddText(pos, v.Label, style.HeaderTextColor, atlas, scale)
		}
	case TagDayOfWeek:
		dl.AddRect(frame, style.WeekdayBgColor)
		dl.AddTextCentered(frame, v.Label, style.WeekdayTextColor, atlas, scale)
	case TagDay:
		dl.AddRect(frame, style.DayBgColor)
		dl.AddRectOutline(frame, style.DayBorderColor, 1)
		color := style.DayTextColor
		if v.Disabled {
			color = style.DayDisabledColor
		}
		dl.AddTextCentered(frame, v.Label, color, atlas, scale)
	case TagDayRange:
		ctx, ok := v.Content.(DayRangeLayoutContext)
		if !ok {
			return
		}
		for _, d := range ctx.Days {
			dl.AddRect(d.Frame.Offset(Vec2{X: frame.X, Y: frame.Y}).Inset(EdgeInsets{Top: 2, Left: 2, Bottom: 2, Right: 2}), style.RangeColor)
		}
	case TagOverlay:
		ctx, ok := v.Content.(OverlayLayoutContext)
		if !ok {
			return
		}
		loc := ctx.LocationFrame.Offset(Vec2{X: frame.X, Y: frame.Y})
		dl.AddRectOutline(loc, style.OverlayColor, 2)
		corner := Vec2{X: loc.MaxX(), Y: loc.Y}
		dl.AddLine(corner, corner.Add(Vec2{X: SpaceLG, Y: -SpaceLG}), style.OverlayColor, 2)
	}
}

// Paint draws every instruction of result that implements Painter, back to
// front, clipped to the viewport.
func Paint(dl *DrawList, result LayoutResult, viewport Vec2, style *Style, atlas *FontAtlas) {
	dl.PushClipRect(Rect{W: viewport.X, H: viewport.Y})
	defer dl.PopClipRect()
	pinnedRow, hasPinned := PinnedRowFrame(result)
	for _, in := range result.Instructions {
		if hasPinned && in.Item.Pinned {
			dl.AddRect(pinnedRow, style.BackgroundColor)
			hasPinned = false
		}
		p, ok := in.View.(Painter)
		if !ok {
			continue
		}
		p.Paint(dl, in.Frame, style, atlas)
	}
}

// PinnedRowFrame returns the union of the pinned day-of-week header frames,
// widened to the viewport, so hosts can mask the content scrolling beneath.
func PinnedRowFrame(result LayoutResult) (Rect, bool) {
	var row Rect
	found := false
	for _, in := range result.Instructions {
		if !in.Item.Pinned {
			continue
		}
		if !found {
			row, found = in.Frame, true
			continue
		}
		row = row.Union(in.Frame)
	}
	if found && result.Snapshot != nil {
		row.X, row.W = 0, result.Snapshot.Bounds.W
	}
	return row, found
}
