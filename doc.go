/*
Package calendarview provides a virtualized, infinitely scrolling calendar
engine. It computes which month headers, day-of-week headers, days, day
ranges, and overlays are visible, hands out reusable views for them, and
drives scrolling, paging, and animated scroll-to-item.

# Overview

The engine never lays out the whole date range. It keeps a single anchor
item, measures outward from it until the viewport plus an overscan margin is
covered, and derives everything else (content boundaries, the centermost
item, the next anchor) from that walk. Scrolling happens on a large virtual
content area that is quietly re-centered when the offset drifts too far, so
ranges of any length scroll without precision loss.

Rendering is left to the host. Engine.Layout returns draw instructions with
viewport-relative frames; the backend/opengl and backend/terminal packages
turn them into pixels or terminal cells.

# Quick Start

	cal := calendarview.NewGregorian()
	engine := calendarview.New(calendarview.Content{
	    Calendar: cal,
	    Days:     calendarview.NewDayRange(cal.Day(2024, time.January, 1), cal.Day(2024, time.December, 31)),
	}, calendarview.WithInitialMonth(cal.Month(2024, time.May), calendarview.Centered()))

	// Frame loop
	for running {
	    engine.Tick(elapsed)
	    result := engine.Layout(calendarview.Viewport{Size: size})
	    renderer.DrawLayout(result, size, &style)
	}

# Items

Every visible thing is a LayoutItem: an ItemType plus a frame in content
coordinates. Month headers, day-of-week headers, and days are laid out on a
per-month grid; day ranges span the union of their visible days; overlays
cover the viewport and point at a day or month header. FrameMetrics controls
the grid geometry and MonthsLayout chooses between stacked vertical months
and side-by-side horizontal months with optional paging.

# Views

Content descriptors map each item to a tag, a comparable config, and per-item
content. Views are pooled by (tag, config); a view keeps its item across
frames while the item stays visible, and released views are handed to new
items before anything is created. Register factories with a ViewRegistry or
use the built-in BasicView.

# Scrolling

	engine.ScrollBy(delta)                       // wheel
	engine.BeginDragging(); engine.DragBy(d)     // touch or mouse drag
	engine.EndDragging(velocity)                 // fling, snapped when paging
	engine.ScrollToMonth(m, pos, animated)       // programmatic
	engine.ScrollToDay(d, pos, animated)

Animated scrolls step toward the target each Tick; any manual scroll cancels
them.

# Logging

The engine logs view creation and anchor changes at debug level through a
log/slog logger. Logging is disabled until SetLogger is called.
*/
package calendarview
