package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/calendarview"
)

// WheelStep is the number of cells one wheel notch scrolls.
const WheelStep = 3.0

// Controller turns tcell events into engine calls.
type Controller struct {
	engine *calendarview.Engine
	screen tcell.Screen
	today  *calendarview.Day
}

// NewController creates a controller for engine. today, when set, is the
// target of the 't' key.
func NewController(screen tcell.Screen, engine *calendarview.Engine, today *calendarview.Day) *Controller {
	return &Controller{engine: engine, screen: screen, today: today}
}

// HandleEvent applies ev and reports whether the program should keep running.
func (c *Controller) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev)
	case *tcell.EventMouse:
		switch buttons := ev.Buttons(); {
		case buttons&tcell.WheelUp != 0, buttons&tcell.WheelLeft != 0:
			c.engine.ScrollBy(-WheelStep)
		case buttons&tcell.WheelDown != 0, buttons&tcell.WheelRight != 0:
			c.engine.ScrollBy(WheelStep)
		}
	case *tcell.EventResize:
		c.screen.Sync()
		c.engine.SetNeedsLayout()
	}
	return true
}

func (c *Controller) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp, tcell.KeyLeft:
		c.engine.ScrollBy(-1)
	case tcell.KeyDown, tcell.KeyRight:
		c.engine.ScrollBy(1)
	case tcell.KeyPgUp:
		c.stepMonth(-1)
	case tcell.KeyPgDn:
		c.stepMonth(1)
	case tcell.KeyHome:
		content := c.engine.Content()
		c.engine.ScrollToMonth(content.Months().Lower, calendarview.FirstFullyVisible(0), true)
	case tcell.KeyEnd:
		content := c.engine.Content()
		c.engine.ScrollToMonth(content.Months().Upper, calendarview.LastFullyVisible(0), true)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k', 'h':
			c.engine.ScrollBy(-1)
		case 'j', 'l':
			c.engine.ScrollBy(1)
		case 't':
			if c.today != nil && c.engine.Content().Days.Contains(*c.today) {
				c.engine.ScrollToDay(*c.today, calendarview.Centered(), true)
			}
		}
	}
	return true
}

// stepMonth animates to the month n months from the centered one.
func (c *Controller) stepMonth(n int) {
	snap := c.engine.Snapshot()
	if snap == nil {
		return
	}
	content := c.engine.Content()
	current, ok := snap.CentermostItem.Type.MonthOf()
	if !ok {
		return
	}
	target := content.Calendar.AddMonths(current, n)
	if !content.Months().Contains(target) {
		return
	}
	c.engine.ScrollToMonth(target, calendarview.FirstFullyVisible(0), true)
}
