package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/calendarview"
)

// WheelStep is the scroll distance of one mouse wheel notch.
const WheelStep = 40.0

// GLFWInputAdapter feeds GLFW window events to a calendarview.Engine:
// the wheel scrolls, a left-button drag pans and flings, and the keyboard
// jumps between months.
type GLFWInputAdapter struct {
	window *glfw.Window
	engine *calendarview.Engine

	pressed  bool
	lastPos  float64 // Cursor position along the scroll axis
	lastTime float64
	velocity float64 // Smoothed scroll velocity, units per second
}

// NewGLFWInputAdapter installs callbacks on window that drive engine.
func NewGLFWInputAdapter(window *glfw.Window, engine *calendarview.Engine) *GLFWInputAdapter {
	a := &GLFWInputAdapter{window: window, engine: engine}

	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Viewport returns the engine viewport for the window's framebuffer.
func (a *GLFWInputAdapter) Viewport(margins calendarview.EdgeInsets) calendarview.Viewport {
	w, h := a.window.GetFramebufferSize()
	return calendarview.Viewport{
		Size:    calendarview.Vec2{X: float64(w), Y: float64(h)},
		Margins: margins,
	}
}

func (a *GLFWInputAdapter) axis() calendarview.Axis {
	return a.engine.MonthsLayout().Axis
}

func (a *GLFWInputAdapter) along(x, y float64) float64 {
	if a.axis() == calendarview.Horizontal {
		return x
	}
	return y
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	delta := -yoff
	if a.axis() == calendarview.Horizontal && xoff != 0 {
		delta = -xoff
	}
	a.engine.ScrollBy(delta * WheelStep)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		x, y := w.GetCursorPos()
		a.pressed = true
		a.lastPos = a.along(x, y)
		a.lastTime = glfw.GetTime()
		a.velocity = 0
		a.engine.BeginDragging()
	case glfw.Release:
		if !a.pressed {
			return
		}
		a.pressed = false
		if glfw.GetTime()-a.lastTime > 0.1 {
			a.velocity = 0 // Pointer rested before release
		}
		a.engine.EndDragging(a.velocity)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if !a.pressed {
		return
	}
	pos := a.along(xpos, ypos)
	now := glfw.GetTime()
	delta := a.lastPos - pos
	if dt := now - a.lastTime; dt > 0 {
		a.velocity = 0.8*(delta/dt) + 0.2*a.velocity
	}
	a.lastPos, a.lastTime = pos, now
	a.engine.DragBy(delta)
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	snap := a.engine.Snapshot()
	if snap == nil {
		return
	}
	content := a.engine.Content()
	months := content.Months()
	current, ok := snap.CentermostItem.Type.MonthOf()
	if !ok {
		current = months.Lower
	}

	var target calendarview.Month
	switch key {
	case glfw.KeyPageDown, glfw.KeyDown, glfw.KeyRight:
		if current == months.Upper {
			return
		}
		target = content.Calendar.AddMonths(current, 1)
	case glfw.KeyPageUp, glfw.KeyUp, glfw.KeyLeft:
		if current == months.Lower {
			return
		}
		target = content.Calendar.AddMonths(current, -1)
	case glfw.KeyHome:
		target = months.Lower
	case glfw.KeyEnd:
		target = months.Upper
	default:
		return
	}
	a.engine.ScrollToMonth(target, calendarview.FirstFullyVisible(0), true)
}
