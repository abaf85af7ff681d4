// Example shows a scrolling calendar in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Scroll with the wheel, drag to fling, and use the arrow, Home, and End
// keys to jump between months.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/calendarview"
	"github.com/go-theft-auto/calendarview/backend/opengl"
)

const (
	windowWidth  = 480
	windowHeight = 720
	windowTitle  = "calendarview example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("calendar renderer: %w", err)
	}
	defer renderer.Delete()

	cal := calendarview.NewGregorian()
	today := cal.DayContaining(time.Now())
	start := cal.Day(2020, time.January, 1)
	end := cal.Day(2030, time.December, 31)

	engine := calendarview.New(calendarview.Content{
		Calendar:   cal,
		Days:       calendarview.NewDayRange(start, end),
		DayRanges:  []calendarview.DayRange{calendarview.NewDayRange(today, cal.AddDays(today, 4))},
		Overlays:   []calendarview.OverlaidLocation{calendarview.DayLocation(today)},
		DayEnabled: func(d calendarview.Day) bool { return !d.Before(today) },
	},
		calendarview.WithMonthsLayout(calendarview.MonthsLayout{Axis: calendarview.Vertical, PinDaysOfWeekToTop: true}),
		calendarview.WithInitialMonth(today.Month, calendarview.Centered()),
	)
	input := opengl.NewGLFWInputAdapter(window, engine)
	style := calendarview.DefaultStyle()
	margins := calendarview.EdgeInsets{Top: 8, Left: 8, Bottom: 8, Right: 8}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		engine.Tick(now - last)
		last = now

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		vp := input.Viewport(margins)
		result := engine.Layout(vp)
		if err := renderer.DrawLayout(result, vp.Size, &style); err != nil {
			return err
		}

		window.SwapBuffers()
	}

	return nil
}
