// Command gen renders a few calendar configurations offscreen, captures the
// framebuffer, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/calendarview"
	"github.com/go-theft-auto/calendarview/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one calendar configuration to capture.
type screenshot struct {
	name   string // filename without extension
	width  int
	height int
	style  calendarview.Style
	engine func() *calendarview.Engine
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
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 800, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 800)
	if err != nil {
		return fmt.Errorf("calendar renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// The hidden window is larger than every screenshot, so only the
	// projection changes between captures.
	renderer.Resize(s.width, s.height)

	engine := s.engine()
	vp := calendarview.Viewport{
		Size:    calendarview.Vec2{X: float64(s.width), Y: float64(s.height)},
		Margins: calendarview.EdgeInsets{Top: 8, Left: 8, Bottom: 8, Right: 8},
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := renderer.DrawLayout(engine.Layout(vp), vp.Size, &s.style); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img)

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// flipRows turns GL's bottom-up rows into image order.
func flipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	tmp := make([]byte, img.Stride)
	for top, bot := 0, h-1; top < bot; top, bot = top+1, bot-1 {
		a := img.Pix[top*img.Stride : (top+1)*img.Stride]
		b := img.Pix[bot*img.Stride : (bot+1)*img.Stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

func buildScreenshots() []screenshot {
	cal := calendarview.NewGregorian()
	year := calendarview.Content{
		Calendar: cal,
		Days:     calendarview.NewDayRange(cal.Day(2024, time.January, 1), cal.Day(2024, time.December, 31)),
	}
	booked := year
	booked.DayRanges = []calendarview.DayRange{
		calendarview.NewDayRange(cal.Day(2024, time.May, 13), cal.Day(2024, time.May, 17)),
	}
	booked.Overlays = []calendarview.OverlaidLocation{calendarview.DayLocation(cal.Day(2024, time.May, 22))}
	booked.DayEnabled = func(d calendarview.Day) bool { return cal.Date(d).Weekday() != time.Sunday }

	may := cal.Month(2024, time.May)

	return []screenshot{
		{
			name: "vertical", width: 360, height: 640, style: calendarview.DefaultStyle(),
			engine: func() *calendarview.Engine {
				return calendarview.New(year, calendarview.WithInitialMonth(may, calendarview.Centered()))
			},
		},
		{
			name: "pinned", width: 360, height: 640, style: calendarview.DefaultStyle(),
			engine: func() *calendarview.Engine {
				return calendarview.New(year,
					calendarview.WithMonthsLayout(calendarview.MonthsLayout{Axis: calendarview.Vertical, PinDaysOfWeekToTop: true}),
					calendarview.WithInitialMonth(may, calendarview.Centered()),
				)
			},
		},
		{
			name: "horizontal", width: 720, height: 400, style: calendarview.DefaultStyle(),
			engine: func() *calendarview.Engine {
				return calendarview.New(year,
					calendarview.WithMonthsLayout(calendarview.HorizontalMonths(2)),
					calendarview.WithInitialMonth(may, calendarview.FirstFullyVisible(0)),
				)
			},
		},
		{
			name: "ranges", width: 360, height: 480, style: calendarview.LightStyle(),
			engine: func() *calendarview.Engine {
				return calendarview.New(booked, calendarview.WithInitialMonth(may, calendarview.Centered()))
			},
		},
	}
}
