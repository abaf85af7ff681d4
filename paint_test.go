package calendarview_test

import (
	"testing"
	"time"

	"github.com/go-theft-auto/calendarview"
)

func TestFontAtlas(t *testing.T) {
	atlas := calendarview.NewFontAtlas()

	if atlas.CellW != 7 || atlas.CellH != 13 {
		t.Fatalf("expected 7x13 cells, got %dx%d", atlas.CellW, atlas.CellH)
	}
	b := atlas.Image.Bounds()
	if b.Dx() != 16*7 || b.Dy() != 6*13 {
		t.Errorf("expected 112x78 atlas, got %dx%d", b.Dx(), b.Dy())
	}

	inked := false
	u0, v0, u1, v1 := atlas.UV('A')
	for y := int(v0 * float32(b.Dy())); y < int(v1*float32(b.Dy())); y++ {
		for x := int(u0 * float32(b.Dx())); x < int(u1*float32(b.Dx())); x++ {
			if atlas.Image.AlphaAt(x, y).A != 0 {
				inked = true
			}
		}
	}
	if !inked {
		t.Error("expected the glyph for A to be rasterized")
	}

	qu0, qv0, _, _ := atlas.UV('?')
	eu0, ev0, _, _ := atlas.UV('é')
	if qu0 != eu0 || qv0 != ev0 {
		t.Error("expected runes outside the atlas to map to '?'")
	}

	if w, h := atlas.Measure("abc", 2); w != 42 || h != 26 {
		t.Errorf("expected 42x26, got %vx%v", w, h)
	}
}

func TestDrawListBatchesByTexture(t *testing.T) {
	atlas := calendarview.NewFontAtlas()
	atlas.TextureID = 7
	dl := calendarview.AcquireDrawList()
	defer calendarview.ReleaseDrawList(dl)

	dl.AddRect(calendarview.Rect{W: 10, H: 10}, calendarview.ColorWhite)
	dl.AddRect(calendarview.Rect{W: 10, H: 10}, calendarview.ColorTransparent)
	dl.AddText(calendarview.Vec2{X: 2, Y: 2}, "ab", calendarview.ColorWhite, atlas, 1)
	dl.Finalize()

	if len(dl.VtxBuffer) != 12 || len(dl.IdxBuffer) != 18 {
		t.Fatalf("expected 12 vertices and 18 indices, got %d and %d", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	rect, text := dl.CmdBuffer[0], dl.CmdBuffer[1]
	if rect.TextureID != 0 || rect.ElemCount != 6 {
		t.Errorf("unexpected rect command %+v", rect)
	}
	if text.TextureID != 7 || text.ElemCount != 12 || text.VertexOffset != 4 || text.IndexOffset != 6 {
		t.Errorf("unexpected text command %+v", text)
	}
	if dl.IdxBuffer[text.IndexOffset] != 0 {
		t.Errorf("expected indices relative to the command, got %d", dl.IdxBuffer[text.IndexOffset])
	}
}

func TestDrawListClipRect(t *testing.T) {
	dl := calendarview.AcquireDrawList()
	defer calendarview.ReleaseDrawList(dl)

	dl.PushClipRect(calendarview.Rect{X: 10, Y: 20, W: 100, H: 50})
	dl.AddRectOutline(calendarview.Rect{X: 10, Y: 20, W: 30, H: 30}, calendarview.ColorRed, 1)
	dl.PopClipRect()
	dl.AddLine(calendarview.Vec2{}, calendarview.Vec2{X: 10}, calendarview.ColorRed, 2)
	dl.AddLine(calendarview.Vec2{}, calendarview.Vec2{}, calendarview.ColorRed, 2)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if want := [4]float32{10, 20, 110, 70}; dl.CmdBuffer[0].ClipRect != want {
		t.Errorf("expected clip %v, got %v", want, dl.CmdBuffer[0].ClipRect)
	}
	if dl.CmdBuffer[0].ElemCount != 4*6 {
		t.Errorf("expected 4 outline quads, got %d indices", dl.CmdBuffer[0].ElemCount)
	}
	if dl.CmdBuffer[1].ElemCount != 6 {
		t.Errorf("expected a single line quad, got %d indices", dl.CmdBuffer[1].ElemCount)
	}
}

func TestBasicViewLabels(t *testing.T) {
	g := calendarview.NewGregorian()
	tests := []struct {
		name     string
		content  any
		label    string
		disabled bool
	}{
		{"month", g.Month(2024, time.May), "May 2024", false},
		{"month before common era", g.Month(0, time.May), "May 1 BCE", false},
		{"weekday", time.Monday, "Mo", false},
		{"disabled day", calendarview.DayContent{Day: g.Day(2024, time.May, 7)}, "7", true},
		{"enabled day", calendarview.DayContent{Day: g.Day(2024, time.May, 8), Enabled: true}, "8", false},
		{"bare day", g.Day(2024, time.May, 9), "9", false},
		{"nothing", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &calendarview.BasicView{Disabled: true}
			v.SetContent(tt.content)
			if v.Label != tt.label {
				t.Errorf("expected label %q, got %q", tt.label, v.Label)
			}
			if v.Disabled != tt.disabled {
				t.Errorf("expected disabled %v, got %v", tt.disabled, v.Disabled)
			}
		})
	}
}

func TestPinnedRowFrame(t *testing.T) {
	g := calendarview.NewGregorian()
	pinned := calendarview.New(yearContent(g, 2024),
		calendarview.WithMonthsLayout(calendarview.MonthsLayout{Axis: calendarview.Vertical, PinDaysOfWeekToTop: true}))

	row, ok := calendarview.PinnedRowFrame(pinned.Layout(phone))
	if !ok {
		t.Fatal("expected a pinned row")
	}
	if want := (calendarview.Rect{W: 320, H: 40}); row != want {
		t.Errorf("expected pinned row %+v, got %+v", want, row)
	}

	plain := calendarview.New(yearContent(g, 2024))
	if _, ok := calendarview.PinnedRowFrame(plain.Layout(phone)); ok {
		t.Error("expected no pinned row without pinning")
	}
}

func TestPaintLayout(t *testing.T) {
	g := calendarview.NewGregorian()
	content := yearContent(g, 2024)
	content.DayRanges = []calendarview.DayRange{
		calendarview.NewDayRange(g.Day(2024, time.January, 3), g.Day(2024, time.January, 5)),
	}
	content.Overlays = []calendarview.OverlaidLocation{calendarview.DayLocation(g.Day(2024, time.January, 10))}
	e := calendarview.New(content,
		calendarview.WithMonthsLayout(calendarview.MonthsLayout{Axis: calendarview.Vertical, PinDaysOfWeekToTop: true}))
	r := e.Layout(phone)

	style := calendarview.DefaultStyle()
	atlas := calendarview.NewFontAtlas()
	atlas.TextureID = 1
	dl := calendarview.AcquireDrawList()
	defer calendarview.ReleaseDrawList(dl)

	calendarview.Paint(dl, r, phone.Size, &style, atlas)
	dl.Finalize()

	if len(dl.VtxBuffer) == 0 {
		t.Fatal("expected geometry")
	}
	for i, cmd := range dl.CmdBuffer {
		if want := [4]float32{0, 0, 320, 480}; cmd.ClipRect != want {
			t.Errorf("command %d: expected viewport clip, got %v", i, cmd.ClipRect)
		}
	}
	textured := false
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID == atlas.TextureID {
			textured = true
		}
	}
	if !textured {
		t.Error("expected text commands")
	}
}
