package calendarview

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	atlasFirstRune = 32
	atlasLastRune  = 126
	atlasColumns   = 16
)

// FontAtlas is a single-channel glyph texture for printable ASCII, rendered
// from the fixed 7x13 face. GPU backends upload Image and store the texture
// handle in TextureID.
type FontAtlas struct {
	Image     *image.Alpha
	CellW     int
	CellH     int
	TextureID uint32
}

// NewFontAtlas rasterizes the atlas.
func NewFontAtlas() *FontAtlas {
	face := basicfont.Face7x13
	count := atlasLastRune - atlasFirstRune + 1
	rows := (count + atlasColumns - 1) / atlasColumns

	a := &FontAtlas{CellW: face.Advance, CellH: face.Height}
	a.Image = image.NewAlpha(image.Rect(0, 0, atlasColumns*a.CellW, rows*a.CellH))

	d := font.Drawer{Dst: a.Image, Src: image.Opaque, Face: face}
	for r := rune(atlasFirstRune); r <= atlasLastRune; r++ {
		col, row := a.cell(r)
		d.Dot = fixed.P(col*a.CellW, row*a.CellH+face.Ascent)
		d.DrawString(string(r))
	}
	return a
}

func (a *FontAtlas) cell(r rune) (col, row int) {
	idx := int(r - atlasFirstRune)
	return idx % atlasColumns, idx / atlasColumns
}

// UV returns the texture coordinates of r's cell. Runes outside the atlas
// map to '?'.
func (a *FontAtlas) UV(r rune) (u0, v0, u1, v1 float32) {
	if r < atlasFirstRune || r > atlasLastRune {
		r = '?'
	}
	col, row := a.cell(r)
	b := a.Image.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	u0 = float32(col*a.CellW) / w
	v0 = float32(row*a.CellH) / h
	u1 = float32((col+1)*a.CellW) / w
	v1 = float32((row+1)*a.CellH) / h
	return u0, v0, u1, v1
}

// Measure returns the size of text at scale.
func (a *FontAtlas) Measure(text string, scale float32) (w, h float32) {
	n := 0
	for range text {
		n++
	}
	return float32(n*a.CellW) * scale, float32(a.CellH) * scale
}
