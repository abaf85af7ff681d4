package calendarview

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float64 // Top-left position
	W, H float64 // Width and height
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.MaxX() && r.MaxX() > other.X &&
		r.Y < other.MaxY() && r.MaxY() > other.Y
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Offset returns the rectangle translated by d.
func (r Rect) Offset(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Inset returns the rectangle shrunk by the given insets.
func (r Rect) Inset(in EdgeInsets) Rect {
	return Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// EdgeInsets describes distances from each edge of a rectangle.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

// Axis selects the scrolling direction.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// main returns the component of v along the axis.
func (a Axis) main(v Vec2) float64 {
	if a == Horizontal {
		return v.X
	}
	return v.Y
}

// vec builds a vector with value along the axis and zero across it.
func (a Axis) vec(value float64) Vec2 {
	if a == Horizontal {
		return Vec2{X: value}
	}
	return Vec2{Y: value}
}

// minOf returns the leading edge of r along the axis.
func (a Axis) minOf(r Rect) float64 {
	if a == Horizontal {
		return r.X
	}
	return r.Y
}

// maxOf returns the trailing edge of r along the axis.
func (a Axis) maxOf(r Rect) float64 {
	if a == Horizontal {
		return r.MaxX()
	}
	return r.MaxY()
}

// extentOf returns the size of r along the axis.
func (a Axis) extentOf(r Rect) float64 {
	if a == Horizontal {
		return r.W
	}
	return r.H
}

// leading returns the inset at the leading edge along the axis.
func (a Axis) leading(in EdgeInsets) float64 {
	if a == Horizontal {
		return in.Left
	}
	return in.Top
}

// trailing returns the inset at the trailing edge along the axis.
func (a Axis) trailing(in EdgeInsets) float64 {
	if a == Horizontal {
		return in.Right
	}
	return in.Bottom
}

// outset grows r along the axis by amount on both ends.
func (a Axis) outset(r Rect, amount float64) Rect {
	if a == Horizontal {
		return Rect{X: r.X - amount, Y: r.Y, W: r.W + 2*amount, H: r.H}
	}
	return Rect{X: r.X, Y: r.Y - amount, W: r.W, H: r.H + 2*amount}
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorBlue        uint32 = 0xFFFF0000
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}
