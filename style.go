package calendarview

// Spacing constants for terminal and GPU demos.
const (
	SpaceXS float64 = 2
	SpaceSM float64 = 4
	SpaceMD float64 = 8
	SpaceLG float64 = 12
)

// Style defines the colors BasicView paints with.
type Style struct {
	BackgroundColor uint32

	// Month headers
	HeaderTextColor uint32
	HeaderBgColor   uint32

	// Day-of-week headers
	WeekdayTextColor uint32
	WeekdayBgColor   uint32 // Pinned row background

	// Days
	DayTextColor     uint32
	DayDisabledColor uint32
	DayBgColor       uint32
	DayBorderColor   uint32

	// Day ranges and overlays
	RangeColor   uint32
	OverlayColor uint32

	FontScale float32
}

// DefaultStyle returns a dark theme.
func DefaultStyle() Style {
	return Style{
		BackgroundColor:  RGBA(30, 30, 36, 255),
		HeaderTextColor:  ColorWhite,
		HeaderBgColor:    ColorTransparent,
		WeekdayTextColor: ColorLightGray,
		WeekdayBgColor:   RGBA(40, 40, 48, 255),
		DayTextColor:     ColorWhite,
		DayDisabledColor: ColorGray,
		DayBgColor:       RGBA(50, 50, 60, 255),
		DayBorderColor:   ColorDarkGray,
		RangeColor:       RGBA(60, 110, 200, 160),
		OverlayColor:     RGBA(230, 180, 40, 255),
		FontScale:        1,
	}
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.BackgroundColor = RGBA(245, 245, 245, 255)
	s.HeaderTextColor = ColorBlack
	s.WeekdayTextColor = ColorDarkGray
	s.WeekdayBgColor = RGBA(230, 230, 230, 255)
	s.DayTextColor = ColorBlack
	s.DayDisabledColor = ColorLightGray
	s.DayBgColor = ColorWhite
	s.DayBorderColor = ColorLightGray
	s.RangeColor = RGBA(120, 170, 250, 140)
	return s
}
