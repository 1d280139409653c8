package render

import "github.com/gdamore/tcell/v2"

// Palette for panel chrome and text
var (
	RgbBlue         = tcell.NewRGBColor(80, 140, 255)
	RgbRed          = tcell.NewRGBColor(230, 70, 70)
	RgbGreen        = tcell.NewRGBColor(80, 200, 80)
	RgbYellow       = tcell.NewRGBColor(230, 200, 40)
	RgbWhite        = tcell.NewRGBColor(230, 230, 230)
	RgbMagenta      = tcell.NewRGBColor(200, 80, 200)
	RgbLightYellow  = tcell.NewRGBColor(255, 255, 140)
	RgbLightMagenta = tcell.NewRGBColor(255, 130, 255)
	RgbLightRed     = tcell.NewRGBColor(255, 120, 120)
	RgbBackground   = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
)

// Torus shading endpoints: sparse glyphs are dim, dense glyphs hot
var (
	RgbTorusDim    = tcell.NewRGBColor(40, 70, 140)
	RgbTorusBright = tcell.NewRGBColor(255, 220, 150)
)

// ValueColor returns the color for a signed counter: green above zero, red below
func ValueColor(v int) tcell.Color {
	switch {
	case v > 0:
		return RgbGreen
	case v < 0:
		return RgbRed
	default:
		return RgbWhite
	}
}
