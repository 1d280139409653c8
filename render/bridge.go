package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ToColorful converts tcell.Color to colorful.Color
// Treats ColorDefault as the standard background color
func ToColorful(c tcell.Color) colorful.Color {
	if c == tcell.ColorDefault {
		c = RgbBackground
	}
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// FromColorful converts colorful.Color to tcell.Color, clamping out-of-gamut values
func FromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend mixes two colors in Lab space, t=0 yields from and t=1 yields to
func Blend(from, to tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return FromColorful(ToColorful(from).BlendLab(ToColorful(to), t))
}

// ShadeRamp returns n colors evenly spaced from start to end in Lab space
func ShadeRamp(start, end tcell.Color, n int) []tcell.Color {
	if n <= 0 {
		return nil
	}
	ramp := make([]tcell.Color, n)
	if n == 1 {
		ramp[0] = end
		return ramp
	}
	a, b := ToColorful(start), ToColorful(end)
	for i := 1; i < n-1; i++ {
		ramp[i] = FromColorful(a.BlendLab(b, float64(i)/float64(n-1)))
	}
	ramp[0], ramp[n-1] = start, end
	return ramp
}
