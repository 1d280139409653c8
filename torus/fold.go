package torus

import (
	"strings"

	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/core"
)

// rampIndex returns the ramp position of r, -1 for empty or unknown glyphs
func rampIndex(r rune) int {
	if r == 0 {
		return -1
	}
	return strings.IndexRune(constants.TorusGlyphRamp, r)
}

// Fold merges each pair of rows into one so a square grid displays with
// terminal cells twice as tall as wide. The denser glyph of a pair wins;
// on a tie the upper row is kept.
func Fold(buf *core.Buffer) *core.Buffer {
	w, h := buf.Width(), buf.Height()
	out := core.NewBuffer(w, (h+1)/2)
	for y := 0; y < out.Height(); y++ {
		upper := buf.Row(2 * y)
		lower := buf.Row(2*y + 1)
		for x := 0; x < w; x++ {
			c := upper[x]
			if lower != nil && rampIndex(lower[x].Rune) > rampIndex(c.Rune) {
				c = lower[x]
			}
			out.SetCell(x, y, c)
		}
	}
	return out
}
