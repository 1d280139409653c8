package canvas

import (
	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/core"
	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
)

// Braille cell geometry: each character cell holds a 2x4 dot matrix
const (
	DotsPerCellX = 2
	DotsPerCellY = 4
	brailleBase  = 0x2800
)

// brailleBits maps a dot position [row][col] within a cell to its code point bit
var brailleBits = [DotsPerCellY][DotsPerCellX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Rasterize strokes shapes onto a sub-cell pixmap of cols*2 x rows*4 dots,
// folds lit dots into braille cells and tints each cell with the color of the
// last shape that lit a dot in it. World bounds stretch to fill the grid.
func Rasterize(shapes []Shape, cols, rows int) *core.Buffer {
	if cols <= 0 || rows <= 0 {
		return core.NewBuffer(0, 0)
	}
	out := core.NewBuffer(cols, rows)

	pw, ph := cols*DotsPerCellX, rows*DotsPerCellY
	dc := gg.NewContext(pw, ph)
	defer dc.Close()
	dc.SetLineWidth(constants.CanvasStrokeWidth)
	dc.SetRGB(1, 1, 1)

	m := newViewport(pw, ph)
	dots := make([]rune, cols*rows)
	tints := make([]tcell.Color, cols*rows)

	for _, s := range shapes {
		dc.Clear()
		m.trace(dc, s)
		if err := dc.Stroke(); err != nil {
			continue
		}

		pix := dc.ResizeTarget().Data()
		x0, y0, x1, y1 := m.bounds(s, pw, ph)
		for py := y0; py < y1; py++ {
			row := py * pw
			for px := x0; px < x1; px++ {
				if pix[(row+px)*4+3] < constants.CanvasDotThreshold {
					continue
				}
				cell := (py/DotsPerCellY)*cols + px/DotsPerCellX
				dots[cell] |= brailleBits[py%DotsPerCellY][px%DotsPerCellX]
				tints[cell] = s.Color
			}
		}
	}

	for i, d := range dots {
		if d == 0 {
			continue
		}
		out.SetCell(i%cols, i/cols, core.Cell{Rune: brailleBase + d, Color: tints[i]})
	}
	return out
}

// viewport maps world coordinates to pixmap pixels, flipping y
type viewport struct {
	sx, sy float64
}

func newViewport(pw, ph int) viewport {
	return viewport{
		sx: float64(pw) / (constants.CanvasXMax - constants.CanvasXMin),
		sy: float64(ph) / (constants.CanvasYMax - constants.CanvasYMin),
	}
}

func (v viewport) point(x, y float64) (float64, float64) {
	return (x - constants.CanvasXMin) * v.sx, (constants.CanvasYMax - y) * v.sy
}

// trace appends the outline of s to the current path
func (v viewport) trace(dc *gg.Context, s Shape) {
	switch s.Kind {
	case ShapeCircle:
		cx, cy := v.point(s.X, s.Y)
		dc.DrawEllipse(cx, cy, s.Radius*v.sx, s.Radius*v.sy)
	case ShapeRect:
		// Top-left in pixel space is the world top-left corner
		px, py := v.point(s.X, s.Y+s.Height)
		dc.DrawRectangle(px, py, s.Width*v.sx, s.Height*v.sy)
	}
}

// bounds returns the pixel window touched by s, padded for the stroke and clipped
func (v viewport) bounds(s Shape, pw, ph int) (x0, y0, x1, y1 int) {
	var minX, minY, maxX, maxY float64
	switch s.Kind {
	case ShapeCircle:
		cx, cy := v.point(s.X, s.Y)
		rx, ry := s.Radius*v.sx, s.Radius*v.sy
		minX, minY, maxX, maxY = cx-rx, cy-ry, cx+rx, cy+ry
	case ShapeRect:
		minX, minY = v.point(s.X, s.Y+s.Height)
		maxX, maxY = v.point(s.X+s.Width, s.Y)
	}
	pad := constants.CanvasStrokeWidth + 1
	x0 = clampInt(int(minX-pad), 0, pw)
	y0 = clampInt(int(minY-pad), 0, ph)
	x1 = clampInt(int(maxX+pad)+1, 0, pw)
	y1 = clampInt(int(maxY+pad)+1, 0, ph)
	return x0, y0, x1, y1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
