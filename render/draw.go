package render

import (
	"github.com/LoafDev/rat/core"
	"github.com/gdamore/tcell/v2"
)

// Fill paints every cell of area with a space in style
func Fill(s tcell.Screen, area core.Area, style tcell.Style) {
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawBuffer copies buf centered into area, clipping whatever does not fit.
// Empty cells leave the screen untouched; cell colors override the style foreground.
func DrawBuffer(s tcell.Screen, area core.Area, buf *core.Buffer, style tcell.Style) {
	if area.Empty() || buf == nil {
		return
	}
	// Offsets are negative when the buffer is larger than the area
	offX := (area.Width - buf.Width()) / 2
	offY := (area.Height - buf.Height()) / 2

	for y := 0; y < buf.Height(); y++ {
		sy := area.Y + offY + y
		if sy < area.Y || sy >= area.Y+area.Height {
			continue
		}
		row := buf.Row(y)
		for x, c := range row {
			if c.Empty() {
				continue
			}
			sx := area.X + offX + x
			if sx < area.X || sx >= area.X+area.Width {
				continue
			}
			st := style
			if c.Color != tcell.ColorDefault {
				st = st.Foreground(c.Color)
			}
			s.SetContent(sx, sy, c.Rune, nil, st)
		}
	}
}
