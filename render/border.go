package render

import (
	"github.com/LoafDev/rat/core"
	"github.com/gdamore/tcell/v2"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Align positions a title along a border edge
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Box draws a border around the edge of area
func Box(s tcell.Screen, area core.Area, line LineType, style tcell.Style) {
	if area.Width < 2 || area.Height < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]
	x0, y0 := area.X, area.Y
	x1, y1 := area.X+area.Width-1, area.Y+area.Height-1

	s.SetContent(x0, y0, chars[boxTL], nil, style)
	s.SetContent(x1, y0, chars[boxTR], nil, style)
	s.SetContent(x0, y1, chars[boxBL], nil, style)
	s.SetContent(x1, y1, chars[boxBR], nil, style)

	for x := x0 + 1; x < x1; x++ {
		s.SetContent(x, y0, chars[boxH], nil, style)
		s.SetContent(x, y1, chars[boxH], nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		s.SetContent(x0, y, chars[boxV], nil, style)
		s.SetContent(x1, y, chars[boxV], nil, style)
	}
}

// BoxFilled fills the interior with style's background, then draws the border
func BoxFilled(s tcell.Screen, area core.Area, line LineType, style tcell.Style) {
	Fill(s, area.Inset(1), style)
	Box(s, area, line, style)
}

// TopTitle writes text into the top border row, inside the corners
func TopTitle(s tcell.Screen, area core.Area, text string, align Align, style tcell.Style) {
	edgeTitle(s, area, area.Y, text, align, style)
}

// BottomTitle writes text into the bottom border row, inside the corners
func BottomTitle(s tcell.Screen, area core.Area, text string, align Align, style tcell.Style) {
	edgeTitle(s, area, area.Y+area.Height-1, text, align, style)
}

func edgeTitle(s tcell.Screen, area core.Area, y int, text string, align Align, style tcell.Style) {
	if area.Width < 3 || area.Height < 1 {
		return
	}
	avail := area.Width - 2
	text = Truncate(text, avail)
	w := TextWidth(text)

	x := area.X + 1
	switch align {
	case AlignCenter:
		x += (avail - w) / 2
	case AlignRight:
		x += avail - w
	}
	DrawText(s, x, y, text, style)
}
