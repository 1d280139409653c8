package render

import (
	"strings"
	"unicode/utf8"

	"github.com/LoafDev/rat/core"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TextWidth returns the display width of s in terminal cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxWidth cells
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// DrawText writes s starting at (x, y), advancing by each rune's cell width.
// Returns the column after the last written rune.
func DrawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// Span is a styled run of text within a line
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is a sequence of spans drawn left to right
type Line []Span

// Width returns the display width of the line
func (l Line) Width() int {
	w := 0
	for _, sp := range l {
		w += TextWidth(sp.Text)
	}
	return w
}

// DrawLine writes the spans of l starting at (x, y), clipped to maxWidth cells
func DrawLine(s tcell.Screen, x, y int, l Line, maxWidth int) {
	end := x + maxWidth
	for _, sp := range l {
		for _, r := range sp.Text {
			rw := runewidth.RuneWidth(r)
			if x+rw > end {
				return
			}
			s.SetContent(x, y, r, nil, sp.Style)
			x += rw
		}
	}
}

// DrawCentered draws each line horizontally centered inside area, starting at its top row
func DrawCentered(s tcell.Screen, area core.Area, lines []Line) {
	for i, l := range lines {
		if i >= area.Height {
			return
		}
		w := min(l.Width(), area.Width)
		DrawLine(s, area.X+(area.Width-w)/2, area.Y+i, l, area.Width)
	}
}

// Block returns the width of the widest line and the line count
func Block(lines []Line) (w, h int) {
	for _, l := range lines {
		w = max(w, l.Width())
	}
	return w, len(lines)
}

// Wrap splits text into lines no wider than width, breaking on spaces.
// Words longer than width are hard-split.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curW := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		for ww > width {
			if curW > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if ww == 0 {
			continue
		}
		switch {
		case curW == 0:
			cur.WriteString(word)
			curW = ww
		case curW+1+ww <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
		default:
			flush()
			cur.WriteString(word)
			curW = ww
		}
	}
	if curW > 0 {
		flush()
	}
	return lines
}
