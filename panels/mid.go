package panels

import (
	"strconv"

	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/core"
	"github.com/LoafDev/rat/render"
	"github.com/gdamore/tcell/v2"
)

func (s *Session) handleMid(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		s.value++
	case tcell.KeyDown:
		s.value--
	}
}

func (s *Session) renderMid(scr tcell.Screen, area core.Area) {
	st := base()
	textStyle := st.Foreground(render.RgbBlue).Bold(true)

	w := min(render.TextWidth(constants.MidText), area.Width)
	var lines []render.Line
	for _, l := range render.Wrap(constants.MidText, w) {
		lines = append(lines, render.Line{{Text: l, Style: textStyle}})
	}
	lines = append(lines, render.Line{
		{Text: "value: ", Style: st.Foreground(render.RgbMagenta).Italic(true)},
		{Text: strconv.Itoa(s.value), Style: st.Foreground(render.ValueColor(s.value)).Italic(true)},
	})
	_, h := render.Block(lines)

	frame := area.Center(w+4, h*constants.MidBoxHeightFactor)
	render.Box(scr, frame, render.LineSingle, st.Foreground(render.RgbYellow))
	render.BottomTitle(scr, frame, constants.MidHint, render.AlignRight, st.Foreground(render.RgbMagenta))

	render.DrawCentered(scr, area.Center(w, h), lines)
}
