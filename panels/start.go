package panels

import (
	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/core"
	"github.com/LoafDev/rat/render"
	"github.com/gdamore/tcell/v2"
)

const (
	startListWidth   = 6
	startListHeight  = 10
	startListTopPart = 65
)

func (s *Session) renderStart(scr tcell.Screen, area core.Area) {
	s.listGate.Poll(func() {
		s.listIndex = (s.listIndex + 1) % len(constants.StartListItems)
	})

	st := base()
	render.Box(scr, area, render.LineSingle, st)
	render.TopTitle(scr, area, constants.StartTitle, render.AlignLeft, st.Foreground(render.RgbBlue))
	render.BottomTitle(scr, area, constants.StartHint, render.AlignRight, st.Foreground(render.RgbRed).Italic(true))

	lines := []render.Line{
		{{Text: constants.StartGreeting, Style: st.Foreground(render.RgbYellow).Bold(true)}},
		{{Text: constants.StartQuitHint, Style: st.Foreground(render.RgbWhite).Italic(true)}},
		{{Text: constants.StartListNote, Style: st.Foreground(render.RgbMagenta).Italic(true)}},
	}
	w, h := render.Block(lines)
	render.DrawCentered(scr, area.Center(w, h), lines)

	_, list := area.Center(startListWidth, startListHeight).SplitV(startListTopPart)
	s.drawList(scr, list, st)
}

// drawList draws the list entries with the highlighted one marked and green
func (s *Session) drawList(scr tcell.Screen, area core.Area, st tcell.Style) {
	symW := render.TextWidth(constants.StartListSymbol)
	body := core.Area{X: area.X + symW, Y: area.Y, Width: area.Width - symW, Height: area.Height}

	for i, item := range constants.StartListItems {
		if i >= area.Height {
			return
		}
		style := st.Foreground(render.RgbMagenta)
		if i == s.listIndex {
			style = st.Foreground(render.RgbGreen)
			render.DrawText(scr, area.X, area.Y+i, constants.StartListSymbol, style)
		}
		row := core.Area{X: body.X, Y: body.Y + i, Width: body.Width, Height: 1}
		render.DrawCentered(scr, row, []render.Line{{{Text: item, Style: style}}})
	}
}
