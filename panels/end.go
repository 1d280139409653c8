package panels

import (
	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/core"
	"github.com/LoafDev/rat/render"
	"github.com/gdamore/tcell/v2"
)

func (s *Session) handleEnd(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyTab {
		s.active.Side = s.active.Side.Other()
	}
}

// sideColor is the fill of a half: highlighted when it is the active side
func (s *Session) sideColor(side EndSide) tcell.Color {
	if s.active.Side == side {
		return render.RgbLightYellow
	}
	return render.RgbLightMagenta
}

func (s *Session) renderEnd(scr tcell.Screen, area core.Area) {
	left, right := area.SplitH(50)
	leftFill, rightFill := s.sideColor(Left), s.sideColor(Right)

	drawHalf(scr, left, halfSpec{
		title:      constants.EndLeftTitle,
		titleColor: rightFill,
		border:     render.RgbBlue,
		fill:       leftFill,
		text:       constants.EndLeftText,
		textColor:  render.RgbRed,
		sub:        constants.EndLeftSub,
		subColor:   render.RgbBlue,
	})
	drawHalf(scr, right, halfSpec{
		title:      constants.EndRightTitle,
		titleColor: leftFill,
		border:     render.RgbRed,
		fill:       rightFill,
		text:       constants.EndRightText,
		textColor:  render.RgbBlue,
		sub:        constants.EndRightSub,
		subColor:   render.RgbRed,
	})
}

type halfSpec struct {
	title      string
	titleColor tcell.Color
	border     tcell.Color
	fill       tcell.Color
	text       string
	textColor  tcell.Color
	sub        string
	subColor   tcell.Color
}

func drawHalf(scr tcell.Screen, area core.Area, h halfSpec) {
	bg := tcell.StyleDefault.Background(h.fill)
	render.Fill(scr, area, bg)
	border := render.Blend(h.border, h.fill, constants.EndBorderBlend)
	render.Box(scr, area, render.LineSingle, bg.Foreground(border))
	render.TopTitle(scr, area, h.title, render.AlignCenter, bg.Foreground(h.titleColor).Bold(true))

	lines := []render.Line{
		{{Text: h.text, Style: bg.Foreground(h.textColor).Bold(true)}},
		{{Text: h.sub, Style: bg.Foreground(h.subColor).Italic(true)}},
	}
	w, hh := render.Block(lines)
	render.DrawCentered(scr, area.Center(w, hh), lines)
}
