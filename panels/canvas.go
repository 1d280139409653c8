package panels

import (
	"log"

	"github.com/LoafDev/rat/canvas"
	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/core"
	"github.com/LoafDev/rat/render"
	"github.com/gdamore/tcell/v2"
)

func (s *Session) handleCanvas(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		s.animator.Step(canvas.Growing)
	case tcell.KeyDown:
		s.animator.Step(canvas.Shrinking)
	case tcell.KeyTab:
		s.animator.Toggle()
		log.Printf("canvas: animation enabled=%v", s.animator.Enabled())
	}
}

func (s *Session) renderCanvas(scr tcell.Screen, area core.Area) {
	s.animator.Update(s.animGate)

	inner := area.Inset(1)
	shapes := canvas.Scene(s.animator.Offsets())
	render.DrawBuffer(scr, inner, canvas.Rasterize(shapes, inner.Width, inner.Height), base())

	st := base().Foreground(render.RgbWhite)
	state := "frozen"
	if s.animator.Enabled() {
		state = "animating"
	}
	render.Box(scr, area, render.LineRounded, st)
	render.TopTitle(scr, area, constants.CanvasTitle, render.AlignLeft, st)
	render.BottomTitle(scr, area, state, render.AlignLeft, st.Foreground(render.RgbLightMagenta))
	render.BottomTitle(scr, area, constants.CanvasHint, render.AlignRight, st.Italic(true))
}
