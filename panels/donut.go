package panels

import (
	"fmt"
	"log"

	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/core"
	"github.com/LoafDev/rat/render"
	"github.com/LoafDev/rat/torus"
	"github.com/gdamore/tcell/v2"
)

func (s *Session) handleDonut(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		s.torus.AdjustDistance(constants.TorusDistanceStep)
	case tcell.KeyDown:
		s.torus.AdjustDistance(-constants.TorusDistanceStep)
	case tcell.KeyTab:
		s.spin.Toggle()
		log.Printf("donut: spin enabled=%v", s.spin.Enabled)
	}
}

func (s *Session) renderDonut(scr tcell.Screen, area core.Area) {
	if s.spin.Enabled {
		s.spinGate.Poll(s.spin.Advance)
	}

	frame := s.torus.Compute(s.spin.A, s.spin.B)
	render.DrawBuffer(scr, area.Inset(1), torus.Fold(frame), base())

	st := base().Foreground(render.RgbBlue)
	render.Box(scr, area, render.LineSingle, st)
	render.TopTitle(scr, area, constants.DonutTitle, render.AlignCenter, st.Italic(true))
	render.BottomTitle(scr, area, fmt.Sprintf("distance %.0f", s.torus.ViewDistance()), render.AlignLeft, st)
	render.BottomTitle(scr, area, constants.DonutHint, render.AlignRight, st.Italic(true))
}
