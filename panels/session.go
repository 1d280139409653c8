// Package panels holds the running session: which panel is active, the state
// each panel owns, and the per-frame render and per-key input dispatch.
package panels

import (
	"log"

	"github.com/LoafDev/rat/canvas"
	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/core"
	"github.com/LoafDev/rat/engine"
	"github.com/LoafDev/rat/render"
	"github.com/LoafDev/rat/torus"
	"github.com/gdamore/tcell/v2"
)

// Cue receives audible feedback events
type Cue interface {
	Bounce(growing bool)
	Switch()
}

type nopCue struct{}

func (nopCue) Bounce(bool) {}
func (nopCue) Switch()     {}

// Session is the single owner of all panel state for one terminal session
type Session struct {
	clock  engine.TimeProvider
	cue    Cue
	active Active
	quit   bool

	// Mid
	value int

	// Start
	listIndex int
	listGate  *engine.TickGate

	// Donut
	torus    *torus.Torus
	spin     torus.Spin
	spinGate *engine.TickGate

	// Canvas
	animator *canvas.Animator
	animGate *engine.TickGate
}

// NewSession creates a session on the start panel; cue may be nil
func NewSession(clock engine.TimeProvider, cue Cue) *Session {
	if cue == nil {
		cue = nopCue{}
	}
	s := &Session{
		clock:    clock,
		cue:      cue,
		listGate: engine.NewTickGate(clock, constants.ListAdvanceInterval),
		torus:    torus.New(constants.TorusGridWidth, constants.TorusGridHeight),
		spin:     torus.NewSpin(),
		spinGate: engine.NewTickGate(clock, constants.TorusSpinInterval),
		animator: canvas.NewAnimator(),
		animGate: engine.NewTickGate(clock, constants.OffsetAnimInterval),
	}
	s.animator.OnFlip = s.onFlip
	return s
}

// Active returns the selected panel
func (s *Session) Active() Active {
	return s.active
}

// Quit reports whether the user asked to exit
func (s *Session) Quit() bool {
	return s.quit
}

// Value returns the mid panel counter
func (s *Session) Value() int {
	return s.value
}

// ListIndex returns the highlighted start panel list entry
func (s *Session) ListIndex() int {
	return s.listIndex
}

// Torus returns the donut panel rasterizer
func (s *Session) Torus() *torus.Torus {
	return s.torus
}

// Spin returns the donut rotation state
func (s *Session) Spin() torus.Spin {
	return s.spin
}

// Animator returns the canvas panel animator
func (s *Session) Animator() *canvas.Animator {
	return s.animator
}

// AnimGate returns the gate driving the canvas animation
func (s *Session) AnimGate() *engine.TickGate {
	return s.animGate
}

// HandleKey applies one key event to the session
func (s *Session) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.quit = true
		return
	case tcell.KeyRight:
		s.navigate(s.active.Next())
		return
	case tcell.KeyLeft:
		s.navigate(s.active.Prev())
		return
	}

	switch s.active.ID {
	case Start:
	case Mid:
		s.handleMid(ev)
	case Donut:
		s.handleDonut(ev)
	case Canvas:
		s.handleCanvas(ev)
	case End:
		s.handleEnd(ev)
	default:
		log.Printf("panels: key for unknown panel %d", s.active.ID)
	}
}

// Render draws the active panel over the whole screen and advances its animation
func (s *Session) Render(scr tcell.Screen) {
	w, h := scr.Size()
	area := core.Area{Width: w, Height: h}
	render.Fill(scr, area, base())

	switch s.active.ID {
	case Start:
		s.renderStart(scr, area)
	case Mid:
		s.renderMid(scr, area)
	case Donut:
		s.renderDonut(scr, area)
	case Canvas:
		s.renderCanvas(scr, area)
	case End:
		s.renderEnd(scr, area)
	default:
		log.Printf("panels: render for unknown panel %d", s.active.ID)
	}
}

func (s *Session) navigate(to Active) {
	log.Printf("panels: %s -> %s", s.active.ID, to.ID)
	s.active = to
	s.cue.Switch()
}

func (s *Session) onFlip(d canvas.Direction) {
	log.Printf("canvas: direction %s at phase %d", d, s.animator.Phase())
	s.cue.Bounce(d == canvas.Growing)
}

// base is the background style shared by every panel
func base() tcell.Style {
	return tcell.StyleDefault.Background(render.RgbBackground)
}
