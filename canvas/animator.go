// Package canvas drives the bouncing-rectangle scene: an oscillation phase
// shared by four movers, the vector scene composed around it, and braille
// rasterization of that scene into a character grid.
package canvas

import (
	"math"

	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/engine"
)

// Direction is the oscillation direction of the movers
type Direction int

const (
	Growing Direction = iota
	Shrinking
)

func (d Direction) String() string {
	switch d {
	case Growing:
		return "growing"
	case Shrinking:
		return "shrinking"
	default:
		return "unknown"
	}
}

// MoverCount is the number of moving rectangles
const MoverCount = 4

// moverAxes are the per-mover displacement per phase unit: up, down, right, left
var moverAxes = [MoverCount][2]float64{
	{0, constants.OffsetStep},
	{0, -constants.OffsetStep},
	{constants.OffsetStep, 0},
	{-constants.OffsetStep, 0},
}

// MaxPhase is the number of unit steps from rest to the offset limit
func MaxPhase() int {
	// Epsilon absorbs float error in limit/step for exact multiples
	return int(math.Floor(constants.OffsetLimit/constants.OffsetStep + 1e-9))
}

// Animator owns the oscillation phase of the four movers.
// All offsets are views of a single integer phase, so they move in lock-step
// and can never leave [0, OffsetLimit].
type Animator struct {
	phase    int
	maxPhase int
	dir      Direction
	enabled  bool

	// OnFlip is called after every direction change, if set
	OnFlip func(Direction)
}

// NewAnimator returns an animator at rest, growing, with automatic animation off
func NewAnimator() *Animator {
	return &Animator{maxPhase: MaxPhase()}
}

// Phase returns the current phase in [0, MaxPhase]
func (a *Animator) Phase() int {
	return a.phase
}

// Direction returns the current oscillation direction
func (a *Animator) Direction() Direction {
	return a.dir
}

// Enabled reports whether automatic animation is on
func (a *Animator) Enabled() bool {
	return a.enabled
}

// Toggle flips automatic animation
func (a *Animator) Toggle() {
	a.enabled = !a.enabled
}

// Offset returns the displacement of mover i
func (a *Animator) Offset(i int) [2]float64 {
	p := float64(a.phase)
	return [2]float64{moverAxes[i][0] * p, moverAxes[i][1] * p}
}

// Offsets returns the displacement of every mover
func (a *Animator) Offsets() [MoverCount][2]float64 {
	var out [MoverCount][2]float64
	for i := range out {
		out[i] = a.Offset(i)
	}
	return out
}

// Tick applies one unit step in the current direction and flips at the bounds
func (a *Animator) Tick() {
	a.settle()
	if a.dir == Growing {
		a.phase++
	} else {
		a.phase--
	}
	a.settle()
}

// Step moves all movers by one unit immediately, only while automatic
// animation is off. Movement is clamped to the range; the direction flag and
// any tick gate are left alone. Returns true if the step was accepted.
func (a *Animator) Step(dir Direction) bool {
	if a.enabled {
		return false
	}
	switch dir {
	case Growing:
		if a.phase < a.maxPhase {
			a.phase++
		}
	case Shrinking:
		if a.phase > 0 {
			a.phase--
		}
	}
	return true
}

// Update advances one tick through the gate while automatic animation is on
func (a *Animator) Update(gate *engine.TickGate) bool {
	if !a.enabled {
		return false
	}
	return gate.Poll(a.Tick)
}

// settle clamps the phase and turns around at either bound
func (a *Animator) settle() {
	switch {
	case a.phase >= a.maxPhase:
		a.phase = a.maxPhase
		a.setDirection(Shrinking)
	case a.phase <= 0:
		a.phase = 0
		a.setDirection(Growing)
	}
}

func (a *Animator) setDirection(d Direction) {
	if a.dir == d {
		return
	}
	a.dir = d
	if a.OnFlip != nil {
		a.OnFlip(d)
	}
}
