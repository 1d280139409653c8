package torus

import (
	"math"

	"github.com/LoafDev/rat/constants"
)

// Spin holds the rotation angles fed to Compute
type Spin struct {
	A, B    float64 // pitch and yaw, kept in [0, 2π)
	Enabled bool
}

// NewSpin returns a spin at zero rotation, rotating
func NewSpin() Spin {
	return Spin{Enabled: true}
}

// Advance steps both angles by one tick
func (s *Spin) Advance() {
	s.A = wrapAngle(s.A + constants.TorusSpinStepA)
	s.B = wrapAngle(s.B + constants.TorusSpinStepB)
}

// Toggle flips automatic rotation
func (s *Spin) Toggle() {
	s.Enabled = !s.Enabled
}

func wrapAngle(v float64) float64 {
	v = math.Mod(v, twoPi)
	if v < 0 {
		v += twoPi
	}
	return v
}
