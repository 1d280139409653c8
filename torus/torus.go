// Package torus rasterizes a shaded, rotating torus into a character grid.
//
// The surface is sampled as a dense point cloud over two angles, each sample
// is rotated and perspective-projected, a per-cell reciprocal depth buffer
// keeps the nearest sample, and surface luminance selects a glyph from a ramp
// ordered sparse to dense.
package torus

import (
	"math"

	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/core"
	"github.com/LoafDev/rat/render"
	"github.com/gdamore/tcell/v2"
)

const twoPi = 2 * math.Pi

// Params is the sampling, geometry and camera configuration of a torus
type Params struct {
	ThetaStep    float64 // tube angle increment
	PhiStep      float64 // revolution angle increment
	InnerRadius  float64 // R1, tube radius
	OuterRadius  float64 // R2, hole center to tube center
	Scale        float64 // K1, fixed at construction
	ViewDistance float64 // K2, camera distance along the view axis
}

// DefaultParams returns the demo geometry with Scale derived for the given grid width
func DefaultParams(width int) Params {
	return DeriveParams(Params{
		ThetaStep:    constants.TorusThetaStep,
		PhiStep:      constants.TorusPhiStep,
		InnerRadius:  constants.TorusInnerRadius,
		OuterRadius:  constants.TorusOuterRadius,
		ViewDistance: constants.TorusViewDistance,
	}, width)
}

// DeriveParams fills Scale so the torus spans 3/8 of the width per side at the initial distance
func DeriveParams(p Params, width int) Params {
	p.Scale = float64(width) * p.ViewDistance * 3 / (8 * (p.InnerRadius + p.OuterRadius))
	return p
}

// Torus owns the parameters and the output grid dimensions
type Torus struct {
	params  Params
	width   int
	height  int
	palette []tcell.Color
	phiCos  []float64
	phiSin  []float64
}

// New creates a torus with default parameters rasterizing into a width x height grid
func New(width, height int) *Torus {
	return NewWithParams(DefaultParams(width), width, height)
}

// NewWithParams creates a torus with explicit parameters; Scale is taken as given
func NewWithParams(p Params, width, height int) *Torus {
	t := &Torus{
		params:  p,
		width:   width,
		height:  height,
		palette: render.ShadeRamp(render.RgbTorusDim, render.RgbTorusBright, len(constants.TorusGlyphRamp)),
	}
	t.phiCos, t.phiSin = phiSamples(p.PhiStep)
	return t
}

// phiSamples returns cos and sin of an even number of revolution angles
// evenly spaced over [0, 2π) at roughly step apart. The set is closed under
// phi -> π-phi with cos negated and sin kept bit for bit, so a torus viewed
// at zero rotation rasterizes mirror-symmetric.
func phiSamples(step float64) (cos, sin []float64) {
	if step <= 0 {
		return nil, nil
	}
	n := max(int(math.Round(twoPi/step)), 2)
	if n%2 == 1 {
		n++
	}
	cos = make([]float64, n)
	sin = make([]float64, n)
	for k := range n {
		phi := twoPi * float64(k) / float64(n)
		cos[k], sin[k] = math.Cos(phi), math.Sin(phi)
	}

	half := n / 2
	for k := range n {
		m := (half - k + n) % n
		switch {
		case m == k:
			cos[k] = 0
		case k < m:
			cos[m], sin[m] = -cos[k], sin[k]
		}
	}
	return cos, sin
}

// PhiSamples returns the number of revolution angles sampled per tube angle
func (t *Torus) PhiSamples() int {
	return len(t.phiCos)
}

// Params returns a copy of the current parameters
func (t *Torus) Params() Params {
	return t.params
}

// Width returns the grid width
func (t *Torus) Width() int {
	return t.width
}

// Height returns the grid height
func (t *Torus) Height() int {
	return t.height
}

// ViewDistance returns the camera distance
func (t *Torus) ViewDistance() float64 {
	return t.params.ViewDistance
}

// AdjustDistance moves the camera along the view axis.
// No bounds are enforced; degenerate depths are discarded per sample.
func (t *Torus) AdjustDistance(delta float64) {
	t.params.ViewDistance += delta
}

// GlyphIndex maps luminance to a ramp index, truncating and saturating to the ramp
func GlyphIndex(luminance float64) int {
	idx := int(luminance * constants.TorusLuminanceScale)
	if idx < 0 {
		return 0
	}
	if last := len(constants.TorusGlyphRamp) - 1; idx > last {
		return last
	}
	return idx
}

// Compute rasterizes the torus rotated by pitch a and yaw b into a fresh buffer.
// Sampling, projection and shading are deterministic in (a, b, params).
func (t *Torus) Compute(a, b float64) *core.Buffer {
	p := t.params
	w, h := t.width, t.height
	out := core.NewBuffer(w, h)
	if w <= 0 || h <= 0 || p.ThetaStep <= 0 || p.PhiStep <= 0 {
		return out
	}
	zbuf := make([]float64, w*h)

	cosA, sinA := math.Cos(a), math.Sin(a)
	cosB, sinB := math.Cos(b), math.Sin(b)
	halfW, halfH := w/2, h/2

	for theta := 0.0; theta < twoPi; theta += p.ThetaStep {
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		circleX := p.OuterRadius + p.InnerRadius*cosT
		circleY := p.InnerRadius * sinT

		for k, cosP := range t.phiCos {
			sinP := t.phiSin[k]

			x := circleX*(cosB*cosP+sinA*sinB*sinP) - circleY*cosA*sinB
			y := circleX*(sinB*cosP-sinA*cosB*sinP) + circleY*cosA*cosB
			z := p.ViewDistance + cosA*circleX*sinP + circleY*sinA
			if z < constants.TorusDepthEpsilon {
				continue
			}
			rz := 1 / z

			luminance := cosP*cosT*sinB - cosA*cosT*sinP - sinA*sinT +
				cosB*(cosA*sinT-cosT*sinA*sinP)
			if luminance <= 0 {
				continue
			}

			col := halfW + int(p.Scale*rz*x)
			row := halfH - int(p.Scale*rz*y)
			if col < 0 || col >= w || row < 0 || row >= h {
				continue
			}

			idx := row*w + col
			if rz <= zbuf[idx] {
				continue
			}
			zbuf[idx] = rz
			g := GlyphIndex(luminance)
			out.SetCell(col, row, core.Cell{
				Rune:  rune(constants.TorusGlyphRamp[g]),
				Color: t.palette[g],
			})
		}
	}
	return out
}
