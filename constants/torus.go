package constants

// Torus Geometry
const (
	// TorusThetaStep is the tube angle sampling increment (radians)
	TorusThetaStep = 0.07

	// TorusPhiStep is the revolution angle sampling increment (radians)
	TorusPhiStep = 0.02

	// TorusInnerRadius is the tube radius (R1)
	TorusInnerRadius = 1.0

	// TorusOuterRadius is the distance from torus center to tube center (R2)
	TorusOuterRadius = 2.0

	// TorusViewDistance is the initial camera distance (K2)
	TorusViewDistance = 5.0

	// TorusDistanceStep is applied per up/down key press
	TorusDistanceStep = 1.0

	// TorusDepthEpsilon discards samples at or behind the camera plane
	TorusDepthEpsilon = 1e-3
)

// Torus Scene Buffer
// The grid is square in buffer cells; display folds two rows per terminal row
const (
	TorusGridWidth  = 80
	TorusGridHeight = 80
)

// Torus Rotation
const (
	// TorusSpinStepA advances pitch per spin tick
	TorusSpinStepA = 0.04

	// TorusSpinStepB advances yaw per spin tick
	TorusSpinStepB = 0.02
)

// TorusGlyphRamp orders glyphs from sparsest to densest
const TorusGlyphRamp = ".,-~:;=!*#$@"

// TorusLuminanceScale maps luminance onto a ramp index before truncation
const TorusLuminanceScale = 8.0
