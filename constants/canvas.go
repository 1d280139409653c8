package constants

// Canvas Viewport (world units, y grows upward)
const (
	CanvasXMin = 0.0
	CanvasXMax = 150.0
	CanvasYMin = 0.0
	CanvasYMax = 120.0
)

// Corner Circles
const (
	CircleRadiusOuter = 20.0
	CircleRadiusInner = 15.0
)

// Anchor Rectangle
const (
	AnchorWidth  = 20.0
	AnchorHeight = 30.0
)

// Moving Rectangles
// Vertical movers are RectWidth x RectHeight; horizontal movers are rotated
const (
	RectWidth  = 15.0
	RectHeight = 20.0

	// OffsetStep is the per-tick displacement along each mover's axis
	OffsetStep = 0.8

	// OffsetLimit is half the gap between anchor and viewport, damped, minus one mover
	OffsetLimit = OffsetStep * ((CanvasYMax-AnchorHeight)/2 - RectHeight)
)

// CanvasStrokeWidth is the outline width in sub-cell pixels
const CanvasStrokeWidth = 1.0

// CanvasDotThreshold is the minimum pixel alpha (0-255) that lights a braille dot
const CanvasDotThreshold = 0x50
