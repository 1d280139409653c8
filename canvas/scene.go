package canvas

import (
	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/render"
	"github.com/gdamore/tcell/v2"
)

// ShapeKind selects the outline drawn for a Shape
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is an outline in world coordinates (y grows upward)
type Shape struct {
	Kind   ShapeKind
	X, Y   float64 // circle center, or rectangle bottom-left corner
	Width  float64 // rectangle only
	Height float64 // rectangle only
	Radius float64 // circle only
	Color  tcell.Color
}

// Circle returns a circle outline
func Circle(x, y, r float64, color tcell.Color) Shape {
	return Shape{Kind: ShapeCircle, X: x, Y: y, Radius: r, Color: color}
}

// Rect returns a rectangle outline anchored at its bottom-left corner
func Rect(x, y, w, h float64, color tcell.Color) Shape {
	return Shape{Kind: ShapeRect, X: x, Y: y, Width: w, Height: h, Color: color}
}

// cornerCenters are the viewport corners hosting the concentric circles
var cornerCenters = [4][2]float64{
	{constants.CanvasXMin, constants.CanvasYMin},
	{constants.CanvasXMax, constants.CanvasYMin},
	{constants.CanvasXMin, constants.CanvasYMax},
	{constants.CanvasXMax, constants.CanvasYMax},
}

// moverRest is the resting rectangle of each mover: x, y, width, height.
// Order matches moverAxes: above, below, right of, left of the anchor.
var moverRest = [MoverCount][4]float64{
	{
		(constants.CanvasXMax - constants.RectWidth) / 2,
		(constants.CanvasYMax + constants.AnchorHeight) / 2,
		constants.RectWidth, constants.RectHeight,
	},
	{
		(constants.CanvasXMax - constants.RectWidth) / 2,
		(constants.CanvasYMax-constants.AnchorHeight)/2 - constants.RectHeight,
		constants.RectWidth, constants.RectHeight,
	},
	{
		(constants.CanvasXMax + constants.AnchorWidth) / 2,
		(constants.CanvasYMax - constants.RectWidth) / 2,
		constants.RectHeight, constants.RectWidth,
	},
	{
		(constants.CanvasXMax-constants.AnchorWidth)/2 - constants.RectHeight,
		(constants.CanvasYMax - constants.RectWidth) / 2,
		constants.RectHeight, constants.RectWidth,
	},
}

// Scene composes the full outline list in paint order: each corner's outer
// then inner circle, the anchor rectangle, then the four displaced movers
func Scene(offsets [MoverCount][2]float64) []Shape {
	shapes := make([]Shape, 0, len(cornerCenters)*2+1+MoverCount)

	for _, c := range cornerCenters {
		shapes = append(shapes,
			Circle(c[0], c[1], constants.CircleRadiusOuter, render.RgbLightRed),
			Circle(c[0], c[1], constants.CircleRadiusInner, render.RgbLightYellow),
		)
	}

	shapes = append(shapes, Rect(
		(constants.CanvasXMax-constants.AnchorWidth)/2,
		(constants.CanvasYMax-constants.AnchorHeight)/2,
		constants.AnchorWidth, constants.AnchorHeight,
		render.RgbYellow,
	))

	for i, r := range moverRest {
		shapes = append(shapes, Rect(
			r[0]+offsets[i][0], r[1]+offsets[i][1], r[2], r[3],
			render.RgbLightMagenta,
		))
	}
	return shapes
}
