package canvas

import (
	"testing"

	"github.com/LoafDev/rat/constants"
	"github.com/LoafDev/rat/render"
)

func TestSceneLayout(t *testing.T) {
	shapes := Scene([MoverCount][2]float64{})
	if len(shapes) != 13 {
		t.Fatalf("Expected 13 shapes, got %d", len(shapes))
	}

	for i := 0; i < 8; i += 2 {
		outer, inner := shapes[i], shapes[i+1]
		if outer.Kind != ShapeCircle || outer.Radius != constants.CircleRadiusOuter || outer.Color != render.RgbLightRed {
			t.Errorf("Shape %d: expected outer corner circle, got %+v", i, outer)
		}
		if inner.Kind != ShapeCircle || inner.Radius != constants.CircleRadiusInner || inner.Color != render.RgbLightYellow {
			t.Errorf("Shape %d: expected inner corner circle, got %+v", i+1, inner)
		}
		if outer.X != inner.X || outer.Y != inner.Y {
			t.Errorf("Shape %d: expected concentric circles", i)
		}
	}

	anchor := shapes[8]
	if anchor.Kind != ShapeRect || anchor.X != 65 || anchor.Y != 45 || anchor.Width != 20 || anchor.Height != 30 {
		t.Errorf("Expected anchor at (65,45) 20x30, got %+v", anchor)
	}

	rest := [MoverCount][4]float64{
		{67.5, 75, 15, 20},
		{67.5, 25, 15, 20},
		{85, 52.5, 20, 15},
		{45, 52.5, 20, 15},
	}
	for i, r := range rest {
		m := shapes[9+i]
		if m.Kind != ShapeRect || m.Color != render.RgbLightMagenta {
			t.Errorf("Mover %d: expected magenta rectangle, got %+v", i, m)
		}
		if m.X != r[0] || m.Y != r[1] || m.Width != r[2] || m.Height != r[3] {
			t.Errorf("Mover %d: expected %v, got (%v,%v) %vx%v", i, r, m.X, m.Y, m.Width, m.Height)
		}
	}
}

func TestSceneAppliesOffsets(t *testing.T) {
	offsets := [MoverCount][2]float64{{0, 4}, {0, -4}, {4, 0}, {-4, 0}}
	base := Scene([MoverCount][2]float64{})
	moved := Scene(offsets)

	for i := 0; i < 9; i++ {
		if base[i] != moved[i] {
			t.Errorf("Expected static shape %d unchanged", i)
		}
	}
	for i := 0; i < MoverCount; i++ {
		b, m := base[9+i], moved[9+i]
		if m.X-b.X != offsets[i][0] || m.Y-b.Y != offsets[i][1] {
			t.Errorf("Mover %d: expected shift %v, got (%v,%v)", i, offsets[i], m.X-b.X, m.Y-b.Y)
		}
	}
}

func TestMoversStayInViewportAtLimit(t *testing.T) {
	a := NewAnimator()
	for a.Direction() == Growing {
		a.Tick()
	}
	shapes := Scene(a.Offsets())
	top := shapes[9]
	if top.Y+top.Height > constants.CanvasYMax+1e-9 {
		t.Errorf("Expected top mover inside viewport at the limit, top edge %v", top.Y+top.Height)
	}
	bottom := shapes[10]
	if bottom.Y < constants.CanvasYMin-1e-9 {
		t.Errorf("Expected bottom mover inside viewport at the limit, bottom edge %v", bottom.Y)
	}
}
