package canvas

import (
	"testing"

	"github.com/LoafDev/rat/render"
)

func TestRasterizeBraille(t *testing.T) {
	buf := Rasterize(Scene([MoverCount][2]float64{}), 60, 20)
	if buf.Width() != 60 || buf.Height() != 20 {
		t.Fatalf("Expected 60x20 buffer, got %dx%d", buf.Width(), buf.Height())
	}
	if buf.Count() == 0 {
		t.Fatal("Expected lit cells")
	}

	for y := 0; y < buf.Height(); y++ {
		for x, c := range buf.Row(y) {
			if c.Empty() {
				continue
			}
			if c.Rune <= brailleBase || c.Rune > brailleBase+0xFF {
				t.Fatalf("Expected braille glyph at (%d,%d), got %U", x, y, c.Rune)
			}
		}
	}
}

func TestRasterizeTracksOffsets(t *testing.T) {
	a := NewAnimator()
	rest := Rasterize(Scene(a.Offsets()), 60, 20)
	for i := 0; i < 10; i++ {
		a.Tick()
	}
	moved := Rasterize(Scene(a.Offsets()), 60, 20)

	if rest.Equal(moved) {
		t.Error("Expected displaced movers to change the raster")
	}
}

func TestRasterizeLastShapeTints(t *testing.T) {
	shapes := []Shape{
		Rect(30, 30, 90, 60, render.RgbRed),
		Rect(30, 30, 90, 60, render.RgbBlue),
	}
	buf := Rasterize(shapes, 40, 20)
	if buf.Count() == 0 {
		t.Fatal("Expected lit cells")
	}
	for y := 0; y < buf.Height(); y++ {
		for x, c := range buf.Row(y) {
			if !c.Empty() && c.Color != render.RgbBlue {
				t.Errorf("Expected last shape color at (%d,%d), got %v", x, y, c.Color)
			}
		}
	}
}

func TestRasterizeOutlineOnly(t *testing.T) {
	buf := Rasterize([]Shape{Rect(30, 30, 90, 60, render.RgbRed)}, 40, 20)
	if c, _ := buf.GetCell(20, 10); !c.Empty() {
		t.Errorf("Expected an unfilled interior, got %q", c.Rune)
	}
}

func TestRasterizeEmptyGrid(t *testing.T) {
	if buf := Rasterize(Scene([MoverCount][2]float64{}), 0, 10); buf.Count() != 0 {
		t.Error("Expected no cells for a zero-width grid")
	}
}
