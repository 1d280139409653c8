package core

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNewBuffer(t *testing.T) {
	width, height := 80, 24
	buf := NewBuffer(width, height)

	if buf.Width() != width {
		t.Errorf("Expected width %d, got %d", width, buf.Width())
	}
	if buf.Height() != height {
		t.Errorf("Expected height %d, got %d", height, buf.Height())
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell, ok := buf.GetCell(x, y)
			if !ok {
				t.Fatalf("Expected cell at (%d, %d) to exist", x, y)
			}
			if !cell.Empty() {
				t.Errorf("Expected cell at (%d, %d) to be empty, got %q", x, y, cell.Rune)
			}
		}
	}
}

func TestGetSetCell(t *testing.T) {
	buf := NewBuffer(10, 10)
	cell := Cell{Rune: 'A', Color: tcell.ColorRed}

	if !buf.SetCell(5, 5, cell) {
		t.Error("Expected SetCell to succeed")
	}

	retrieved, ok := buf.GetCell(5, 5)
	if !ok {
		t.Error("Expected GetCell to succeed")
	}
	if retrieved != cell {
		t.Errorf("Expected %+v, got %+v", cell, retrieved)
	}
	if buf.Row(5)[5] != cell {
		t.Error("Expected Row to share storage with the buffer")
	}
}

func TestOutOfBounds(t *testing.T) {
	buf := NewBuffer(10, 5)

	tests := []struct {
		name string
		x, y int
	}{
		{"Negative X", -1, 0},
		{"Negative Y", 0, -1},
		{"X at width", 10, 0},
		{"Y at height", 0, 5},
		{"Far away", 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if buf.SetCell(tt.x, tt.y, Cell{Rune: 'X'}) {
				t.Errorf("Expected SetCell(%d, %d) to fail", tt.x, tt.y)
			}
			if _, ok := buf.GetCell(tt.x, tt.y); ok {
				t.Errorf("Expected GetCell(%d, %d) to fail", tt.x, tt.y)
			}
		})
	}

	if buf.Count() != 0 {
		t.Errorf("Expected out-of-bounds writes to leave buffer empty, got %d cells", buf.Count())
	}
}

func TestClearAndEqual(t *testing.T) {
	a := NewBuffer(4, 3)
	b := NewBuffer(4, 3)

	a.SetCell(1, 1, Cell{Rune: '@'})
	if a.Equal(b) {
		t.Error("Expected buffers with different cells to differ")
	}

	b.SetCell(1, 1, Cell{Rune: '@'})
	if !a.Equal(b) {
		t.Error("Expected buffers with same cells to be equal")
	}

	a.Clear()
	if a.Count() != 0 {
		t.Errorf("Expected empty buffer after Clear, got %d cells", a.Count())
	}
	if a.Equal(NewBuffer(3, 4)) {
		t.Error("Expected buffers with different dimensions to differ")
	}
}

func TestString(t *testing.T) {
	buf := NewBuffer(3, 2)
	buf.SetCell(0, 0, Cell{Rune: 'a'})
	buf.SetCell(2, 1, Cell{Rune: 'b'})

	expected := "a  \n  b"
	if got := buf.String(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestAreaLayout(t *testing.T) {
	a := Area{X: 0, Y: 0, Width: 20, Height: 10}

	inner := a.Inset(1)
	if inner != (Area{X: 1, Y: 1, Width: 18, Height: 8}) {
		t.Errorf("Expected inset area {1 1 18 8}, got %+v", inner)
	}

	c := a.Center(4, 2)
	if c != (Area{X: 8, Y: 4, Width: 4, Height: 2}) {
		t.Errorf("Expected centered area {8 4 4 2}, got %+v", c)
	}

	big := a.Center(40, 40)
	if big != a {
		t.Errorf("Expected oversize center to clip to %+v, got %+v", a, big)
	}

	left, right := a.SplitH(50)
	if left.Width != 10 || right.X != 10 || right.Width != 10 {
		t.Errorf("Expected even split, got %+v %+v", left, right)
	}

	if !a.Inset(15).Empty() {
		t.Error("Expected over-inset area to be empty")
	}
}
