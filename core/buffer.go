package core

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Cell represents a single glyph in a scene buffer
// Rune 0 is empty; Color tcell.ColorDefault defers to the drawing style
type Cell struct {
	Rune  rune
	Color tcell.Color
}

// Empty reports whether the cell holds no glyph
func (c Cell) Empty() bool {
	return c.Rune == 0
}

// Buffer is a fixed-size grid of cells stored row-major in one slice
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates an empty buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// InBounds returns true if (x, y) addresses a cell
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Clear empties every cell
func (b *Buffer) Clear() {
	clear(b.cells)
}

// GetCell returns the cell at the given position
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// SetCell sets the cell at the given position, out-of-bounds writes are dropped
func (b *Buffer) SetCell(x, y int, cell Cell) bool {
	if !b.InBounds(x, y) {
		return false
	}
	b.cells[y*b.width+x] = cell
	return true
}

// Row returns the cells of row y, sharing storage with the buffer
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.cells[y*b.width : (y+1)*b.width]
}

// Count returns the number of non-empty cells
func (b *Buffer) Count() int {
	n := 0
	for _, c := range b.cells {
		if !c.Empty() {
			n++
		}
	}
	return n
}

// Equal reports whether both buffers have identical dimensions and cells
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the glyphs row by row, empty cells as spaces
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range b.Row(y) {
			if c.Empty() {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(c.Rune)
			}
		}
	}
	return sb.String()
}
