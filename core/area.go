package core

// Area represents a rectangular target region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Empty reports whether the area has no drawable cells
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Inset returns the area shrunk by n cells on all sides
func (a Area) Inset(n int) Area {
	r := Area{X: a.X + n, Y: a.Y + n, Width: a.Width - 2*n, Height: a.Height - 2*n}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// Center returns a w x h area centered in a, clipped to a
func (a Area) Center(w, h int) Area {
	w = min(w, a.Width)
	h = min(h, a.Height)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Area{
		X:      a.X + (a.Width-w)/2,
		Y:      a.Y + (a.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// SplitH divides a into a left part of the given percentage and the remainder
func (a Area) SplitH(percent int) (left, right Area) {
	lw := a.Width * percent / 100
	left = Area{X: a.X, Y: a.Y, Width: lw, Height: a.Height}
	right = Area{X: a.X + lw, Y: a.Y, Width: a.Width - lw, Height: a.Height}
	return left, right
}

// SplitV divides a into a top part of the given percentage and the remainder
func (a Area) SplitV(percent int) (top, bottom Area) {
	th := a.Height * percent / 100
	top = Area{X: a.X, Y: a.Y, Width: a.Width, Height: th}
	bottom = Area{X: a.X, Y: a.Y + th, Width: a.Width, Height: a.Height - th}
	return top, bottom
}
