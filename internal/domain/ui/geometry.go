package ui

// Size is a width/height pair in screen pixels
type Size struct {
	Width  float64
	Height float64
}

// Rect is a position plus extent. (0,0) is the top-left corner of the viewport.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Thickness is a four-sided margin
type Thickness struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Uniform returns a Thickness with the same value on every side
func Uniform(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Clamp returns a copy with negative sides replaced by zero
func (t Thickness) Clamp() Thickness {
	return Thickness{
		Left:   max(0, t.Left),
		Top:    max(0, t.Top),
		Right:  max(0, t.Right),
		Bottom: max(0, t.Bottom),
	}
}

// Horizontal returns Left + Right
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns Top + Bottom
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// IsZero reports whether all four sides are zero
func (t Thickness) IsZero() bool {
	return t.Left == 0 && t.Top == 0 && t.Right == 0 && t.Bottom == 0
}

// Deflate shrinks the size by the margin. Extents never go below zero.
func (s Size) Deflate(t Thickness) Size {
	return Size{
		Width:  max(0, s.Width-t.Horizontal()),
		Height: max(0, s.Height-t.Vertical()),
	}
}

// Inflate grows the size by the margin. Extents never go below zero.
func (s Size) Inflate(t Thickness) Size {
	return Size{
		Width:  max(0, s.Width+t.Horizontal()),
		Height: max(0, s.Height+t.Vertical()),
	}
}

// Deflate moves the origin inward by the leading sides and shrinks the extent.
func (r Rect) Deflate(t Thickness) Rect {
	return Rect{
		X:      r.X + t.Left,
		Y:      r.Y + t.Top,
		Width:  max(0, r.Width-t.Horizontal()),
		Height: max(0, r.Height-t.Vertical()),
	}
}

// Inflate moves the origin outward by the leading sides and grows the extent.
func (r Rect) Inflate(t Thickness) Rect {
	return Rect{
		X:      r.X - t.Left,
		Y:      r.Y - t.Top,
		Width:  max(0, r.Width+t.Horizontal()),
		Height: max(0, r.Height+t.Vertical()),
	}
}

// Size returns the extent of the rect
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x-coordinate of the right edge (exclusive)
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive)
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// IsEmpty reports whether the rect has no area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rect.
// Left and top edges are inside; right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether other lies entirely within r
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}
