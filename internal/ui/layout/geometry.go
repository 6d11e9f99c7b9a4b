package layout

// Point is a cell position on the screen.
type Point struct {
	X int
	Y int
}

// Size is a width and height in cells.
type Size struct {
	Width  int
	Height int
}

// Rectangle is an axis-aligned box with its origin at the top-left corner.
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Position returns the top-left corner.
func (r Rectangle) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive, so a zero-sized rectangle contains nothing.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersect returns the overlapping area of r and o, or a zero rectangle.
func (r Rectangle) Intersect(o Rectangle) Rectangle {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rectangle{}
	}
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Padding is the space around content.
// Uses CSS box model ordering: Top, Right, Bottom, Left (clockwise from top).
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformPadding creates padding with the same value on all sides.
func UniformPadding(size int) Padding {
	return Padding{Top: size, Right: size, Bottom: size, Left: size}
}

// HorizontalPadding creates padding on left and right sides only.
func HorizontalPadding(size int) Padding {
	return Padding{Right: size, Left: size}
}

// VerticalPadding creates padding on top and bottom sides only.
func VerticalPadding(size int) Padding {
	return Padding{Top: size, Bottom: size}
}

// SymmetricPadding creates padding with different vertical and horizontal values.
func SymmetricPadding(vertical, horizontal int) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero returns true if all padding values are zero.
func (p Padding) IsZero() bool {
	return p.Top == 0 && p.Right == 0 && p.Bottom == 0 && p.Left == 0
}

// Horizontal returns the total horizontal padding (left + right).
func (p Padding) Horizontal() int {
	return p.Left + p.Right
}

// Vertical returns the total vertical padding (top + bottom).
func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}

// Alignment specifies how content is placed inside the space given to it.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// offset returns how far content of length used should be shifted inside available.
func (a Alignment) offset(available, used int) int {
	free := available - used
	if free <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return free / 2
	case AlignEnd:
		return free
	default:
		return 0
	}
}
