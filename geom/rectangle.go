package geom

import (
	"fmt"
	"image"
	"math"
)

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
//
// Point containment is half-open: the left and top edges are inside, the
// right and bottom edges are not, the same as a pixel grid.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// NewRectangle creates a rectangle from its top-left corner and size.
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Left returns the x-coordinate of the left edge.
func (r Rectangle) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rectangle) Right() float64 { return r.X + r.Width }

// Top returns the y-coordinate of the top edge.
func (r Rectangle) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 { return r.Y + r.Height }

// Location returns the top-left corner.
func (r Rectangle) Location() Point {
	return Point{X: r.X, Y: r.Y}
}

// BottomRight returns the bottom-right corner.
func (r Rectangle) BottomRight() Point {
	return Point{X: r.Right(), Y: r.Bottom()}
}

// Size returns the width and height as a vector.
func (r Rectangle) Size() Point {
	return Point{X: r.Width, Y: r.Height}
}

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether every field is zero. A zero-area rectangle placed
// away from the origin is not empty.
func (r Rectangle) IsEmpty() bool {
	return r == Rectangle{}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// excluded.
func (r Rectangle) Contains(p Point) bool {
	return r.X <= p.X && p.X < r.Right() &&
		r.Y <= p.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o is fully enclosed by r. Shared far edges
// count as enclosed.
func (r Rectangle) ContainsRect(o Rectangle) bool {
	return r.X <= o.X && o.Right() <= r.Right() &&
		r.Y <= o.Y && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o overlap with non-zero area. Rectangles
// that only share an edge do not intersect.
func (r Rectangle) Intersects(o Rectangle) bool {
	return o.X < r.Right() && r.X < o.Right() &&
		o.Y < r.Bottom() && r.Y < o.Bottom()
}

// ClosestPoint returns the point of r nearest to p, edges included.
func (r Rectangle) ClosestPoint(p Point) Point {
	return p.Clamp(r.Location(), r.BottomRight())
}

// Offset returns r moved by (dx, dy).
func (r Rectangle) Offset(dx, dy float64) Rectangle {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate returns r grown by dx on the left and right and dy on the top and
// bottom. Negative amounts shrink it.
func (r Rectangle) Inflate(dx, dy float64) Rectangle {
	r.X -= dx
	r.Y -= dy
	r.Width += dx * 2
	r.Height += dy * 2
	return r
}

// ImageRect converts r to the integer rectangle used for draw submission.
// Coordinates are truncated toward zero.
func (r Rectangle) ImageRect() image.Rectangle {
	x, y := int(r.X), int(r.Y)
	return image.Rect(x, y, x+int(r.Width), y+int(r.Height))
}

func (r Rectangle) String() string {
	return fmt.Sprintf("{X:%g Y:%g Width:%g Height:%g}", r.X, r.Y, r.Width, r.Height)
}

// Intersect returns the overlapping region of a and b, or the zero
// rectangle when they do not intersect.
func Intersect(a, b Rectangle) Rectangle {
	if !a.Intersects(b) {
		return Rectangle{}
	}
	left := math.Max(a.X, b.X)
	top := math.Max(a.Y, b.Y)
	right := math.Min(a.Right(), b.Right())
	bottom := math.Min(a.Bottom(), b.Bottom())
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Union returns the smallest rectangle enclosing both a and b.
func Union(a, b Rectangle) Rectangle {
	left := math.Min(a.X, b.X)
	top := math.Min(a.Y, b.Y)
	right := math.Max(a.Right(), b.Right())
	bottom := math.Max(a.Bottom(), b.Bottom())
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}
}
