package geom

import (
	"fmt"
	"math"
)

// Circle is a circle described by its center and diameter.
//
// The center point is inside any circle with a positive diameter; points at
// exactly half the diameter from the center are outside.
type Circle struct {
	Center   Point
	Diameter float64
}

// NewCircle creates a circle.
func NewCircle(center Point, diameter float64) Circle {
	return Circle{Center: center, Diameter: diameter}
}

// Radius returns half the diameter.
func (c Circle) Radius() float64 {
	return c.Diameter / 2
}

// Location returns the top-left corner of the bounding square.
func (c Circle) Location() Point {
	return Point{X: c.Center.X - c.Diameter/2, Y: c.Center.Y - c.Diameter/2}
}

// Bounds returns the bounding square.
func (c Circle) Bounds() Rectangle {
	loc := c.Location()
	return Rectangle{X: loc.X, Y: loc.Y, Width: c.Diameter, Height: c.Diameter}
}

// IsEmpty reports whether c is centered on the origin with zero diameter.
func (c Circle) IsEmpty() bool {
	return c == Circle{}
}

// Contains reports whether p lies strictly inside c.
func (c Circle) Contains(p Point) bool {
	return c.within(p)
}

// Intersects reports whether c overlaps r. The point of r nearest to the
// center is tested against the circle.
func (c Circle) Intersects(r Rectangle) bool {
	return c.within(r.ClosestPoint(c.Center))
}

func (c Circle) within(p Point) bool {
	if !(c.Diameter > 0) {
		return false
	}
	r := c.Diameter / 2
	return c.Center.DistanceSquared(p) < r*r
}

// Offset returns c moved by v.
func (c Circle) Offset(v Point) Circle {
	c.Center = c.Center.Add(v)
	return c
}

// Inflate returns c with its diameter grown by twice amount and its center
// shifted by -amount on both axes, mirroring the origin shift of
// Rectangle.Inflate.
func (c Circle) Inflate(amount float64) Circle {
	c.Center = c.Center.Sub(Point{X: amount, Y: amount})
	c.Diameter += amount * 2
	return c
}

// Outline approximates the circle with a closed polygon of the given number
// of vertices. It returns nil for circles that contain nothing or when
// segments is below 3.
func (c Circle) Outline(segments int) []Point {
	if !(c.Diameter > 0) {
		return nil
	}
	return ellipseOutline(c.Center, c.Diameter/2, c.Diameter/2, segments)
}

func (c Circle) String() string {
	return fmt.Sprintf("{Center:%v Diameter:%g}", c.Center, c.Diameter)
}

func ellipseOutline(center Point, rx, ry float64, segments int) []Point {
	if segments < 3 {
		return nil
	}
	pts := make([]Point, segments)
	step := 2 * math.Pi / float64(segments)
	for i := range pts {
		a := step * float64(i)
		pts[i] = Point{X: center.X + rx*math.Cos(a), Y: center.Y + ry*math.Sin(a)}
	}
	return pts
}
