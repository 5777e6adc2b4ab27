// Package geom implements the floating-point primitives used for pointer
// hit-testing: points, axis-aligned rectangles, circles and ellipses.
//
// Every query is a total function. Negative or NaN sizes never panic; they
// simply never contain anything.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2D position or displacement.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p*k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// LengthSquared returns the squared distance from the origin.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.LengthSquared())
}

// DistanceSquared returns |p-q|².
func (p Point) DistanceSquared(q Point) float64 {
	return p.Sub(q).LengthSquared()
}

// Distance returns |p-q|.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

// Clamp restricts each coordinate of p to the closed range [min, max].
func (p Point) Clamp(min, max Point) Point {
	return Point{X: clamp(p.X, min.X, max.X), Y: clamp(p.Y, min.Y, max.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
