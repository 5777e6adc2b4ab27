package geom

import (
	"fmt"
	"math"
)

// Direction is the orientation of an ellipse's major axis.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// Ellipse is an axis-aligned ellipse. Containment uses the focal definition:
// a point is inside when the sum of its distances to the two foci does not
// exceed the major axis.
//
// The axis lengths and foci are derived from width, height and center. They
// are computed once at construction and every method that changes one of
// those inputs returns a fully rebuilt value, so an Ellipse never carries
// stale foci.
type Ellipse struct {
	width, height float64
	center        Point

	direction    Direction
	majorAxis    float64
	minorAxis    float64
	fociDistance float64
	posFocus     Point
	negFocus     Point
}

// NewEllipse creates an ellipse of the given overall width and height
// centered at center. When width equals height the major axis is horizontal
// and both foci coincide with the center.
func NewEllipse(width, height float64, center Point) Ellipse {
	e := Ellipse{width: width, height: height, center: center}
	e.build()
	return e
}

func (e *Ellipse) build() {
	if e.width < e.height {
		e.direction = Vertical
		e.majorAxis, e.minorAxis = e.height, e.width
	} else {
		e.direction = Horizontal
		e.majorAxis, e.minorAxis = e.width, e.height
	}

	a, b := e.majorAxis/2, e.minorAxis/2
	e.fociDistance = math.Sqrt(a*a - b*b)

	offset := Point{X: e.fociDistance}
	if e.direction == Vertical {
		offset = Point{Y: e.fociDistance}
	}
	e.posFocus = e.center.Add(offset)
	e.negFocus = e.center.Sub(offset)
}

// Width returns the horizontal extent.
func (e Ellipse) Width() float64 { return e.width }

// Height returns the vertical extent.
func (e Ellipse) Height() float64 { return e.height }

// Center returns the center point.
func (e Ellipse) Center() Point { return e.center }

// Direction returns the orientation of the major axis.
func (e Ellipse) Direction() Direction { return e.direction }

// MajorAxis returns the length of the longer axis.
func (e Ellipse) MajorAxis() float64 { return e.majorAxis }

// MinorAxis returns the length of the shorter axis.
func (e Ellipse) MinorAxis() float64 { return e.minorAxis }

// FociDistance returns the distance from the center to each focus.
func (e Ellipse) FociDistance() float64 { return e.fociDistance }

// Foci returns the focus on the positive side of the major axis followed by
// the one on the negative side.
func (e Ellipse) Foci() (Point, Point) { return e.posFocus, e.negFocus }

// WithCenter returns the ellipse moved so that its center is c.
func (e Ellipse) WithCenter(c Point) Ellipse {
	return NewEllipse(e.width, e.height, c)
}

// WithSize returns the ellipse resized to width x height around the same
// center.
func (e Ellipse) WithSize(width, height float64) Ellipse {
	return NewEllipse(width, height, e.center)
}

// Offset returns the ellipse moved by v. Axis lengths are unchanged.
func (e Ellipse) Offset(v Point) Ellipse {
	e.center = e.center.Add(v)
	e.posFocus = e.posFocus.Add(v)
	e.negFocus = e.negFocus.Add(v)
	return e
}

// Location returns the top-left corner of the bounding rectangle.
func (e Ellipse) Location() Point {
	return Point{X: e.center.X - e.width/2, Y: e.center.Y - e.height/2}
}

// Bounds returns the best-fit rectangle.
func (e Ellipse) Bounds() Rectangle {
	loc := e.Location()
	return Rectangle{X: loc.X, Y: loc.Y, Width: e.width, Height: e.height}
}

// IsEmpty reports whether the ellipse has zero size and sits on the origin.
func (e Ellipse) IsEmpty() bool {
	return e.center == Point{} && e.width == 0 && e.height == 0
}

// boundaryTolerance is the relative slack on the focal sum so that points
// computed on the outline are not lost to rounding.
const boundaryTolerance = 1e-12

// Contains reports whether p lies inside or on the ellipse. A point that
// coincides with either focus is not contained; for a circular ellipse that
// is the center.
func (e Ellipse) Contains(p Point) bool {
	if !e.valid() {
		return false
	}
	dp := e.posFocus.Distance(p)
	dn := e.negFocus.Distance(p)
	return dp > 0 && dn > 0 && e.withinFocalSum(dp+dn)
}

// Intersects reports whether the ellipse overlaps r, testing the point of r
// nearest to the center. The focus exclusion of Contains does not apply: a
// rectangle covering a focus overlaps the ellipse.
func (e Ellipse) Intersects(r Rectangle) bool {
	if !e.valid() {
		return false
	}
	q := r.ClosestPoint(e.center)
	return e.withinFocalSum(e.posFocus.Distance(q) + e.negFocus.Distance(q))
}

func (e Ellipse) withinFocalSum(sum float64) bool {
	return sum <= e.majorAxis*(1+boundaryTolerance)
}

// valid reports whether both dimensions are positive. NaN fails too.
func (e Ellipse) valid() bool {
	return e.width > 0 && e.height > 0
}

// Outline approximates the ellipse with a closed polygon of the given number
// of vertices. It returns nil for degenerate ellipses or when segments is
// below 3.
func (e Ellipse) Outline(segments int) []Point {
	if !e.valid() {
		return nil
	}
	return ellipseOutline(e.center, e.width/2, e.height/2, segments)
}

func (e Ellipse) String() string {
	return fmt.Sprintf("{Center:%v Width:%g Height:%g %v}", e.center, e.width, e.height, e.direction)
}
