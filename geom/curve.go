package geom

import "fmt"

// referenceSteps is the number of points kept in a curve's reference list,
// taken at t = 0, 0.1, ..., 0.9.
const referenceSteps = 10

// Curve is a Catmull-Rom segment defined by four control points. The curve
// runs from the second point to the third; the first and last only shape the
// tangents at its ends.
//
// The reference list is rebuilt whenever a control point changes, so it
// always matches Points.
type Curve struct {
	points    [4]Point
	reference []Point
}

// NewCurve creates the segment from p1 to p2 with p0 and p3 as neighbours.
func NewCurve(p0, p1, p2, p3 Point) Curve {
	c := Curve{points: [4]Point{p0, p1, p2, p3}}
	c.build()
	return c
}

func (c *Curve) build() {
	c.reference = make([]Point, referenceSteps)
	for i := range c.reference {
		c.reference[i] = c.At(float64(i) / referenceSteps)
	}
}

// Points returns the four control points.
func (c Curve) Points() [4]Point { return c.points }

// Start returns the point the curve begins at.
func (c Curve) Start() Point { return c.points[1] }

// End returns the point the curve ends at.
func (c Curve) End() Point { return c.points[2] }

// Reference returns a copy of the precomputed points at t = 0, 0.1, ..., 0.9.
func (c Curve) Reference() []Point {
	return append([]Point(nil), c.reference...)
}

// WithPoint returns a copy with control point i (0..3) replaced. An index out
// of range returns c unchanged.
func (c Curve) WithPoint(i int, p Point) Curve {
	if i < 0 || i >= len(c.points) {
		return c
	}
	pts := c.points
	pts[i] = p
	return NewCurve(pts[0], pts[1], pts[2], pts[3])
}

// WithStart returns a copy that begins at p.
func (c Curve) WithStart(p Point) Curve { return c.WithPoint(1, p) }

// WithEnd returns a copy that ends at p.
func (c Curve) WithEnd(p Point) Curve { return c.WithPoint(2, p) }

// At evaluates the curve at t. t = 0 gives Start and t = 1 gives End; values
// outside [0, 1] extrapolate.
func (c Curve) At(t float64) Point {
	return CatmullRom(c.points[0], c.points[1], c.points[2], c.points[3], t)
}

// Sample returns n+1 evenly spaced points from Start to End inclusive, or
// nil when n < 1.
func (c Curve) Sample(n int) []Point {
	if n < 1 {
		return nil
	}
	pts := make([]Point, n+1)
	for i := range pts {
		pts[i] = c.At(float64(i) / float64(n))
	}
	return pts
}

func (c Curve) String() string {
	return fmt.Sprintf("{Curve %v %v %v %v}", c.points[0], c.points[1], c.points[2], c.points[3])
}

// CatmullRom interpolates between p1 and p2 using p0 and p3 as neighbours.
func CatmullRom(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	return Point{
		X: catmullRom(p0.X, p1.X, p2.X, p3.X, t, t2, t3),
		Y: catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t, t2, t3),
	}
}

func catmullRom(v0, v1, v2, v3, t, t2, t3 float64) float64 {
	return 0.5 * (2*v1 +
		(v2-v0)*t +
		(2*v0-5*v1+4*v2-v3)*t2 +
		(3*v1-v0-3*v2+v3)*t3)
}
