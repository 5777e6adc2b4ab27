package geom

import (
	"math"
	"testing"
)

func TestCircleContains(t *testing.T) {
	c := NewCircle(Pt(0, 0), 10)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"center", Pt(0, 0), true},
		{"inside", Pt(2, 2), true},
		{"just inside boundary", Pt(4.999, 0), true},
		{"on boundary", Pt(5, 0), false},
		{"on diagonal boundary", Pt(3, 4), false},
		{"outside", Pt(6, 0), false},
		{"NaN point", Pt(math.NaN(), 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestCircleBoundaryAtAnyCenter(t *testing.T) {
	for _, d := range []float64{1, 2, 10, 64, 333} {
		c := NewCircle(Pt(100, -40), d)
		r := d / 2
		if c.Contains(c.Center.Add(Pt(r, 0))) {
			t.Errorf("diameter %g: point at distance d/2 should be outside", d)
		}
		if !c.Contains(c.Center.Add(Pt(0, r-1e-6))) {
			t.Errorf("diameter %g: point at distance d/2-eps should be inside", d)
		}
	}
}

func TestCircleDegenerateContainsNothing(t *testing.T) {
	tests := []struct {
		name string
		c    Circle
	}{
		{"empty", Circle{}},
		{"zero diameter", NewCircle(Pt(5, 5), 0)},
		{"negative diameter", NewCircle(Pt(5, 5), -10)},
		{"NaN diameter", NewCircle(Pt(5, 5), math.NaN())},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.c.Contains(tc.c.Center) {
				t.Errorf("%v contains its center", tc.c)
			}
			if tc.c.Contains(Pt(6, 5)) {
				t.Errorf("%v contains (6,5)", tc.c)
			}
			if tc.c.Intersects(NewRectangle(0, 0, 10, 10)) {
				t.Errorf("%v intersects a rectangle", tc.c)
			}
		})
	}
}

func TestCircleIntersects(t *testing.T) {
	c := NewCircle(Pt(0, 0), 10)

	tests := []struct {
		name     string
		r        Rectangle
		expected bool
	}{
		{"rectangle covers center", NewRectangle(-1, -1, 2, 2), true},
		{"rectangle encloses circle", NewRectangle(-10, -10, 20, 20), true},
		{"edge within radius", NewRectangle(4, -1, 10, 2), true},
		{"edge at radius", NewRectangle(5, -1, 10, 2), false},
		{"corner outside radius", NewRectangle(4, 4, 10, 10), false},
		{"corner inside radius", NewRectangle(3, 3, 10, 10), true},
		{"far away", NewRectangle(50, 50, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Intersects(tc.r); got != tc.expected {
				t.Errorf("Intersects(%v) = %v, expected %v", tc.r, got, tc.expected)
			}
		})
	}
}

func TestCircleLocationAndBounds(t *testing.T) {
	c := NewCircle(Pt(50, 40), 20)

	if got := c.Location(); got != Pt(40, 30) {
		t.Errorf("Location() = %v, expected (40,30)", got)
	}
	if got, want := c.Bounds(), NewRectangle(40, 30, 20, 20); got != want {
		t.Errorf("Bounds() = %v, expected %v", got, want)
	}
	if c.Radius() != 10 {
		t.Errorf("Radius() = %g, expected 10", c.Radius())
	}
}

func TestCircleOffsetInflate(t *testing.T) {
	c := NewCircle(Pt(10, 10), 4)

	if got, want := c.Offset(Pt(3, -2)), NewCircle(Pt(13, 8), 4); got != want {
		t.Errorf("Offset() = %v, expected %v", got, want)
	}
	if got, want := c.Inflate(2), NewCircle(Pt(8, 8), 8); got != want {
		t.Errorf("Inflate() = %v, expected %v", got, want)
	}
}

func TestCircleOutline(t *testing.T) {
	c := NewCircle(Pt(10, 20), 8)

	pts := c.Outline(32)
	if len(pts) != 32 {
		t.Fatalf("Outline(32) returned %d points", len(pts))
	}
	for _, p := range pts {
		if d := p.Distance(c.Center); math.Abs(d-4) > 1e-9 {
			t.Errorf("outline point %v at distance %f, expected 4", p, d)
		}
	}
	if c.Outline(2) != nil {
		t.Error("Outline(2) should be nil")
	}
	if NewCircle(Pt(0, 0), 0).Outline(16) != nil {
		t.Error("outline of a zero circle should be nil")
	}
}

func TestCircleIsEmpty(t *testing.T) {
	if !(Circle{}).IsEmpty() {
		t.Error("zero circle should be empty")
	}
	if NewCircle(Pt(1, 0), 0).IsEmpty() {
		t.Error("off-origin circle should not be empty")
	}
}
