package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/flywave/go-earcut"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/hitkit/geom"
)

// outlineSegments is the vertex count used to approximate round shapes.
const outlineSegments = 48

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// solidSource returns a 1x1 white source for DrawTriangles, cut from the
// middle of a 3x3 image so filtering never samples the border.
func solidSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// triangulate splits a simple polygon into triangles and returns vertices
// tinted with clr plus the index list for DrawTriangles.
func triangulate(pts []geom.Point, clr color.Color) ([]ebiten.Vertex, []uint16, error) {
	if len(pts) < 3 {
		return nil, nil, fmt.Errorf("polygon needs at least 3 points, got %d", len(pts))
	}
	if len(pts) > math.MaxUint16 {
		return nil, nil, fmt.Errorf("polygon has %d points, more than a uint16 index can address", len(pts))
	}

	flat := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		flat = append(flat, p.X, p.Y)
	}
	tris, err := earcut.Earcut(flat, nil, 2)
	if err != nil {
		return nil, nil, fmt.Errorf("triangulating polygon failed: %w", err)
	}

	r, g, b, a := clr.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff

	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
	indices := make([]uint16, len(tris))
	for i, idx := range tris {
		indices[i] = uint16(idx)
	}
	return vertices, indices, nil
}

// fillPolygon fills a simple polygon. Degenerate polygons draw nothing.
func fillPolygon(screen *ebiten.Image, pts []geom.Point, clr color.Color) {
	vertices, indices, err := triangulate(pts, clr)
	if err != nil || len(indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vertices, indices, solidSource(), op)
}

// strokePolyline draws the open path through pts.
func strokePolyline(screen *ebiten.Image, pts []geom.Point, width float32, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

// strokePolygon draws the closed outline of pts.
func strokePolygon(screen *ebiten.Image, pts []geom.Point, width float32, clr color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

// hitOutline returns the polygon describing b's hit area.
func hitOutline(b *Button) []geom.Point {
	switch b.kind {
	case RectangleShape:
		r := b.rect
		if !(r.Width > 0 && r.Height > 0) {
			return nil
		}
		return []geom.Point{
			r.Location(),
			geom.Pt(r.Right(), r.Top()),
			r.BottomRight(),
			geom.Pt(r.Left(), r.Bottom()),
		}
	case CircleShape:
		return b.circle.Outline(outlineSegments)
	case EllipseShape:
		return b.ellipse.Outline(outlineSegments)
	default:
		return nil
	}
}

// Overlay colors by control state.
var (
	overlayIdle     = color.RGBA{R: 0, G: 120, B: 255, A: 60}
	overlayHovered  = color.RGBA{R: 255, G: 200, B: 0, A: 90}
	overlayHeld     = color.RGBA{R: 255, G: 40, B: 40, A: 110}
	overlayDisabled = color.RGBA{R: 120, G: 120, B: 120, A: 60}
	overlayFocus    = color.RGBA{R: 255, A: 255}
)

func overlayColor(b *Button) color.RGBA {
	switch {
	case !b.clickable:
		return overlayDisabled
	case b.leftHeld || b.rightHeld:
		return overlayHeld
	case b.hovered:
		return overlayHovered
	default:
		return overlayIdle
	}
}

// DrawHitShapes draws every button's hit area as a translucent polygon, the
// ellipse foci as small markers, and each bounding rectangle in outline.
func DrawHitShapes(screen *ebiten.Image, buttons []*Button) {
	for _, b := range buttons {
		pts := hitOutline(b)
		if pts == nil {
			continue
		}
		clr := overlayColor(b)
		fillPolygon(screen, pts, clr)
		strokePolygon(screen, pts, 1, color.RGBA{R: clr.R, G: clr.G, B: clr.B, A: 255})

		bounds := b.Bounds()
		vector.StrokeRect(screen, float32(bounds.X), float32(bounds.Y),
			float32(bounds.Width), float32(bounds.Height), 1, color.RGBA{A: 120}, false)

		if b.kind == EllipseShape {
			pos, neg := b.ellipse.Foci()
			for _, f := range []geom.Point{pos, neg} {
				vector.DrawFilledCircle(screen, float32(f.X), float32(f.Y), 2, overlayFocus, true)
			}
		}
	}
}

// trailSegmentSteps is the number of line pieces drawn per trail segment.
const trailSegmentSteps = 8

var overlayTrail = color.RGBA{R: 0, G: 220, B: 120, A: 200}

// trailPath smooths a pointer trail into a polyline that passes through every
// trail point. Each segment is a Catmull-Rom curve whose outer control points
// are the neighbouring samples, repeated at the ends.
func trailPath(trail []geom.Point, steps int) []geom.Point {
	if len(trail) < 2 || steps < 1 {
		return nil
	}
	last := len(trail) - 1
	path := make([]geom.Point, 0, last*steps+1)
	path = append(path, trail[0])
	for i := 0; i < last; i++ {
		c := geom.NewCurve(trail[max(i-1, 0)], trail[i], trail[i+1], trail[min(i+2, last)])
		path = append(path, c.Sample(steps)[1:]...)
	}
	return path
}

// DrawPointerTrail draws a smoothed line through recent pointer positions.
func DrawPointerTrail(screen *ebiten.Image, trail []geom.Point) {
	path := trailPath(trail, trailSegmentSteps)
	if path == nil {
		return
	}
	strokePolyline(screen, path, 2, overlayTrail)
}
