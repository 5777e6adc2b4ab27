package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/hitkit/geom"
	"github.com/OpticalFlyer/hitkit/ui"
)

// touchTracker turns touches into pointer samples. One finger acts as the
// left button, two fingers as the right button at their midpoint.
type touchTracker struct {
	active bool
	last   geom.Point

	// multi latches once a second finger lands and clears when every finger
	// has lifted, so lifting the fingers one at a time does not turn the
	// last one into a left press.
	multi bool
}

// currentTouches reads the active touch positions from ebiten.
func currentTouches() []geom.Point {
	// Use AppendTouchIDs instead of TouchIDs
	ids := ebiten.AppendTouchIDs(make([]ebiten.TouchID, 0, 8))
	touches := make([]geom.Point, len(ids))
	for i, id := range ids {
		x, y := ebiten.TouchPosition(id)
		touches[i] = geom.Pt(float64(x), float64(y))
	}
	return touches
}

// sample returns the pointer sample for this tick's touches. ok is false when
// no touch is in progress, in which case the mouse should be read instead.
// The tick after the last finger lifts still reports a release at the last
// touch position so the control under it sees the button go up.
func (t *touchTracker) sample(touches []geom.Point) (s ui.PointerSample, ok bool) {
	switch len(touches) {
	case 0:
		t.multi = false
		if !t.active {
			return ui.PointerSample{}, false
		}
		t.active = false
		return ui.PointerSample{Position: t.last}, true

	case 1: // Single touch - left press, unless left over from a two finger gesture
		t.active = true
		t.last = touches[0]
		if t.multi {
			return ui.PointerSample{Position: t.last}, true
		}
		return ui.PointerSample{Position: t.last, Left: ui.Pressed}, true

	default: // Two finger touch - right press between the fingers
		t.active = true
		t.multi = true
		t.last = midpoint(touches[0], touches[1])
		return ui.PointerSample{Position: t.last, Right: ui.Pressed}, true
	}
}
