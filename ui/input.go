package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/hitkit/geom"
)

// ButtonState is the level of a pointer button during one tick.
type ButtonState int

const (
	Released ButtonState = iota
	Pressed
)

// IsPressed reports whether s is Pressed.
func (s ButtonState) IsPressed() bool {
	return s == Pressed
}

func (s ButtonState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// StateOf converts a boolean button level into a ButtonState.
func StateOf(pressed bool) ButtonState {
	if pressed {
		return Pressed
	}
	return Released
}

// PointerSample is one observation of the pointer, taken once per tick by the
// host. Position is in the same coordinate space as control geometry.
type PointerSample struct {
	Position geom.Point
	Left     ButtonState
	Right    ButtonState
}

// CursorSample reads the mouse through ebiten. It must be called from the
// game's Update.
func CursorSample() PointerSample {
	x, y := ebiten.CursorPosition()
	return PointerSample{
		Position: geom.Pt(float64(x), float64(y)),
		Left:     StateOf(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)),
		Right:    StateOf(ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)),
	}
}
