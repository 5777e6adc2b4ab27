package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/hitkit/geom"
	"github.com/OpticalFlyer/hitkit/texture"
)

// Component represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Component interface {
	Update(s PointerSample)
	Draw(screen *ebiten.Image, textures TextureSource)
	Bounds() geom.Rectangle
}

// Container represents a Component that holds buttons and moves them with
// itself.
type Container interface {
	Component
	AddChild(child *Button)
	RemoveChild(child *Button)
	Children() []*Button
}

// TextureSource resolves texture handles into drawable images.
// *texture.Cache satisfies it.
type TextureSource interface {
	Image(h texture.Handle) *ebiten.Image
}
