package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/hitkit/geom"
	"github.com/OpticalFlyer/hitkit/texture"
)

var _ Component = (*Button)(nil)

// ShapeKind is the hit shape a Button was built with. It never changes after
// construction.
type ShapeKind int

const (
	RectangleShape ShapeKind = iota
	CircleShape
	EllipseShape
)

func (k ShapeKind) String() string {
	switch k {
	case RectangleShape:
		return "rectangle"
	case CircleShape:
		return "circle"
	case EllipseShape:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Button is a pointer-driven control bound to one hit shape. Update is called
// once per tick with the current pointer sample; it tests the sample against
// the shape and raises edge-triggered events.
type Button struct {
	kind    ShapeKind
	rect    geom.Rectangle
	circle  geom.Circle
	ellipse geom.Ellipse

	id           int
	idleTexture  texture.Handle
	hoverTexture texture.Handle
	current      texture.Handle

	// State
	clickable bool
	hovered   bool
	leftHeld  bool
	rightHeld bool
	prevLeft  ButtonState
	prevRight ButtonState

	listeners listenerRegistry
}

func newButton(kind ShapeKind, id int, idle, hover texture.Handle) *Button {
	return &Button{
		kind:         kind,
		id:           id,
		idleTexture:  idle,
		hoverTexture: hover,
		current:      idle,
		clickable:    true,
	}
}

// NewRectangleButton creates a clickable button whose hit area is r.
func NewRectangleButton(id int, r geom.Rectangle, idle, hover texture.Handle) *Button {
	b := newButton(RectangleShape, id, idle, hover)
	b.rect = r
	return b
}

// NewCircleButton creates a clickable button whose hit area is c.
func NewCircleButton(id int, c geom.Circle, idle, hover texture.Handle) *Button {
	b := newButton(CircleShape, id, idle, hover)
	b.circle = c
	return b
}

// NewEllipseButton creates a clickable button whose hit area is e.
func NewEllipseButton(id int, e geom.Ellipse, idle, hover texture.Handle) *Button {
	b := newButton(EllipseShape, id, idle, hover)
	b.ellipse = e
	return b
}

// ID returns the number the button was created with.
func (b *Button) ID() int { return b.id }

// Kind returns the button's shape kind.
func (b *Button) Kind() ShapeKind { return b.kind }

// Hovered reports whether the last sample was inside the shape.
func (b *Button) Hovered() bool { return b.hovered }

// LeftHeld reports whether the left button was down inside the shape on the
// last tick.
func (b *Button) LeftHeld() bool { return b.leftHeld }

// RightHeld reports whether the right button was down inside the shape on the
// last tick.
func (b *Button) RightHeld() bool { return b.rightHeld }

// Clickable reports whether the button raises click events.
func (b *Button) Clickable() bool { return b.clickable }

// SetClickable enables or disables click handling. Disabling releases any
// held state immediately. Hover tracking continues either way.
func (b *Button) SetClickable(clickable bool) {
	b.clickable = clickable
	if !clickable {
		b.leftHeld = false
		b.rightHeld = false
	}
}

// Texture returns the handle to draw this tick: the hover texture while
// hovered, the idle texture otherwise.
func (b *Button) Texture() texture.Handle { return b.current }

// SetTextures replaces both textures.
func (b *Button) SetTextures(idle, hover texture.Handle) {
	b.idleTexture = idle
	b.hoverTexture = hover
	if b.hovered {
		b.current = hover
	} else {
		b.current = idle
	}
}

// On registers fn for events of the given kind.
func (b *Button) On(kind EventKind, fn Listener) Subscription {
	return b.listeners.add(kind, fn)
}

// OnEntered registers fn for the pointer entering the shape.
func (b *Button) OnEntered(fn Listener) Subscription { return b.On(Entered, fn) }

// OnExited registers fn for the pointer leaving the shape.
func (b *Button) OnExited(fn Listener) Subscription { return b.On(Exited, fn) }

// OnLeftClicked registers fn for left clicks.
func (b *Button) OnLeftClicked(fn Listener) Subscription { return b.On(LeftClicked, fn) }

// OnRightClicked registers fn for right clicks.
func (b *Button) OnRightClicked(fn Listener) Subscription { return b.On(RightClicked, fn) }

// Contains runs the shape's containment test.
func (b *Button) Contains(p geom.Point) bool {
	switch b.kind {
	case RectangleShape:
		return b.rect.Contains(p)
	case CircleShape:
		return b.circle.Contains(p)
	case EllipseShape:
		return b.ellipse.Contains(p)
	default:
		return false
	}
}

// Position returns the top-left draw position of the shape.
func (b *Button) Position() geom.Point {
	switch b.kind {
	case RectangleShape:
		return b.rect.Location()
	case CircleShape:
		return b.circle.Location()
	case EllipseShape:
		return b.ellipse.Location()
	default:
		return geom.Point{}
	}
}

// Bounds returns the rectangle the button's texture is drawn into.
func (b *Button) Bounds() geom.Rectangle {
	switch b.kind {
	case RectangleShape:
		return b.rect
	case CircleShape:
		return b.circle.Bounds()
	case EllipseShape:
		return b.ellipse.Bounds()
	default:
		return geom.Rectangle{}
	}
}

// Circle returns the hit circle. It is the zero Circle for other kinds.
func (b *Button) Circle() geom.Circle { return b.circle }

// Ellipse returns the hit ellipse. It is the zero Ellipse for other kinds.
func (b *Button) Ellipse() geom.Ellipse { return b.ellipse }

// SetRectangle fits the shape to r. A rectangle button takes r as its hit
// area; a circle is centered in r with the diameter of r's shorter side; an
// ellipse is resized to fill r. Hover state is re-evaluated on the next
// Update.
func (b *Button) SetRectangle(r geom.Rectangle) {
	switch b.kind {
	case RectangleShape:
		b.rect = r
	case CircleShape:
		b.circle = geom.NewCircle(r.Center(), math.Min(r.Width, r.Height))
	case EllipseShape:
		b.ellipse = geom.NewEllipse(r.Width, r.Height, r.Center())
	}
}

// SetCenter moves the shape so its center is c.
func (b *Button) SetCenter(c geom.Point) {
	switch b.kind {
	case RectangleShape:
		b.rect.X = c.X - b.rect.Width/2
		b.rect.Y = c.Y - b.rect.Height/2
	case CircleShape:
		b.circle.Center = c
	case EllipseShape:
		b.ellipse = b.ellipse.WithCenter(c)
	}
}

// Offset moves the shape by (dx, dy).
func (b *Button) Offset(dx, dy float64) {
	switch b.kind {
	case RectangleShape:
		b.rect = b.rect.Offset(dx, dy)
	case CircleShape:
		b.circle = b.circle.Offset(geom.Pt(dx, dy))
	case EllipseShape:
		b.ellipse = b.ellipse.Offset(geom.Pt(dx, dy))
	}
}

// Update consumes one pointer sample. Events fire synchronously, in the order
// Entered/Exited, LeftClicked, RightClicked. A click fires only on the tick a
// button goes from released to pressed inside the shape; holding it does not
// fire again.
func (b *Button) Update(s PointerSample) {
	inside := b.Contains(s.Position)

	if inside && !b.hovered {
		b.hovered = true
		b.current = b.hoverTexture
		b.emit(Entered, s)
	} else if !inside && b.hovered {
		b.hovered = false
		b.current = b.idleTexture
		b.leftHeld = false
		b.rightHeld = false
		b.emit(Exited, s)
	}

	if inside && b.clickable {
		b.leftHeld = s.Left.IsPressed()
		b.rightHeld = s.Right.IsPressed()

		if s.Left.IsPressed() && !b.prevLeft.IsPressed() {
			b.emit(LeftClicked, s)
		}
		// A LeftClicked listener may have disabled the button.
		if s.Right.IsPressed() && !b.prevRight.IsPressed() && b.clickable {
			b.emit(RightClicked, s)
		}
	} else {
		b.leftHeld = false
		b.rightHeld = false
	}

	// Recorded on every tick so edges seen outside the shape are not
	// replayed on the way back in.
	b.prevLeft = s.Left
	b.prevRight = s.Right
}

func (b *Button) emit(kind EventKind, s PointerSample) {
	b.listeners.dispatch(Event{Kind: kind, ID: b.id, Position: s.Position})
}

// Draw renders the current texture stretched over Bounds. Without a texture
// the hit shape is filled in a flat color.
func (b *Button) Draw(screen *ebiten.Image, textures TextureSource) {
	bounds := b.Bounds()
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	var img *ebiten.Image
	if textures != nil {
		img = textures.Image(b.current)
	}
	if img != nil {
		size := img.Bounds().Size()
		if size.X == 0 || size.Y == 0 {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(bounds.Width/float64(size.X), bounds.Height/float64(size.Y))
		op.GeoM.Translate(bounds.X, bounds.Y)
		screen.DrawImage(img, op)
		return
	}

	var bgColor color.Color
	if b.leftHeld || b.rightHeld {
		bgColor = color.RGBA{100, 100, 100, 255}
	} else if b.hovered {
		bgColor = color.RGBA{180, 180, 180, 255}
	} else {
		bgColor = color.RGBA{150, 150, 150, 255}
	}
	if !b.clickable {
		bgColor = color.RGBA{90, 90, 90, 160}
	}

	switch b.kind {
	case RectangleShape:
		vector.DrawFilledRect(screen, float32(bounds.X), float32(bounds.Y),
			float32(bounds.Width), float32(bounds.Height), bgColor, true)
		vector.StrokeRect(screen, float32(bounds.X), float32(bounds.Y),
			float32(bounds.Width), float32(bounds.Height), 1, color.Black, true)
	case CircleShape:
		c := b.circle
		vector.DrawFilledCircle(screen, float32(c.Center.X), float32(c.Center.Y),
			float32(c.Radius()), bgColor, true)
		vector.StrokeCircle(screen, float32(c.Center.X), float32(c.Center.Y),
			float32(c.Radius()), 1, color.Black, true)
	case EllipseShape:
		pts := b.ellipse.Outline(outlineSegments)
		fillPolygon(screen, pts, bgColor)
		strokePolygon(screen, pts, 1, color.Black)
	}
}
