package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/hitkit/geom"
)

var _ Container = (*Panel)(nil)

type DockState int

const (
	DockNone DockState = iota
	DockLeft
	DockRight
	DockTop
	DockBottom
)

func (d DockState) String() string {
	switch d {
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	default:
		return "none"
	}
}

const (
	titleBarHeight = 20.0
	dockThreshold  = 20.0
	previewAlpha   = 84
	panelAlpha     = 200
)

// Panel is a titled container that can be dragged by its title bar and
// docked against a window edge. Child buttons move with it.
type Panel struct {
	Title string

	bounds   geom.Rectangle
	titleBar *Button
	children []*Button

	// Docking state
	dockState     DockState
	isDockPreview bool
	undocked      geom.Rectangle // bounds saved before docking

	// Interaction state
	isDragging bool
	dragOffset geom.Point // pointer position relative to the panel origin

	// Window dimensions
	windowWidth  int
	windowHeight int
}

// NewPanel creates an undocked panel.
func NewPanel(x, y, width, height float64, title string) *Panel {
	r := geom.NewRectangle(x, y, width, height)
	p := &Panel{
		Title:        title,
		bounds:       r,
		undocked:     r,
		windowWidth:  800, // Default window size
		windowHeight: 600,
	}
	p.titleBar = NewRectangleButton(-1, p.titleBarRect(), "", "")
	p.titleBar.OnLeftClicked(func(e Event) { p.beginDrag(e.Position) })
	return p
}

func (p *Panel) titleBarRect() geom.Rectangle {
	return geom.NewRectangle(p.bounds.X, p.bounds.Y, p.bounds.Width, titleBarHeight)
}

// Bounds returns the panel rectangle, title bar included.
func (p *Panel) Bounds() geom.Rectangle { return p.bounds }

// TitleBar returns the drag handle area.
func (p *Panel) TitleBar() geom.Rectangle { return p.titleBar.Bounds() }

// ContentOrigin returns the top-left corner of the area below the title bar.
func (p *Panel) ContentOrigin() geom.Point {
	return geom.Pt(p.bounds.X, p.bounds.Y+titleBarHeight)
}

// Dragging reports whether the panel is following the pointer.
func (p *Panel) Dragging() bool { return p.isDragging }

// DockState returns where the panel is docked.
func (p *Panel) DockState() DockState { return p.dockState }

// AddChild adds b. Its geometry is taken as-is, so position it in screen
// space before adding.
func (p *Panel) AddChild(b *Button) {
	p.children = append(p.children, b)
}

// RemoveChild removes b if present.
func (p *Panel) RemoveChild(b *Button) {
	for i, c := range p.children {
		if c == b {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}

// Children returns the panel's buttons.
func (p *Panel) Children() []*Button { return p.children }

// setBounds replaces the panel rectangle, refits the title bar and moves
// children by the change in origin.
func (p *Panel) setBounds(r geom.Rectangle) {
	dx, dy := r.X-p.bounds.X, r.Y-p.bounds.Y
	p.bounds = r
	p.titleBar.SetRectangle(p.titleBarRect())
	if dx == 0 && dy == 0 {
		return
	}
	for _, c := range p.children {
		c.Offset(dx, dy)
	}
}

// MoveTo places the panel's top-left corner at (x, y).
func (p *Panel) MoveTo(x, y float64) {
	p.setBounds(geom.NewRectangle(x, y, p.bounds.Width, p.bounds.Height))
}

func (p *Panel) dockRect(state DockState) geom.Rectangle {
	w, h := float64(p.windowWidth), float64(p.windowHeight)
	switch state {
	case DockLeft:
		return geom.NewRectangle(0, 0, p.undocked.Width, h)
	case DockRight:
		return geom.NewRectangle(w-p.undocked.Width, 0, p.undocked.Width, h)
	case DockTop:
		return geom.NewRectangle(0, 0, w, p.undocked.Height)
	case DockBottom:
		return geom.NewRectangle(0, h-p.undocked.Height, w, p.undocked.Height)
	default:
		return p.bounds
	}
}

func (p *Panel) dockZone(pointer geom.Point) DockState {
	switch {
	case pointer.X < dockThreshold:
		return DockLeft
	case float64(p.windowWidth)-pointer.X < dockThreshold:
		return DockRight
	case pointer.Y < dockThreshold:
		return DockTop
	case float64(p.windowHeight)-pointer.Y < dockThreshold:
		return DockBottom
	default:
		return DockNone
	}
}

func (p *Panel) checkDocking(pointer geom.Point) {
	zone := p.dockZone(pointer)
	if zone == DockNone {
		p.dockState = DockNone
		if p.isDockPreview {
			// Back to the undocked size at the current drag position
			p.setBounds(geom.NewRectangle(p.bounds.X, p.bounds.Y, p.undocked.Width, p.undocked.Height))
		}
		p.isDockPreview = false
		return
	}

	p.dockState = zone
	p.isDockPreview = true
	p.setBounds(p.dockRect(zone))
}

// UpdateWindowSize records the window size and re-fits a docked panel.
func (p *Panel) UpdateWindowSize(width, height int) {
	p.windowWidth = width
	p.windowHeight = height
	if p.dockState != DockNone {
		p.setBounds(p.dockRect(p.dockState))
	}
}

// beginDrag runs when the title bar is clicked. A docked panel is undocked
// first, keeping the pointer at the same relative spot along the title bar.
func (p *Panel) beginDrag(pointer geom.Point) {
	p.isDragging = true
	if p.dockState == DockNone {
		p.undocked = p.bounds
	} else {
		p.undockAt(pointer)
	}
	p.dragOffset = pointer.Sub(p.bounds.Location())
}

// undockAt restores the undocked size with the title bar under pointer.
func (p *Panel) undockAt(pointer geom.Point) {
	relativeX := 0.5
	if p.bounds.Width > 0 {
		relativeX = (pointer.X - p.bounds.X) / p.bounds.Width
	}
	p.dockState = DockNone
	p.isDockPreview = false
	w, h := p.undocked.Width, p.undocked.Height
	p.setBounds(geom.NewRectangle(pointer.X-w*relativeX, pointer.Y-titleBarHeight/2, w, h))
}

// Update drags the panel while its title bar is held, then forwards the
// sample to every child.
func (p *Panel) Update(s PointerSample) {
	// Follow the pointer before the title bar is tested so the bar is still
	// under it on fast moves. A docked preview keeps its snapped geometry
	// until the pointer leaves the dock zone.
	if p.isDragging && s.Left.IsPressed() && !p.isDockPreview {
		origin := s.Position.Sub(p.dragOffset)
		p.MoveTo(origin.X, origin.Y)
	}

	p.titleBar.Update(s)

	if p.isDragging {
		// A previewed panel has snapped away from the pointer, so the raw
		// button level carries the drag until it leaves the dock zone.
		if p.titleBar.LeftHeld() || (p.isDockPreview && s.Left.IsPressed()) {
			p.checkDocking(s.Position)
		} else {
			p.isDragging = false
			p.isDockPreview = false
		}
	}

	for _, c := range p.children {
		c.Update(s)
	}
}

// Draw draws the panel background, title bar and children.
func (p *Panel) Draw(screen *ebiten.Image, textures TextureSource) {
	var bgColor, titleColor color.RGBA
	if p.isDockPreview {
		bgColor = color.RGBA{33, 150, 243, previewAlpha}
		titleColor = color.RGBA{60, 60, 60, previewAlpha}
	} else {
		bgColor = color.RGBA{100, 100, 100, panelAlpha}
		titleColor = color.RGBA{60, 60, 60, panelAlpha}
	}

	r := p.bounds
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), bgColor, true)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(titleBarHeight), titleColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(r.X)+4, int(r.Y)+2)

	for _, c := range p.children {
		c.Draw(screen, textures)
	}
}
