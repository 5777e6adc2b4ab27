package ui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/OpticalFlyer/hitkit/geom"
)

// Controller manages all UI elements
type Controller struct {
	panels   []*Panel
	buttons  []*Button
	textures TextureSource
	logger   *log.Logger
	debug    bool

	// trail holds the most recent distinct pointer positions, oldest first.
	trail []geom.Point
}

// trailLength is the number of pointer positions kept for the debug trail.
const trailLength = 16

// NewController creates a new UI controller. textures may be nil, in which
// case buttons draw their flat fallback shapes.
func NewController(textures TextureSource, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		panels:   make([]*Panel, 0),
		buttons:  make([]*Button, 0),
		textures: textures,
		logger:   logger,
	}
}

// AddPanel adds a new panel to the UI. Add the panel's children first; ones
// added later are updated and drawn but their events are not logged.
func (c *Controller) AddPanel(panel *Panel) {
	c.panels = append(c.panels, panel)
	for _, b := range panel.Children() {
		c.watch(b)
	}
}

// AddButton adds a button that does not belong to any panel.
func (c *Controller) AddButton(b *Button) {
	c.buttons = append(c.buttons, b)
	c.watch(b)
}

// watch logs every event b raises at debug level.
func (c *Controller) watch(b *Button) {
	for kind := EventKind(0); kind < numEventKinds; kind++ {
		b.On(kind, func(e Event) {
			c.logger.Debug("control event", "id", e.ID, "event", e.Kind, "x", e.Position.X, "y", e.Position.Y)
		})
	}
}

// Buttons returns every button, panel children first.
func (c *Controller) Buttons() []*Button {
	all := make([]*Button, 0, len(c.buttons))
	for _, p := range c.panels {
		all = append(all, p.Children()...)
	}
	return append(all, c.buttons...)
}

// Update feeds the same sample to every panel and button exactly once.
func (c *Controller) Update(s PointerSample) {
	c.recordTrail(s.Position)
	for _, panel := range c.panels {
		panel.Update(s)
	}
	for _, b := range c.buttons {
		b.Update(s)
	}
}

// Draw draws all UI elements
func (c *Controller) Draw(screen *ebiten.Image) {
	for _, panel := range c.panels {
		panel.Draw(screen, c.textures)
	}
	for _, b := range c.buttons {
		b.Draw(screen, c.textures)
	}
	if c.debug {
		DrawHitShapes(screen, c.Buttons())
		DrawPointerTrail(screen, c.trail)
	}
}

func (c *Controller) recordTrail(p geom.Point) {
	if n := len(c.trail); n > 0 && c.trail[n-1] == p {
		return
	}
	if len(c.trail) == trailLength {
		copy(c.trail, c.trail[1:])
		c.trail = c.trail[:trailLength-1]
	}
	c.trail = append(c.trail, p)
}

// Trail returns the recent pointer positions, oldest first.
func (c *Controller) Trail() []geom.Point {
	return append([]geom.Point(nil), c.trail...)
}

// SetDebug toggles the hit shape overlay.
func (c *Controller) SetDebug(on bool) { c.debug = on }

// Debug reports whether the hit shape overlay is on.
func (c *Controller) Debug() bool { return c.debug }

// UpdateWindowSize updates the window size for all panels
func (c *Controller) UpdateWindowSize(width, height int) {
	for _, panel := range c.panels {
		panel.UpdateWindowSize(width, height)
	}
}

// ShowDebugInfo draws debug information
func (c *Controller) ShowDebugInfo(screen *ebiten.Image) {
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	hovered := -1
	for _, b := range c.Buttons() {
		if b.Hovered() {
			hovered = b.ID()
			break
		}
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f Hovered: %d", fps, tps, hovered))
}

// Captures reports whether the sample falls on UI: a panel, a hovered button
// or a panel being dragged. Hosts use it to keep UI input away from the scene.
func (c *Controller) Captures(s PointerSample) bool {
	for _, panel := range c.panels {
		if panel.Dragging() || panel.Bounds().Contains(s.Position) {
			return true
		}
	}
	for _, b := range c.buttons {
		if b.Hovered() || b.Contains(s.Position) {
			return true
		}
	}
	return false
}

// CursorShape returns the cursor to show for the sample: a move cursor over
// a title bar, a pointer over a clickable button.
func (c *Controller) CursorShape(s PointerSample) ebiten.CursorShapeType {
	for _, panel := range c.panels {
		if panel.Dragging() || panel.TitleBar().Contains(s.Position) {
			return ebiten.CursorShapeMove
		}
	}
	for _, b := range c.Buttons() {
		if b.Clickable() && b.Contains(s.Position) {
			return ebiten.CursorShapePointer
		}
	}
	return ebiten.CursorShapeDefault
}
