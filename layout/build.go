package layout

import (
	"fmt"

	"github.com/OpticalFlyer/hitkit/geom"
	"github.com/OpticalFlyer/hitkit/texture"
	"github.com/OpticalFlyer/hitkit/ui"
)

// Build validates doc and creates its controls. Panel controls are placed in
// screen space under their panel's title bar and returned only as panel
// children; buttons holds the free-standing controls.
func Build(doc *Document) (buttons []*ui.Button, panels []*ui.Panel, err error) {
	if err := doc.Validate(); err != nil {
		return nil, nil, err
	}

	for _, pc := range doc.Panels {
		panel := ui.NewPanel(pc.X, pc.Y, pc.Width, pc.Height, pc.Title)
		panel.UpdateWindowSize(doc.Window.Width, doc.Window.Height)
		origin := panel.ContentOrigin()
		for _, cc := range pc.Controls {
			b, err := newButton(cc, origin)
			if err != nil {
				return nil, nil, err
			}
			panel.AddChild(b)
		}
		panels = append(panels, panel)
	}

	for _, cc := range doc.Controls {
		b, err := newButton(cc, geom.Point{})
		if err != nil {
			return nil, nil, err
		}
		buttons = append(buttons, b)
	}
	return buttons, panels, nil
}

func newButton(c ControlConfig, origin geom.Point) (*ui.Button, error) {
	idle, hover := texture.Handle(c.Idle), texture.Handle(c.Hover)

	var b *ui.Button
	switch c.Shape {
	case ShapeRectangle:
		r := geom.NewRectangle(c.X, c.Y, c.Width, c.Height).Offset(origin.X, origin.Y)
		b = ui.NewRectangleButton(c.ID, r, idle, hover)
	case ShapeCircle:
		center := geom.Pt(c.Center.X, c.Center.Y).Add(origin)
		b = ui.NewCircleButton(c.ID, geom.NewCircle(center, c.Diameter), idle, hover)
	case ShapeEllipse:
		center := geom.Pt(c.Center.X, c.Center.Y).Add(origin)
		b = ui.NewEllipseButton(c.ID, geom.NewEllipse(c.Width, c.Height, center), idle, hover)
	default:
		return nil, fmt.Errorf("control %d: %q: %w", c.ID, c.Shape, ErrUnknownShape)
	}
	b.SetClickable(c.IsClickable())
	return b, nil
}
