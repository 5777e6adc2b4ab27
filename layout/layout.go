// Package layout describes a screen of controls in YAML and builds the ui
// objects for it.
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownShape  = errors.New("layout: unknown shape")
	ErrDuplicateID   = errors.New("layout: duplicate control id")
	ErrMissingCenter = errors.New("layout: round control has no center")
	ErrEmpty         = errors.New("layout: document is empty")
)

// Shape names accepted in a control's shape field.
const (
	ShapeRectangle = "rectangle"
	ShapeCircle    = "circle"
	ShapeEllipse   = "ellipse"
)

// Window defaults applied when the document leaves them out.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "hitkit"
)

// Document is a complete layout file.
type Document struct {
	Window   WindowConfig    `yaml:"window,omitempty"`
	Panels   []PanelConfig   `yaml:"panels,omitempty"`
	Controls []ControlConfig `yaml:"controls,omitempty"`

	// Source records where the document was read from: a file path or
	// "embedded".
	Source string `yaml:"-"`
}

// WindowConfig sizes the host window.
type WindowConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

// PanelConfig is a draggable panel. Control coordinates inside a panel are
// relative to the top-left corner of its content area.
type PanelConfig struct {
	Title    string          `yaml:"title,omitempty"`
	X        float64         `yaml:"x"`
	Y        float64         `yaml:"y"`
	Width    float64         `yaml:"width"`
	Height   float64         `yaml:"height"`
	Controls []ControlConfig `yaml:"controls,omitempty"`
}

// PointConfig is an x/y pair.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ControlConfig is one button. Rectangles use x, y, width and height.
// Circles use center and diameter. Ellipses use center, width and height.
type ControlConfig struct {
	ID        int          `yaml:"id"`
	Shape     string       `yaml:"shape"`
	X         float64      `yaml:"x,omitempty"`
	Y         float64      `yaml:"y,omitempty"`
	Width     float64      `yaml:"width,omitempty"`
	Height    float64      `yaml:"height,omitempty"`
	Center    *PointConfig `yaml:"center,omitempty"`
	Diameter  float64      `yaml:"diameter,omitempty"`
	Idle      string       `yaml:"idle,omitempty"`
	Hover     string       `yaml:"hover,omitempty"`
	Clickable *bool        `yaml:"clickable,omitempty"`
}

// IsClickable reports the clickable flag, defaulting to true.
func (c ControlConfig) IsClickable() bool {
	return c.Clickable == nil || *c.Clickable
}

// Parse decodes and validates a layout document. Unknown fields are errors.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) applyDefaults() {
	if d.Window.Width <= 0 {
		d.Window.Width = DefaultWidth
	}
	if d.Window.Height <= 0 {
		d.Window.Height = DefaultHeight
	}
	if d.Window.Title == "" {
		d.Window.Title = DefaultTitle
	}
}

// Validate checks shape names, centers and id uniqueness across the whole
// document, panel controls included.
func (d *Document) Validate() error {
	seen := make(map[int]string)
	check := func(where string, controls []ControlConfig) error {
		for i, c := range controls {
			at := fmt.Sprintf("%s[%d]", where, i)
			switch c.Shape {
			case ShapeRectangle:
			case ShapeCircle, ShapeEllipse:
				if c.Center == nil {
					return fmt.Errorf("%s (%s %d): %w", at, c.Shape, c.ID, ErrMissingCenter)
				}
			default:
				return fmt.Errorf("%s: %q: %w", at, c.Shape, ErrUnknownShape)
			}
			if prev, ok := seen[c.ID]; ok {
				return fmt.Errorf("%s: id %d already used by %s: %w", at, c.ID, prev, ErrDuplicateID)
			}
			seen[c.ID] = at
		}
		return nil
	}

	for i, p := range d.Panels {
		if err := check(fmt.Sprintf("panels[%d].controls", i), p.Controls); err != nil {
			return err
		}
	}
	return check("controls", d.Controls)
}
