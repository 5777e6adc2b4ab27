package ui

import (
	"testing"

	"github.com/OpticalFlyer/hitkit/geom"
)

func newTestPanel() (*Panel, *Button) {
	p := NewPanel(100, 100, 200, 150, "Tools")
	child := NewRectangleButton(1, geom.NewRectangle(110, 130, 50, 20), "", "")
	p.AddChild(child)
	return p, child
}

func TestPanelDragMovesChildren(t *testing.T) {
	p, child := newTestPanel()

	p.Update(sample(geom.Pt(150, 105), Pressed, Released))
	if !p.Dragging() {
		t.Fatal("press on the title bar should start a drag")
	}
	p.Update(sample(geom.Pt(250, 205), Pressed, Released))
	p.Update(sample(geom.Pt(250, 205), Released, Released))

	if p.Dragging() {
		t.Error("release should end the drag")
	}
	if got, want := p.Bounds(), geom.NewRectangle(200, 200, 200, 150); got != want {
		t.Errorf("Bounds() = %v, expected %v", got, want)
	}
	if got, want := child.Bounds(), geom.NewRectangle(210, 230, 50, 20); got != want {
		t.Errorf("child Bounds() = %v, expected %v", got, want)
	}
}

func TestPanelPressOutsideTitleBarDoesNotDrag(t *testing.T) {
	p, _ := newTestPanel()

	p.Update(sample(geom.Pt(150, 200), Pressed, Released))
	p.Update(sample(geom.Pt(300, 300), Pressed, Released))

	if p.Dragging() {
		t.Error("press in the panel body should not drag")
	}
	if got, want := p.Bounds(), geom.NewRectangle(100, 100, 200, 150); got != want {
		t.Errorf("Bounds() = %v, expected %v", got, want)
	}
}

func TestPanelHeldPressEnteringTitleBarDoesNotDrag(t *testing.T) {
	p, _ := newTestPanel()

	p.Update(sample(geom.Pt(10, 500), Pressed, Released))
	p.Update(sample(geom.Pt(150, 105), Pressed, Released))

	if p.Dragging() {
		t.Error("a press that started elsewhere should not grab the title bar")
	}
}

func TestPanelDockAndUndock(t *testing.T) {
	p, child := newTestPanel()

	p.Update(sample(geom.Pt(150, 105), Pressed, Released))
	p.Update(sample(geom.Pt(10, 300), Pressed, Released))
	p.Update(sample(geom.Pt(10, 300), Released, Released))

	if p.DockState() != DockLeft {
		t.Fatalf("DockState() = %v, expected left", p.DockState())
	}
	if got, want := p.Bounds(), geom.NewRectangle(0, 0, 200, 600); got != want {
		t.Errorf("docked Bounds() = %v, expected %v", got, want)
	}
	if got := child.Bounds().Location().Sub(p.Bounds().Location()); got != geom.Pt(10, 30) {
		t.Errorf("child offset inside docked panel = %v, expected (10,30)", got)
	}

	p.UpdateWindowSize(1024, 768)
	if got, want := p.Bounds(), geom.NewRectangle(0, 0, 200, 768); got != want {
		t.Errorf("Bounds() after resize = %v, expected %v", got, want)
	}
}

func TestPanelUndockRestoresSize(t *testing.T) {
	p, child := newTestPanel()

	p.Update(sample(geom.Pt(150, 105), Pressed, Released))
	p.Update(sample(geom.Pt(400, 590), Pressed, Released))
	p.Update(sample(geom.Pt(400, 590), Released, Released))
	if p.DockState() != DockBottom {
		t.Fatalf("DockState() = %v, expected bottom", p.DockState())
	}
	if got, want := p.Bounds(), geom.NewRectangle(0, 450, 800, 150); got != want {
		t.Fatalf("docked Bounds() = %v, expected %v", got, want)
	}

	p.UpdateWindowSize(1024, 768)
	p.Update(sample(geom.Pt(512, 628), Pressed, Released))

	if p.DockState() != DockNone {
		t.Errorf("DockState() after grabbing = %v, expected none", p.DockState())
	}
	if got, want := p.Bounds(), geom.NewRectangle(412, 618, 200, 150); got != want {
		t.Errorf("undocked Bounds() = %v, expected %v", got, want)
	}
	if got := child.Bounds().Location().Sub(p.Bounds().Location()); got != geom.Pt(10, 30) {
		t.Errorf("child offset after undock = %v, expected (10,30)", got)
	}
}

func TestPanelDockPreviewCancelled(t *testing.T) {
	p, _ := newTestPanel()

	p.Update(sample(geom.Pt(150, 105), Pressed, Released))
	p.Update(sample(geom.Pt(400, 10), Pressed, Released))
	if p.DockState() != DockTop {
		t.Fatalf("DockState() = %v, expected top preview", p.DockState())
	}
	p.Update(sample(geom.Pt(400, 300), Pressed, Released))
	p.Update(sample(geom.Pt(400, 300), Pressed, Released))
	p.Update(sample(geom.Pt(400, 300), Released, Released))

	if p.DockState() != DockNone {
		t.Errorf("DockState() = %v, expected none", p.DockState())
	}
	if got, want := p.Bounds(), geom.NewRectangle(350, 295, 200, 150); got != want {
		t.Errorf("Bounds() = %v, expected %v", got, want)
	}
}

func TestPanelForwardsSamplesToChildren(t *testing.T) {
	p, child := newTestPanel()
	rec := record(child)

	p.Update(sample(geom.Pt(120, 140), Released, Released))
	p.Update(sample(geom.Pt(120, 140), Pressed, Released))

	if rec.count(Entered) != 1 || rec.count(LeftClicked) != 1 {
		t.Errorf("child events = %v, expected [Entered LeftClicked]", rec.kinds())
	}
}

func TestPanelRemoveChild(t *testing.T) {
	p, child := newTestPanel()
	other := NewCircleButton(2, geom.NewCircle(geom.Pt(200, 200), 20), "", "")
	p.AddChild(other)

	p.RemoveChild(child)
	if len(p.Children()) != 1 || p.Children()[0] != other {
		t.Errorf("Children() = %v after removal", p.Children())
	}

	p.MoveTo(0, 0)
	if child.Bounds().X != 110 {
		t.Error("removed child still moves with the panel")
	}
}

func TestPanelTitleBarHeldCarriesDrag(t *testing.T) {
	p, _ := newTestPanel()

	p.Update(sample(geom.Pt(150, 105), Pressed, Released))
	if !p.titleBar.LeftHeld() {
		t.Fatal("title bar should report the left button held")
	}
	// A long jump in one tick keeps the drag: the panel follows first.
	p.Update(sample(geom.Pt(650, 405), Pressed, Released))
	if !p.Dragging() || !p.titleBar.LeftHeld() {
		t.Fatal("drag lost on a fast move")
	}
	if got, want := p.Bounds(), geom.NewRectangle(600, 400, 200, 150); got != want {
		t.Errorf("Bounds() = %v, expected %v", got, want)
	}
	if got, want := p.TitleBar(), geom.NewRectangle(600, 400, 200, 20); got != want {
		t.Errorf("TitleBar() = %v, expected %v", got, want)
	}

	p.Update(sample(geom.Pt(650, 405), Released, Released))
	if p.Dragging() || p.titleBar.LeftHeld() {
		t.Error("release should end the drag")
	}
}

func TestPanelRightButtonDoesNotDrag(t *testing.T) {
	p, _ := newTestPanel()

	p.Update(sample(geom.Pt(150, 105), Released, Pressed))
	if p.Dragging() {
		t.Error("right press on the title bar should not drag")
	}
}

func TestPanelUndockZeroWidth(t *testing.T) {
	p := NewPanel(0, 0, 0, 150, "empty")
	p.dockState = DockLeft

	p.undockAt(geom.Pt(0, 5))

	if got, want := p.Bounds(), geom.NewRectangle(0, -5, 0, 150); got != want {
		t.Errorf("Bounds() = %v, expected %v", got, want)
	}
	if p.DockState() != DockNone {
		t.Errorf("DockState() = %v, expected none", p.DockState())
	}
}
