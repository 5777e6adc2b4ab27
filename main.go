// hitkit is a demo host for shape-accurate controls: rectangle, circle and
// ellipse buttons that hover and click only inside their real outline.
//
// Usage:
//
//	hitkit                         - Run with the default layout
//	hitkit --layout my.yaml        - Run with a custom layout file
//	hitkit --debug                 - Start with the hit shape overlay on (F1 toggles)
//
// Flags:
//
//	--layout <path>     - Layout file (default search: ~/.hitkit/layout.yaml, ./configs/layout.yaml)
//	--assets <dir>      - Directory texture handles are resolved against
//	--width, --height   - Window size, overriding the layout
//	--tps <rate>        - Tick rate (default: 60)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/hitkit/geom"
	"github.com/OpticalFlyer/hitkit/layout"
	"github.com/OpticalFlyer/hitkit/texture"
	"github.com/OpticalFlyer/hitkit/ui"
)

var (
	flagLayout   string
	flagAssets   string
	flagWidth    int
	flagHeight   int
	flagTPS      int
	flagDebug    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hitkit",
	Short: "Shape-accurate buttons demo",
	Long: `hitkit opens a window with the controls described by a layout file.
Hovering and clicking follow each control's true outline, so the corners of
a circle's bounding box are dead space.

Press F1 to toggle the hit shape overlay.

Examples:
  hitkit
  hitkit --layout ./configs/layout.yaml --debug
  hitkit --width 1280 --height 720 --log-level debug`,
	SilenceUsage: true,
	RunE:         runHitkit,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Layout file (empty = search default locations)")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Directory textures are loaded from")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Window width (0 = from layout)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Window height (0 = from layout)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", ebiten.DefaultTPS, "Tick rate (updates per second)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show hit shapes and frame stats")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hitkit",
		Level:           lvl,
	})
	return logger, nil
}

func runHitkit(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}

	doc, err := layout.Load(flagLayout)
	if err != nil {
		return err
	}
	buttons, panels, err := layout.Build(doc)
	if err != nil {
		return fmt.Errorf("building layout %s: %w", doc.Source, err)
	}

	width, height := doc.Window.Width, doc.Window.Height
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}

	textures := texture.New(texture.FileLoader(flagAssets), logger.WithPrefix("texture"))
	placeholder := ebiten.NewImage(1, 1)
	placeholder.Fill(color.RGBA{R: 80, G: 80, B: 80, A: 255})
	textures.SetPlaceholder(placeholder)

	controller := ui.NewController(textures, logger.WithPrefix("ui"))
	for _, p := range panels {
		controller.AddPanel(p)
	}
	for _, b := range buttons {
		controller.AddButton(b)
	}
	controller.SetDebug(flagDebug)
	controller.UpdateWindowSize(width, height)

	var handles []texture.Handle
	for _, b := range controller.Buttons() {
		b.OnLeftClicked(func(e ui.Event) {
			logger.Info("left click", "id", e.ID, "x", e.Position.X, "y", e.Position.Y)
		})
		b.OnRightClicked(func(e ui.Event) {
			logger.Info("right click", "id", e.ID, "x", e.Position.X, "y", e.Position.Y)
		})
		handles = append(handles, b.Texture())
	}
	textures.Preload(handles...)

	logger.Info("starting", "layout", doc.Source, "panels", len(panels), "buttons", len(buttons),
		"width", width, "height", height)

	app := &Hitkit{
		ui:     controller,
		logger: logger,
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(doc.Window.Title)
	ebiten.SetTPS(flagTPS)
	ebiten.SetVsyncEnabled(true)

	return ebiten.RunGame(app)
}

// Hitkit implements ebiten.Game interface.
type Hitkit struct {
	ui     *ui.Controller
	logger *log.Logger

	touch    touchTracker
	prevLeft ui.ButtonState
}

func (g *Hitkit) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.ui.SetDebug(!g.ui.Debug())
	}

	s, ok := g.touch.sample(currentTouches())
	if !ok {
		s = ui.CursorSample()
	}
	g.step(s)
	ebiten.SetCursorShape(g.ui.CursorShape(s))
	return nil
}

// step feeds one sample to the UI. A left press that lands outside every
// panel and control is logged as a background click.
func (g *Hitkit) step(s ui.PointerSample) (background bool) {
	justPressed := s.Left.IsPressed() && !g.prevLeft.IsPressed()
	g.prevLeft = s.Left

	// Only report background clicks when the press is not on UI
	if justPressed && !g.ui.Captures(s) {
		g.logger.Debug("background click", "x", s.Position.X, "y", s.Position.Y)
		background = true
	}

	g.ui.Update(s)
	return background
}

func (g *Hitkit) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 30, G: 34, B: 40, A: 255})
	g.ui.Draw(screen)
	if g.ui.Debug() {
		g.ui.ShowDebugInfo(screen)
	}
}

func (g *Hitkit) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b geom.Point) geom.Point {
	return a.Add(b).Scale(0.5)
}
