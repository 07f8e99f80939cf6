//go:build ebiten

package app

import (
	"uncurl/internal/grid"
	"uncurl/internal/render"
	"uncurl/internal/ui"
	"uncurl/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const resetDuration = 0.25 // seconds, Home-key view reset

// Game adapts the mapped grid and its view state to the ebiten.Game
// interface. All state mutation happens in Update; the event loop is
// single-threaded by construction.
type Game struct {
	grid    *grid.Grid
	view    *view.View
	picker  *view.Picker
	painter *render.ImagePainter
	hud     *ui.HUD
	status  ui.Status

	sinks         []Sink
	exitOnClick   bool
	snapshotDir   string
	snapshotScale int

	panning      bool
	lastX, lastY int
}

// New constructs a Game for the mapped grid.
func New(g *grid.Grid, cfg *Config) *Game {
	v := view.New(cfg.Window, cfg.Window)
	v.Sensitivity = cfg.Sensitivity
	return &Game{
		grid:          g,
		view:          v,
		picker:        view.NewPicker(v, g),
		painter:       render.NewImagePainter(g),
		hud:           ui.NewHUD(),
		sinks:         cfg.Sinks(),
		exitOnClick:   cfg.ExitOnClick,
		snapshotDir:   cfg.SnapshotDir,
		snapshotScale: cfg.SnapshotScale,
	}
}

// Update handles one tick of input events.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.view.ResetTo(resetDuration)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if path, err := render.WriteSnapshot(g.snapshotDir, g.grid, g.snapshotScale); err != nil {
			tracer().Errorf("%v", err)
		} else {
			tracer().Infof("snapshot written to %s", path)
		}
	}

	mx, my := ebiten.CursorPosition()

	// Right-button drag pans by raw cursor deltas.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.panning = true
		g.lastX, g.lastY = mx, my
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.panning = false
	}
	if g.panning {
		g.view.Pan(float64(mx-g.lastX), float64(my-g.lastY))
		g.lastX, g.lastY = mx, my
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.view.ZoomAt(float64(mx), float64(my), wy)
	}

	idx, hovered := g.picker.Resolve(float64(mx), float64(my))
	g.status = ui.Status{Width: g.grid.Width, Scale: g.view.Scale, Offset: idx, Hovered: hovered}

	if hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		tracer().Debugf("picked record %d at (%d,%d)", idx, mx, my)
		for _, sink := range g.sinks {
			if err := sink.Emit(idx); err != nil {
				tracer().Errorf("click sink: %v", err)
			}
		}
		if g.exitOnClick {
			return ebiten.Termination
		}
	}

	g.hud.Update()
	g.view.Update(1.0 / float32(ebiten.TPS()))
	return nil
}

// Draw renders the mapped image under the current view transform.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.view)
	g.hud.Draw(screen, g.status)
}

// Layout keeps the view transform in sync with the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
