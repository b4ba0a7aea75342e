package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/motion"
)

// Drawer renders the current state of the animated targets. It must only
// read them.
type Drawer interface {
	Draw(screen *ebiten.Image)
}

// DrawerFunc adapts a func to Drawer.
type DrawerFunc func(screen *ebiten.Image)

// Draw implements Drawer.
func (f DrawerFunc) Draw(screen *ebiten.Image) { f(screen) }

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ShowFPS    bool
	ClearColor motion.Color

	// Source overrides the frame delta. When nil each tick advances
	// 1/ebiten.TPS() seconds. The window closes when Source runs out.
	Source DeltaSource
}

// Game adapts a Host and a Drawer to ebiten.Game.
type Game struct {
	host   *Host
	drawer Drawer
	cfg    RunConfig
}

// NewGame returns an ebiten.Game stepping h once per tick and drawing with d.
func NewGame(h *Host, d Drawer, cfg RunConfig) *Game {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	return &Game{host: h, drawer: d, cfg: cfg}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	if g.cfg.Source != nil {
		next, ok := g.cfg.Source.Next()
		if !ok {
			return ebiten.Termination
		}
		dt = next
	}
	return g.host.Step(dt)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.NRGBA())
	if g.drawer != nil {
		g.drawer.Draw(screen)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nframe %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.host.Frame()))
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives h until the window is closed or the delta
// source runs out. The host's plugins are registered before the first frame
// and unregistered when the loop ends.
func Run(h *Host, d Drawer, cfg RunConfig) (err error) {
	g := NewGame(h, d, cfg)
	if err := h.Register(); err != nil {
		return err
	}
	defer func() {
		if uerr := h.Unregister(); uerr != nil && err == nil {
			err = uerr
		}
	}()

	title := cfg.Title
	if title == "" {
		title = "motion"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	return ebiten.RunGame(g)
}
