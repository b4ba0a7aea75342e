package main

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/motion/host"
	"github.com/phanxgames/motion/internal/config"
	"github.com/phanxgames/motion/render"
	"github.com/phanxgames/motion/scenario"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var playCmd = &cobra.Command{
	Use:   "play <scenario>",
	Short: "Play a scenario in a window",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().Bool("watch", false, "reload the scenario when the file changes")
	playCmd.Flags().Bool("show-fps", false, "print FPS and TPS in the corner")
	playCmd.Flags().Bool("labels", true, "draw grid labels")
	_ = viper.BindPFlag("watch", playCmd.Flags().Lookup("watch"))
	_ = viper.BindPFlag("show_fps", playCmd.Flags().Lookup("show-fps"))

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := args[0]

	scene, err := loadScene(path, cfg)
	if err != nil {
		return err
	}
	p := newPlayer(scene)
	p.screen.Labels, _ = cmd.Flags().GetBool("labels")
	p.reload = func() {
		next, err := loadScene(path, cfg)
		if err != nil {
			slog.Warn("motion: reload failed, keeping previous scenario", "path", path, "err", err)
			return
		}
		p.swap(next)
		slog.Info("motion: scenario reloaded", "path", path)
	}

	if cfg.Watch {
		w, err := newFileWatcher(path, p.reload)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	title := scene.Name
	if title == "" {
		title = path
	}
	return host.Run(host.New(p), p, host.RunConfig{
		Title:      "motion: " + title,
		Width:      scene.Width,
		Height:     scene.Height,
		ShowFPS:    cfg.ShowFPS,
		ClearColor: scene.Background,
	})
}

// loadScene loads a scenario and applies the canvas overrides from cfg.
func loadScene(path string, cfg config.Config) (*scenario.Scene, error) {
	scene, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.Width > 0 {
		scene.Width = cfg.Width
	}
	if cfg.Height > 0 {
		scene.Height = cfg.Height
	}
	return scene, nil
}

// player is both the plugin that advances the scenario and the drawer that
// renders it. Reloaded scenarios arrive from the watcher goroutine and are
// swapped in at the start of the next frame.
//
// Space pauses and resumes; R reloads the scenario from disk, which restarts
// it from its initial field values.
type player struct {
	scene   *scenario.Scene
	pending atomic.Pointer[scenario.Scene]
	screen  render.Screen
	frame   int
	paused  bool
	reload  func()
}

func newPlayer(s *scenario.Scene) *player {
	return &player{scene: s}
}

func (p *player) swap(s *scenario.Scene) { p.pending.Store(s) }

func (p *player) Name() string { return "scenario " + p.scene.Name }

func (p *player) Register() error { return p.scene.Timeline.Start() }

func (p *player) Unregister() error { return nil }

func (p *player) Update(dt float64) error {
	p.handleKeys()
	if next := p.pending.Swap(nil); next != nil {
		if err := next.Timeline.Start(); err != nil {
			slog.Warn("motion: reloaded scenario cannot start", "err", err)
		} else {
			p.scene = next
			p.frame = 0
		}
	}
	if p.paused {
		return nil
	}
	p.frame++
	if err := p.scene.Timeline.Update(dt); err != nil {
		return fmt.Errorf("frame %d: %w", p.frame, err)
	}
	return nil
}

func (p *player) Draw(screen *ebiten.Image) {
	p.screen.Draw(screen, render.Snapshot(p.scene, p.frame))
}

func (p *player) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && p.reload != nil {
		p.reload()
	}
}
