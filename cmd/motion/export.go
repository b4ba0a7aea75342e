package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phanxgames/motion/host"
	"github.com/phanxgames/motion/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

var exportCmd = &cobra.Command{
	Use:   "export <scenario>",
	Short: "Render every frame of a scenario to numbered PNG files",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("out-dir", "frames", "directory for the PNG frames")
	exportCmd.Flags().Int("workers", 0, "concurrent PNG encoders (default: number of CPUs)")
	_ = viper.BindPFlag("out_dir", exportCmd.Flags().Lookup("out-dir"))
	_ = viper.BindPFlag("workers", exportCmd.Flags().Lookup("workers"))

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := args[0]
	scene, err := loadScene(path, cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", cfg.OutDir, err)
	}

	label := scene.Name
	if label == "" {
		label = "frame"
	}
	frames := cfg.Frames()
	src := host.NewFixedStep(cfg.FPS, cfg.Seconds)
	h := host.New(host.NewTimelinePlugin(scene.Timeline))
	if err := h.Register(); err != nil {
		return err
	}
	defer unregisterInto(h, &err)

	// Frames are simulated in order; encoding runs on up to Workers
	// goroutines, each with its own copy of the pixels.
	raster := render.NewRaster(scene.Width, scene.Height)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Workers)
	for i := 1; i <= frames; i++ {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return err
		}
		raster.Draw(render.Snapshot(scene, i))
		img := raster.Image()
		out := render.FramePath(cfg.OutDir, label, i)
		g.Go(func() error {
			return render.WritePNG(out, img)
		})

		dt, ok := src.Next()
		if !ok {
			break
		}
		if err := h.Step(dt); err != nil {
			_ = g.Wait()
			return err
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("motion: exported frames", "path", path, "frames", frames, "dir", cfg.OutDir)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", frames, cfg.OutDir)
	return nil
}
