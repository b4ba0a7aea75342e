package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/phanxgames/motion"
	"github.com/phanxgames/motion/host"
	"github.com/phanxgames/motion/internal/config"
	"github.com/phanxgames/motion/scenario"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>...",
	Short: "Simulate scenarios headless and print their final fields",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().String("script", "", "JSON delta script replacing the fixed fps step")
	_ = viper.BindPFlag("script", runCmd.Flags().Lookup("script"))

	rootCmd.AddCommand(runCmd)
}

// runResult is the outcome of one headless scenario run.
type runResult struct {
	path    string
	frames  int
	elapsed float64
	state   motion.State
	scene   *scenario.Scene
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var script []byte
	if cfg.Script != "" {
		script, err = os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("reading delta script: %w", err)
		}
	}

	// Every scenario owns its targets, so the runs share nothing.
	results := make([]runResult, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Workers)
	for i, path := range args {
		g.Go(func() error {
			res, err := simulate(ctx, path, cfg, script)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		printResult(out, res)
	}
	return nil
}

// simulate loads one scenario and drives it with either the delta script or
// a fixed fps step.
func simulate(ctx context.Context, path string, cfg config.Config, script []byte) (runResult, error) {
	scene, err := scenario.Load(path)
	if err != nil {
		return runResult{}, err
	}

	var src host.DeltaSource = host.NewFixedStep(cfg.FPS, cfg.Seconds)
	if script != nil {
		s, err := host.LoadScript(script)
		if err != nil {
			return runResult{}, err
		}
		src = s
	}

	h := host.New(host.NewTimelinePlugin(scene.Timeline))
	frames, err := h.Drive(ctx, src)
	unregisterInto(h, &err)
	if err != nil {
		return runResult{}, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("motion: scenario simulated", "path", path, "frames", frames, "state", scene.Timeline.State())
	return runResult{
		path:    path,
		frames:  frames,
		elapsed: h.Elapsed(),
		state:   scene.Timeline.State(),
		scene:   scene,
	}, nil
}

func printResult(w io.Writer, res runResult) {
	fmt.Fprintf(w, "%s: %d frames, %.3fs, %s\n", res.path, res.frames, res.elapsed, res.state)
	for _, t := range res.scene.Targets {
		printRecord(w, t.Name, t.Record)
	}
}

// printRecord writes every field of rec as "prefix.field = value", depth
// first, in sorted order.
func printRecord(w io.Writer, prefix string, rec *motion.Record) {
	for _, name := range rec.FieldNames() {
		v, _ := rec.Get(name)
		fmt.Fprintf(w, "  %s.%s = %s\n", prefix, name, strconv.FormatFloat(v, 'g', 6, 64))
	}
	for _, name := range rec.ChildNames() {
		printRecord(w, strings.Join([]string{prefix, name}, "."), rec.ChildRecord(name))
	}
}

// unregisterInto unregisters h and stores the failure in *err unless an
// earlier error is already there.
func unregisterInto(h *host.Host, err *error) {
	if uerr := h.Unregister(); uerr != nil && *err == nil {
		*err = uerr
	}
}
