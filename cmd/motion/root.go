package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phanxgames/motion"
	"github.com/phanxgames/motion/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "motion",
	Short:         "Frame-driven animation timelines",
	Long:          "Motion runs declarative animation scenarios headless, in a window, or frame by frame to PNG.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .motion.yaml)")
	flags.BoolP("verbose", "v", false, "log timeline lifecycle at debug level")
	flags.Int("fps", 60, "frames per simulated second")
	flags.Float64("seconds", 5, "simulated seconds to run")
	flags.Int("width", 0, "override the scenario canvas width")
	flags.Int("height", 0, "override the scenario canvas height")

	for _, key := range []string{"verbose", "fps", "seconds", "width", "height"} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".motion")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MOTION")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadConfig loads the merged configuration and installs the logger it
// asks for.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if f := viper.ConfigFileUsed(); f != "" {
		slog.Debug("motion: using config file", "path", f)
	}
	return cfg, nil
}

func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	motion.SetLogger(logger)
	motion.SetDebugMode(verbose)
	return logger
}
