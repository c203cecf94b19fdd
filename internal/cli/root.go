package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goMFS/internal/config"
)

var (
	// Global flags
	configFile string
	debug      bool
	quiet      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mfsd",
	Short: "goMFS - multiverse fishing simulator",
	Long: `mfsd runs the multiverse fishing simulator headlessly: a fixed-rate
game loop with autosaves to a pluggable save store, a debug console and a
fast-forward simulator for balance presets.`,
	Version:       "0.1.0-dev",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
}

// session is the configuration and logger shared by every command.
type session struct {
	cfg    *config.Config
	loader *config.Loader
	logger *slog.Logger
	level  *slog.LevelVar
}

// loadSession reads the configuration and builds the logger.
func loadSession() (*session, error) {
	loader := config.NewLoader(configFile)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	level := new(slog.LevelVar)
	if err := applyLogLevel(level, cfg.Log); err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		loader: loader,
		logger: newLogger(os.Stderr, cfg.Log, level),
		level:  level,
	}, nil
}

// applyLogLevel sets level from the configuration, then lets --debug and
// --quiet override it.
func applyLogLevel(level *slog.LevelVar, lc config.LogConfig) error {
	l, err := lc.SlogLevel()
	if err != nil {
		return err
	}
	switch {
	case debug:
		l = slog.LevelDebug
	case quiet:
		l = slog.LevelError
	}
	level.Set(l)
	return nil
}

func newLogger(w io.Writer, lc config.LogConfig, level *slog.LevelVar) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
