package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goMFS/internal/config"
	"github.com/LeJamon/goMFS/internal/console"
	"github.com/LeJamon/goMFS/internal/core/game"
	"github.com/LeJamon/goMFS/internal/engine"
	"github.com/LeJamon/goMFS/internal/metrics"
	"github.com/LeJamon/goMFS/internal/storage/savestore"
)

var (
	// Run flags
	runSlot        string
	runInteractive bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the game loop",
	Long: `Run the game at the configured tick rate, autosaving into the configured
slot and writing metrics when a textfile is configured. The game resumes from
the slot when it exists.

Changes to the configuration file are picked up while running: the log level
and the balance preset apply immediately. Interrupt to save and stop.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runSlot, "slot", "", "save slot (default from config)")
	runCmd.Flags().BoolVarP(&runInteractive, "interactive", "i", false, "attach the debug console to stdin")
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	if runSlot != "" {
		s.cfg.Storage.Slot = runSlot
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, s)
	if err != nil {
		return err
	}
	defer store.Close()

	g, err := loadGame(ctx, s, store)
	if err != nil {
		return err
	}

	slotSaver := &savestore.SlotSaver{
		Store:  store,
		Slot:   s.cfg.Storage.Slot,
		Format: s.cfg.Storage.SnapshotFormat(),
		Source: g,
	}
	opts := []engine.Option{
		engine.WithLogger(s.logger),
		engine.WithSaver(slotSaver),
	}
	if path := s.cfg.Metrics.Textfile; path != "" {
		m := metrics.New(g)
		opts = append(opts,
			engine.WithObserver(m),
			engine.WithSaver(metrics.TextfileSaver{Metrics: m, Path: path}))
	}
	eng := engine.New(g, s.cfg.EngineConfig(), opts...)

	if s.loader.Watch(func(cfg *config.Config) { reload(s, g, cfg) }, func(err error) {
		s.logger.Warn("config reload rejected", "err", err)
	}) {
		s.logger.Info("watching config", "path", s.cfg.GetConfigPath())
	}

	if !runInteractive {
		return eng.Run(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	con := console.New(g,
		console.WithSaver(eng),
		console.WithStats(eng.Stats),
		console.WithLogger(s.logger))

	// The console blocks on stdin, so it is not waited for on shutdown.
	go func() {
		defer cancel()
		if err := con.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			s.logger.Warn("console stopped", "err", err)
		}
	}()
	return eng.Run(ctx)
}

// reload applies the parts of a changed configuration that a running game
// can take without a restart.
func reload(s *session, g *game.Game, cfg *config.Config) {
	if err := applyLogLevel(s.level, cfg.Log); err != nil {
		s.logger.Warn("config reload rejected", "err", err)
		return
	}
	if cfg.Game != s.cfg.Game {
		g.ApplyCoefficients(cfg.Game.Coefficients())
	}
	if cfg.Game.TickRate != s.cfg.Game.TickRate || cfg.Storage != s.cfg.Storage {
		s.logger.Warn("tick rate and storage changes apply after a restart")
	}
	s.cfg.Game = cfg.Game
	s.cfg.Log = cfg.Log
	s.logger.Info("config reloaded", "preset", cfg.Game.Preset, "log_level", cfg.Log.Level)
}

// openStore opens the configured save store.
func openStore(ctx context.Context, s *session) (savestore.Store, error) {
	store, err := savestore.Open(ctx, s.cfg.Storage.StoreConfig(), s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open save store: %w", err)
	}
	return store, nil
}

// loadGame resumes the configured slot, or starts a new game with the
// configured balance when the slot is empty.
func loadGame(ctx context.Context, s *session, store savestore.Store) (*game.Game, error) {
	slot := s.cfg.Storage.Slot
	st, err := savestore.LoadState(ctx, store, slot)
	switch {
	case errors.Is(err, savestore.ErrSlotNotFound):
		s.logger.Info("starting new game", "slot", slot, "preset", s.cfg.Game.Preset)
		return game.New(game.WithState(s.cfg.Game.NewState()), game.WithLogger(s.logger)), nil
	case err != nil:
		return nil, err
	}

	s.logger.Info("resumed game", "slot", slot, "tier", st.CurrentTier, "multiverses", st.ParallelMultiverses)
	return game.New(game.WithState(st), game.WithLogger(s.logger)), nil
}
