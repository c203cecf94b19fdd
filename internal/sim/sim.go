package sim

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/goMFS/internal/clock"
	"github.com/LeJamon/goMFS/internal/core/game"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/engine"
)

// Scenario is one headless run.
type Scenario struct {
	Name string
	// State is the starting state; it is copied.
	State    *state.State
	Duration time.Duration
	TickRate int
}

// Result is the outcome of a scenario.
type Result struct {
	Name    string
	Summary game.Summary
	Actions Actions
	Engine  engine.Stats
	// Elapsed is the wall time the run took.
	Elapsed time.Duration
}

// Run plays one scenario on a manual clock, advancing it one tick
// interval per step, so game time runs as fast as the host allows.
func Run(ctx context.Context, sc Scenario, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if sc.State == nil {
		return Result{}, fmt.Errorf("scenario %q has no state", sc.Name)
	}

	clk := clock.NewManual()
	g := game.New(game.WithClock(clk), game.WithState(sc.State.Clone()), game.WithLogger(logger))

	cfg := engine.DefaultConfig()
	if sc.TickRate > 0 {
		cfg.TickRate = sc.TickRate
	}
	cfg.AutosaveTicks = 0
	cfg.AutosaveInterval = 0
	eng := engine.New(g, cfg, engine.WithClock(clk), engine.WithLogger(logger))

	player := NewPlayer(g)
	interval := cfg.Interval()
	ticks := int(sc.Duration / interval)

	start := time.Now()
	for i := 0; i < ticks; i++ {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		player.Act()
		clk.Advance(interval)
		if err := eng.Step(ctx); err != nil {
			return Result{}, fmt.Errorf("scenario %q tick %d: %w", sc.Name, i, err)
		}
	}

	res := Result{
		Name:    sc.Name,
		Summary: g.Summary(),
		Actions: player.Actions(),
		Engine:  eng.Stats(),
		Elapsed: time.Since(start),
	}
	logger.Info("simulation finished",
		"scenario", sc.Name,
		"ticks", res.Engine.Ticks,
		"tier", res.Summary.Tier,
		"elapsed", res.Elapsed)
	return res, nil
}

// RunAll plays every scenario concurrently. Results keep the order of
// scenarios; the first failure cancels the rest.
func RunAll(ctx context.Context, scenarios []Scenario, logger *slog.Logger) ([]Result, error) {
	results := make([]Result, len(scenarios))

	g, gCtx := errgroup.WithContext(ctx)
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			res, err := Run(gCtx, sc, logger)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
