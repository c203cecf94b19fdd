// Package engine drives a simulation at a fixed tick rate.
//
// The engine measures the simulated time between ticks from its clock,
// clamps it, hands it to the simulation and then decides whether an
// autosave is due. Step performs exactly one tick and is what tests and
// simulations call; Run loops Step on a ticker until its context ends.
package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/LeJamon/goMFS/internal/clock"
	"github.com/LeJamon/goMFS/internal/core/upgrade"
)

// Simulation is advanced once per tick by dt milliseconds.
type Simulation interface {
	Update(dt float64) upgrade.AutoResult
}

// Saver persists the simulation. Savers run between ticks.
type Saver interface {
	Save(ctx context.Context) error
}

// Observer is notified after every tick and save.
type Observer interface {
	ObserveTick(d time.Duration, slow bool)
	ObserveSave(d time.Duration, err error)
}

// Config tunes the scheduler.
type Config struct {
	TickRate          int
	AutosaveTicks     int
	AutosaveInterval  time.Duration
	SlowTickThreshold time.Duration
	MaxDelta          time.Duration
}

// DefaultConfig runs at 10 Hz and autosaves every 30 seconds.
func DefaultConfig() Config {
	return Config{
		TickRate:          10,
		AutosaveTicks:     300,
		AutosaveInterval:  30 * time.Second,
		SlowTickThreshold: 100 * time.Millisecond,
		MaxDelta:          time.Second,
	}
}

// Interval is the wall time between ticks.
func (c Config) Interval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 10
	}
	return time.Second / time.Duration(c.TickRate)
}

// Engine schedules ticks and autosaves.
type Engine struct {
	cfg      Config
	sim      Simulation
	savers   []Saver
	observer Observer
	clock    clock.Clock
	logger   *slog.Logger

	mu             sync.Mutex
	last           time.Time
	lastSave       time.Time
	ticksSinceSave int
	stats          Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used for deltas, durations and autosave timing.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithSaver adds an autosave target. Savers run in the order given.
func WithSaver(s Saver) Option {
	return func(e *Engine) {
		e.savers = append(e.savers, s)
	}
}

// WithObserver sets the tick observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// New creates an engine for sim.
func New(sim Simulation, cfg Config, opts ...Option) *Engine {
	e := &Engine{cfg: cfg, sim: sim}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = clock.System{}
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Step runs one tick and any autosave that became due.
func (e *Engine) Step(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	if e.last.IsZero() {
		e.last = now.Add(-e.cfg.Interval())
		e.lastSave = now
		e.stats.StartedAt = e.last
	}
	dt := e.clampDelta(now.Sub(e.last))
	e.last = now

	res := e.sim.Update(float64(dt) / float64(time.Millisecond))
	took := e.clock.Now().Sub(now)
	e.recordTick(dt, took, res)

	e.ticksSinceSave++
	if e.autosaveDue(now) {
		return e.saveLocked(ctx)
	}
	return nil
}

func (e *Engine) clampDelta(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if e.cfg.MaxDelta > 0 && dt > e.cfg.MaxDelta {
		return e.cfg.MaxDelta
	}
	return dt
}

func (e *Engine) recordTick(dt, took time.Duration, res upgrade.AutoResult) {
	e.stats.Ticks++
	e.stats.GameTime += dt
	e.stats.TotalTickTime += took
	if took > e.stats.MaxTickTime {
		e.stats.MaxTickTime = took
	}
	e.stats.AutoPurchases += uint64(res.Purchases)
	if res.Multiplied || res.Ascended || res.Parallelized {
		e.stats.AutoPrestiges++
	}

	slow := e.cfg.SlowTickThreshold > 0 && took > e.cfg.SlowTickThreshold
	if slow {
		e.stats.SlowTicks++
		e.logger.Warn("slow tick", "tick", e.stats.Ticks, "took", took, "threshold", e.cfg.SlowTickThreshold)
	}
	if e.observer != nil {
		e.observer.ObserveTick(took, slow)
	}
}

func (e *Engine) autosaveDue(now time.Time) bool {
	if len(e.savers) == 0 {
		return false
	}
	if e.cfg.AutosaveTicks > 0 && e.ticksSinceSave >= e.cfg.AutosaveTicks {
		return true
	}
	return e.cfg.AutosaveInterval > 0 && now.Sub(e.lastSave) >= e.cfg.AutosaveInterval
}

// Save runs every saver now.
func (e *Engine) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saveLocked(ctx)
}

func (e *Engine) saveLocked(ctx context.Context) error {
	start := e.clock.Now()
	e.ticksSinceSave = 0
	e.lastSave = start

	var errs []error
	for _, s := range e.savers {
		if err := s.Save(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)
	took := e.clock.Now().Sub(start)

	e.stats.Saves++
	if err != nil {
		e.stats.SaveErrors++
		e.logger.Error("autosave failed", "err", err)
	} else {
		e.logger.Debug("saved", "tick", e.stats.Ticks, "took", took)
	}
	if e.observer != nil {
		e.observer.ObserveSave(took, err)
	}
	return err
}

// Run ticks until ctx is done, then saves a final time. Tick errors are
// logged and do not stop the loop.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.cfg.Interval())
	defer ticker.Stop()

	e.logger.Info("engine started", "tick_rate", e.cfg.TickRate)
	for {
		select {
		case <-ctx.Done():
			// ctx is already done, so the final save must not inherit it.
			err := e.Save(context.WithoutCancel(ctx))
			st := e.Stats()
			e.logger.Info("engine stopped",
				"ticks", st.Ticks,
				"game_time", st.GameTime,
				"slow_ticks", st.SlowTicks)
			return err
		case <-ticker.C:
			_ = e.Step(ctx)
		}
	}
}

// Stats returns a copy of the running statistics.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.stats
	st.Now = e.last
	return st
}
