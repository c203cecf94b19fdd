// Package game is the entry point used by every outer layer: the engine,
// the console, saves and simulations. A Game owns one State and serializes
// all access to it behind a mutex, so ticks, purchases and snapshots never
// interleave.
package game

import (
	"io"
	"log/slog"
	"sync"

	"github.com/LeJamon/goMFS/internal/clock"
	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/fishing"
	"github.com/LeJamon/goMFS/internal/core/format"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/core/upgrade"
)

// Game is safe for concurrent use.
type Game struct {
	mu       sync.Mutex
	state    *state.State
	registry *upgrade.Registry
	clock    clock.Clock
	logger   *slog.Logger
	ticks    uint64
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the clock used for container timestamps and save times.
func WithClock(c clock.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithState starts the game from s instead of a fresh state. The game takes
// ownership of s.
func WithState(s *state.State) Option {
	return func(g *Game) {
		g.state = s
	}
}

// WithCoefficients starts a fresh game with the given balance.
func WithCoefficients(c state.Coefficients) Option {
	return func(g *Game) {
		g.state = state.New(c)
	}
}

// WithRegistry replaces the upgrade catalogue.
func WithRegistry(r *upgrade.Registry) Option {
	return func(g *Game) {
		g.registry = r
	}
}

// New creates a game.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if g.state == nil {
		g.state = state.New(state.DefaultCoefficients())
	}
	if g.registry == nil {
		g.registry = upgrade.Default()
	}
	if g.clock == nil {
		g.clock = clock.System{}
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g
}

// Registry returns the upgrade catalogue.
func (g *Game) Registry() *upgrade.Registry {
	return g.registry
}

// Update advances the simulation by dt milliseconds and then runs the
// auto-purchase loop.
func (g *Game) Update(dt float64) upgrade.AutoResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ticks++
	fishing.Tick(g.state, dt)
	res := g.registry.RunAuto(g.state, g.now())

	switch {
	case res.Parallelized:
		g.logger.Info("auto parallelized", "multiverses", g.state.ParallelMultiverses)
	case res.Ascended:
		g.logger.Info("auto ascended", "tier", g.state.CurrentTier)
	case res.Multiplied:
		g.logger.Debug("auto multiplied", "tier", g.state.CurrentTier, "count", g.state.TierCount)
	}
	if res.Purchases > 0 {
		g.logger.Debug("auto purchased", "count", res.Purchases)
	}
	return res
}

// Ticks returns how many times Update has run.
func (g *Game) Ticks() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ticks
}

// StartFishing starts a catch, or queues more when one is under way.
func (g *Game) StartFishing() {
	g.mu.Lock()
	defer g.mu.Unlock()
	fishing.Start(g.state)
}

// CollectNets moves the fish held in nets into the balance.
func (g *Game) CollectNets() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fishing.Collect(g.state)
}

// Buy purchases one level of the upgrade id.
func (g *Game) Buy(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	ok := g.registry.Purchase(g.state, id)
	if ok {
		g.logger.Debug("upgrade purchased", "id", id, "fish", format.Number(g.state.Fish))
	}
	return ok
}

// BuyMax buys id while affordable and returns the number of levels bought.
// It buys nothing unless a matching max buyer is owned.
func (g *Game) BuyMax(id string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.registry.BuyMax(g.state, id)
}

// SetAutoBuy toggles automatic purchase of id.
func (g *Game) SetAutoBuy(id string, enabled bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.registry.SetAutoBuy(g.state, id, enabled)
}

func (g *Game) BuyRod() bool                 { return g.Buy(state.Rod) }
func (g *Game) BuyNet() bool                 { return g.Buy(state.Net) }
func (g *Game) BuyBait() bool                { return g.Buy(state.Bait) }
func (g *Game) BuyCatchFishMultiplier() bool { return g.Buy(state.CatchMultiplier) }
func (g *Game) BuyFishingMastery() bool      { return g.Buy(state.FishingMastery) }
func (g *Game) BuyNetMastery() bool          { return g.Buy(state.NetMastery) }
func (g *Game) BuyBaitMastery() bool         { return g.Buy(state.BaitMastery) }

// Offers lists the available upgrades, cheapest first.
func (g *Game) Offers() []upgrade.Offer {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.registry.Offers(g.state)
}

func (g *Game) now() int64 {
	return clock.UnixMilli(g.clock)
}

// FormatNumber renders n for display.
func FormatNumber(n bignum.Number) string {
	return format.Number(n)
}

// CompareNumbers returns -1, 0 or 1.
func CompareNumbers(a, b bignum.Number) int {
	return a.Cmp(b)
}
