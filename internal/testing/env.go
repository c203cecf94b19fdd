package testing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMFS/internal/clock"
	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/game"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/engine"
	"github.com/LeJamon/goMFS/internal/snapshot"
	"github.com/LeJamon/goMFS/internal/storage/savestore"
)

// DefaultSlot is the slot TestEnv saves into.
const DefaultSlot = "test"

// TestEnv is a deterministic game session for scenario tests.
type TestEnv struct {
	t      *testing.T
	clock  *clock.Manual
	game   *game.Game
	engine *engine.Engine
	store  *savestore.MemoryStore
	cfg    engine.Config
	format snapshot.Format
}

// EnvOption configures a TestEnv.
type EnvOption func(*envOptions)

type envOptions struct {
	state  *state.State
	cfg    engine.Config
	format snapshot.Format
}

// WithState starts the environment from a copy of s.
func WithState(s *state.State) EnvOption {
	return func(o *envOptions) {
		o.state = s.Clone()
	}
}

// WithCoefficients starts a fresh game with the given balance.
func WithCoefficients(c state.Coefficients) EnvOption {
	return func(o *envOptions) {
		o.state = state.New(c)
	}
}

// WithEngineConfig overrides the scheduler settings.
func WithEngineConfig(cfg engine.Config) EnvOption {
	return func(o *envOptions) {
		o.cfg = cfg
	}
}

// WithFormat selects the snapshot encoding of saves.
func WithFormat(f snapshot.Format) EnvOption {
	return func(o *envOptions) {
		o.format = f
	}
}

// NewTestEnv creates an environment with a fresh game.
func NewTestEnv(t *testing.T, opts ...EnvOption) *TestEnv {
	t.Helper()

	o := envOptions{
		state:  state.New(state.DefaultCoefficients()),
		cfg:    engine.DefaultConfig(),
		format: snapshot.FormatJSON,
	}
	for _, opt := range opts {
		opt(&o)
	}

	env := &TestEnv{
		t:      t,
		clock:  clock.NewManual(),
		store:  savestore.NewMemoryStore(),
		cfg:    o.cfg,
		format: o.format,
	}
	env.start(o.state)
	t.Cleanup(func() { env.store.Close() })
	return env
}

func (e *TestEnv) start(s *state.State) {
	e.game = game.New(game.WithClock(e.clock), game.WithState(s))
	saver := &savestore.SlotSaver{
		Store:  e.store,
		Slot:   DefaultSlot,
		Format: e.format,
		Source: e.game,
	}
	e.engine = engine.New(e.game, e.cfg, engine.WithClock(e.clock), engine.WithSaver(saver))
}

// Game returns the game under test.
func (e *TestEnv) Game() *game.Game {
	return e.game
}

// Engine returns the engine driving the game.
func (e *TestEnv) Engine() *engine.Engine {
	return e.engine
}

// Store returns the in-memory save store.
func (e *TestEnv) Store() *savestore.MemoryStore {
	return e.store
}

// Now returns the current test time.
func (e *TestEnv) Now() time.Time {
	return e.clock.Now()
}

// Tick advances the clock by one tick interval and runs one engine step.
func (e *TestEnv) Tick() {
	e.t.Helper()
	e.clock.Advance(e.cfg.Interval())
	require.NoError(e.t, e.engine.Step(context.Background()))
}

// Advance runs as many ticks as fit in d.
func (e *TestEnv) Advance(d time.Duration) {
	e.t.Helper()
	n := int(d / e.cfg.Interval())
	for i := 0; i < n; i++ {
		e.Tick()
	}
}

// Cast starts fishing.
func (e *TestEnv) Cast() {
	e.game.StartFishing()
}

// Fund credits n fish.
func (e *TestEnv) Fund(n bignum.Number) {
	e.game.AddFish(n)
}

// Fish returns the current balance.
func (e *TestEnv) Fish() bignum.Number {
	return e.game.Fish()
}

// State returns a copy of the game state.
func (e *TestEnv) State() *state.State {
	return e.game.State()
}

// Save forces a save into DefaultSlot.
func (e *TestEnv) Save() {
	e.t.Helper()
	require.NoError(e.t, e.engine.Save(context.Background()))
}

// Reload replaces the game with the one stored in DefaultSlot, as a
// restarted server would.
func (e *TestEnv) Reload() {
	e.t.Helper()
	s, err := savestore.LoadState(context.Background(), e.store, DefaultSlot)
	require.NoError(e.t, err)
	e.start(s)
}
