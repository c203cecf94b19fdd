package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMFS/internal/clock"
	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/game"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

func TestPlayer_Act(t *testing.T) {
	g := game.New(game.WithClock(clock.NewManual()))
	p := NewPlayer(g)

	p.Act()
	assert.True(t, g.Summary().Fishing)
	assert.Equal(t, 1, p.Actions().Casts)

	p.Act()
	assert.Equal(t, 1, p.Actions().Casts, "does not recast while fishing")

	g.AddFish(bignum.FromInt(10))
	p.Act()
	assert.Equal(t, 1, p.Actions().Purchases)
	assert.Equal(t, 1, g.State().LocalUpgrades.RodLevel)
}

func TestPlayer_Prestige(t *testing.T) {
	g := game.New(game.WithClock(clock.NewManual()))
	p := NewPlayer(g)

	g.SetFish(g.AscendCost())
	p.Act()
	assert.Equal(t, 1, p.Actions().Ascends)
	assert.Equal(t, tier.Lake, g.CurrentTier())

	g.SetTier(tier.Universe)
	g.SetFish(g.AscendCost())
	p.Act()
	assert.Equal(t, 1, p.Actions().Parallelizes)
	assert.Equal(t, 2, g.Summary().ParallelMultiverses)
}

func TestRun(t *testing.T) {
	sc := Scenario{
		Name:     "normal",
		State:    state.New(state.DefaultCoefficients()),
		Duration: time.Minute,
	}

	res, err := Run(context.Background(), sc, nil)
	require.NoError(t, err)

	assert.Equal(t, "normal", res.Name)
	assert.Equal(t, uint64(600), res.Engine.Ticks)
	assert.Equal(t, time.Minute, res.Engine.GameTime)
	assert.Positive(t, res.Actions.Casts)
	assert.Positive(t, res.Actions.Purchases)
	assert.Positive(t, res.Summary.Stats.Catches)
	assert.True(t, sc.State.Fish.IsZero(), "scenario state is not mutated")
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(context.Background(), Scenario{Name: "empty"}, nil)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, Scenario{
		Name:     "cancelled",
		State:    state.New(state.DefaultCoefficients()),
		Duration: time.Hour,
	}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunAll(t *testing.T) {
	fast := state.DefaultCoefficients()
	fast.FishingSpeedMultiplier = 4

	scenarios := []Scenario{
		{Name: "normal", State: state.New(state.DefaultCoefficients()), Duration: 30 * time.Second},
		{Name: "fast", State: state.New(fast), Duration: 30 * time.Second},
	}

	results, err := RunAll(context.Background(), scenarios, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "normal", results[0].Name)
	assert.Equal(t, "fast", results[1].Name)
	assert.Greater(t, results[1].Summary.Stats.Catches, results[0].Summary.Stats.Catches)

	_, err = RunAll(context.Background(), append(scenarios, Scenario{Name: "broken"}), nil)
	assert.Error(t, err)
}
