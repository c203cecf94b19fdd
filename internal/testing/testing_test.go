package testing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/core/tier"
	"github.com/LeJamon/goMFS/internal/engine"
	"github.com/LeJamon/goMFS/internal/snapshot"
)

func TestFirstCatch(t *testing.T) {
	env := NewTestEnv(t)

	env.Cast()
	env.Advance(900 * time.Millisecond)
	RequireFish(t, env, bignum.Zero())

	env.Tick()
	RequireFish(t, env, bignum.One())
	assert.Equal(t, uint64(10), env.Engine().Stats().Ticks)
}

func TestContainerIncome(t *testing.T) {
	env := NewTestEnv(t)
	require.True(t, env.Game().AddBodies(tier.Pond, 1, bignum.FromInt(5)))

	env.Advance(900 * time.Millisecond)
	RequireFish(t, env, bignum.Zero())

	env.Tick()
	RequireFish(t, env, bignum.FromInt(5))
}

func TestPurchases(t *testing.T) {
	env := NewTestEnv(t)

	RequireNoBuy(t, env, state.Rod)

	env.Fund(bignum.FromInt(10))
	RequireBuy(t, env, state.Rod)
	RequireFish(t, env, bignum.Zero())

	env.Fund(bignum.FromInt(10000))
	RequireBuy(t, env, state.AutoCollectNets)
	RequireUnlocked(t, env, state.AutoCollectNets)
}

func TestPrestige(t *testing.T) {
	env := NewTestEnv(t)

	env.Fund(env.Game().MultiplyCost())
	require.True(t, env.Game().BuyMultiply())
	RequireTier(t, env, tier.Pond)
	RequireContainers(t, env, tier.Pond, 1)

	env.Fund(env.Game().AscendCost())
	require.True(t, env.Game().BuyAscend())
	RequireTier(t, env, tier.Lake)
	RequireContainers(t, env, tier.Pond, 0)
	RequireContainers(t, env, tier.Lake, 1)
}

func TestAutosave(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.AutosaveTicks = 50
	env := NewTestEnv(t, WithEngineConfig(cfg))

	env.Advance(4 * time.Second)
	_, err := env.Store().Get(context.Background(), DefaultSlot)
	require.Error(t, err)

	env.Advance(time.Second)
	RequireSaved(t, env)
	assert.Equal(t, uint64(1), env.Engine().Stats().Saves)
}

func TestReload(t *testing.T) {
	for _, f := range []snapshot.Format{snapshot.FormatJSON, snapshot.FormatMsgpack} {
		t.Run(string(f), func(t *testing.T) {
			env := NewTestEnv(t, WithFormat(f))
			env.Fund(bignum.New(1.23, 45))
			require.True(t, env.Game().SetTier(tier.Galaxy))

			env.Save()
			env.Reload()

			RequireFish(t, env, bignum.New(1.23, 45))
			RequireTier(t, env, tier.Galaxy)
		})
	}
}

func TestWithState(t *testing.T) {
	s := state.New(state.DefaultCoefficients())
	s.Fish = bignum.FromInt(77)

	env := NewTestEnv(t, WithState(s))
	s.Fish = bignum.Zero()

	RequireFish(t, env, bignum.FromInt(77))
	RequireFishAtLeast(t, env, bignum.FromInt(50))
}
