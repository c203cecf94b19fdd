package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

const now = int64(1_700_000_000_000)

func newState() *state.State {
	return state.New(state.DefaultCoefficients())
}

func TestCatalogue_IDsAreUnique(t *testing.T) {
	defs := catalogue()
	seen := map[string]bool{}
	for _, d := range defs {
		require.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
		require.NotNil(t, d.Cost, d.ID)
		if d.Kind != Unlock {
			require.NotNil(t, d.Apply, d.ID)
		}
	}
	assert.Len(t, Default().All(), len(defs))
}

func TestPurchase(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		fish   int64
		setup  func(*state.State)
		want   bool
		verify func(*testing.T, *state.State)
	}{
		{
			name: "rod affordable",
			id:   state.Rod, fish: 10, want: true,
			verify: func(t *testing.T, s *state.State) {
				assert.Equal(t, 1, s.LocalUpgrades.RodLevel)
				assert.True(t, s.Fish.IsZero())
			},
		},
		{
			name: "rod too expensive",
			id:   state.Rod, fish: 9, want: false,
			verify: func(t *testing.T, s *state.State) {
				assert.Equal(t, 0, s.LocalUpgrades.RodLevel)
				assert.True(t, s.Fish.Equal(bignum.FromInt(9)))
			},
		},
		{
			name: "rod capped",
			id:   state.Rod, fish: 1_000_000, want: false,
			setup: func(s *state.State) { s.LocalUpgrades.RodLevel = state.MaxLocalLevel },
			verify: func(t *testing.T, s *state.State) {
				assert.True(t, s.Fish.Equal(bignum.FromInt(1_000_000)))
			},
		},
		{
			name: "net adds a net",
			id:   state.Net, fish: 25, want: true,
			verify: func(t *testing.T, s *state.State) {
				assert.Equal(t, 1, s.LocalUpgrades.NetLevel)
				assert.Equal(t, 1, s.Nets.Count)
			},
		},
		{
			name: "catch multiplier",
			id:   state.CatchMultiplier, fish: 1000, want: true,
			verify: func(t *testing.T, s *state.State) {
				assert.Equal(t, 2, s.GeneralUpgrades.CatchFishMultiplier)
			},
		},
		{
			name: "catch max buyer needs max buyer",
			id:   state.CatchMaxBuyer, fish: 1_000_000, want: false,
		},
		{
			name: "unlock is bought once",
			id:   state.AutoCollectNets, fish: 20_000, want: true,
			verify: func(t *testing.T, s *state.State) {
				assert.True(t, s.IsUnlocked(state.AutoCollectNets))
				assert.False(t, Default().Purchase(s, state.AutoCollectNets))
				assert.True(t, s.Fish.Equal(bignum.FromInt(10_000)))
			},
		},
		{
			name: "interval needs auto collect",
			id:   state.AutoNetCollectInterval, fish: 100_000, want: false,
		},
		{
			name: "parallelized propagation gated by multiverses",
			id:   state.ParallelizedPropagation, fish: 0, want: false,
			setup: func(s *state.State) { s.Fish = bignum.New(1, 20) },
		},
		{
			name: "automaxer enables auto buy",
			id:   state.Automaxer, fish: 1_000_000, want: true,
			setup: func(s *state.State) { s.ParallelMultiverses = 2 },
			verify: func(t *testing.T, s *state.State) {
				assert.True(t, s.AutoBuyEnabled(state.Rod))
				assert.True(t, s.AutoBuyEnabled(state.Net))
				assert.True(t, s.AutoBuyEnabled(state.Bait))
			},
		},
		{
			name: "unknown id",
			id:   "boat", fish: 1_000_000, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState()
			s.Fish = bignum.FromInt(tt.fish)
			if tt.setup != nil {
				tt.setup(s)
			}
			assert.Equal(t, tt.want, Default().Purchase(s, tt.id))
			if tt.verify != nil {
				tt.verify(t, s)
			}
		})
	}
}

func TestBuyMax(t *testing.T) {
	r := Default()
	s := newState()
	s.Fish = bignum.FromInt(1_000_000)

	assert.Equal(t, 0, r.BuyMax(s, state.Rod), "no max buyer owned")

	require.True(t, r.Purchase(s, state.RodMaxBuyer))
	assert.Equal(t, state.MaxLocalLevel, r.BuyMax(s, state.Rod))
	assert.Equal(t, state.MaxLocalLevel, s.LocalUpgrades.RodLevel)
	assert.Equal(t, 0, r.BuyMax(s, state.Net), "rod max buyer does not cover nets")

	require.True(t, r.Purchase(s, state.MaxBuyer))
	assert.Positive(t, r.BuyMax(s, state.Net))
}

func TestSetAutoBuy(t *testing.T) {
	r := Default()
	s := newState()

	assert.False(t, r.SetAutoBuy(s, state.Rod, true))

	s.Unlock(state.Automaxer)
	require.True(t, r.SetAutoBuy(s, state.Rod, false))
	assert.False(t, s.AutoBuyEnabled(state.Rod))
	require.True(t, r.SetAutoBuy(s, state.Rod, true))
	assert.True(t, s.AutoBuyEnabled(state.Rod))
}

func TestRunAuto_BuysEnabledUpgrades(t *testing.T) {
	r := Default()
	s := newState()
	s.Fish = bignum.FromInt(100)
	s.SetAutoBuy(state.Rod, true)

	res := r.RunAuto(s, now)

	// 10 + 15 + 22.5 + 33.75 = 81.25; the fifth level costs 50.6.
	assert.Equal(t, 4, res.Purchases)
	assert.Equal(t, 4, s.LocalUpgrades.RodLevel)
	assert.False(t, res.Multiplied)
}

func TestRunAuto_Prestige(t *testing.T) {
	r := Default()

	s := newState()
	s.SetAutoBuy(state.ActionMultiply, true)
	s.Fish = bignum.FromInt(5000)
	res := r.RunAuto(s, now)
	assert.False(t, res.Multiplied, "multiply waits for maxed local upgrades")

	s.LocalUpgrades = state.LocalUpgrades{RodLevel: 10, NetLevel: 10, BaitLevel: 10}
	res = r.RunAuto(s, now)
	assert.True(t, res.Multiplied)
	assert.Equal(t, 1, s.Containers.Len(tier.Pond))

	s = newState()
	s.SetAutoBuy(state.ActionAscend, true)
	s.Fish = bignum.FromInt(100_000)
	res = r.RunAuto(s, now)
	assert.True(t, res.Ascended)
	assert.Equal(t, tier.Lake, s.CurrentTier)

	s = newState()
	s.SetAutoBuy(state.ActionParallelize, true)
	s.SetAutoBuy(state.ActionAscend, true)
	s.CurrentTier = tier.Universe
	s.Fish = bignum.New(1, 11)
	res = r.RunAuto(s, now)
	assert.True(t, res.Parallelized)
	assert.False(t, res.Ascended)
	assert.Equal(t, 2, s.ParallelMultiverses)
}

func TestOffers(t *testing.T) {
	r := Default()
	s := newState()
	s.Fish = bignum.FromInt(30)

	offers := r.Offers(s)
	require.NotEmpty(t, offers)
	assert.Equal(t, state.Rod, offers[0].ID)
	assert.True(t, offers[0].Affordable)
	for i := 1; i < len(offers); i++ {
		assert.LessOrEqual(t, offers[i-1].Cost.Cmp(offers[i].Cost), 0)
	}
	for _, o := range offers {
		assert.NotEqual(t, state.ParallelizedPropagation, o.ID)
		assert.NotEqual(t, state.CatchMaxBuyer, o.ID)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "local", Local.String())
	assert.Equal(t, "unlock", Unlock.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
