package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

func newState() *state.State {
	return state.New(state.DefaultCoefficients())
}

func TestLocalCosts(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*state.State)
		cost     func(*state.State) bignum.Number
		expected float64
	}{
		{name: "rod level 0", setup: func(*state.State) {}, cost: Rod, expected: 10},
		{name: "net level 0", setup: func(*state.State) {}, cost: Net, expected: 25},
		{name: "bait level 0", setup: func(*state.State) {}, cost: Bait, expected: 50},
		{
			name:     "rod level 2 in a lake",
			setup:    func(s *state.State) { s.LocalUpgrades.RodLevel = 2; s.CurrentTier = tier.Lake },
			cost:     Rod,
			expected: 10 * 10 * 2.25,
		},
		{
			name:     "net scaled by parallel multiverses",
			setup:    func(s *state.State) { s.LocalUpgrades.NetLevel = 1; s.ParallelMultiverses = 4 },
			cost:     Net,
			expected: 25 * 1.5 * 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState()
			tt.setup(s)
			assert.InDelta(t, tt.expected, tt.cost(s).ToFloat(), 1e-9)
		})
	}
}

func TestGeneralCosts(t *testing.T) {
	s := newState()
	assert.InDelta(t, 1000, CatchMultiplier(s).ToFloat(), 1e-9)
	s.GeneralUpgrades.CatchFishMultiplier = 4
	assert.InDelta(t, 8000, CatchMultiplier(s).ToFloat(), 1e-9)

	assert.InDelta(t, 50000, AutoNetCollectInterval(s).ToFloat(), 1e-9)
	s.GeneralUpgrades.AutoNetCollectInterval = 3
	assert.InDelta(t, 400000, AutoNetCollectInterval(s).ToFloat(), 1e-9)

	s.GeneralUpgrades.FishingMastery = 2
	assert.True(t, FishingMastery(s).Equal(bignum.New(1, 12)))
	assert.True(t, NetMastery(s).Equal(bignum.New(1, 11)))
	assert.True(t, BaitMastery(s).Equal(bignum.New(1, 12)))
	assert.True(t, MultiversalPropagation(s).Equal(bignum.New(1, 9)))
	assert.True(t, ParallelizedPropagation(s).Equal(bignum.New(1, 13)))
	s.GeneralUpgrades.ParallelMultiverseMultiplier = 5
	assert.True(t, ParallelMultiverseMultiplier(s).Equal(bignum.New(1, 20)))
}

func TestCurvesAreMonotonic(t *testing.T) {
	s := newState()
	prev := bignum.Zero()
	for level := 0; level <= state.MaxLocalLevel; level++ {
		s.LocalUpgrades.BaitLevel = level
		c := Bait(s)
		assert.True(t, c.Cmp(prev) > 0, "level %d", level)
		prev = c
	}

	prev = bignum.Zero()
	for level := 0; level < 40; level++ {
		c := Leveled(BaitMasteryBase, level)
		assert.True(t, c.Cmp(prev) > 0, "level %d", level)
		prev = c
	}
}

func TestPrestigeCosts(t *testing.T) {
	s := newState()
	assert.InDelta(t, 1000, Multiply(s).ToFloat(), 1e-9)

	s.Containers.Append(tier.Pond, state.ContainerEntry{FishPerSecond: bignum.One()})
	s.Containers.Append(tier.Pond, state.ContainerEntry{FishPerSecond: bignum.One()})
	assert.InDelta(t, 2250, Multiply(s).ToFloat(), 1e-9)

	assert.InDelta(t, 1e5, Ascend(s).ToFloat(), 1e-9)
	s.CurrentTier = tier.Universe
	s.ParallelMultiverses = 2
	assert.InDelta(t, 2e11, Ascend(s).ToFloat(), 1e-3)
}

func TestPay(t *testing.T) {
	s := newState()
	s.Fish = bignum.FromInt(15)

	assert.False(t, Pay(s, bignum.FromInt(20)))
	assert.True(t, s.Fish.Equal(bignum.FromInt(15)))

	assert.True(t, CanAfford(s, bignum.FromInt(15)))
	assert.True(t, Pay(s, bignum.FromInt(15)))
	assert.True(t, s.Fish.IsZero())
}

func TestPowerCache(t *testing.T) {
	h0, m0 := CacheStats()
	a := power(7.5, 3)
	b := power(7.5, 3)
	h1, m1 := CacheStats()

	assert.Equal(t, a, b)
	assert.InDelta(t, 421.875, a.ToFloat(), 1e-9)
	assert.GreaterOrEqual(t, h1-h0, uint64(1))
	assert.GreaterOrEqual(t, m1-m0, uint64(1))
	assert.Equal(t, bignum.One(), power(7.5, 0))
}
