package fishing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/rates"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

func TestFill_NoFishLost(t *testing.T) {
	var nets state.Nets
	capacity := bignum.FromInt(1000)

	for i := 0; i < 10; i++ {
		Fill(&nets, bignum.New(3, -1), capacity)
	}

	assert.True(t, nets.Fish.Equal(bignum.FromInt(3)), "nets hold %v", nets.Fish)
	assert.True(t, nets.FractionalAccumulator.IsZero(), "accumulator holds %v", nets.FractionalAccumulator)
}

func TestFill_LongRunStaysWhole(t *testing.T) {
	var nets state.Nets
	capacity := bignum.FromInt(1_000_000)

	for i := 0; i < 10_000; i++ {
		Fill(&nets, bignum.New(1, -1), capacity)
	}

	assert.Equal(t, 0, nets.Fish.Cmp(bignum.FromInt(1000)), "nets hold %v", nets.Fish)
	assert.Equal(t, 1000.0, nets.Fish.ToFloat())
	assert.True(t, nets.Fish.Floor().Equal(nets.Fish))
}

func TestFill_ClampsAtCapacity(t *testing.T) {
	var nets state.Nets
	capacity := bignum.FromInt(100)

	Fill(&nets, bignum.FromInt(70), capacity)
	Fill(&nets, bignum.FromFloat(45.5), capacity)

	assert.True(t, nets.Fish.Equal(capacity))
	assert.True(t, nets.FractionalAccumulator.Equal(bignum.FromFloat(15.5)))
}

func TestUpdateNets_NeverExceedsCapacity(t *testing.T) {
	s := newState()
	s.Nets.Count = 40
	s.LocalUpgrades.NetLevel = 7
	s.CurrentTier = tier.Galaxy
	capacity := rates.NetCapacity(s)

	for i := 0; i < 500; i++ {
		UpdateNets(s, 250)
		require.LessOrEqual(t, s.Nets.Fish.Cmp(capacity), 0, "tick %d", i)
	}
	assert.True(t, s.Nets.Fish.Equal(capacity))
}

func TestUpdateNets_FillRate(t *testing.T) {
	s := newState()
	s.Nets.Count = 1

	// Two fish per second.
	for i := 0; i < 10; i++ {
		UpdateNets(s, tickMs)
	}
	assert.True(t, s.Nets.Fish.Equal(bignum.FromInt(2)))
}

func TestCollect(t *testing.T) {
	s := newState()
	assert.False(t, Collect(s))

	s.Nets.Fish = bignum.FromInt(40)
	s.NetAutoCollectActive = true
	assert.True(t, Collect(s))
	assert.True(t, s.Fish.Equal(bignum.FromInt(40)))
	assert.True(t, s.TotalFishCaught.Equal(bignum.FromInt(40)))
	assert.True(t, s.Nets.Fish.IsZero())
	assert.False(t, s.NetAutoCollectActive)
	assert.Equal(t, 1, s.Stats.NetCollects)
}

func TestAutoCollect_Immediate(t *testing.T) {
	s := newState()
	s.Unlock(state.AutoCollectNets)
	s.GeneralUpgrades.AutoNetCollectInterval = 20
	s.Nets.Count = 1
	s.Nets.Fish = bignum.FromInt(100)

	UpdateNets(s, tickMs)

	assert.True(t, s.Fish.Equal(bignum.FromInt(100)))
	assert.True(t, s.Nets.Fish.IsZero())
}

func TestAutoCollect_Countdown(t *testing.T) {
	s := newState()
	s.Unlock(state.AutoCollectNets)
	s.GeneralUpgrades.AutoNetCollectInterval = 18 // one second
	s.Nets.Count = 1
	s.Nets.Fish = bignum.FromInt(100)

	UpdateNets(s, tickMs)
	require.True(t, s.NetAutoCollectActive)
	assert.InDelta(t, 1.0, s.NetAutoCollectTimer, 1e-9)

	for i := 0; i < 9; i++ {
		UpdateNets(s, tickMs)
	}
	assert.True(t, s.Fish.IsZero())

	UpdateNets(s, tickMs)
	assert.True(t, s.Fish.Equal(bignum.FromInt(100)))
	assert.False(t, s.NetAutoCollectActive)
}

func TestAutoCollect_TimerResetsBelowCapacity(t *testing.T) {
	s := newState()
	s.Unlock(state.AutoCollectNets)
	s.Nets.Count = 1
	s.Nets.Fish = bignum.FromInt(100)

	UpdateNets(s, tickMs)
	require.True(t, s.NetAutoCollectActive)

	s.Nets.Fish = bignum.FromInt(10)
	UpdateNets(s, tickMs)
	assert.False(t, s.NetAutoCollectActive)
	assert.Equal(t, 0.0, s.NetAutoCollectTimer)
}

func TestAutoCollect_RequiresUnlock(t *testing.T) {
	s := newState()
	s.Nets.Count = 1
	s.Nets.Fish = bignum.FromInt(100)

	UpdateNets(s, tickMs)

	assert.True(t, s.Fish.IsZero())
	assert.False(t, s.NetAutoCollectActive)
}
