package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

func TestNew_Defaults(t *testing.T) {
	s := New(DefaultCoefficients())

	assert.True(t, s.Fish.IsZero())
	assert.Equal(t, 1000.0, s.FishingDuration)
	assert.Equal(t, 1, s.GeneralUpgrades.CatchFishMultiplier)
	assert.Equal(t, tier.Pond, s.CurrentTier)
	assert.Equal(t, 1, s.UniverseNumber)
	assert.Equal(t, 1, s.ParallelMultiverses)
	assert.Equal(t, 1.0, s.MultiverseMultiplier)
	assert.Equal(t, 0, s.Containers.Count())
	assert.Equal(t, 10, s.Coefficients.TicksPerSecond)
}

func TestResetLocal_KeepsQueue(t *testing.T) {
	s := New(DefaultCoefficients())
	s.LocalUpgrades = LocalUpgrades{RodLevel: 3, NetLevel: 2, BaitLevel: 1}
	s.Nets = Nets{Count: 2, Fish: bignum.FromInt(50)}
	s.FishingActive = true
	s.FishingProgress = 400
	s.FishingQueue = 7

	s.ResetLocal()

	assert.Equal(t, LocalUpgrades{}, s.LocalUpgrades)
	assert.Equal(t, 0, s.Nets.Count)
	assert.True(t, s.Nets.Fish.IsZero())
	assert.False(t, s.FishingActive)
	assert.Equal(t, 0.0, s.FishingProgress)
	assert.Equal(t, 7, s.FishingQueue)
}

func TestResetForParallelize_KeepsGeneralUpgrades(t *testing.T) {
	s := New(DefaultCoefficients())
	s.Fish = bignum.New(1, 30)
	s.TotalFishCaught = bignum.New(2, 30)
	s.GeneralUpgrades.FishingMastery = 4
	s.Unlock("automaxer")
	s.CurrentTier = tier.Universe
	s.UniverseNumber = 5
	s.MultiverseMultiplier = 1.7
	s.ParallelMultiverses = 3
	s.FishingQueue = 2
	s.Containers.Append(tier.Universe, ContainerEntry{FishPerSecond: bignum.FromInt(9)})

	s.ResetForParallelize()

	assert.True(t, s.Fish.IsZero())
	assert.True(t, s.TotalFishCaught.Equal(bignum.New(2, 30)))
	assert.Equal(t, 4, s.GeneralUpgrades.FishingMastery)
	assert.True(t, s.IsUnlocked("automaxer"))
	assert.Equal(t, tier.Pond, s.CurrentTier)
	assert.Equal(t, 1, s.UniverseNumber)
	assert.Equal(t, 1.0, s.MultiverseMultiplier)
	assert.Equal(t, 3, s.ParallelMultiverses)
	assert.Equal(t, 0, s.FishingQueue)
	assert.Equal(t, 0, s.Containers.Count())
}

func TestAddFish(t *testing.T) {
	s := New(DefaultCoefficients())
	s.AddFish(bignum.FromInt(5))
	s.AddFish(bignum.FromInt(-3))
	s.AddFish(bignum.Zero())

	assert.True(t, s.Fish.Equal(bignum.FromInt(5)))
	assert.True(t, s.TotalFishCaught.Equal(bignum.FromInt(5)))
}

func TestContainers(t *testing.T) {
	var c Containers
	c.Clear()
	c.Append(tier.Pond, ContainerEntry{FishPerSecond: bignum.FromInt(1)})
	c.Append(tier.Pond, ContainerEntry{FishPerSecond: bignum.FromInt(2)})
	c.Append(tier.Lake, ContainerEntry{FishPerSecond: bignum.FromInt(30)})
	c.Append(tier.Tier(99), ContainerEntry{FishPerSecond: bignum.FromInt(1)})

	assert.Equal(t, 3, c.Count())
	assert.Equal(t, 2, c.Len(tier.Pond))
	assert.True(t, c.Total().Equal(bignum.FromInt(33)))
	assert.True(t, c.TierTotal(tier.Pond).Equal(bignum.FromInt(3)))

	last, ok := c.Last(tier.Pond)
	require.True(t, ok)
	assert.True(t, last.FishPerSecond.Equal(bignum.FromInt(2)))

	clone := c.Clone()
	removed, ok := c.Remove(tier.Pond, 0)
	require.True(t, ok)
	assert.True(t, removed.FishPerSecond.Equal(bignum.FromInt(1)))
	assert.Equal(t, 1, c.Len(tier.Pond))
	assert.Equal(t, 2, clone.Len(tier.Pond))

	_, ok = c.Remove(tier.Pond, 5)
	assert.False(t, ok)
}

func TestContainers_JSON(t *testing.T) {
	var c Containers
	c.Clear()
	c.Append(tier.Galaxy, ContainerEntry{FishPerSecond: bignum.New(4, 20)})

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, tier.Count)
	assert.JSONEq(t, `[]`, string(raw["ponds"]))

	var decoded Containers
	decoded.Clear()
	require.NoError(t, json.Unmarshal([]byte(`{"galaxies":[{"fishPerSecond":{"base":4,"exponent":20}}],"void":[]}`), &decoded))
	assert.Equal(t, 1, decoded.Len(tier.Galaxy))
	assert.Equal(t, 0, decoded.Len(tier.Pond))
}

func TestClone_IsDeep(t *testing.T) {
	s := New(DefaultCoefficients())
	s.Unlock("maxBuyer")
	s.SetAutoBuy("rod", true)
	s.Containers.Append(tier.Pond, ContainerEntry{FishPerSecond: bignum.One()})

	c := s.Clone()
	c.Unlock("automaxer")
	c.SetAutoBuy("rod", false)
	c.Containers.Append(tier.Pond, ContainerEntry{FishPerSecond: bignum.One()})

	assert.False(t, s.IsUnlocked("automaxer"))
	assert.True(t, s.AutoBuyEnabled("rod"))
	assert.Equal(t, 1, s.Containers.Len(tier.Pond))
}
