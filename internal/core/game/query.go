package game

import (
	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/cost"
	"github.com/LeJamon/goMFS/internal/core/fishing"
	"github.com/LeJamon/goMFS/internal/core/rates"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/core/tier"
	"github.com/LeJamon/goMFS/internal/core/upgrade"
)

// Summary is a read-only view of the game for display.
type Summary struct {
	Fish            bignum.Number
	TotalFishCaught bignum.Number

	Tier                 tier.Tier
	TierCount            int
	UniverseNumber       int
	ParallelMultiverses  int
	MultiverseMultiplier float64

	Fishing         bool
	FishingProgress float64
	FishingDuration float64
	FishingQueue    int
	FishPerCatch    bignum.Number

	Nets                int
	NetFish             bignum.Number
	NetCapacity         bignum.Number
	NetRate             bignum.Number
	AutoCollect         bool
	AutoCollectInterval float64
	AutoCollectTimer    float64

	CurrentFPS                 bignum.Number
	ContainerFPS               bignum.Number
	TotalFPS                   bignum.Number
	ParallelizedPropagationFPS bignum.Number
	Containers                 int

	Multipliers Multipliers

	TotalTimePlayed float64
	Stats           state.Stats
}

// Multipliers are the mastery and propagation factors currently in effect.
type Multipliers struct {
	Tier                                 bignum.Number
	Rod                                  bignum.Number
	Net                                  bignum.Number
	Bait                                 float64
	FishingMastery                       bignum.Number
	NetMastery                           bignum.Number
	BaitMastery                          float64
	CatchMultiplier                      int
	MultiversalPropagationEffectiveness  float64
	ParallelizedPropagationEffectiveness float64
}

// Summary snapshots the derived values shown to the player.
func (g *Game) Summary() Summary {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.state
	return Summary{
		Fish:                       s.Fish,
		TotalFishCaught:            s.TotalFishCaught,
		Tier:                       s.CurrentTier,
		TierCount:                  s.TierCount,
		UniverseNumber:             s.UniverseNumber,
		ParallelMultiverses:        s.ParallelMultiverses,
		MultiverseMultiplier:       s.MultiverseMultiplier,
		Fishing:                    fishing.IsFishing(s),
		FishingProgress:            s.FishingProgress,
		FishingDuration:            rates.FishingDuration(s),
		FishingQueue:               s.FishingQueue,
		FishPerCatch:               rates.FishPerCatch(s),
		Nets:                       s.Nets.Count,
		NetFish:                    s.Nets.Fish,
		NetCapacity:                rates.NetCapacity(s),
		NetRate:                    rates.NetRate(s),
		AutoCollect:                s.IsUnlocked(state.AutoCollectNets),
		AutoCollectInterval:        rates.NetAutoCollectInterval(s),
		AutoCollectTimer:           s.NetAutoCollectTimer,
		CurrentFPS:                 rates.CurrentFPS(s),
		ContainerFPS:               rates.ContainerFPS(s),
		TotalFPS:                   rates.TotalFPS(s),
		ParallelizedPropagationFPS: s.ParallelizedPropagationFPS,
		Containers:                 s.Containers.Count(),
		Multipliers:                multipliers(s),
		TotalTimePlayed:            s.TotalTimePlayed,
		Stats:                      s.Stats,
	}
}

// Multipliers returns the factors currently in effect.
func (g *Game) Multipliers() Multipliers {
	g.mu.Lock()
	defer g.mu.Unlock()
	return multipliers(g.state)
}

func multipliers(s *state.State) Multipliers {
	return Multipliers{
		Tier:                                 rates.Tier(s),
		Rod:                                  rates.Rod(s),
		Net:                                  rates.NetLevel(s),
		Bait:                                 rates.BaitSpeed(s),
		FishingMastery:                       rates.FishingMastery(s),
		NetMastery:                           rates.NetMastery(s),
		BaitMastery:                          rates.BaitMastery(s),
		CatchMultiplier:                      rates.CatchMultiplier(s),
		MultiversalPropagationEffectiveness:  rates.MultiversalPropagationEffectiveness(s),
		ParallelizedPropagationEffectiveness: rates.ParallelizedPropagationEffectiveness(s),
	}
}

// Cost returns the next price of the upgrade id.
func (g *Game) Cost(id string) (bignum.Number, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	d, ok := g.registry.Get(id)
	if !ok {
		return bignum.Zero(), false
	}
	return d.Cost(g.state), true
}

// CanAfford reports whether Buy(id) would succeed.
func (g *Game) CanAfford(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	d, ok := g.registry.Get(id)
	return ok && upgrade.CanAfford(g.state, d)
}

func (g *Game) RodCost() bignum.Number                 { return g.mustCost(state.Rod) }
func (g *Game) NetCost() bignum.Number                 { return g.mustCost(state.Net) }
func (g *Game) BaitCost() bignum.Number                { return g.mustCost(state.Bait) }
func (g *Game) CatchFishMultiplierCost() bignum.Number { return g.mustCost(state.CatchMultiplier) }
func (g *Game) FishingMasteryCost() bignum.Number      { return g.mustCost(state.FishingMastery) }
func (g *Game) NetMasteryCost() bignum.Number          { return g.mustCost(state.NetMastery) }
func (g *Game) BaitMasteryCost() bignum.Number         { return g.mustCost(state.BaitMastery) }

func (g *Game) mustCost(id string) bignum.Number {
	c, _ := g.Cost(id)
	return c
}

// MultiplyCost is the price of the next multiply.
func (g *Game) MultiplyCost() bignum.Number {
	g.mu.Lock()
	defer g.mu.Unlock()
	return cost.Multiply(g.state)
}

// AscendCost is the price of the next ascend or parallelize.
func (g *Game) AscendCost() bignum.Number {
	g.mu.Lock()
	defer g.mu.Unlock()
	return cost.Ascend(g.state)
}

// NetAutoCollectInterval is the current auto-collect period in seconds.
func (g *Game) NetAutoCollectInterval() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return rates.NetAutoCollectInterval(g.state)
}

// Fish returns the spendable balance.
func (g *Game) Fish() bignum.Number {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Fish
}
