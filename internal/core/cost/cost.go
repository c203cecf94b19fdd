// Package cost implements the price curves that gate every purchase and
// prestige action. Every cost is a Number and every curve is monotonic in
// its level.
package cost

import (
	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/rates"
	"github.com/LeJamon/goMFS/internal/core/state"
)

// Local upgrade curve: base × tier × 1.5^level × parallelize multiplier.
const (
	RodBase     = 10
	NetBase     = 25
	BaitBase    = 50
	LocalGrowth = 1.5
)

// Leveled general upgrades: base × 10^level.
const (
	LeveledGrowth                    = 10
	MultiversalPropagationBase       = 1e9
	FishingMasteryBase               = 1e10
	NetMasteryBase                   = 1e11
	BaitMasteryBase                  = 1e12
	ParallelizedPropagationBase      = 1e13
	ParallelMultiverseMultiplierBase = 1e15
)

// Doubling curves.
const (
	CatchMultiplierBase        = 1000
	AutoNetCollectIntervalBase = 50000
	DoublingGrowth             = 2
)

// One-time unlock prices.
const (
	AutoCollectNets                  = 1e4
	RodMaxBuyer                      = 5e4
	NetMaxBuyer                      = 5e4
	BaitMaxBuyer                     = 5e4
	MaxBuyer                         = 2e5
	CatchMaxBuyer                    = 5e5
	Automaxer                        = 1e6
	AutoMultiply                     = 1e7
	AutoAscend                       = 1e8
	AutoParallelize                  = 1e9
	AutoMastery                      = 1e12
	AutoParallelMultiverseMultiplier = 1e18
)

// Prestige prices.
const (
	MultiplyBase   = 1000
	MultiplyGrowth = 1.5
	AscendBase     = 1e5
)

// Rod is the price of the next rod level.
func Rod(s *state.State) bignum.Number {
	return local(s, RodBase, s.LocalUpgrades.RodLevel)
}

// Net is the price of the next net.
func Net(s *state.State) bignum.Number {
	return local(s, NetBase, s.LocalUpgrades.NetLevel)
}

// Bait is the price of the next bait level.
func Bait(s *state.State) bignum.Number {
	return local(s, BaitBase, s.LocalUpgrades.BaitLevel)
}

func local(s *state.State, base float64, level int) bignum.Number {
	return bignum.FromFloat(base).
		Mul(s.CurrentTier.MultiplierNumber()).
		Mul(power(LocalGrowth, level)).
		Mul(rates.ParallelizeMultiplier(s))
}

// CatchMultiplier is the price of raising the catch multiplier by one. The
// first purchase, from ×1 to ×2, costs CatchMultiplierBase.
func CatchMultiplier(s *state.State) bignum.Number {
	level := s.GeneralUpgrades.CatchFishMultiplier - 1
	if level < 0 {
		level = 0
	}
	return bignum.FromFloat(CatchMultiplierBase).Mul(power(DoublingGrowth, level))
}

// AutoNetCollectInterval is the price of shortening the auto-collect delay.
func AutoNetCollectInterval(s *state.State) bignum.Number {
	return bignum.FromFloat(AutoNetCollectIntervalBase).
		Mul(power(DoublingGrowth, s.GeneralUpgrades.AutoNetCollectInterval))
}

// Leveled is base × 10^level.
func Leveled(base float64, level int) bignum.Number {
	return bignum.FromFloat(base).Mul(power(LeveledGrowth, level))
}

// MultiversalPropagation is the price of the next multiversal propagation level.
func MultiversalPropagation(s *state.State) bignum.Number {
	return Leveled(MultiversalPropagationBase, s.GeneralUpgrades.MultiversalPropagation)
}

// FishingMastery is the price of the next fishing mastery level.
func FishingMastery(s *state.State) bignum.Number {
	return Leveled(FishingMasteryBase, s.GeneralUpgrades.FishingMastery)
}

// NetMastery is the price of the next net mastery level.
func NetMastery(s *state.State) bignum.Number {
	return Leveled(NetMasteryBase, s.GeneralUpgrades.NetMastery)
}

// BaitMastery is the price of the next bait mastery level.
func BaitMastery(s *state.State) bignum.Number {
	return Leveled(BaitMasteryBase, s.GeneralUpgrades.BaitMastery)
}

// ParallelizedPropagation is the price of the next parallelized propagation level.
func ParallelizedPropagation(s *state.State) bignum.Number {
	return Leveled(ParallelizedPropagationBase, s.GeneralUpgrades.ParallelizedPropagation)
}

// ParallelMultiverseMultiplier is the price of the next parallel multiverse
// multiplier level.
func ParallelMultiverseMultiplier(s *state.State) bignum.Number {
	return Leveled(ParallelMultiverseMultiplierBase, s.GeneralUpgrades.ParallelMultiverseMultiplier)
}

// Multiply grows with the number of multiplies already stashed in the
// current tier.
func Multiply(s *state.State) bignum.Number {
	return bignum.FromFloat(MultiplyBase).
		Mul(s.CurrentTier.MultiplierNumber()).
		Mul(power(MultiplyGrowth, s.Containers.Len(s.CurrentTier))).
		Mul(rates.ParallelizeMultiplier(s))
}

// Ascend is also the price of parallelize at the universe tier.
func Ascend(s *state.State) bignum.Number {
	return bignum.FromFloat(AscendBase).
		Mul(s.CurrentTier.MultiplierNumber()).
		Mul(rates.ParallelizeMultiplier(s))
}

// Fixed wraps a one-time price.
func Fixed(price float64) bignum.Number {
	return bignum.FromFloat(price)
}

// CanAfford reports whether the balance covers price.
func CanAfford(s *state.State, price bignum.Number) bool {
	return s.Fish.GreaterOrEqual(price)
}

// Pay deducts price if affordable and reports whether it did.
func Pay(s *state.State, price bignum.Number) bool {
	if !CanAfford(s, price) {
		return false
	}
	s.Fish = s.Fish.Sub(price)
	return true
}
