// Package rates derives multipliers and generation rates from a State.
// Nothing here mutates state.
package rates

import (
	"math"

	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

// Growth factors per upgrade level.
const (
	RodGrowth       = 1.5
	NetGrowth       = 1.2
	BaitGrowth      = 1.2
	MasteryGrowth   = 1.1
	PropagationStep = 0.1
)

// Tier is the output multiplier of the current tier.
func Tier(s *state.State) bignum.Number {
	return s.CurrentTier.MultiplierNumber()
}

// Rod is the per-catch multiplier from the rod level.
func Rod(s *state.State) bignum.Number {
	return bignum.PowInt(RodGrowth, s.LocalUpgrades.RodLevel)
}

// NetLevel is the capacity and rate multiplier from the net level.
func NetLevel(s *state.State) bignum.Number {
	return bignum.PowInt(NetGrowth, s.LocalUpgrades.NetLevel)
}

// BaitSpeed is the fishing speed multiplier from the bait level.
func BaitSpeed(s *state.State) float64 {
	return math.Pow(BaitGrowth, float64(s.LocalUpgrades.BaitLevel))
}

// FishingMastery multiplies fish per catch.
func FishingMastery(s *state.State) bignum.Number {
	return bignum.PowInt(MasteryGrowth, s.GeneralUpgrades.FishingMastery)
}

// NetMastery multiplies net capacity and rate.
func NetMastery(s *state.State) bignum.Number {
	return bignum.PowInt(MasteryGrowth, s.GeneralUpgrades.NetMastery)
}

// BaitMastery multiplies fishing speed.
func BaitMastery(s *state.State) float64 {
	return math.Pow(MasteryGrowth, float64(s.GeneralUpgrades.BaitMastery))
}

// CatchMultiplier is the number of catches a single start queues.
func CatchMultiplier(s *state.State) int {
	if s.GeneralUpgrades.CatchFishMultiplier < 1 {
		return 1
	}
	return s.GeneralUpgrades.CatchFishMultiplier
}

// FishingDuration is the effective length of one catch in milliseconds.
func FishingDuration(s *state.State) float64 {
	speed := s.Coefficients.FishingSpeedMultiplier * BaitSpeed(s) * BaitMastery(s)
	if speed <= 0 || math.IsNaN(speed) {
		return s.FishingDuration
	}
	if math.IsInf(speed, 1) {
		return 0
	}
	return s.FishingDuration / speed
}

// FishPerCatch is the yield of one completed catch.
func FishPerCatch(s *state.State) bignum.Number {
	return Rod(s).
		Mul(Tier(s)).
		Mul(bignum.FromInt(int64(CatchMultiplier(s)))).
		Mul(FishingMastery(s))
}

// FishingFPS is what continuous fishing yields per second.
func FishingFPS(s *state.State) bignum.Number {
	d := FishingDuration(s)
	if d <= 0 {
		return bignum.MaxValue
	}
	return FishPerCatch(s).MulFloat(1000 / d)
}

// NetCapacity is how many whole fish the nets hold before they must be
// collected.
func NetCapacity(s *state.State) bignum.Number {
	return bignum.FromFloat(s.Coefficients.NetBaseCapacity).
		Mul(NetLevel(s)).
		Mul(NetMastery(s)).
		Mul(Tier(s)).
		Floor()
}

// NetRate is the nets' fill rate per second.
func NetRate(s *state.State) bignum.Number {
	if s.Nets.Count <= 0 {
		return bignum.Zero()
	}
	return bignum.FromInt(int64(s.Nets.Count)).
		MulFloat(s.Coefficients.NetCapacityMultiplier).
		Mul(NetLevel(s)).
		Mul(NetMastery(s)).
		Mul(Tier(s))
}

// CurrentFPS is the tier-local generation rate, nets plus fishing, in whole
// fish per second. Multiply and new-universe stash this value.
func CurrentFPS(s *state.State) bignum.Number {
	return NetRate(s).Add(FishingFPS(s)).Floor()
}

// MultiversalPropagationEffectiveness is the share of the previous
// universe's rate leaked into the current one.
func MultiversalPropagationEffectiveness(s *state.State) float64 {
	return PropagationStep * float64(s.GeneralUpgrades.MultiversalPropagation)
}

// MultiversalPropagationBonus leaks the newest universe entry into current
// generation, diluted by the number of universes created so far.
func MultiversalPropagationBonus(s *state.State) bignum.Number {
	eff := MultiversalPropagationEffectiveness(s)
	if eff <= 0 {
		return bignum.Zero()
	}
	last, ok := s.Containers.Last(tier.Universe)
	if !ok {
		return bignum.Zero()
	}
	n := s.UniverseNumber
	if n < 1 {
		n = 1
	}
	return last.FishPerSecond.MulFloat(eff).DivFloat(float64(n))
}

// ContainerFPS is the per-second income from every stashed container,
// including multiversal propagation, scaled by the crunch multiplier.
func ContainerFPS(s *state.State) bignum.Number {
	return s.Containers.Total().
		Add(MultiversalPropagationBonus(s)).
		MulFloat(s.MultiverseMultiplier)
}

// ParallelizedPropagationEffectiveness is the share of the current total
// rate that a parallelize keeps forever.
func ParallelizedPropagationEffectiveness(s *state.State) float64 {
	return PropagationStep * float64(s.GeneralUpgrades.ParallelizedPropagation)
}

// TotalFPS is every income source per second.
func TotalFPS(s *state.State) bignum.Number {
	return CurrentFPS(s).
		Add(ContainerFPS(s)).
		Add(s.ParallelizedPropagationFPS)
}

// NetAutoCollectInterval is the delay in seconds between full nets and the
// automatic collection. It never drops below zero.
func NetAutoCollectInterval(s *state.State) float64 {
	v := s.Coefficients.AutoCollectBaseInterval -
		s.Coefficients.AutoCollectStep*float64(s.GeneralUpgrades.AutoNetCollectInterval)
	if v < 1e-9 {
		return 0
	}
	return v
}

// ParallelizeMultiplier scales every cost by the number of parallel
// multiverses.
func ParallelizeMultiplier(s *state.State) bignum.Number {
	if s.ParallelMultiverses < 1 {
		return bignum.One()
	}
	return bignum.FromInt(int64(s.ParallelMultiverses))
}
