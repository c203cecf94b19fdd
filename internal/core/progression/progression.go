// Package progression implements the prestige layers: multiply within a
// tier, ascend to the next tier, new universes at the top, parallelize
// across multiverses and crunching universe containers.
//
// The plain actions apply unconditionally; the Buy variants validate the
// price, deduct it and only then apply the action.
package progression

import (
	"github.com/LeJamon/goMFS/internal/core/cost"
	"github.com/LeJamon/goMFS/internal/core/rates"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

// Multiply stashes the current generation rate in the current tier's
// container and resets tier-local progress. The fishing queue survives.
func Multiply(s *state.State, now int64) {
	s.Containers.Append(s.CurrentTier, state.ContainerEntry{
		FishPerSecond: rates.CurrentFPS(s),
		Timestamp:     now,
	})
	s.TierCount++
	s.ResetLocal()
	s.Stats.Multiplies++
}

// Ascend folds every container into a single entry of the next tier and
// moves there. At the universe tier it starts a new universe instead.
func Ascend(s *state.State, now int64) {
	next, ok := s.CurrentTier.Next()
	if !ok {
		NewUniverse(s, now)
		return
	}

	total := s.Containers.Total()
	s.Containers.Clear()
	s.Containers.Append(next, state.ContainerEntry{FishPerSecond: total, Timestamp: now})
	s.CurrentTier = next
	s.TierCount = 1
	s.ResetLocal()
	s.Stats.Ascends++
}

// NewUniverse stashes the current generation rate as a universe and
// restarts the ladder at the pond. Unlike Ascend, the existing containers
// are left in place.
func NewUniverse(s *state.State, now int64) {
	s.Containers.Append(tier.Universe, state.ContainerEntry{
		FishPerSecond: rates.CurrentFPS(s),
		Timestamp:     now,
	})
	s.UniverseNumber++
	s.CurrentTier = tier.Pond
	s.TierCount = 1
	s.ResetLocal()
	s.Stats.NewUniverses++
}

// Parallelize converts the current multiverse into parallel multiverses.
// The configured share of the current total rate is kept forever as
// parallelized propagation, then everything but general upgrades resets.
// It only applies at the universe tier.
func Parallelize(s *state.State) bool {
	if !s.CurrentTier.IsTop() {
		return false
	}

	if eff := rates.ParallelizedPropagationEffectiveness(s); eff > 0 {
		kept := rates.CurrentFPS(s).Add(rates.ContainerFPS(s)).MulFloat(eff)
		s.ParallelizedPropagationFPS = s.ParallelizedPropagationFPS.Add(kept)
	}

	s.ParallelMultiverses += 1 + s.GeneralUpgrades.ParallelMultiverseMultiplier
	s.ResetForParallelize()
	s.Stats.Parallelizes++
	return true
}

// Crunch removes universe container i in exchange for a permanent
// increase of the multiverse multiplier.
func Crunch(s *state.State, i int) bool {
	if _, ok := s.Containers.Remove(tier.Universe, i); !ok {
		return false
	}
	s.MultiverseMultiplier += s.Coefficients.CrunchIncrement
	s.Stats.Crunches++
	return true
}

// CanAffordMultiply reports whether multiply is affordable.
func CanAffordMultiply(s *state.State) bool {
	return cost.CanAfford(s, cost.Multiply(s))
}

// CanAffordAscend reports whether ascend, or parallelize at the universe
// tier, is affordable.
func CanAffordAscend(s *state.State) bool {
	return cost.CanAfford(s, cost.Ascend(s))
}

// BuyMultiply pays for and performs a multiply.
func BuyMultiply(s *state.State, now int64) bool {
	if !cost.Pay(s, cost.Multiply(s)) {
		return false
	}
	Multiply(s, now)
	return true
}

// BuyAscend pays for and performs an ascend, or a parallelize when already
// at the universe tier.
func BuyAscend(s *state.State, now int64) bool {
	if !cost.Pay(s, cost.Ascend(s)) {
		return false
	}
	if s.CurrentTier.IsTop() {
		return Parallelize(s)
	}
	Ascend(s, now)
	return true
}
