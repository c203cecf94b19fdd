package game

import (
	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/fishing"
	"github.com/LeJamon/goMFS/internal/core/rates"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

// Debug operations bypass costs. They exist for the console and tests.

// AddFish credits n fish, rounded down to whole fish.
func (g *Game) AddFish(n bignum.Number) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.AddFish(n.Floor())
}

// SetFish overwrites the balance. The lifetime counter only grows.
func (g *Game) SetFish(n bignum.Number) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n.Sign() < 0 {
		n = bignum.Zero()
	}
	if n.Cmp(g.state.Fish) > 0 {
		g.state.TotalFishCaught = g.state.TotalFishCaught.Add(n.Sub(g.state.Fish))
	}
	g.state.Fish = n
}

// SetTier jumps to t, keeping containers and upgrades.
func (g *Game) SetTier(t tier.Tier) bool {
	if !t.Valid() {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state.CurrentTier = t
	g.state.TierCount = 1
	g.logger.Debug("tier set", "tier", t)
	return true
}

// SetSpeed sets the global fishing speed multiplier.
func (g *Game) SetSpeed(x float64) bool {
	if x <= 0 {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.Coefficients.FishingSpeedMultiplier = x
	return true
}

// AddNets adds n nets without buying net levels.
func (g *Game) AddNets(n int) bool {
	if n <= 0 {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.Nets.Count += n
	return true
}

// AddBodies appends n container entries of fps each to tier t.
func (g *Game) AddBodies(t tier.Tier, n int, fps bignum.Number) bool {
	if !t.Valid() || n <= 0 {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for i := 0; i < n; i++ {
		g.state.Containers.Append(t, state.ContainerEntry{FishPerSecond: fps, Timestamp: now})
	}
	return true
}

// FinishCatch completes the catch in flight without waiting for it. Queued
// catches stay queued.
func (g *Game) FinishCatch() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !fishing.IsFishing(g.state) {
		return false
	}
	fishing.UpdateFishing(g.state, rates.FishingDuration(g.state))
	return true
}

// Reset starts over with the current balance coefficients.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = state.New(g.state.Coefficients)
	g.logger.Info("game reset")
}

// ApplyCoefficients switches the balance of the running game.
func (g *Game) ApplyCoefficients(c state.Coefficients) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state.Coefficients = c
	g.logger.Info("balance updated",
		"speed", c.FishingSpeedMultiplier,
		"net_capacity", c.NetCapacityMultiplier,
		"crunch", c.CrunchIncrement)
}
