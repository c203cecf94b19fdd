package game

import (
	"github.com/LeJamon/goMFS/internal/core/format"
	"github.com/LeJamon/goMFS/internal/core/progression"
	"github.com/LeJamon/goMFS/internal/core/tier"
)

// BuyMultiply pays for a multiply and stashes the current rate in the
// tier's container.
func (g *Game) BuyMultiply() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !progression.BuyMultiply(g.state, g.now()) {
		return false
	}
	g.logger.Info("multiplied", "tier", g.state.CurrentTier, "count", g.state.TierCount)
	return true
}

// BuyAscend pays for an ascend. At the universe tier it parallelizes
// instead.
func (g *Game) BuyAscend() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	top := g.state.CurrentTier.IsTop()
	if !progression.BuyAscend(g.state, g.now()) {
		return false
	}
	if top {
		g.logger.Info("parallelized", "multiverses", g.state.ParallelMultiverses,
			"propagation", format.Rate(g.state.ParallelizedPropagationFPS))
		return true
	}
	g.logger.Info("ascended", "tier", g.state.CurrentTier)
	return true
}

// CrunchUniverse trades universe container i for a permanent multiverse
// multiplier increase.
func (g *Game) CrunchUniverse(i int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !progression.Crunch(g.state, i) {
		return false
	}
	g.logger.Info("universe crunched", "index", i,
		"multiplier", format.Multiplier(g.state.MultiverseMultiplier))
	return true
}

// CanAffordMultiply reports whether BuyMultiply would succeed.
func (g *Game) CanAffordMultiply() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return progression.CanAffordMultiply(g.state)
}

// CanAffordAscend reports whether BuyAscend would succeed.
func (g *Game) CanAffordAscend() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return progression.CanAffordAscend(g.state)
}

// CurrentTier returns the tier being played.
func (g *Game) CurrentTier() tier.Tier {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.CurrentTier
}
