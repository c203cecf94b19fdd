// Package sim plays the game headlessly at full speed.
package sim

import (
	"github.com/LeJamon/goMFS/internal/core/game"
	"github.com/LeJamon/goMFS/internal/core/upgrade"
)

// maxPurchasesPerTick bounds the buying loop of a single tick.
const maxPurchasesPerTick = 64

// Actions counts what an autoplayer did.
type Actions struct {
	Casts        int
	Collects     int
	Purchases    int
	Multiplies   int
	Ascends      int
	Parallelizes int
}

// Player is a greedy autoplayer. It keeps fishing, empties full nets, takes
// every prestige it can pay for, ascending before multiplying, and then
// buys the cheapest affordable upgrade until nothing is affordable.
type Player struct {
	game    *game.Game
	actions Actions
}

// NewPlayer returns a player for g.
func NewPlayer(g *game.Game) *Player {
	return &Player{game: g}
}

// Act plays one tick worth of decisions.
func (p *Player) Act() {
	g := p.game
	sum := g.Summary()

	if !sum.Fishing {
		g.StartFishing()
		p.actions.Casts++
	}
	if sum.NetFish.Sign() > 0 && sum.NetFish.GreaterOrEqual(sum.NetCapacity) && g.CollectNets() {
		p.actions.Collects++
	}

	switch {
	case g.CanAffordAscend():
		top := g.CurrentTier().IsTop()
		if g.BuyAscend() {
			if top {
				p.actions.Parallelizes++
			} else {
				p.actions.Ascends++
			}
		}
	case g.CanAffordMultiply() && !p.localAffordable():
		if g.BuyMultiply() {
			p.actions.Multiplies++
		}
	}

	p.buyUpgrades()
}

func (p *Player) buyUpgrades() {
	for i := 0; i < maxPurchasesPerTick; i++ {
		bought := false
		for _, o := range p.game.Offers() {
			if o.Affordable && p.game.Buy(o.ID) {
				p.actions.Purchases++
				bought = true
				break
			}
		}
		if !bought {
			return
		}
	}
}

// localAffordable reports whether a tier-local upgrade is still worth
// buying before a multiply resets them.
func (p *Player) localAffordable() bool {
	for _, o := range p.game.Offers() {
		if o.Affordable && o.Kind == upgrade.Local {
			return true
		}
	}
	return false
}

// Actions returns the running totals.
func (p *Player) Actions() Actions {
	return p.actions
}
