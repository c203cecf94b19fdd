// Package upgrade is the catalogue of purchasable upgrades and the generic
// purchase and auto-purchase logic that runs over it.
//
// Every upgrade, from rod levels to one-time auto unlocks, is a Definition
// in a single registry. Purchases always validate, deduct and then apply,
// and report failure with a false return instead of an error.
package upgrade

import (
	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/cost"
	"github.com/LeJamon/goMFS/internal/core/rates"
	"github.com/LeJamon/goMFS/internal/core/state"
)

// Kind groups upgrades by how they reset and scale.
type Kind int

const (
	// Local upgrades reset with the tier.
	Local Kind = iota
	// Leveled upgrades persist and can be bought repeatedly.
	Leveled
	// Unlock upgrades are bought once.
	Unlock
)

func (k Kind) String() string {
	switch k {
	case Local:
		return "local"
	case Leveled:
		return "leveled"
	case Unlock:
		return "unlock"
	default:
		return "unknown"
	}
}

// Definition describes one upgrade.
type Definition struct {
	ID   string
	Name string
	Kind Kind

	// MaxLevel caps Level; zero means uncapped. Unlocks are capped at one
	// implicitly.
	MaxLevel int

	Level     func(*state.State) int
	Cost      func(*state.State) bignum.Number
	Available func(*state.State) bool
	Apply     func(*state.State)

	// MaxBuyers lists unlocks, any of which permits BuyMax.
	MaxBuyers []string
	// Enables lists the AutoBuy entries switched on when this unlock is
	// bought.
	Enables []string
}

// Registry is an ordered set of definitions.
type Registry struct {
	order []string
	defs  map[string]Definition
}

// NewRegistry builds a registry; later definitions with a duplicate id
// replace earlier ones.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		r.Register(d)
	}
	return r
}

// Register adds or replaces a definition.
func (r *Registry) Register(d Definition) {
	if d.Level == nil {
		id := d.ID
		d.Level = func(s *state.State) int {
			if s.IsUnlocked(id) {
				return 1
			}
			return 0
		}
	}
	if d.Available == nil {
		d.Available = func(*state.State) bool { return true }
	}
	if _, ok := r.defs[d.ID]; !ok {
		r.order = append(r.order, d.ID)
	}
	r.defs[d.ID] = d
}

// Get looks up a definition.
func (r *Registry) Get(id string) (Definition, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// All returns the definitions in registration order.
func (r *Registry) All() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.defs[id])
	}
	return out
}

// Default is the game's catalogue.
func Default() *Registry {
	return NewRegistry(catalogue()...)
}

func catalogue() []Definition {
	pm := func(n int) func(*state.State) bool {
		return func(s *state.State) bool { return s.ParallelMultiverses >= n }
	}
	fixed := func(price float64) func(*state.State) bignum.Number {
		return func(*state.State) bignum.Number { return cost.Fixed(price) }
	}

	return []Definition{
		{
			ID: state.Rod, Name: "Fishing Rod", Kind: Local, MaxLevel: state.MaxLocalLevel,
			Level:     func(s *state.State) int { return s.LocalUpgrades.RodLevel },
			Cost:      cost.Rod,
			Apply:     func(s *state.State) { s.LocalUpgrades.RodLevel++ },
			MaxBuyers: []string{state.RodMaxBuyer, state.MaxBuyer},
		},
		{
			ID: state.Net, Name: "Fishing Net", Kind: Local, MaxLevel: state.MaxLocalLevel,
			Level: func(s *state.State) int { return s.LocalUpgrades.NetLevel },
			Cost:  cost.Net,
			Apply: func(s *state.State) {
				s.LocalUpgrades.NetLevel++
				s.Nets.Count++
			},
			MaxBuyers: []string{state.NetMaxBuyer, state.MaxBuyer},
		},
		{
			ID: state.Bait, Name: "Bait", Kind: Local, MaxLevel: state.MaxLocalLevel,
			Level:     func(s *state.State) int { return s.LocalUpgrades.BaitLevel },
			Cost:      cost.Bait,
			Apply:     func(s *state.State) { s.LocalUpgrades.BaitLevel++ },
			MaxBuyers: []string{state.BaitMaxBuyer, state.MaxBuyer},
		},
		{
			ID: state.CatchMultiplier, Name: "Catch Fish Multiplier", Kind: Leveled,
			Level:     func(s *state.State) int { return s.GeneralUpgrades.CatchFishMultiplier },
			Cost:      cost.CatchMultiplier,
			Apply:     func(s *state.State) { s.GeneralUpgrades.CatchFishMultiplier++ },
			MaxBuyers: []string{state.CatchMaxBuyer},
		},
		{
			ID: state.AutoCollectNets, Name: "Auto Collect Nets", Kind: Unlock,
			Cost: fixed(cost.AutoCollectNets),
		},
		{
			ID: state.AutoNetCollectInterval, Name: "Auto Net Collect Interval", Kind: Leveled,
			Level: func(s *state.State) int { return s.GeneralUpgrades.AutoNetCollectInterval },
			Cost:  cost.AutoNetCollectInterval,
			Available: func(s *state.State) bool {
				return s.IsUnlocked(state.AutoCollectNets) && rates.NetAutoCollectInterval(s) > 0
			},
			Apply: func(s *state.State) { s.GeneralUpgrades.AutoNetCollectInterval++ },
		},
		{ID: state.RodMaxBuyer, Name: "Rod Max Buyer", Kind: Unlock, Cost: fixed(cost.RodMaxBuyer)},
		{ID: state.NetMaxBuyer, Name: "Net Max Buyer", Kind: Unlock, Cost: fixed(cost.NetMaxBuyer)},
		{ID: state.BaitMaxBuyer, Name: "Bait Max Buyer", Kind: Unlock, Cost: fixed(cost.BaitMaxBuyer)},
		{ID: state.MaxBuyer, Name: "Max Buyer", Kind: Unlock, Cost: fixed(cost.MaxBuyer)},
		{
			ID: state.CatchMaxBuyer, Name: "Catch Fish Max Buyer", Kind: Unlock,
			Cost:      fixed(cost.CatchMaxBuyer),
			Available: func(s *state.State) bool { return s.IsUnlocked(state.MaxBuyer) },
		},
		{
			ID: state.MultiversalPropagation, Name: "Multiversal Propagation", Kind: Leveled,
			Level: func(s *state.State) int { return s.GeneralUpgrades.MultiversalPropagation },
			Cost:  cost.MultiversalPropagation,
			Apply: func(s *state.State) { s.GeneralUpgrades.MultiversalPropagation++ },
		},
		{
			ID: state.FishingMastery, Name: "Fishing Mastery", Kind: Leveled,
			Level: func(s *state.State) int { return s.GeneralUpgrades.FishingMastery },
			Cost:  cost.FishingMastery,
			Apply: func(s *state.State) { s.GeneralUpgrades.FishingMastery++ },
		},
		{
			ID: state.NetMastery, Name: "Net Mastery", Kind: Leveled,
			Level: func(s *state.State) int { return s.GeneralUpgrades.NetMastery },
			Cost:  cost.NetMastery,
			Apply: func(s *state.State) { s.GeneralUpgrades.NetMastery++ },
		},
		{
			ID: state.BaitMastery, Name: "Bait Mastery", Kind: Leveled,
			Level: func(s *state.State) int { return s.GeneralUpgrades.BaitMastery },
			Cost:  cost.BaitMastery,
			Apply: func(s *state.State) { s.GeneralUpgrades.BaitMastery++ },
		},
		{
			ID: state.ParallelizedPropagation, Name: "Parallelized Propagation", Kind: Leveled,
			Level:     func(s *state.State) int { return s.GeneralUpgrades.ParallelizedPropagation },
			Cost:      cost.ParallelizedPropagation,
			Available: pm(5),
			Apply:     func(s *state.State) { s.GeneralUpgrades.ParallelizedPropagation++ },
		},
		{
			ID: state.Automaxer, Name: "Automaxer", Kind: Unlock,
			Cost: fixed(cost.Automaxer), Available: pm(2),
			Enables: []string{state.Rod, state.Net, state.Bait},
		},
		{
			ID: state.AutoMultiply, Name: "Auto Multiply", Kind: Unlock,
			Cost: fixed(cost.AutoMultiply), Available: pm(2),
			Enables: []string{state.ActionMultiply},
		},
		{
			ID: state.AutoAscend, Name: "Auto Ascend", Kind: Unlock,
			Cost: fixed(cost.AutoAscend),
			Available: func(s *state.State) bool {
				return s.ParallelMultiverses >= 2 && s.IsUnlocked(state.AutoMultiply)
			},
			Enables: []string{state.ActionAscend},
		},
		{
			ID: state.AutoParallelize, Name: "Auto Parallelize", Kind: Unlock,
			Cost: fixed(cost.AutoParallelize), Available: pm(20),
			Enables: []string{state.ActionParallelize},
		},
		{
			ID: state.AutoParallelizedPropagation, Name: "Auto Parallelized Propagation", Kind: Unlock,
			Cost: fixed(cost.AutoMastery), Available: pm(100),
			Enables: []string{state.ParallelizedPropagation},
		},
		{
			ID: state.AutoMultiversalPropagation, Name: "Auto Multiversal Propagation", Kind: Unlock,
			Cost: fixed(cost.AutoMastery), Available: pm(100),
			Enables: []string{state.MultiversalPropagation},
		},
		{
			ID: state.AutoFishingMastery, Name: "Auto Fishing Mastery", Kind: Unlock,
			Cost: fixed(cost.AutoMastery), Available: pm(100),
			Enables: []string{state.FishingMastery},
		},
		{
			ID: state.AutoNetMastery, Name: "Auto Net Mastery", Kind: Unlock,
			Cost: fixed(cost.AutoMastery), Available: pm(100),
			Enables: []string{state.NetMastery},
		},
		{
			ID: state.AutoBaitMastery, Name: "Auto Bait Mastery", Kind: Unlock,
			Cost: fixed(cost.AutoMastery), Available: pm(100),
			Enables: []string{state.BaitMastery},
		},
		{
			ID: state.AutoCatchFish, Name: "Auto Catch Fish", Kind: Unlock,
			Cost: fixed(cost.AutoMastery), Available: pm(100),
			Enables: []string{state.CatchMultiplier},
		},
		{
			ID: state.ParallelMultiverseMultiplier, Name: "Parallel Multiverse Multiplier", Kind: Leveled,
			Level:     func(s *state.State) int { return s.GeneralUpgrades.ParallelMultiverseMultiplier },
			Cost:      cost.ParallelMultiverseMultiplier,
			Available: pm(500),
			Apply:     func(s *state.State) { s.GeneralUpgrades.ParallelMultiverseMultiplier++ },
		},
		{
			ID: state.AutoParallelMultiverseMultiplier, Name: "Auto Parallel Multiverse Multiplier", Kind: Unlock,
			Cost: fixed(cost.AutoParallelMultiverseMultiplier), Available: pm(500),
			Enables: []string{state.ParallelMultiverseMultiplier},
		},
	}
}
