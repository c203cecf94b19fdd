package upgrade

import (
	"sort"

	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/cost"
	"github.com/LeJamon/goMFS/internal/core/progression"
	"github.com/LeJamon/goMFS/internal/core/state"
)

// maxRepeat bounds repeated purchases in one call so a zero price cannot
// loop forever.
const maxRepeat = 1000

// Maxed reports whether d is at its level cap.
func Maxed(s *state.State, d Definition) bool {
	if d.Kind == Unlock {
		return s.IsUnlocked(d.ID)
	}
	return d.MaxLevel > 0 && d.Level(s) >= d.MaxLevel
}

// IsAvailable reports whether d can be bought at all: prerequisites met and
// not maxed.
func IsAvailable(s *state.State, d Definition) bool {
	return d.Available(s) && !Maxed(s, d)
}

// CanAfford reports whether d is available and the balance covers it.
func CanAfford(s *state.State, d Definition) bool {
	return IsAvailable(s, d) && cost.CanAfford(s, d.Cost(s))
}

// Purchase buys one level of id.
func (r *Registry) Purchase(s *state.State, id string) bool {
	d, ok := r.Get(id)
	if !ok || !IsAvailable(s, d) {
		return false
	}
	if !cost.Pay(s, d.Cost(s)) {
		return false
	}
	apply(s, d)
	return true
}

func apply(s *state.State, d Definition) {
	if d.Apply != nil {
		d.Apply(s)
	}
	if d.Kind == Unlock {
		s.Unlock(d.ID)
		for _, id := range d.Enables {
			s.SetAutoBuy(id, true)
		}
	}
}

// CanBuyMax reports whether a max buyer for id is owned.
func (r *Registry) CanBuyMax(s *state.State, id string) bool {
	d, ok := r.Get(id)
	if !ok {
		return false
	}
	for _, u := range d.MaxBuyers {
		if s.IsUnlocked(u) {
			return true
		}
	}
	return false
}

// BuyMax buys id repeatedly while affordable, if a max buyer is owned, and
// returns how many levels were bought.
func (r *Registry) BuyMax(s *state.State, id string) int {
	if !r.CanBuyMax(s, id) {
		return 0
	}
	return r.repeat(s, id)
}

func (r *Registry) repeat(s *state.State, id string) int {
	n := 0
	for n < maxRepeat && r.Purchase(s, id) {
		n++
	}
	return n
}

// AutoBuyable reports whether id can be toggled in the AutoBuy table,
// meaning an owned unlock enables it.
func (r *Registry) AutoBuyable(s *state.State, id string) bool {
	for _, d := range r.All() {
		if d.Kind != Unlock || !s.IsUnlocked(d.ID) {
			continue
		}
		for _, e := range d.Enables {
			if e == id {
				return true
			}
		}
	}
	return false
}

// SetAutoBuy toggles automatic buying of id. It fails when no owned unlock
// enables id.
func (r *Registry) SetAutoBuy(s *state.State, id string, enabled bool) bool {
	if !r.AutoBuyable(s, id) {
		return false
	}
	s.SetAutoBuy(id, enabled)
	return true
}

// AutoResult summarizes one pass of the auto-purchase loop.
type AutoResult struct {
	Purchases    int
	Multiplied   bool
	Ascended     bool
	Parallelized bool
}

// RunAuto is the generic auto-purchase loop: every upgrade enabled in the
// AutoBuy table is bought while affordable, then at most one enabled
// prestige action runs.
func (r *Registry) RunAuto(s *state.State, now int64) AutoResult {
	var res AutoResult
	for _, id := range r.order {
		if s.AutoBuyEnabled(id) {
			res.Purchases += r.repeat(s, id)
		}
	}

	switch {
	case s.AutoBuyEnabled(state.ActionParallelize) && s.CurrentTier.IsTop() && progression.CanAffordAscend(s):
		res.Parallelized = progression.BuyAscend(s, now)
	case s.AutoBuyEnabled(state.ActionAscend) && !s.CurrentTier.IsTop() && progression.CanAffordAscend(s):
		res.Ascended = progression.BuyAscend(s, now)
	case s.AutoBuyEnabled(state.ActionMultiply) && r.LocalMaxed(s) && progression.CanAffordMultiply(s):
		res.Multiplied = progression.BuyMultiply(s, now)
	}
	return res
}

// LocalMaxed reports whether every local upgrade is at its cap.
func (r *Registry) LocalMaxed(s *state.State) bool {
	for _, d := range r.All() {
		if d.Kind == Local && !Maxed(s, d) {
			return false
		}
	}
	return true
}

// Offer is a catalogue line for display.
type Offer struct {
	ID         string
	Name       string
	Kind       Kind
	Level      int
	Cost       bignum.Number
	Affordable bool
	AutoBuy    bool
}

// Offers lists every currently available upgrade, cheapest first.
func (r *Registry) Offers(s *state.State) []Offer {
	var out []Offer
	for _, d := range r.All() {
		if !IsAvailable(s, d) {
			continue
		}
		c := d.Cost(s)
		out = append(out, Offer{
			ID:         d.ID,
			Name:       d.Name,
			Kind:       d.Kind,
			Level:      d.Level(s),
			Cost:       c,
			Affordable: cost.CanAfford(s, c),
			AutoBuy:    s.AutoBuyEnabled(d.ID),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cost.Less(out[j].Cost)
	})
	return out
}
