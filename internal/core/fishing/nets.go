package fishing

import (
	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/rates"
	"github.com/LeJamon/goMFS/internal/core/state"
)

// timerEpsilon absorbs float drift from counting the timer down in tick
// sized steps.
const timerEpsilon = 1e-9

// UpdateNets fills the nets for dt milliseconds and runs auto-collect.
func UpdateNets(s *state.State, dt float64) {
	if s.Nets.Count <= 0 {
		return
	}
	capacity := rates.NetCapacity(s)

	if s.Nets.Fish.Less(capacity) && !s.NetAutoCollectActive {
		generated := rates.NetRate(s).MulFloat(dt / 1000)
		Fill(&s.Nets, generated, capacity)
	}
	autoCollect(s, capacity, dt)
}

// Fill adds generated fish through the nets' accumulator. Whole fish move
// into the nets up to capacity; whatever does not fit stays in the
// accumulator.
func Fill(n *state.Nets, generated, capacity bignum.Number) {
	n.FractionalAccumulator = n.FractionalAccumulator.Add(generated)
	whole := n.FractionalAccumulator.Floor()
	if whole.Sign() <= 0 {
		return
	}
	add := bignum.Min(whole, capacity.Sub(n.Fish))
	if add.Sign() <= 0 {
		return
	}
	// Nets only ever hold whole fish. Flooring snaps the float drift of
	// repeated small transfers back onto the integer.
	n.Fish = n.Fish.Add(add).Floor()
	n.FractionalAccumulator = n.FractionalAccumulator.Sub(add)
}

// Collect empties the nets into the balance and reports whether anything
// was collected.
func Collect(s *state.State) bool {
	s.NetAutoCollectActive = false
	s.NetAutoCollectTimer = 0
	if s.Nets.Fish.Sign() <= 0 {
		return false
	}
	s.AddFish(s.Nets.Fish)
	s.Nets.Fish = bignum.Zero()
	s.Stats.NetCollects++
	return true
}

// autoCollect collects full nets after the purchased interval. The timer
// is simulated time and restarts if the nets drop below capacity.
func autoCollect(s *state.State, capacity bignum.Number, dt float64) {
	if !s.IsUnlocked(state.AutoCollectNets) {
		return
	}
	if s.Nets.Fish.Less(capacity) {
		if s.NetAutoCollectActive {
			s.NetAutoCollectActive = false
			s.NetAutoCollectTimer = 0
		}
		return
	}

	interval := rates.NetAutoCollectInterval(s)
	switch {
	case interval <= 0:
		Collect(s)
	case !s.NetAutoCollectActive:
		s.NetAutoCollectActive = true
		s.NetAutoCollectTimer = interval
	default:
		s.NetAutoCollectTimer -= dt / 1000
		if s.NetAutoCollectTimer <= timerEpsilon {
			Collect(s)
		}
	}
}
