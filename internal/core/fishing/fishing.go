// Package fishing is the per-tick accumulation engine: the fishing action
// state machine, passive nets, container income and parallelized
// propagation.
//
// Every source feeds a fractional accumulator and only whole fish are moved
// into the balance, so sub-unit income is carried between ticks instead of
// being truncated away.
package fishing

import (
	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/rates"
	"github.com/LeJamon/goMFS/internal/core/state"
)

// Tick advances every income source by dt milliseconds.
func Tick(s *state.State, dt float64) {
	if dt < 0 {
		dt = 0
	}
	UpdateContainers(s)
	UpdateFishing(s, dt)
	UpdateNets(s, dt)
	UpdateParallelizedPropagation(s)
	s.TotalTimePlayed += dt
}

// IsFishing reports whether a catch is in flight or queued.
func IsFishing(s *state.State) bool {
	return s.FishingActive || s.FishingQueue > 0
}

// Start begins fishing, or queues another round of catches when fishing is
// already under way. Work in flight is never restarted or cancelled.
func Start(s *state.State) {
	mult := rates.CatchMultiplier(s)
	if !IsFishing(s) {
		s.FishingActive = true
		s.FishingProgress = 0
		s.FishingQueue = mult - 1
		return
	}
	s.FishingActive = true
	s.FishingQueue += mult
}

// UpdateFishing advances the catch in flight. At most one catch completes
// per tick; progress beyond the duration is discarded.
func UpdateFishing(s *state.State, dt float64) {
	if !IsFishing(s) {
		return
	}
	s.FishingActive = true
	s.FishingProgress += dt
	if s.FishingProgress < rates.FishingDuration(s) {
		return
	}

	s.FishingFractionalAccumulator = s.FishingFractionalAccumulator.Add(rates.FishPerCatch(s))
	s.AddFish(drain(&s.FishingFractionalAccumulator))
	s.Stats.Catches++

	s.FishingProgress = 0
	if s.FishingQueue > 0 {
		s.FishingQueue--
		return
	}
	s.FishingActive = false
}

// UpdateContainers pays container income once every TicksPerSecond ticks.
func UpdateContainers(s *state.State) {
	s.ContainerTickCounter++
	if s.ContainerTickCounter < ticksPerSecond(s) {
		return
	}
	s.ContainerTickCounter = 0

	fps := rates.ContainerFPS(s)
	if fps.Sign() <= 0 {
		return
	}
	s.ContainerFishAccumulator = s.ContainerFishAccumulator.Add(fps)
	s.AddFish(drain(&s.ContainerFishAccumulator))
}

// UpdateParallelizedPropagation pays one tick's share of the permanent
// parallelized propagation rate.
func UpdateParallelizedPropagation(s *state.State) {
	if s.ParallelizedPropagationFPS.Sign() <= 0 {
		return
	}
	share := s.ParallelizedPropagationFPS.DivFloat(float64(ticksPerSecond(s)))
	s.ParallelizedPropagationAccumulator = s.ParallelizedPropagationAccumulator.Add(share)
	s.AddFish(drain(&s.ParallelizedPropagationAccumulator))
}

// drain removes the whole part of acc and returns it.
func drain(acc *bignum.Number) bignum.Number {
	whole := acc.Floor()
	if whole.Sign() <= 0 {
		return bignum.Zero()
	}
	*acc = acc.Sub(whole)
	return whole
}

func ticksPerSecond(s *state.State) int {
	if s.Coefficients.TicksPerSecond < 1 {
		return 1
	}
	return s.Coefficients.TicksPerSecond
}
