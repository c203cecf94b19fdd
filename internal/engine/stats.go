package engine

import "time"

// Stats describes the engine since it started.
type Stats struct {
	Ticks         uint64
	GameTime      time.Duration
	TotalTickTime time.Duration
	MaxTickTime   time.Duration
	SlowTicks     uint64
	Saves         uint64
	SaveErrors    uint64
	AutoPurchases uint64
	AutoPrestiges uint64

	StartedAt time.Time
	// Now is the clock reading of the latest tick.
	Now time.Time
}

// AverageTickTime is the mean time spent inside a tick.
func (s Stats) AverageTickTime() time.Duration {
	if s.Ticks == 0 {
		return 0
	}
	return s.TotalTickTime / time.Duration(s.Ticks)
}

// TicksPerSecond is the achieved tick rate over the run so far.
func (s Stats) TicksPerSecond() float64 {
	elapsed := s.Now.Sub(s.StartedAt).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Ticks) / elapsed
}
