package config

import (
	"github.com/LeJamon/goMFS/internal/core/state"
)

// Balance presets.
const (
	PresetNormal   = "normal"
	PresetCasual   = "casual"
	PresetHardcore = "hardcore"
)

// Presets lists the accepted preset names.
func Presets() []string {
	return []string{PresetNormal, PresetCasual, PresetHardcore}
}

// Coefficients converts the configured values into balance coefficients,
// then applies the preset on top: casual doubles fishing speed and adds half
// again to net capacity, hardcore halves fishing speed and halves the
// crunch increment.
func (g GameConfig) Coefficients() state.Coefficients {
	c := state.Coefficients{
		TicksPerSecond:          g.TickRate,
		FishingSpeedMultiplier:  g.FishingSpeed,
		NetCapacityMultiplier:   g.NetCapacityMultiplier,
		NetBaseCapacity:         g.NetBaseCapacity,
		AutoCollectBaseInterval: g.AutoCollectBaseInterval.Seconds(),
		AutoCollectStep:         g.AutoCollectStep.Seconds(),
		CrunchIncrement:         g.CrunchIncrement,
	}

	switch g.Preset {
	case PresetCasual:
		c.FishingSpeedMultiplier *= 2
		c.NetCapacityMultiplier *= 1.5
	case PresetHardcore:
		c.FishingSpeedMultiplier *= 0.5
		c.CrunchIncrement *= 0.5
	}
	return c
}

// NewState returns a fresh game state with this balance.
func (g GameConfig) NewState() *state.State {
	s := state.New(g.Coefficients())
	if g.FishingDurationMS > 0 {
		s.FishingDuration = g.FishingDurationMS
	}
	return s
}
