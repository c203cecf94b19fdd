package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/LeJamon/goMFS/internal/snapshot"
	"github.com/LeJamon/goMFS/internal/storage/compression"
	"github.com/LeJamon/goMFS/internal/storage/savestore"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the complete configuration.
func Validate(c *Config) error {
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("%w: game: %w", ErrInvalidConfig, err)
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("%w: engine: %w", ErrInvalidConfig, err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("%w: storage: %w", ErrInvalidConfig, err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks the balance settings.
func (g *GameConfig) Validate() error {
	if !slices.Contains(Presets(), g.Preset) {
		return fmt.Errorf("unknown preset %q, expected one of %v", g.Preset, Presets())
	}
	if g.TickRate < 1 || g.TickRate > 1000 {
		return fmt.Errorf("tick_rate must be between 1 and 1000, got %d", g.TickRate)
	}
	if g.FishingDurationMS <= 0 {
		return fmt.Errorf("fishing_duration_ms must be positive, got %g", g.FishingDurationMS)
	}
	if g.FishingSpeed <= 0 {
		return fmt.Errorf("fishing_speed must be positive, got %g", g.FishingSpeed)
	}
	if g.NetCapacityMultiplier <= 0 {
		return fmt.Errorf("net_capacity_multiplier must be positive, got %g", g.NetCapacityMultiplier)
	}
	if g.NetBaseCapacity <= 0 {
		return fmt.Errorf("net_base_capacity must be positive, got %g", g.NetBaseCapacity)
	}
	if g.AutoCollectBaseInterval < 0 || g.AutoCollectStep < 0 {
		return fmt.Errorf("auto collect durations cannot be negative")
	}
	if g.CrunchIncrement < 0 {
		return fmt.Errorf("crunch_increment cannot be negative, got %g", g.CrunchIncrement)
	}
	return nil
}

// Validate checks the scheduler settings.
func (e *EngineConfig) Validate() error {
	if e.AutosaveTicks < 0 {
		return fmt.Errorf("autosave_ticks cannot be negative, got %d", e.AutosaveTicks)
	}
	if e.AutosaveInterval < 0 {
		return fmt.Errorf("autosave_interval cannot be negative, got %s", e.AutosaveInterval)
	}
	if e.SlowTickThreshold < 0 {
		return fmt.Errorf("slow_tick_threshold cannot be negative, got %s", e.SlowTickThreshold)
	}
	if e.MaxDelta <= 0 {
		return fmt.Errorf("max_delta must be positive, got %s", e.MaxDelta)
	}
	return nil
}

// Validate checks the save store settings.
func (s *StorageConfig) Validate() error {
	if !slices.Contains(savestore.Backends(), s.Backend) {
		return fmt.Errorf("unknown backend %q, expected one of %v", s.Backend, savestore.Backends())
	}
	if s.Backend != savestore.BackendMemory && s.Backend != savestore.BackendPostgres && s.Path == "" {
		return fmt.Errorf("path is required for backend %q", s.Backend)
	}
	if s.Backend == savestore.BackendPostgres && s.PostgresDSN == "" {
		return fmt.Errorf("postgres_dsn is required for backend %q", s.Backend)
	}
	if err := savestore.ValidateSlot(s.Slot); err != nil {
		return err
	}
	if s.Compression != "" && !compression.IsAvailable(s.Compression) {
		return fmt.Errorf("unknown compression %q, expected one of %v", s.Compression, compression.Available())
	}
	if _, err := snapshot.ParseFormat(s.Format); err != nil {
		return err
	}
	if s.CacheSize < 0 {
		return fmt.Errorf("cache_size cannot be negative, got %d", s.CacheSize)
	}
	return nil
}

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Validate checks the log settings.
func (l *LogConfig) Validate() error {
	if _, err := l.SlogLevel(); err != nil {
		return err
	}
	if l.Format != LogFormatText && l.Format != LogFormatJSON {
		return fmt.Errorf("unknown log format %q, expected %q or %q", l.Format, LogFormatText, LogFormatJSON)
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l *LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
