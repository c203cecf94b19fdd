// Package config loads mfsd configuration from defaults, a TOML file and
// MFSD_ environment variables.
package config

import (
	"path/filepath"
	"time"
)

// Config is the complete mfsd configuration.
type Config struct {
	Game    GameConfig    `toml:"game" mapstructure:"game"`
	Engine  EngineConfig  `toml:"engine" mapstructure:"engine"`
	Storage StorageConfig `toml:"storage" mapstructure:"storage"`
	Metrics MetricsConfig `toml:"metrics" mapstructure:"metrics"`
	Log     LogConfig     `toml:"log" mapstructure:"log"`

	configPath string `toml:"-" mapstructure:"-"`
}

// GameConfig holds the balance coefficients of new games.
type GameConfig struct {
	Preset                  string        `toml:"preset" mapstructure:"preset"`
	TickRate                int           `toml:"tick_rate" mapstructure:"tick_rate"`
	FishingDurationMS       float64       `toml:"fishing_duration_ms" mapstructure:"fishing_duration_ms"`
	FishingSpeed            float64       `toml:"fishing_speed" mapstructure:"fishing_speed"`
	NetCapacityMultiplier   float64       `toml:"net_capacity_multiplier" mapstructure:"net_capacity_multiplier"`
	NetBaseCapacity         float64       `toml:"net_base_capacity" mapstructure:"net_base_capacity"`
	AutoCollectBaseInterval time.Duration `toml:"auto_collect_base_interval" mapstructure:"auto_collect_base_interval"`
	AutoCollectStep         time.Duration `toml:"auto_collect_step" mapstructure:"auto_collect_step"`
	CrunchIncrement         float64       `toml:"crunch_increment" mapstructure:"crunch_increment"`
}

// EngineConfig tunes the scheduler.
type EngineConfig struct {
	AutosaveTicks     int           `toml:"autosave_ticks" mapstructure:"autosave_ticks"`
	AutosaveInterval  time.Duration `toml:"autosave_interval" mapstructure:"autosave_interval"`
	SlowTickThreshold time.Duration `toml:"slow_tick_threshold" mapstructure:"slow_tick_threshold"`
	MaxDelta          time.Duration `toml:"max_delta" mapstructure:"max_delta"`
}

// StorageConfig selects the save store.
type StorageConfig struct {
	Backend     string `toml:"backend" mapstructure:"backend"`
	Path        string `toml:"path" mapstructure:"path"`
	Slot        string `toml:"slot" mapstructure:"slot"`
	Compression string `toml:"compression" mapstructure:"compression"`
	Format      string `toml:"format" mapstructure:"format"`
	CacheSize   int    `toml:"cache_size" mapstructure:"cache_size"`
	PostgresDSN string `toml:"postgres_dsn" mapstructure:"postgres_dsn"`
}

// MetricsConfig configures the Prometheus textfile.
type MetricsConfig struct {
	// Textfile is written on every autosave; empty disables metrics.
	Textfile string `toml:"textfile" mapstructure:"textfile"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `toml:"level" mapstructure:"level"`
	Format string `toml:"format" mapstructure:"format"`
}

// DefaultConfigName is the file searched for when no path is given.
const DefaultConfigName = "mfsd.toml"

// DefaultSearchPaths are searched in order for DefaultConfigName.
func DefaultSearchPaths(home string) []string {
	paths := []string{"."}
	if home != "" {
		paths = append(paths, filepath.Join(home, ".mfsd"))
	}
	return append(paths, "/etc/mfsd")
}

// GetConfigPath returns the file the configuration was read from, or the
// empty string when only defaults and environment were used.
func (c *Config) GetConfigPath() string {
	return c.configPath
}
