package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets every key so environment variables can override keys
// absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("game.preset", PresetNormal)
	v.SetDefault("game.tick_rate", 10)
	v.SetDefault("game.fishing_duration_ms", 1000.0)
	v.SetDefault("game.fishing_speed", 1.0)
	v.SetDefault("game.net_capacity_multiplier", 2.0)
	v.SetDefault("game.net_base_capacity", 100.0)
	v.SetDefault("game.auto_collect_base_interval", 10*time.Second)
	v.SetDefault("game.auto_collect_step", 500*time.Millisecond)
	v.SetDefault("game.crunch_increment", 0.1)

	v.SetDefault("engine.autosave_ticks", 300)
	v.SetDefault("engine.autosave_interval", 30*time.Second)
	v.SetDefault("engine.slow_tick_threshold", 100*time.Millisecond)
	v.SetDefault("engine.max_delta", time.Second)

	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.path", "./saves")
	v.SetDefault("storage.slot", "default")
	v.SetDefault("storage.compression", "lz4")
	v.SetDefault("storage.format", "json")
	v.SetDefault("storage.cache_size", 16)
	v.SetDefault("storage.postgres_dsn", "")

	v.SetDefault("metrics.textfile", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic("config: defaults do not unmarshal: " + err.Error())
	}
	return &cfg
}
