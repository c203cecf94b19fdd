package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader reads configuration in priority order:
// 1. Default values
// 2. Configuration file (mfsd.toml)
// 3. Environment variables (MFSD_ prefix, "." replaced by "_")
type Loader struct {
	v           *viper.Viper
	path        string
	searchPaths []string
}

// NewLoader reads path, or searches DefaultSearchPaths when path is empty.
func NewLoader(path string) *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		v:           viper.New(),
		path:        path,
		searchPaths: DefaultSearchPaths(home),
	}
}

// Load loads and validates the configuration.
func Load(path string) (*Config, error) {
	return NewLoader(path).Load()
}

// Load reads every source and validates the result.
func (l *Loader) Load() (*Config, error) {
	setDefaults(l.v)

	if err := l.readFile(); err != nil {
		return nil, err
	}

	l.v.SetEnvPrefix("MFSD")
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	return l.decode()
}

func (l *Loader) readFile() error {
	if l.path != "" {
		if _, err := os.Stat(l.path); os.IsNotExist(err) {
			return fmt.Errorf("config file does not exist: %s", l.path)
		}
		l.v.SetConfigFile(l.path)
		if err := l.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", l.path, err)
		}
		return nil
	}

	l.v.SetConfigName(strings.TrimSuffix(DefaultConfigName, ".toml"))
	l.v.SetConfigType("toml")
	for _, p := range l.searchPaths {
		l.v.AddConfigPath(p)
	}
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.configPath = l.v.ConfigFileUsed()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Watch reloads the configuration whenever its file changes. onChange
// receives every valid reload; onError receives read or validation
// failures, after which the previous configuration stays in effect. Watch
// reports false when no file was loaded.
func (l *Loader) Watch(onChange func(*Config), onError func(error)) bool {
	if l.v.ConfigFileUsed() == "" {
		return false
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := l.decode()
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	l.v.WatchConfig()
	return true
}

// SaveExampleConfig writes an example configuration with every default. It
// refuses to overwrite an existing file unless force is set.
func SaveExampleConfig(configPath string, force bool) error {
	v := viper.New()
	for key, value := range generateExampleConfig() {
		v.Set(key, value)
	}

	write := v.SafeWriteConfigAs
	if force {
		write = v.WriteConfigAs
	}
	if err := write(configPath); err != nil {
		return fmt.Errorf("failed to write example config: %w", err)
	}
	return nil
}

// generateExampleConfig lists every key with its default, durations as
// strings so the file stays readable.
func generateExampleConfig() map[string]interface{} {
	return map[string]interface{}{
		"game.preset":                     PresetNormal,
		"game.tick_rate":                  10,
		"game.fishing_duration_ms":        1000.0,
		"game.fishing_speed":              1.0,
		"game.net_capacity_multiplier":    2.0,
		"game.net_base_capacity":          100.0,
		"game.auto_collect_base_interval": "10s",
		"game.auto_collect_step":          "500ms",
		"game.crunch_increment":           0.1,

		"engine.autosave_ticks":      300,
		"engine.autosave_interval":   "30s",
		"engine.slow_tick_threshold": "100ms",
		"engine.max_delta":           "1s",

		"storage.backend":     "file",
		"storage.path":        "./saves",
		"storage.slot":        "default",
		"storage.compression": "lz4",
		"storage.format":      "json",
		"storage.cache_size":  16,

		"metrics.textfile": "",

		"log.level":  "info",
		"log.format": "text",
	}
}
