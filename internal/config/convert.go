package config

import (
	"github.com/LeJamon/goMFS/internal/engine"
	"github.com/LeJamon/goMFS/internal/snapshot"
	"github.com/LeJamon/goMFS/internal/storage/savestore"
)

// EngineConfig converts the scheduler settings, taking the tick rate from
// the game section.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		TickRate:          c.Game.TickRate,
		AutosaveTicks:     c.Engine.AutosaveTicks,
		AutosaveInterval:  c.Engine.AutosaveInterval,
		SlowTickThreshold: c.Engine.SlowTickThreshold,
		MaxDelta:          c.Engine.MaxDelta,
	}
}

// StoreConfig converts the storage settings for savestore.Open.
func (s *StorageConfig) StoreConfig() savestore.Config {
	return savestore.Config{
		Backend:     s.Backend,
		Path:        s.Path,
		Compression: s.Compression,
		CacheSize:   s.CacheSize,
		PostgresDSN: s.PostgresDSN,
	}
}

// SnapshotFormat returns the configured envelope encoding. Validate has
// already rejected unknown names.
func (s *StorageConfig) SnapshotFormat() snapshot.Format {
	f, err := snapshot.ParseFormat(s.Format)
	if err != nil {
		return snapshot.FormatJSON
	}
	return f
}
