package savestore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPebble   = "pebble"
	BackendBolt     = "bbolt"
	BackendLevelDB  = "leveldb"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Backends lists every backend Open understands.
func Backends() []string {
	return []string{
		BackendMemory, BackendFile, BackendPebble, BackendBolt,
		BackendLevelDB, BackendSQLite, BackendPostgres,
	}
}

// Config selects and tunes a store.
type Config struct {
	Backend     string
	Path        string
	Compression string
	CacheSize   int
	PostgresDSN string

	// Fs overrides the filesystem of the file backend.
	Fs afero.Fs
}

// Open builds the configured backend wrapped with compression and, when
// CacheSize is positive, a read cache.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var s Store = backend
	if cfg.Compression != "" {
		c, err := NewCompressed(s, cfg.Compression)
		if err != nil {
			backend.Close()
			return nil, err
		}
		s = c
	}
	if cfg.CacheSize > 0 {
		c, err := NewCached(s, cfg.CacheSize)
		if err != nil {
			backend.Close()
			return nil, fmt.Errorf("failed to create save cache: %w", err)
		}
		s = c
	}

	logger.Info("save store opened",
		"backend", cfg.Backend,
		"path", cfg.Path,
		"compression", cfg.Compression,
		"cache", cfg.CacheSize)
	return s, nil
}

func openBackend(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		fs := cfg.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		return NewFileStore(fs, cfg.Path)
	case BackendPebble:
		return NewPebbleStore(cfg.Path)
	case BackendBolt:
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		return NewBoltStore(filepath.Join(cfg.Path, "saves.db"))
	case BackendLevelDB:
		return NewLevelDBStore(cfg.Path)
	case BackendSQLite:
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		return NewSQLiteStore(ctx, filepath.Join(cfg.Path, "saves.sqlite"))
	case BackendPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres backend requires a dsn")
		}
		return NewPostgresStore(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
}

func ensureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return nil
}
