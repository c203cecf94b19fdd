// Package compression is a registry of codecs applied to saved payloads.
//
// Every compressed payload starts with a one-byte method tag and the
// uvarint length of the original data, so a payload can be decompressed
// without knowing which compressor wrote it and incompressible input is
// stored raw.
package compression

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownCompressor is returned for names not in the registry.
	ErrUnknownCompressor = errors.New("unknown compressor")

	// ErrCorrupt is returned when a payload cannot be decompressed.
	ErrCorrupt = errors.New("corrupt compressed payload")
)

// Compressor compresses and decompresses whole payloads.
type Compressor interface {
	// Name returns the registry name.
	Name() string

	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Factory creates a compressor instance.
type Factory func() Compressor

var (
	mu          sync.RWMutex
	compressors = make(map[string]Factory)
)

// Register adds a compressor factory under name.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	compressors[name] = factory
}

// Get returns a new compressor for name. The empty name means "none".
func Get(name string) (Compressor, error) {
	if name == "" {
		name = "none"
	}
	mu.RLock()
	factory, ok := compressors[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompressor, name)
	}
	return factory(), nil
}

// Available returns the registered names, sorted.
func Available() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(compressors))
	for name := range compressors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsAvailable reports whether name is registered.
func IsAvailable(name string) bool {
	mu.RLock()
	_, ok := compressors[name]
	mu.RUnlock()
	return ok
}

func init() {
	Register("none", func() Compressor { return &NoCompressor{} })
	Register("lz4", func() Compressor { return &LZ4Compressor{} })
}
