package savestore

import (
	"context"
	"fmt"

	"github.com/LeJamon/goMFS/internal/storage/compression"
)

// Compressed compresses payloads on the way into a Store and decompresses
// them on the way out.
type Compressed struct {
	Store
	compressor compression.Compressor
}

// NewCompressed wraps s with the named compressor.
func NewCompressed(s Store, name string) (*Compressed, error) {
	c, err := compression.Get(name)
	if err != nil {
		return nil, err
	}
	return &Compressed{Store: s, compressor: c}, nil
}

func (c *Compressed) Put(ctx context.Context, slot string, data []byte) error {
	packed, err := c.compressor.Compress(data)
	if err != nil {
		return fmt.Errorf("failed to compress slot %s: %w", slot, err)
	}
	return c.Store.Put(ctx, slot, packed)
}

func (c *Compressed) Get(ctx context.Context, slot string) ([]byte, error) {
	packed, err := c.Store.Get(ctx, slot)
	if err != nil {
		return nil, err
	}
	data, err := c.compressor.Decompress(packed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress slot %s: %w", slot, err)
	}
	return data, nil
}

func (c *Compressed) Name() string {
	return c.Store.Name() + "+" + c.compressor.Name()
}
