package savestore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"
)

// PebbleStore keeps saves in a Pebble LSM database.
type PebbleStore struct {
	mu sync.RWMutex
	db *pebble.DB
}

// NewPebbleStore opens or creates the database at path.
func NewPebbleStore(path string) (*PebbleStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble store at %s: %w", path, err)
	}
	return &PebbleStore{db: db}, nil
}

func (p *PebbleStore) Name() string { return "pebble" }

func (p *PebbleStore) Put(ctx context.Context, slot string, data []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.db == nil {
		return ErrStoreClosed
	}
	return p.db.Set(slotKey(slot), data, pebble.Sync)
}

func (p *PebbleStore) Get(ctx context.Context, slot string) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.db == nil {
		return nil, ErrStoreClosed
	}
	val, closer, err := p.db.Get(slotKey(slot))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	defer closer.Close()

	// The value is only valid until closer is closed.
	return copyBytes(val), nil
}

func (p *PebbleStore) Delete(ctx context.Context, slot string) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.db == nil {
		return ErrStoreClosed
	}
	key := slotKey(slot)
	_, closer, err := p.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return ErrSlotNotFound
		}
		return err
	}
	closer.Close()
	return p.db.Delete(key, pebble.Sync)
}

func (p *PebbleStore) List(ctx context.Context) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.db == nil {
		return nil, ErrStoreClosed
	}
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: prefixEnd(),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var names []string
	for iter.First(); iter.Valid(); iter.Next() {
		names = append(names, string(iter.Key()[len(keyPrefix):]))
	}
	return names, iter.Error()
}

func (p *PebbleStore) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
