package savestore

import (
	"context"
	"fmt"

	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/snapshot"
)

// Snapshotter produces an encoded save between ticks.
type Snapshotter interface {
	Snapshot(f snapshot.Format) ([]byte, error)
}

// SlotSaver writes a game into one slot. It satisfies the engine's
// autosave hook.
type SlotSaver struct {
	Store  Store
	Slot   string
	Format snapshot.Format
	Source Snapshotter
}

// Save snapshots Source and stores it.
func (s *SlotSaver) Save(ctx context.Context) error {
	data, err := s.Source.Snapshot(s.Format)
	if err != nil {
		return fmt.Errorf("failed to snapshot game: %w", err)
	}
	if err := s.Store.Put(ctx, s.Slot, data); err != nil {
		return fmt.Errorf("failed to save slot %s: %w", s.Slot, err)
	}
	return nil
}

// LoadRaw reads a slot and returns the envelope bytes with their format.
func LoadRaw(ctx context.Context, store Store, slot string) ([]byte, snapshot.Format, error) {
	data, err := store.Get(ctx, slot)
	if err != nil {
		return nil, "", err
	}
	return data, snapshot.DetectFormat(data), nil
}

// LoadState reads and decodes a slot.
func LoadState(ctx context.Context, store Store, slot string) (*state.State, error) {
	data, f, err := LoadRaw(ctx, store, slot)
	if err != nil {
		return nil, err
	}
	s, err := snapshot.Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode slot %s: %w", slot, err)
	}
	return s, nil
}
