// Package savestore keeps encoded saves under named slots.
//
// Every backend implements Store. Open builds one from configuration and
// wraps it with compression and an LRU read cache; backends themselves only
// move opaque bytes.
package savestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSlotNotFound is returned by Get and Delete for unknown slots.
	ErrSlotNotFound = errors.New("save slot not found")

	// ErrStoreClosed is returned after Close.
	ErrStoreClosed = errors.New("save store is closed")

	// ErrUnknownBackend is returned by Open for unsupported backends.
	ErrUnknownBackend = errors.New("unknown save store backend")

	// ErrInvalidSlot is returned for empty or unsafe slot names.
	ErrInvalidSlot = errors.New("invalid save slot name")
)

// Store persists saves by slot name.
type Store interface {
	Put(ctx context.Context, slot string, data []byte) error
	Get(ctx context.Context, slot string) ([]byte, error)
	Delete(ctx context.Context, slot string) error

	// List returns the slot names in lexical order.
	List(ctx context.Context) ([]string, error)

	// Name identifies the backend.
	Name() string

	Close() error
}

// maxSlotLen bounds slot names.
const maxSlotLen = 64

// ValidateSlot checks that name is usable as a key and a file name.
func ValidateSlot(name string) error {
	if name == "" || len(name) > maxSlotLen {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, name)
	}
	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidSlot, name)
		}
	}
	return nil
}

// Key-value backends store every slot under this prefix.
const keyPrefix = "slot/"

func slotKey(slot string) []byte {
	return []byte(keyPrefix + slot)
}

// prefixEnd is the first key after every key starting with keyPrefix.
func prefixEnd() []byte {
	end := []byte(keyPrefix)
	end[len(end)-1]++
	return end
}

func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
