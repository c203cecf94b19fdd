package savestore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"
)

var savesBucket = []byte("saves")

// BoltStore keeps saves in a single bbolt bucket.
type BoltStore struct {
	mu sync.RWMutex
	db *bbolt.DB
}

// NewBoltStore opens or creates the database file at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt store at %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(savesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", savesBucket, err)
	}
	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Name() string { return "bbolt" }

func (b *BoltStore) Put(ctx context.Context, slot string, data []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.db == nil {
		return ErrStoreClosed
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(savesBucket).Put([]byte(slot), data)
	})
}

func (b *BoltStore) Get(ctx context.Context, slot string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.db == nil {
		return nil, ErrStoreClosed
	}
	var value []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(savesBucket).Get([]byte(slot))
		if v == nil {
			return ErrSlotNotFound
		}
		// bbolt values are only valid inside the transaction.
		value = copyBytes(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (b *BoltStore) Delete(ctx context.Context, slot string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.db == nil {
		return ErrStoreClosed
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(savesBucket)
		if bucket.Get([]byte(slot)) == nil {
			return ErrSlotNotFound
		}
		return bucket.Delete([]byte(slot))
	})
}

func (b *BoltStore) List(ctx context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.db == nil {
		return nil, ErrStoreClosed
	}
	var names []string
	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(savesBucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

func (b *BoltStore) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}
