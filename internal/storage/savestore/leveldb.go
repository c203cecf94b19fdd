package savestore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDBStore keeps saves in a goleveldb database.
type LevelDBStore struct {
	mu sync.RWMutex
	db *leveldb.DB
}

// NewLevelDBStore opens or creates the database at path.
func NewLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb store at %s: %w", path, err)
	}
	return &LevelDBStore{db: db}, nil
}

func (l *LevelDBStore) Name() string { return "leveldb" }

func (l *LevelDBStore) Put(ctx context.Context, slot string, data []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.db == nil {
		return ErrStoreClosed
	}
	return l.db.Put(slotKey(slot), data, &opt.WriteOptions{Sync: true})
}

func (l *LevelDBStore) Get(ctx context.Context, slot string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.db == nil {
		return nil, ErrStoreClosed
	}
	data, err := l.db.Get(slotKey(slot), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return data, nil
}

func (l *LevelDBStore) Delete(ctx context.Context, slot string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.db == nil {
		return ErrStoreClosed
	}
	ok, err := l.db.Has(slotKey(slot), nil)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSlotNotFound
	}
	return l.db.Delete(slotKey(slot), &opt.WriteOptions{Sync: true})
}

func (l *LevelDBStore) List(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.db == nil {
		return nil, ErrStoreClosed
	}
	iter := l.db.NewIterator(util.BytesPrefix([]byte(keyPrefix)), nil)
	defer iter.Release()

	var names []string
	for iter.Next() {
		names = append(names, string(iter.Key()[len(keyPrefix):]))
	}
	return names, iter.Error()
}

func (l *LevelDBStore) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}
