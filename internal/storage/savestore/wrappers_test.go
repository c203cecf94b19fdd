package savestore

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goMFS/internal/core/bignum"
	"github.com/LeJamon/goMFS/internal/core/state"
	"github.com/LeJamon/goMFS/internal/snapshot"
	"github.com/LeJamon/goMFS/internal/storage/compression"
)

func TestCompressed(t *testing.T) {
	ctx := context.Background()
	raw := NewMemoryStore()
	s, err := NewCompressed(raw, "lz4")
	require.NoError(t, err)
	assert.Equal(t, "memory+lz4", s.Name())

	payload := bytes.Repeat([]byte(`{"base":1,"exponent":0}`), 100)
	require.NoError(t, s.Put(ctx, "slot", payload))

	stored, err := raw.Get(ctx, "slot")
	require.NoError(t, err)
	assert.Less(t, len(stored), len(payload))

	got, err := s.Get(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, raw.Put(ctx, "junk", []byte{9, 9, 9}))
	_, err = s.Get(ctx, "junk")
	assert.ErrorIs(t, err, compression.ErrCorrupt)

	_, err = NewCompressed(raw, "brotli")
	assert.ErrorIs(t, err, compression.ErrUnknownCompressor)
}

func TestCached(t *testing.T) {
	ctx := context.Background()
	raw := NewMemoryStore()
	s, err := NewCached(raw, 2)
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "a", []byte("1")))
	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)

	require.NoError(t, raw.Put(ctx, "b", []byte("2")))
	_, err = s.Get(ctx, "b")
	require.NoError(t, err)
	_, err = s.Get(ctx, "b")
	require.NoError(t, err)

	stats := s.Stats()
	assert.Equal(t, uint64(2), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 2, stats.Size)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, s.Close())
	_, err = s.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	for _, backend := range []string{BackendMemory, BackendFile, BackendPebble, BackendBolt, BackendLevelDB, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			s, err := Open(ctx, Config{
				Backend:     backend,
				Path:        t.TempDir(),
				Compression: "lz4",
				CacheSize:   4,
			}, nil)
			require.NoError(t, err)
			defer s.Close()

			require.NoError(t, s.Put(ctx, "default", []byte("hello hello hello hello")))
			got, err := s.Get(ctx, "default")
			require.NoError(t, err)
			assert.Equal(t, []byte("hello hello hello hello"), got)
		})
	}

	_, err := Open(ctx, Config{Backend: "tape"}, nil)
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, err = Open(ctx, Config{Backend: BackendPostgres}, nil)
	assert.Error(t, err)
}

type fakeSnapshotter struct {
	data []byte
	err  error
}

func (f fakeSnapshotter) Snapshot(snapshot.Format) ([]byte, error) {
	return f.data, f.err
}

func TestSlotSaver(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := state.New(state.DefaultCoefficients())
	s.Fish = bignum.FromInt(1234)
	data, err := snapshot.Encode(s, 1, snapshot.FormatMsgpack)
	require.NoError(t, err)

	saver := &SlotSaver{Store: store, Slot: "main", Format: snapshot.FormatMsgpack, Source: fakeSnapshotter{data: data}}
	require.NoError(t, saver.Save(ctx))

	loaded, err := LoadState(ctx, store, "main")
	require.NoError(t, err)
	assert.True(t, loaded.Fish.Equal(bignum.FromInt(1234)))

	boom := errors.New("boom")
	saver.Source = fakeSnapshotter{err: boom}
	assert.ErrorIs(t, saver.Save(ctx), boom)

	_, err = LoadState(ctx, store, "missing")
	assert.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, store.Put(ctx, "bad", []byte("{}")))
	_, err = LoadState(ctx, store, "bad")
	assert.ErrorIs(t, err, snapshot.ErrMalformed)
}
