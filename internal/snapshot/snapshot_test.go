package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianshen/pricemap/internal/catalog"
	"github.com/julianshen/pricemap/internal/store"
)

type failingKV struct {
	getErr error
	setErr error
	value  string
	has    bool
}

func (f *failingKV) Get(string) (string, bool, error) { return f.value, f.has, f.getErr }
func (f *failingKV) Set(string, string) error         { return f.setErr }

type errSource struct{}

func (errSource) Name() string { return "broken" }
func (errSource) Load(context.Context) (catalog.Catalog, error) {
	return catalog.Catalog{}, errors.New("boom")
}

func newMemStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRefreshRoundTrip(t *testing.T) {
	kv := newMemStore(t)
	r := NewRefresher(catalog.StaticSource{}, kv)

	before := time.Now().Truncate(time.Millisecond)
	snap, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ID)

	cached, ok := r.Cached()
	require.True(t, ok)
	assert.False(t, cached.Timestamp.Before(before))
	assert.Equal(t, catalog.Static().Records(), cached.Data)
	assert.Equal(t, snap.ID, cached.ID)
}

func TestRefreshAlwaysOverwrites(t *testing.T) {
	kv := newMemStore(t)
	clock := time.UnixMilli(1_700_000_000_000)
	r := NewRefresher(catalog.StaticSource{}, kv, WithClock(func() time.Time { return clock }))

	first, err := r.Refresh(context.Background())
	require.NoError(t, err)

	clock = clock.Add(time.Minute)
	second, err := r.Refresh(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Data, second.Data)

	cached, ok := r.Cached()
	require.True(t, ok)
	assert.Equal(t, second.ID, cached.ID)
	assert.True(t, cached.Timestamp.Equal(clock))
}

func TestRefreshSourceError(t *testing.T) {
	r := NewRefresher(errSource{}, newMemStore(t))
	_, err := r.Refresh(context.Background())
	assert.ErrorContains(t, err, "broken")
	_, ok := r.Cached()
	assert.False(t, ok)
}

func TestRefreshCacheWriteFailureIsNonFatal(t *testing.T) {
	r := NewRefresher(catalog.StaticSource{}, &failingKV{setErr: errors.New("disk full")})
	snap, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Data, catalog.Static().Len())
}

func TestCachedReadFailureIsAbsent(t *testing.T) {
	r := NewRefresher(catalog.StaticSource{}, &failingKV{getErr: errors.New("locked")})
	_, ok := r.Cached()
	assert.False(t, ok)
}

func TestCachedParseFailureIsAbsent(t *testing.T) {
	r := NewRefresher(catalog.StaticSource{}, &failingKV{value: "{not json", has: true})
	_, ok := r.Cached()
	assert.False(t, ok)
}

func TestLastUpdated(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	kv := newMemStore(t)
	r := NewRefresher(catalog.StaticSource{}, kv, WithClock(func() time.Time { return now }))

	// Nothing cached: report the current time.
	assert.True(t, r.LastUpdated().Equal(now))

	_, err := r.Refresh(context.Background())
	require.NoError(t, err)

	later := now.Add(3 * time.Hour)
	r2 := NewRefresher(catalog.StaticSource{}, kv, WithClock(func() time.Time { return later }))
	assert.True(t, r2.LastUpdated().Equal(now))
}

func TestNilKV(t *testing.T) {
	r := NewRefresher(catalog.StaticSource{}, nil)
	_, err := r.Refresh(context.Background())
	require.NoError(t, err)
	_, ok := r.Cached()
	assert.False(t, ok)
	assert.True(t, r.Stale())
}

func TestIsStale(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.False(t, IsStale(now, now, DefaultExpiry))
	assert.False(t, IsStale(now.Add(-24*time.Hour), now, DefaultExpiry))
	assert.True(t, IsStale(now.Add(-24*time.Hour-time.Millisecond), now, DefaultExpiry))
}

func TestStale(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	kv := newMemStore(t)
	r := NewRefresher(catalog.StaticSource{}, kv,
		WithClock(func() time.Time { return now }),
		WithExpiry(time.Hour))
	assert.Equal(t, time.Hour, r.Expiry())

	_, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.False(t, r.Stale())

	now = now.Add(2 * time.Hour)
	assert.True(t, r.Stale())
}

func TestEncodeDecode(t *testing.T) {
	ts := time.UnixMilli(1_700_000_000_123)
	raw, err := Encode(Snapshot{ID: "x", Timestamp: ts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x","data":[],"timestamp":1700000000123}`, string(raw))

	snap, err := Decode(raw)
	require.NoError(t, err)
	assert.True(t, snap.Timestamp.Equal(ts))
	assert.Empty(t, snap.Data)
}
