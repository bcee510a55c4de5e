// Package snapshot implements the catalog refresh and its write-through
// cache of the last loaded catalog.
//
// Refresh always reloads from the catalog source and overwrites the cache.
// The cached copy is only consulted to report when the catalog was last
// refreshed; it is never fed back into the live catalog.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/julianshen/pricemap/internal/catalog"
)

// CacheKey is the fixed key the snapshot is stored under.
const CacheKey = "ai-model-pricing-cache"

// DefaultExpiry is the staleness window used by IsStale when none is
// configured.
const DefaultExpiry = 24 * time.Hour

// KV is the persistent key/value store the cache writes through to.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Snapshot is one refreshed copy of the catalog.
type Snapshot struct {
	ID        string
	Data      []catalog.ModelRecord
	Timestamp time.Time
}

// payload is the JSON form stored in the KV. The timestamp is Unix
// milliseconds.
type payload struct {
	ID        string                `json:"id,omitempty"`
	Data      []catalog.ModelRecord `json:"data"`
	Timestamp int64                 `json:"timestamp"`
}

// Encode serializes s as {"id", "data", "timestamp"}.
func Encode(s Snapshot) ([]byte, error) {
	data := s.Data
	if data == nil {
		data = []catalog.ModelRecord{}
	}
	return json.Marshal(payload{ID: s.ID, Data: data, Timestamp: s.Timestamp.UnixMilli()})
}

// Decode parses a stored payload.
func Decode(raw []byte) (Snapshot, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return Snapshot{ID: p.ID, Data: p.Data, Timestamp: time.UnixMilli(p.Timestamp)}, nil
}

// IsStale reports whether a snapshot taken at ts is older than window at
// now. Refresh does not consult it: the catalog is reloaded on every call
// regardless of age. The check is kept as a predicate so a future gated
// fetch can use it.
func IsStale(ts, now time.Time, window time.Duration) bool {
	return now.Sub(ts) > window
}

// Option configures a Refresher.
type Option func(*Refresher)

// WithLogger sets the logger used for non-fatal cache failures.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Refresher) { r.log = l }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Refresher) { r.now = now }
}

// WithExpiry sets the window reported by Stale.
func WithExpiry(d time.Duration) Option {
	return func(r *Refresher) {
		if d > 0 {
			r.expiry = d
		}
	}
}

// Refresher loads the catalog from a source and writes it through to the
// cache.
type Refresher struct {
	source catalog.Source
	kv     KV
	log    zerolog.Logger
	now    func() time.Time
	expiry time.Duration
}

// NewRefresher creates a Refresher. kv may be nil, in which case nothing is
// cached and LastUpdated always reports the current time.
func NewRefresher(source catalog.Source, kv KV, opts ...Option) *Refresher {
	r := &Refresher{
		source: source,
		kv:     kv,
		log:    zerolog.Nop(),
		now:    time.Now,
		expiry: DefaultExpiry,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Refresh reloads the catalog and unconditionally overwrites the cached
// snapshot with it. A cache write failure is logged, not returned.
func (r *Refresher) Refresh(ctx context.Context) (Snapshot, error) {
	c, err := r.source.Load(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading catalog from %s: %w", r.source.Name(), err)
	}
	snap := Snapshot{
		ID:        uuid.New().String(),
		Data:      c.Records(),
		Timestamp: r.now(),
	}
	r.write(snap)
	r.log.Debug().
		Str("snapshot", snap.ID).
		Str("source", r.source.Name()).
		Int("records", len(snap.Data)).
		Msg("catalog refreshed")
	return snap, nil
}

func (r *Refresher) write(snap Snapshot) {
	if r.kv == nil {
		return
	}
	raw, err := Encode(snap)
	if err != nil {
		r.log.Warn().Err(err).Msg("encoding snapshot")
		return
	}
	if err := r.kv.Set(CacheKey, string(raw)); err != nil {
		r.log.Warn().Err(err).Msg("writing snapshot cache")
	}
}

// Cached returns the stored snapshot. Read and parse failures are logged and
// reported as absent.
func (r *Refresher) Cached() (Snapshot, bool) {
	if r.kv == nil {
		return Snapshot{}, false
	}
	raw, ok, err := r.kv.Get(CacheKey)
	if err != nil {
		r.log.Warn().Err(err).Msg("reading snapshot cache")
		return Snapshot{}, false
	}
	if !ok {
		return Snapshot{}, false
	}
	snap, err := Decode([]byte(raw))
	if err != nil {
		r.log.Warn().Err(err).Msg("parsing snapshot cache")
		return Snapshot{}, false
	}
	return snap, true
}

// LastUpdated returns the cached snapshot's timestamp, or the current time
// when there is none.
func (r *Refresher) LastUpdated() time.Time {
	if snap, ok := r.Cached(); ok {
		return snap.Timestamp
	}
	return r.now()
}

// Stale reports whether the cached snapshot is older than the configured
// expiry. A missing snapshot counts as stale. Informational only.
func (r *Refresher) Stale() bool {
	snap, ok := r.Cached()
	if !ok {
		return true
	}
	return IsStale(snap.Timestamp, r.now(), r.expiry)
}

// Expiry returns the configured staleness window.
func (r *Refresher) Expiry() time.Duration { return r.expiry }
