package cache

import (
	"sync"
	"time"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
)

// Clock returns the current time. Injectable so tests can drive expiry
// deterministically.
type Clock func() time.Time

// DefaultTTL is the freshness window for cached collection snapshots.
const DefaultTTL = 2 * time.Minute

// Snapshot memoizes one full collection read. A snapshot is fresh when it was
// stored less than ttl ago; a stale or empty snapshot reports a miss and the
// caller is expected to refetch and Set.
type Snapshot[T any] struct {
	mu        sync.Mutex
	items     []T
	fetchedAt time.Time
	ttl       time.Duration
	now       Clock
}

// NewSnapshot creates an empty snapshot with the given TTL and clock.
func NewSnapshot[T any](ttl time.Duration, now Clock) *Snapshot[T] {
	if now == nil {
		now = time.Now
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Snapshot[T]{ttl: ttl, now: now}
}

// Get returns the cached collection and true when fresh, or nil and false on
// a miss. Callers must not mutate the returned slice.
func (s *Snapshot[T]) Get() ([]T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items == nil {
		return nil, false
	}
	if s.now().Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}
	return s.items, true
}

// Set replaces the cached collection and resets its capture time.
func (s *Snapshot[T]) Set(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = items
	s.fetchedAt = s.now()
}

// Invalidate drops the snapshot unconditionally; the next Get misses.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.fetchedAt = time.Time{}
}

// Store holds the two collection snapshots the read facade memoizes: the full
// event list and the full cashbook list. Any write against events, cashbooks
// or transactions invalidates both snapshots; per-id invalidation is
// deliberately not supported (whole-cache invalidation keeps post-write reads
// correct at the cost of hit rate).
type Store struct {
	Events    *Snapshot[domain.Event]
	Cashbooks *Snapshot[domain.Cashbook]
}

// NewStore creates a cache store with the given TTL and clock.
func NewStore(ttl time.Duration, now Clock) *Store {
	return &Store{
		Events:    NewSnapshot[domain.Event](ttl, now),
		Cashbooks: NewSnapshot[domain.Cashbook](ttl, now),
	}
}

// InvalidateAll clears both snapshots. Must be called after any create,
// update or delete that could make a cached snapshot stale.
func (c *Store) InvalidateAll() {
	c.Events.Invalidate()
	c.Cashbooks.Invalidate()
}
