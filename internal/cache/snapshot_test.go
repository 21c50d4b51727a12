package cache

import (
	"testing"
	"time"

	"github.com/campusfunds/event_funds_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is an adjustable clock for deterministic TTL tests.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func TestSnapshot_MissWhenEmpty(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	s := NewSnapshot[domain.Event](DefaultTTL, clk.Now)

	items, ok := s.Get()
	assert.False(t, ok)
	assert.Nil(t, items)
}

func TestSnapshot_HitWithinTTL(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	s := NewSnapshot[domain.Event](DefaultTTL, clk.Now)

	s.Set([]domain.Event{{EventID: "ev-1"}})

	clk.Advance(90 * time.Second) // within the 120s window
	items, ok := s.Get()
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "ev-1", items[0].EventID)
}

func TestSnapshot_MissAfterTTL(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	s := NewSnapshot[domain.Event](DefaultTTL, clk.Now)

	s.Set([]domain.Event{{EventID: "ev-1"}})

	clk.Advance(2 * time.Minute) // exactly the TTL boundary is already stale
	_, ok := s.Get()
	assert.False(t, ok)
}

func TestSnapshot_SetResetsCaptureTime(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	s := NewSnapshot[domain.Event](DefaultTTL, clk.Now)

	s.Set([]domain.Event{{EventID: "old"}})
	clk.Advance(110 * time.Second)
	s.Set([]domain.Event{{EventID: "new"}})
	clk.Advance(110 * time.Second)

	items, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "new", items[0].EventID)
}

func TestSnapshot_EmptySliceIsAHit(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	s := NewSnapshot[domain.Cashbook](DefaultTTL, clk.Now)

	// An empty collection is a valid snapshot, distinct from "never fetched".
	s.Set([]domain.Cashbook{})
	items, ok := s.Get()
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestStore_InvalidateAllClearsBothCollections(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	store := NewStore(DefaultTTL, clk.Now)

	store.Events.Set([]domain.Event{{EventID: "ev-1"}})
	store.Cashbooks.Set([]domain.Cashbook{{CashbookID: "CB2024001"}})

	store.InvalidateAll()

	_, ok := store.Events.Get()
	assert.False(t, ok)
	_, ok = store.Cashbooks.Get()
	assert.False(t, ok)
}

func TestStore_DefaultsWhenUnconfigured(t *testing.T) {
	store := NewStore(0, nil)

	store.Events.Set([]domain.Event{{EventID: "ev-1"}})
	items, ok := store.Events.Get()
	require.True(t, ok)
	assert.Len(t, items, 1)
}
