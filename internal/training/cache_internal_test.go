package training

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// fakeClock advances manually so expiry can be tested without sleeping.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestSelectionCache_Key(t *testing.T) {
	cache := newSelectionCache(nil)
	got := cache.key(MuscleChest, ExperienceBeginner, 2)
	if got != "chest_beginner_2" {
		t.Errorf("key = %q, want %q", got, "chest_beginner_2")
	}
}

func TestSelectionCache_HitAndMiss(t *testing.T) {
	clock := newFakeClock()
	cache := newSelectionCache(clock.now)

	if _, ok := cache.get("missing"); ok {
		t.Error("empty cache should miss")
	}

	stored := []cachedExercise{
		{ID: "bench_press_0_0", Name: "Supino Reto", TargetMuscle: MuscleChest, Compound: true, Priority: 5},
	}
	cache.set("chest_beginner_1", stored)

	got, ok := cache.get("chest_beginner_1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if diff := cmp.Diff(stored, got); diff != "" {
		t.Errorf("cached selection mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectionCache_Expiry(t *testing.T) {
	clock := newFakeClock()
	cache := newSelectionCache(clock.now)

	cache.set("chest_beginner_1", []cachedExercise{{ID: "bench_press_0_0"}})

	clock.advance(cacheEntryTTL - time.Second)
	if _, ok := cache.get("chest_beginner_1"); !ok {
		t.Error("entry should still be live just before the TTL")
	}

	clock.advance(time.Second)
	if _, ok := cache.get("chest_beginner_1"); ok {
		t.Error("entry should have expired")
	}
	if cache.len() != 0 {
		t.Errorf("cache len = %d after expiry, want 0", cache.len())
	}
}

func TestSelectionCache_EvictsOldestWhenFull(t *testing.T) {
	clock := newFakeClock()
	cache := newSelectionCache(clock.now)

	for i := range cacheMaxEntries {
		cache.set(fmt.Sprintf("key-%d", i), []cachedExercise{{ID: fmt.Sprintf("ex-%d", i)}})
	}
	if cache.len() != cacheMaxEntries {
		t.Fatalf("cache len = %d, want %d", cache.len(), cacheMaxEntries)
	}

	cache.set("key-overflow", []cachedExercise{{ID: "ex-overflow"}})

	if cache.len() != cacheMaxEntries {
		t.Errorf("cache len = %d after eviction, want %d", cache.len(), cacheMaxEntries)
	}
	if _, ok := cache.get("key-0"); ok {
		t.Error("oldest entry should have been evicted")
	}
	if _, ok := cache.get("key-overflow"); !ok {
		t.Error("newest entry should be present")
	}
}

func TestSelectionCache_UpdateKeepsOrderPosition(t *testing.T) {
	clock := newFakeClock()
	cache := newSelectionCache(clock.now)

	cache.set("a", []cachedExercise{{ID: "a1"}})
	cache.set("b", []cachedExercise{{ID: "b1"}})
	// Updating an existing key must not count as a new insertion.
	cache.set("a", []cachedExercise{{ID: "a2"}})

	if cache.len() != 2 {
		t.Fatalf("cache len = %d, want 2", cache.len())
	}
	got, ok := cache.get("a")
	if !ok {
		t.Fatal("expected cache hit for updated key")
	}
	if got[0].ID != "a2" {
		t.Errorf("updated entry id = %q, want %q", got[0].ID, "a2")
	}
}

func TestSelectionCache_CopiesOnGet(t *testing.T) {
	cache := newSelectionCache(nil)
	cache.set("chest_beginner_1", []cachedExercise{{ID: "bench_press_0_0"}})

	first, _ := cache.get("chest_beginner_1")
	first[0].ID = "mutated"

	second, _ := cache.get("chest_beginner_1")
	if second[0].ID != "bench_press_0_0" {
		t.Errorf("cached entry was mutated through the returned slice: %q", second[0].ID)
	}
}

func TestSelectionCache_Clear(t *testing.T) {
	cache := newSelectionCache(nil)
	cache.set("a", []cachedExercise{{ID: "a1"}})
	cache.set("b", []cachedExercise{{ID: "b1"}})

	cache.clear()

	if cache.len() != 0 {
		t.Errorf("cache len = %d after clear, want 0", cache.len())
	}
	if _, ok := cache.get("a"); ok {
		t.Error("cleared cache should miss")
	}
}
