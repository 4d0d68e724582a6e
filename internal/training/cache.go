package training

import (
	"fmt"
	"sync"
	"time"
)

const (
	cacheMaxEntries = 100
	cacheEntryTTL   = 60 * time.Minute
)

// cachedExercise is the slimmed-down form stored in the selection cache.
type cachedExercise struct {
	ID           string
	Name         string
	TargetMuscle MuscleGroup
	Compound     bool
	Priority     int
}

type cacheEntry struct {
	exercises []cachedExercise
	storedAt  time.Time
}

// selectionCache memoizes exercise selections per muscle, level, and count.
// Entries expire lazily after cacheEntryTTL and the oldest entry is evicted
// once cacheMaxEntries is reached. The clock is injected so expiry is
// testable without sleeping.
type selectionCache struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]cacheEntry
	// order holds keys in insertion order for FIFO eviction.
	order []string
}

func newSelectionCache(now func() time.Time) *selectionCache {
	if now == nil {
		now = time.Now
	}
	return &selectionCache{
		now:     now,
		entries: make(map[string]cacheEntry),
		order:   nil,
	}
}

// key builds the cache key for a selection request.
func (c *selectionCache) key(muscle MuscleGroup, level ExperienceLevel, count int) string {
	return fmt.Sprintf("%s_%s_%d", muscle, level, count)
}

// get returns a copy of the cached selection, or false when the key is absent
// or the entry has expired.
func (c *selectionCache) get(key string) ([]cachedExercise, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.storedAt) >= cacheEntryTTL {
		c.remove(key)
		return nil, false
	}

	// Copy so callers cannot mutate the cached selection.
	exercises := make([]cachedExercise, len(entry.exercises))
	copy(exercises, entry.exercises)
	return exercises, true
}

// set stores a selection under the given key, evicting the oldest entry when
// the cache is full.
func (c *selectionCache) set(key string, exercises []cachedExercise) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.entries) >= cacheMaxEntries {
			c.remove(c.order[0])
		}
		c.order = append(c.order, key)
	}

	stored := make([]cachedExercise, len(exercises))
	copy(stored, exercises)
	c.entries[key] = cacheEntry{exercises: stored, storedAt: c.now()}
}

// clear drops all entries.
func (c *selectionCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
	c.order = nil
}

// len reports the number of live entries without touching expiry.
func (c *selectionCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove deletes a key from the entry map and the insertion order.
// Callers must hold the mutex.
func (c *selectionCache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
