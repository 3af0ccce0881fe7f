// Package cache provides a bounded in-memory LRU cache, function
// memoization, and byte-level stores for sharing computed results across
// runs.
//
// The in-memory [LRU] is the workhorse: a fixed-capacity map of keys to
// values whose eviction order is maintained by a min-heap of last-access
// stamps (pkg/heap). Every read refreshes recency, so the heap minimum is
// always the least recently used entry.
//
// [Memoized] wraps a deterministic function with an LRU instance, hashing
// the function's arguments into a cache key. [Store] implementations
// (file, redis, null) persist encoded results between processes; they hold
// codec output only, never their own serialization format.
package cache

import (
	"errors"

	"github.com/matzehuels/traversalgroup/pkg/heap"
	"github.com/matzehuels/traversalgroup/pkg/observability"
)

// ErrNotFound is returned when a key has no live entry in the cache. It is
// distinct from a stored nil/empty value, which is a successful lookup.
var ErrNotFound = errors.New("key not found in cache")

// entry is a cached key/value pair plus the bookkeeping the eviction queue
// needs: the last-access stamp that orders the heap and the entry's current
// heap slot. The slot is maintained by the heap's move callback, so it is
// valid after every mutation, including evictions that shuffle other
// entries around.
type entry struct {
	key   string
	value any
	stamp uint64
	slot  heap.Slot
}

// LRU is a bounded cache with least-recently-used eviction.
//
// Capacity is fixed at construction; Put never grows the cache beyond it.
// Recency stamps come from a monotone counter rather than wall-clock time,
// so two operations never tie and eviction order is deterministic.
//
// LRU is not safe for concurrent use. A concurrent host must hold one lock
// across both the entry map and the heap for every operation, including Get,
// because reads refresh recency and therefore mutate the heap.
type LRU struct {
	capacity int
	entries  map[string]*entry
	queue    *heap.Heap[*entry]
	tick     uint64
}

// NewLRU creates a cache bounded at capacity entries.
// A capacity below 1 is treated as 1.
func NewLRU(capacity int) *LRU {
	if capacity < 1 {
		capacity = 1
	}
	l := &LRU{
		capacity: capacity,
		entries:  make(map[string]*entry, capacity),
	}
	l.queue = heap.New(
		func(a, b *entry) bool { return a.stamp < b.stamp },
		func(e *entry, s heap.Slot) { e.slot = s },
	)
	return l
}

// Get returns the value stored for key and refreshes its recency.
// Returns ErrNotFound if the key has no entry.
func (l *LRU) Get(key string) (any, error) {
	e, ok := l.entries[key]
	if !ok {
		observability.Cache().OnMiss(key)
		return nil, ErrNotFound
	}
	l.refresh(e)
	observability.Cache().OnHit(key)
	return e.value, nil
}

// Peek returns the value stored for key without refreshing its recency.
func (l *LRU) Peek(key string) (any, error) {
	e, ok := l.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return e.value, nil
}

// Put stores value under key. If the key already exists its value is
// replaced and its recency refreshed. Otherwise, if the cache is at
// capacity, the least recently used entry is evicted first.
func (l *LRU) Put(key string, value any) {
	if e, ok := l.entries[key]; ok {
		e.value = value
		l.refresh(e)
		return
	}
	if len(l.entries) >= l.capacity {
		l.evict()
	}
	e := &entry{key: key, value: value, stamp: l.next()}
	l.entries[key] = e
	l.queue.Insert(e)
	observability.Cache().OnInsert(key)
}

// Touch refreshes the recency of an existing entry.
// Returns ErrNotFound if the key has no entry.
func (l *LRU) Touch(key string) error {
	e, ok := l.entries[key]
	if !ok {
		return ErrNotFound
	}
	l.refresh(e)
	return nil
}

// Remove deletes the entry for key from both the map and the eviction
// queue. Returns ErrNotFound if the key has no entry.
func (l *LRU) Remove(key string) error {
	e, ok := l.entries[key]
	if !ok {
		return ErrNotFound
	}
	if _, err := l.queue.DeleteAt(e.slot); err != nil {
		// The slot is maintained by the heap's move callback; an invalid
		// slot here means the map and heap have diverged.
		return err
	}
	delete(l.entries, key)
	return nil
}

// Len returns the number of live entries.
func (l *LRU) Len() int { return len(l.entries) }

// Capacity returns the configured bound.
func (l *LRU) Capacity() int { return l.capacity }

// refresh bumps an entry's stamp and resifts it. Stamps only grow, so the
// entry can only move toward the leaves.
func (l *LRU) refresh(e *entry) {
	e.stamp = l.next()
	// Fix cannot fail: e.slot is kept current by the move callback.
	_, _ = l.queue.Fix(e.slot)
}

// evict removes the entry with the globally oldest stamp.
func (l *LRU) evict() {
	victim, err := l.queue.PopMin()
	if err != nil {
		return
	}
	delete(l.entries, victim.key)
	observability.Cache().OnEvict(victim.key)
}

func (l *LRU) next() uint64 {
	l.tick++
	return l.tick
}
