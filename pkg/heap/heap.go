// Package heap provides an array-backed binary min-heap with externally
// visible slot references.
//
// Unlike container/heap, every item occupies a numbered slot that callers can
// hold on to, and the heap reports slot changes through an optional OnMove
// callback. This makes it possible to delete or reprioritize arbitrary items
// in O(log n) without searching, which is what the bounded LRU cache in
// pkg/cache needs to keep its eviction queue consistent with its entry map.
//
// Ordering is determined by a caller-supplied strict less-than comparison.
// Ties have no defined order. All sifting is iterative, so stack use stays
// bounded on large heaps.
package heap

import "errors"

var (
	// ErrEmpty is returned by [Heap.Peek] and [Heap.PopMin] when the heap
	// holds no items.
	ErrEmpty = errors.New("heap is empty")

	// ErrBadSlot is returned by [Heap.DeleteAt] and [Heap.Fix] when the slot
	// does not reference a live item.
	ErrBadSlot = errors.New("slot out of range")
)

// Slot is a 1-based position in the heap array. Slot 1 is always the minimum.
// A slot is only valid until the next mutation unless the owner tracks moves
// through the OnMove callback.
type Slot int

// Heap is an array-backed binary min-heap. The zero value is not usable;
// construct instances with [New].
//
// Heap is not safe for concurrent use without external synchronization.
type Heap[T any] struct {
	// items is 1-based: items[0] is an unused placeholder so that the
	// parent/child arithmetic (i/2, 2i, 2i+1) stays branch-free.
	items  []T
	less   func(a, b T) bool
	onMove func(item T, s Slot)
}

// New creates an empty heap ordered by less. If onMove is non-nil it is
// invoked every time an item comes to rest in a new slot: on insertion, on
// every swap while sifting, and when the last item is swapped into a deleted
// slot. Callers that store slots alongside items should update them there.
func New[T any](less func(a, b T) bool, onMove func(item T, s Slot)) *Heap[T] {
	return &Heap[T]{
		items:  make([]T, 1),
		less:   less,
		onMove: onMove,
	}
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int { return len(h.items) - 1 }

// Insert adds an item and returns the slot where it came to rest.
func (h *Heap[T]) Insert(item T) Slot {
	h.items = append(h.items, item)
	i := len(h.items) - 1
	h.moved(i)
	return h.siftUp(i)
}

// Peek returns the minimum item without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if h.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.items[1], nil
}

// PopMin removes and returns the minimum item.
func (h *Heap[T]) PopMin() (T, error) {
	if h.Len() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.DeleteAt(1)
}

// DeleteAt removes and returns the item at slot s. The hole is filled by
// swapping in the last item, which is then sifted up or down as needed.
// Deleting the last slot is O(1); every other case is O(log n).
func (h *Heap[T]) DeleteAt(s Slot) (T, error) {
	i := int(s)
	if i < 1 || i >= len(h.items) {
		var zero T
		return zero, ErrBadSlot
	}
	deleted := h.items[i]
	last := len(h.items) - 1
	if i == last {
		h.items = h.items[:last]
		return deleted, nil
	}
	h.items[i] = h.items[last]
	h.items = h.items[:last]
	h.moved(i)
	if i > 1 && h.less(h.items[i], h.items[i/2]) {
		h.siftUp(i)
	} else {
		h.siftDown(i)
	}
	return deleted, nil
}

// Fix restores the heap invariant around slot s after the item stored there
// changed its ordering key in place. It returns the item's new slot.
func (h *Heap[T]) Fix(s Slot) (Slot, error) {
	i := int(s)
	if i < 1 || i >= len(h.items) {
		return 0, ErrBadSlot
	}
	if i > 1 && h.less(h.items[i], h.items[i/2]) {
		return h.siftUp(i), nil
	}
	return h.siftDown(i), nil
}

// At returns the item at slot s without removing it.
func (h *Heap[T]) At(s Slot) (T, error) {
	i := int(s)
	if i < 1 || i >= len(h.items) {
		var zero T
		return zero, ErrBadSlot
	}
	return h.items[i], nil
}

// siftUp walks the item at index i toward the root until its parent is not
// greater, returning the index where it settles.
func (h *Heap[T]) siftUp(i int) Slot {
	for i > 1 {
		j := i / 2
		if !h.less(h.items[i], h.items[j]) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return Slot(i)
}

// siftDown walks the item at index i toward the leaves, swapping with its
// least child while the invariant is violated.
func (h *Heap[T]) siftDown(i int) Slot {
	n := len(h.items)
	for {
		j := 2 * i
		if j >= n {
			return Slot(i)
		}
		if j+1 < n && h.less(h.items[j+1], h.items[j]) {
			j++
		}
		if !h.less(h.items[j], h.items[i]) {
			return Slot(i)
		}
		h.swap(i, j)
		i = j
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.moved(i)
	h.moved(j)
}

func (h *Heap[T]) moved(i int) {
	if h.onMove != nil {
		h.onMove(h.items[i], Slot(i))
	}
}
