// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idq

import (
	"fmt"

	"code.hybscloud.com/idq/clock"
	"code.hybscloud.com/idq/internal/tag"
)

// Queue is an id-keyed FIFO queue with overtime eviction and handle
// recycling.
//
// Every element lives in a handle that is linked into two indexes at once:
// an ordered index (insertion order, the FIFO backbone) and a key index
// (id to handle, for O(1) lookup and removal). Removed handles go back to a
// bounded pool and are reused by later EnQueue calls.
//
// Queue is not safe for concurrent use.
//
// Memory: one handle (two links, id, tick, element) per live or pooled element
type Queue[T any] struct {
	order     orderedIndex[T]
	keys      map[uint64]*handle[T]
	pool      handlePool[T]
	tags      *tag.Generator
	clock     clock.Source
	timeLimit int64 // Milliseconds, negative = disabled
}

func newQueue[T any](opts Options) *Queue[T] {
	src := opts.clock
	if src == nil {
		src = clock.Default()
	}
	q := &Queue[T]{
		keys:      make(map[uint64]*handle[T]),
		tags:      tag.New(src),
		clock:     src,
		timeLimit: opts.timeLimit,
	}
	q.pool.setCapacity(opts.capacity)
	return q
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.order.size
}

// PoolLen returns the number of pooled handles.
func (q *Queue[T]) PoolLen() int {
	return q.pool.len()
}

// EnQueue appends elem and returns the id it is stored under.
//
// The handle comes from the pool when one is available. Ids are unique among
// the elements of one queue under sequential use.
func (q *Queue[T]) EnQueue(elem T) uint64 {
	h := q.pool.acquire()
	h.elem = elem
	h.id = q.tags.Stamp()
	h.tick = q.now()

	q.keys[h.id] = h
	q.order.pushBack(h)
	return h.id
}

// DeQueue removes and returns the oldest element.
// Returns the zero value if the queue is empty.
func (q *Queue[T]) DeQueue() T {
	elem, _ := q.TryDeQueue()
	return elem
}

// TryDeQueue removes and returns the oldest element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Queue[T]) TryDeQueue() (T, error) {
	h := q.order.front()
	if h == nil {
		var zero T
		return zero, ErrWouldBlock
	}
	elem := h.elem
	q.unlink(h)
	return elem, nil
}

// Peek returns the oldest element without removing it.
// Returns the zero value if the queue is empty.
func (q *Queue[T]) Peek() T {
	elem, _ := q.TryPeek()
	return elem
}

// TryPeek returns the oldest element without removing it.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Queue[T]) TryPeek() (T, error) {
	h := q.order.front()
	if h == nil {
		var zero T
		return zero, ErrWouldBlock
	}
	return h.elem, nil
}

// Remove removes the element stored under id.
// Returns false, leaving the queue unchanged, if id is not present.
func (q *Queue[T]) Remove(id uint64) bool {
	h, ok := q.keys[id]
	if !ok {
		return false
	}
	q.unlink(h)
	return true
}

// ContainsKey reports whether an element is stored under id.
func (q *Queue[T]) ContainsKey(id uint64) bool {
	_, ok := q.keys[id]
	return ok
}

// TryGetValue returns the element stored under id and whether it exists.
func (q *Queue[T]) TryGetValue(id uint64) (T, bool) {
	h, ok := q.keys[id]
	if !ok {
		var zero T
		return zero, false
	}
	return h.elem, true
}

// At returns the element stored under id.
// Returns an error wrapping ErrOutOfRange if id is not present.
func (q *Queue[T]) At(id uint64) (T, error) {
	h, ok := q.keys[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%#016x: %w", id, ErrOutOfRange)
	}
	return h.elem, nil
}

// Clear removes every element. Pooled handles are kept and the handles of
// the removed elements are not returned to the pool.
func (q *Queue[T]) Clear() {
	clear(q.keys)
	q.order.reset()
}

// Shrink releases every pooled handle. Queued elements are not affected.
func (q *Queue[T]) Shrink() {
	q.pool.clear()
}

// Capacity returns the handle pool bound. Negative means unbounded.
func (q *Queue[T]) Capacity() int {
	return q.pool.capacity
}

// SetCapacity changes the handle pool bound and immediately drops pooled
// handles above it. Values below -1 are stored as -1 (unbounded).
// Queued elements are not affected.
func (q *Queue[T]) SetCapacity(capacity int) {
	q.pool.setCapacity(capacity)
}

// unlink removes h from both indexes and retires it.
func (q *Queue[T]) unlink(h *handle[T]) {
	delete(q.keys, h.id)
	q.order.remove(h)
	q.pool.release(h)
}

// now returns the monotonic elapsed time in milliseconds.
func (q *Queue[T]) now() int64 {
	return q.clock.Elapsed().Milliseconds()
}

var (
	_ IndexedQueue[int] = (*Queue[int])(nil)
	_ ReadOnly[int]     = (*Queue[int])(nil)
)
