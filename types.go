// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idq

import "iter"

// ReadOnly is the read side of an indexed queue.
//
// ReadOnly exposes lookups, peeks and iteration without any operation that
// links or unlinks elements. Capacity and time limit remain adjustable since
// they only govern the handle pool and the overtime predicate.
//
// Example:
//
//	func report(q idq.ReadOnly[Job]) {
//	    if q.PeekOvertime() {
//	        log.Printf("oldest job is stale: %v", q.Peek())
//	    }
//	}
type ReadOnly[T any] interface {
	Capacity() int
	SetCapacity(capacity int)
	TimeLimitSecond() int64
	SetTimeLimitSecond(seconds int64)
	TimeLimitMillisecond() int64
	SetTimeLimitMillisecond(ms int64)

	// Len returns the number of live elements.
	Len() int

	// At returns the element stored under id.
	// Returns ErrOutOfRange if id is not present.
	At(id uint64) (T, error)

	ContainsKey(id uint64) bool
	TryGetValue(id uint64) (T, bool)

	// Peek returns the oldest element, or the zero value if empty.
	Peek() T

	// PeekOvertime reports whether the oldest element has outlived the
	// time limit.
	PeekOvertime() bool

	// Keys yields ids from the key index, in no particular order.
	Keys() iter.Seq[uint64]

	// Values yields elements oldest first.
	Values() iter.Seq[T]

	// All yields id and element pairs from the key index, in no particular
	// order.
	All() iter.Seq2[uint64, T]
}

// IndexedQueue is the combined read-write interface of an indexed queue.
//
// An IndexedQueue is not safe for concurrent use. Callers sharing one across
// goroutines must hold a lock around every operation.
type IndexedQueue[T any] interface {
	ReadOnly[T]

	// EnQueue appends elem and returns the id it is stored under.
	EnQueue(elem T) uint64

	// DeQueue removes and returns the oldest element.
	// Returns the zero value if the queue is empty.
	DeQueue() T

	// TryPeek returns the oldest element.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	TryPeek() (T, error)

	// TryDeQueue removes and returns the oldest element.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	TryDeQueue() (T, error)

	// Remove removes the element stored under id.
	// Returns false, leaving the queue unchanged, if id is not present.
	Remove(id uint64) bool

	// DeQueueOvertime removes every element that has outlived the time
	// limit, oldest first, and reports whether any was removed.
	DeQueueOvertime() bool

	// Clear removes every element. Pooled handles are kept.
	Clear()

	// Shrink releases every pooled handle. Live elements are kept.
	Shrink()
}
