// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package idq provides an id-keyed FIFO queue with overtime eviction and
// handle recycling.
//
// A [Queue] keeps every element in two indexes at once:
//
//	ordered index - insertion order, the FIFO backbone
//	key index     - id → element, O(1) lookup and removal
//
// EnQueue returns the id an element is stored under. The element can then be
// dequeued in FIFO order, or looked up and removed by id from anywhere in the
// queue.
//
// # Quick Start
//
// Direct constructors:
//
//	q := idq.NewQueue[Event]()                  // unbounded pool, no time limit
//	q := idq.NewQueueCapacity[Event](64)        // pool keeps up to 64 handles
//	q := idq.NewQueueTimeLimit[Event](64, 5000) // ... and 5s overtime threshold
//
// Builder API:
//
//	q := idq.Build[Event](idq.New().Capacity(64).TimeLimit(5 * time.Second))
//
// # Basic Usage
//
//	q := idq.NewQueue[string]()
//
//	id := q.EnQueue("hello")
//	q.EnQueue("world")
//
//	v, ok := q.TryGetValue(id) // "hello", true
//	q.Remove(id)               // true
//	q.DeQueue()                // "world"
//	q.DeQueue()                // "" (empty)
//
// # Lookups
//
// Three lookups with different failure behavior are provided:
//
//	ContainsKey(id) bool     - reports presence
//	TryGetValue(id) (T, bool) - reports presence and returns the element
//	At(id) (T, error)        - fails with ErrOutOfRange when absent
//
// Peek and DeQueue return the zero value of T on an empty queue. TryPeek and
// TryDeQueue return [ErrWouldBlock] instead, for callers that store zero
// values.
//
// # Overtime Eviction
//
// With a non-negative time limit, an element is overtime once it has been
// queued for at least that long. Insertion order is age order, so only the
// front of the queue needs checking:
//
//	q := idq.NewQueueTimeLimit[Job](-1, 30_000)
//
//	// Periodic sweep
//	if q.DeQueueOvertime() {
//	    // At least one stale job was dropped
//	}
//
// DeQueueOvertime removes the longest overtime prefix and never an element
// queued after a younger one.
//
// # Handle Recycling
//
// Removed handles are kept in a pool and reused by later EnQueue calls. The
// pool holds at most Capacity handles (negative = unbounded). Lowering the
// capacity drops pooled handles at once; queued elements are never affected.
// Shrink empties the pool; Clear empties the queue but keeps the pool.
//
// # Iteration
//
// Values yields elements in FIFO order. Keys and All are driven by the key
// index and yield in no particular order:
//
//	for v := range q.Values() {
//	    fmt.Println(v) // oldest first
//	}
//	for id, v := range q.All() {
//	    fmt.Println(id, v) // any order
//	}
//
// # Ids
//
// Ids are 64-bit tags: the high half carries monotonic elapsed time, the low
// half a per-queue stamp counter. They are unique among the elements of one
// queue under sequential use; they are neither globally unique nor
// unpredictable. For globally ordered ids, see package snowflake.
//
// # Thread Safety
//
// Queue is not safe for concurrent use. Callers sharing a queue must hold a
// lock around every operation, including overtime checks:
//
//	var mu sync.Mutex
//
//	mu.Lock()
//	id := q.EnQueue(job)
//	mu.Unlock()
//
// # Time Source
//
// Ticks are read from [clock.Default], a process-wide monotonic clock that
// starts on first use. Tests can substitute a [clock.Manual] through
// Builder.Clock to control overtime deterministically.
package idq
