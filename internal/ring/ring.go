// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides a bounded single-producer single-consumer handoff
// for generated ids.
//
// One goroutine pushes ids as it draws them from a generator, another pops
// them to check. Neither side blocks: a full or empty ring reports
// [iox.ErrWouldBlock] and the caller decides how to wait. Once the producer
// calls Close and the consumer has drained the ring, Pop reports ErrClosed.
package ring

import (
	"errors"
	"math/bits"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// ErrClosed is returned by Push after Close, and by Pop once a closed ring
// is drained.
var ErrClosed = errors.New("ring: closed")

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// Ring is a Lamport ring buffer of ids. Each side caches the other side's
// index and only reloads it when the ring looks full or empty.
//
// Push and Close belong to the producer, Pop to the consumer.
type Ring struct {
	_          pad
	head       atomix.Uint64 // next slot to pop
	_          pad
	cachedTail uint64
	_          pad
	tail       atomix.Uint64 // next slot to push
	_          pad
	cachedHead uint64
	closed     atomix.Bool
	_          pad
	slots      []int64
	mask       uint64
}

// New creates a ring holding at least capacity ids.
// Capacity rounds up to the next power of 2.
func New(capacity int) *Ring {
	if capacity < 2 {
		panic("ring: capacity must be >= 2")
	}
	n := uint64(1) << bits.Len(uint(capacity-1))
	return &Ring{
		slots: make([]int64, n),
		mask:  n - 1,
	}
}

// Push appends id (producer only).
// Returns ErrWouldBlock if the ring is full and ErrClosed after Close.
func (r *Ring) Push(id int64) error {
	if r.closed.Load() {
		return ErrClosed
	}
	tail := r.tail.LoadRelaxed()
	if tail-r.cachedHead > r.mask {
		r.cachedHead = r.head.LoadAcquire()
		if tail-r.cachedHead > r.mask {
			return iox.ErrWouldBlock
		}
	}
	r.slots[tail&r.mask] = id
	r.tail.StoreRelease(tail + 1)
	return nil
}

// Close marks the end of the stream (producer only). Ids pushed before
// Close are still delivered.
func (r *Ring) Close() {
	r.closed.Store(true)
}

// Pop removes the oldest id (consumer only).
// Returns ErrWouldBlock if the ring is empty and open, ErrClosed if it is
// empty and closed.
func (r *Ring) Pop() (int64, error) {
	head := r.head.LoadRelaxed()
	if head >= r.cachedTail {
		// Read closed before tail: a push that precedes Close is then visible.
		closed := r.closed.Load()
		r.cachedTail = r.tail.LoadAcquire()
		if head >= r.cachedTail {
			if closed {
				return 0, ErrClosed
			}
			return 0, iox.ErrWouldBlock
		}
	}
	id := r.slots[head&r.mask]
	r.head.StoreRelease(head + 1)
	return id, nil
}

// Len returns the number of ids waiting. The value is a snapshot when
// called concurrently with Push or Pop.
func (r *Ring) Len() int {
	head := r.head.LoadAcquire()
	return int(r.tail.LoadAcquire() - head)
}

// Cap returns the ring capacity.
func (r *Ring) Cap() int {
	return int(r.mask + 1)
}
