// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idq

import "github.com/gammazero/deque"

// handle is the storage record of one queued element.
//
// A handle is owned either by the handle pool or by the ordered and key
// indexes together, never both.
type handle[T any] struct {
	id   uint64
	tick int64 // Milliseconds of monotonic elapsed time at EnQueue
	elem T
	prev *handle[T]
	next *handle[T]
}

// handlePool recycles retired handles, most recently retired first.
//
// The pool holds at most capacity handles. A negative capacity leaves it
// unbounded.
type handlePool[T any] struct {
	free     deque.Deque[*handle[T]]
	capacity int
}

// acquire returns a pooled handle, or a new one if the pool is empty.
func (p *handlePool[T]) acquire() *handle[T] {
	if p.free.Len() == 0 {
		return &handle[T]{}
	}
	return p.free.PopBack()
}

// release retires h. The handle is wiped so the pool keeps no reference to
// the element. It is dropped if the pool is full.
func (p *handlePool[T]) release(h *handle[T]) {
	*h = handle[T]{}
	if p.capacity >= 0 && p.free.Len() >= p.capacity {
		return
	}
	p.free.PushBack(h)
}

// setCapacity changes the bound and drops pooled handles above it.
// Values below -1 are clamped to -1.
func (p *handlePool[T]) setCapacity(capacity int) {
	if capacity < -1 {
		capacity = -1
	}
	p.capacity = capacity
	if capacity < 0 {
		return
	}
	for p.free.Len() > capacity {
		p.free.PopBack()
	}
}

func (p *handlePool[T]) len() int {
	return p.free.Len()
}

func (p *handlePool[T]) clear() {
	p.free.Clear()
}
