// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idq

import "iter"

// Values yields the queued elements oldest first.
//
// The sequence is lazy and may be ranged over any number of times. Removing
// the element just yielded is allowed; any other change to the queue during
// iteration has undefined results.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := q.order.front(); h != nil; {
			next := h.next
			if !yield(h.elem) {
				return
			}
			h = next
		}
	}
}

// All yields id and element pairs from the key index.
//
// Unlike Values, All does not follow insertion order. Use Values when FIFO
// order matters.
func (q *Queue[T]) All() iter.Seq2[uint64, T] {
	return func(yield func(uint64, T) bool) {
		for id, h := range q.keys {
			if !yield(id, h.elem) {
				return
			}
		}
	}
}

// Keys yields the ids of the queued elements, in no particular order.
func (q *Queue[T]) Keys() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for id := range q.keys {
			if !yield(id) {
				return
			}
		}
	}
}
