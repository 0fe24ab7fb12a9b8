// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idq

// orderedIndex is an intrusive doubly linked list of handles in insertion
// order. Insertion order is also age order, so the front handle is always
// the oldest.
type orderedIndex[T any] struct {
	head *handle[T]
	tail *handle[T]
	size int
}

func (l *orderedIndex[T]) front() *handle[T] {
	return l.head
}

func (l *orderedIndex[T]) pushBack(h *handle[T]) {
	h.prev = l.tail
	h.next = nil
	if l.tail == nil {
		l.head = h
	} else {
		l.tail.next = h
	}
	l.tail = h
	l.size++
}

// remove unlinks h, which must be linked into l.
func (l *orderedIndex[T]) remove(h *handle[T]) {
	if h.prev == nil {
		l.head = h.next
	} else {
		h.prev.next = h.next
	}
	if h.next == nil {
		l.tail = h.prev
	} else {
		h.next.prev = h.prev
	}
	h.prev = nil
	h.next = nil
	l.size--
}

// reset drops every handle without visiting them.
func (l *orderedIndex[T]) reset() {
	l.head = nil
	l.tail = nil
	l.size = 0
}
