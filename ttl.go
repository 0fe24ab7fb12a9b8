// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idq

// TimeLimitMillisecond returns the overtime threshold in milliseconds.
// Negative means overtime checks are disabled.
func (q *Queue[T]) TimeLimitMillisecond() int64 {
	return q.timeLimit
}

// SetTimeLimitMillisecond sets the overtime threshold in milliseconds.
// A negative value disables overtime checks.
func (q *Queue[T]) SetTimeLimitMillisecond(ms int64) {
	q.timeLimit = ms
}

// TimeLimitSecond returns the overtime threshold in whole seconds.
func (q *Queue[T]) TimeLimitSecond() int64 {
	return q.timeLimit / 1000
}

// SetTimeLimitSecond sets the overtime threshold in seconds.
// A negative value disables overtime checks.
func (q *Queue[T]) SetTimeLimitSecond(seconds int64) {
	q.timeLimit = seconds * 1000
}

// PeekOvertime reports whether the oldest element has been queued for at
// least the time limit. Always false when the queue is empty or the time
// limit is negative.
func (q *Queue[T]) PeekOvertime() bool {
	return q.overtime(q.now())
}

// DeQueueOvertime removes elements from the front while they are overtime
// and reports whether any was removed.
//
// Insertion order is age order, so only the front is inspected: the drain
// stops at the first element younger than the time limit and never removes
// anything behind it. All elements are judged against one clock reading.
func (q *Queue[T]) DeQueueOvertime() bool {
	now := q.now()
	if !q.overtime(now) {
		return false
	}
	for q.overtime(now) {
		q.unlink(q.order.front())
	}
	return true
}

func (q *Queue[T]) overtime(now int64) bool {
	h := q.order.front()
	if h == nil || q.timeLimit < 0 {
		return false
	}
	return now-h.tick >= q.timeLimit
}
