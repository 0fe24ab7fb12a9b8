// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idq_test

import (
	"testing"
	"time"

	"code.hybscloud.com/idq"
	"code.hybscloud.com/idq/clock"
)

func newTimedQueue(capacity int, limit time.Duration) (*idq.Queue[string], *clock.Manual) {
	c := clock.NewManual(time.Unix(1_700_000_000, 0))
	q := idq.Build[string](idq.New().Capacity(capacity).TimeLimit(limit).Clock(c))
	return q, c
}

// =============================================================================
// Time Limit Views
// =============================================================================

// TestTimeLimitViews verifies seconds and milliseconds are two views of one
// threshold.
func TestTimeLimitViews(t *testing.T) {
	q := idq.NewQueue[int]()

	q.SetTimeLimitSecond(3)
	if got := q.TimeLimitMillisecond(); got != 3000 {
		t.Fatalf("TimeLimitMillisecond: got %d, want 3000", got)
	}

	q.SetTimeLimitMillisecond(2500)
	if got := q.TimeLimitSecond(); got != 2 {
		t.Fatalf("TimeLimitSecond: got %d, want 2", got)
	}

	q.SetTimeLimitSecond(-1)
	if got := q.TimeLimitMillisecond(); got >= 0 {
		t.Fatalf("TimeLimitMillisecond: got %d, want negative", got)
	}
}

// =============================================================================
// Overtime
// =============================================================================

// TestOvertimeScenario enqueues A at t=0 and B at t=50 with a 100ms limit.
// Just before B turns overtime only A is evicted.
func TestOvertimeScenario(t *testing.T) {
	q, c := newTimedQueue(2, 100*time.Millisecond)

	q.EnQueue("A")
	c.Advance(50 * time.Millisecond)
	b := q.EnQueue("B")

	c.Advance(99 * time.Millisecond) // t=149
	if !q.PeekOvertime() {
		t.Fatal("PeekOvertime at t=149: got false, want true")
	}
	if !q.DeQueueOvertime() {
		t.Fatal("DeQueueOvertime at t=149: got false, want true")
	}
	if q.Len() != 1 || !q.ContainsKey(b) || q.Peek() != "B" {
		t.Fatalf("after DeQueueOvertime: Len %d, Peek %q, want 1, \"B\"", q.Len(), q.Peek())
	}
	if q.PeekOvertime() {
		t.Fatal("PeekOvertime with B at 99ms: got true, want false")
	}
	if q.DeQueueOvertime() {
		t.Fatal("DeQueueOvertime with B at 99ms: got true, want false")
	}
	if q.PoolLen() != 1 {
		t.Fatalf("PoolLen: got %d, want 1", q.PoolLen())
	}
}

// TestOvertimeBoundary verifies an element exactly at the limit is overtime.
func TestOvertimeBoundary(t *testing.T) {
	q, c := newTimedQueue(-1, 100*time.Millisecond)

	q.EnQueue("A")
	c.Advance(99 * time.Millisecond)
	if q.PeekOvertime() {
		t.Fatal("PeekOvertime at 99ms: got true, want false")
	}
	c.Advance(time.Millisecond)
	if !q.PeekOvertime() {
		t.Fatal("PeekOvertime at 100ms: got false, want true")
	}
}

// TestOvertimeZeroLimit verifies a zero limit makes every element overtime.
func TestOvertimeZeroLimit(t *testing.T) {
	q, _ := newTimedQueue(-1, 0)
	q.EnQueue("A")
	q.EnQueue("B")

	if !q.DeQueueOvertime() {
		t.Fatal("DeQueueOvertime: got false, want true")
	}
	if q.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", q.Len())
	}
}

// TestOvertimeDisabled verifies a negative limit never reports overtime.
func TestOvertimeDisabled(t *testing.T) {
	q, c := newTimedQueue(-1, -1)
	q.EnQueue("A")
	c.Advance(24 * time.Hour)

	if q.PeekOvertime() {
		t.Fatal("PeekOvertime: got true, want false")
	}
	if q.DeQueueOvertime() {
		t.Fatal("DeQueueOvertime: got true, want false")
	}

	// Enabling the limit later applies to already queued elements
	q.SetTimeLimitSecond(60)
	if !q.PeekOvertime() {
		t.Fatal("PeekOvertime after SetTimeLimitSecond: got false, want true")
	}
}

// TestOvertimeEmpty verifies an empty queue is never overtime.
func TestOvertimeEmpty(t *testing.T) {
	q, _ := newTimedQueue(-1, 0)
	if q.PeekOvertime() || q.DeQueueOvertime() {
		t.Fatal("empty queue reported overtime")
	}
}

// TestOvertimePrefixDrain verifies DeQueueOvertime removes exactly the
// overtime prefix, including when elements were removed from the middle.
func TestOvertimePrefixDrain(t *testing.T) {
	q, c := newTimedQueue(-1, 100*time.Millisecond)

	// Ticks 0, 10, ..., 90
	ids := make([]uint64, 10)
	for i := range ids {
		ids[i] = q.EnQueue(string(rune('a' + i)))
		c.Advance(10 * time.Millisecond)
	}
	q.Remove(ids[1])
	q.Remove(ids[5])

	// Now t=100; advance to t=165: ticks 0..60 are overtime
	c.Advance(65 * time.Millisecond)

	if !q.DeQueueOvertime() {
		t.Fatal("DeQueueOvertime: got false, want true")
	}

	want := []string{"h", "i", "j"}
	got := collect(q)
	if len(got) != len(want) {
		t.Fatalf("remaining: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("remaining: got %v, want %v", got, want)
		}
	}
	for _, i := range []int{0, 2, 3, 4, 6} {
		if q.ContainsKey(ids[i]) {
			t.Fatalf("ContainsKey(ids[%d]): got true after eviction", i)
		}
	}
}
