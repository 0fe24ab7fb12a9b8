// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idq

import (
	"math/rand/v2"
	"testing"
	"time"

	"code.hybscloud.com/idq/clock"
)

// checkIndexes verifies the ordered and key indexes hold exactly the same
// handles and the ordered index is non-decreasing by tick.
func checkIndexes[T any](t *testing.T, q *Queue[T]) {
	t.Helper()

	if len(q.keys) != q.order.size {
		t.Fatalf("index sizes: keys %d, order %d", len(q.keys), q.order.size)
	}
	n := 0
	var prev *handle[T]
	for h := q.order.head; h != nil; h = h.next {
		if h.prev != prev {
			t.Fatalf("broken back link at %#x", h.id)
		}
		if q.keys[h.id] != h {
			t.Fatalf("ordered handle %#x missing from key index", h.id)
		}
		if prev != nil && h.tick < prev.tick {
			t.Fatalf("tick order: %d after %d", h.tick, prev.tick)
		}
		prev = h
		n++
	}
	if n != q.order.size || prev != q.order.tail {
		t.Fatalf("ordered walk: got %d handles, size %d", n, q.order.size)
	}
	if q.pool.capacity >= 0 && q.pool.len() > q.pool.capacity {
		t.Fatalf("pool: %d handles, capacity %d", q.pool.len(), q.pool.capacity)
	}
}

// TestIndexConsistency drives a queue with random operations and checks it
// against a slice model after every step.
func TestIndexConsistency(t *testing.T) {
	c := clock.NewManual(time.Unix(0, 0))
	q := Build[int](New().Capacity(8).TimeLimitMillisecond(40).Clock(c))
	rng := rand.New(rand.NewPCG(1, 2))

	type entry struct {
		id   uint64
		elem int
		tick int64
	}
	var model []entry
	next := 0

	for step := range 20000 {
		switch op := rng.IntN(10); {
		case op < 4:
			id := q.EnQueue(next)
			model = append(model, entry{id, next, c.Elapsed().Milliseconds()})
			next++
		case op < 6:
			got := q.DeQueue()
			if len(model) == 0 {
				if got != 0 {
					t.Fatalf("step %d: DeQueue on empty: got %d, want 0", step, got)
				}
				break
			}
			if got != model[0].elem {
				t.Fatalf("step %d: DeQueue: got %d, want %d", step, got, model[0].elem)
			}
			model = model[1:]
		case op < 8:
			if len(model) == 0 {
				if q.Remove(rng.Uint64()) {
					t.Fatalf("step %d: Remove on empty: got true", step)
				}
				break
			}
			i := rng.IntN(len(model))
			if !q.Remove(model[i].id) {
				t.Fatalf("step %d: Remove(%#x): got false", step, model[i].id)
			}
			model = append(model[:i], model[i+1:]...)
		case op < 9:
			c.Advance(time.Duration(rng.IntN(20)) * time.Millisecond)
		default:
			now := c.Elapsed().Milliseconds()
			want := 0
			for want < len(model) && now-model[want].tick >= 40 {
				want++
			}
			if got := q.DeQueueOvertime(); got != (want > 0) {
				t.Fatalf("step %d: DeQueueOvertime: got %v, want %v", step, got, want > 0)
			}
			model = model[want:]
		}

		if q.Len() != len(model) {
			t.Fatalf("step %d: Len: got %d, want %d", step, q.Len(), len(model))
		}
		if step%97 == 0 {
			checkIndexes(t, q)
		}
	}
	checkIndexes(t, q)

	i := 0
	for v := range q.Values() {
		if v != model[i].elem {
			t.Fatalf("Values[%d]: got %d, want %d", i, v, model[i].elem)
		}
		i++
	}
}

// TestHandleRecycling verifies retired handles are wiped and reused.
func TestHandleRecycling(t *testing.T) {
	q := NewQueueCapacity[*int](2)
	v := new(int)

	id := q.EnQueue(v)
	h := q.keys[id]
	q.DeQueue()

	pooled := q.pool.free.Back()
	if pooled != h {
		t.Fatal("retired handle not pooled")
	}
	if pooled.elem != nil || pooled.id != 0 || pooled.next != nil || pooled.prev != nil {
		t.Fatalf("pooled handle not wiped: %+v", *pooled)
	}

	id2 := q.EnQueue(v)
	if q.keys[id2] != h {
		t.Fatal("EnQueue did not reuse the pooled handle")
	}
	if q.pool.len() != 0 {
		t.Fatalf("pool: got %d, want 0", q.pool.len())
	}
}

// TestPoolDiscardsWhenFull verifies handles retired into a full pool are
// dropped.
func TestPoolDiscardsWhenFull(t *testing.T) {
	q := NewQueueCapacity[int](1)
	a := q.EnQueue(1)
	b := q.EnQueue(2)
	ha, hb := q.keys[a], q.keys[b]

	q.Remove(a)
	q.Remove(b)

	if q.pool.len() != 1 || q.pool.free.Back() != ha {
		t.Fatal("pool should keep only the first retired handle")
	}
	if q.pool.free.Back() == hb {
		t.Fatal("second handle pooled beyond capacity")
	}
}
