// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idq

import (
	"time"

	"code.hybscloud.com/idq/clock"
)

// Options configures queue creation.
type Options struct {
	// Handle pool bound (negative = unbounded)
	capacity int

	// Overtime threshold in milliseconds (negative = disabled)
	timeLimit int64

	// Monotonic time source for ticks and tags
	clock clock.Source
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Pool up to 64 handles, evict elements older than 30 seconds
//	q := idq.Build[*Session](idq.New().Capacity(64).TimeLimit(30 * time.Second))
//
//	// Drive time from a manual clock in tests
//	c := clock.NewManual(time.Now())
//	q := idq.Build[int](idq.New().TimeLimitMillisecond(100).Clock(c))
type Builder struct {
	opts Options
}

// New creates a queue builder.
// Defaults: unbounded handle pool, time limit disabled, [clock.Default].
func New() *Builder {
	return &Builder{opts: Options{capacity: -1, timeLimit: -1}}
}

// Capacity bounds the handle pool. Negative means unbounded.
//
// Capacity bounds only the number of recycled handles kept for reuse. It
// never limits the number of queued elements.
func (b *Builder) Capacity(capacity int) *Builder {
	if capacity < -1 {
		capacity = -1
	}
	b.opts.capacity = capacity
	return b
}

// TimeLimit sets the overtime threshold, truncated to milliseconds.
// A negative duration disables overtime checks.
func (b *Builder) TimeLimit(d time.Duration) *Builder {
	if d < 0 {
		b.opts.timeLimit = -1
		return b
	}
	b.opts.timeLimit = d.Milliseconds()
	return b
}

// TimeLimitMillisecond sets the overtime threshold in milliseconds.
// A negative value disables overtime checks.
func (b *Builder) TimeLimitMillisecond(ms int64) *Builder {
	b.opts.timeLimit = ms
	return b
}

// Clock sets the monotonic time source. Nil selects [clock.Default].
func (b *Builder) Clock(src clock.Source) *Builder {
	b.opts.clock = src
	return b
}

// Build creates a Queue[T] from the builder configuration.
func Build[T any](b *Builder) *Queue[T] {
	return newQueue[T](b.opts)
}

// NewQueue creates a queue with an unbounded handle pool and no time limit.
func NewQueue[T any]() *Queue[T] {
	return Build[T](New())
}

// NewQueueCapacity creates a queue whose handle pool keeps at most capacity
// handles. Time limit is disabled.
func NewQueueCapacity[T any](capacity int) *Queue[T] {
	return Build[T](New().Capacity(capacity))
}

// NewQueueTimeLimit creates a queue with a bounded handle pool and an
// overtime threshold of timeLimit milliseconds.
func NewQueueTimeLimit[T any](capacity int, timeLimit int64) *Queue[T] {
	return Build[T](New().Capacity(capacity).TimeLimitMillisecond(timeLimit))
}
