// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package clock provides the time sources used by the indexed queue and the
// id generators.
//
// Two contracts are kept apart:
//
//	Source - monotonic elapsed time since a fixed start (never goes back)
//	Wall   - full Unix epoch milliseconds (may go back under NTP adjustment)
//
// The indexed queue stamps handles with a Source reading. Snowflake ids are
// composed from a Wall reading. Both are injectable so tests can drive time
// explicitly with a [Manual] clock.
package clock

import (
	"sync"
	"time"
)

// Source is a monotonic elapsed-time counter.
type Source interface {
	// Elapsed returns the time elapsed since the source started.
	Elapsed() time.Duration
}

// Wall reports the current wall-clock time.
type Wall interface {
	// UnixMilli returns the number of milliseconds since the Unix epoch.
	UnixMilli() int64
}

// processStart is sampled once, on first use. time.Now carries a monotonic
// reading, so time.Since(processStart()) never observes wall adjustments.
var processStart = sync.OnceValue(time.Now)

type processClock struct{}

func (processClock) Elapsed() time.Duration {
	return time.Since(processStart())
}

// Default returns the process-wide monotonic source.
// The source starts lazily, on the first call to Elapsed.
func Default() Source {
	return processClock{}
}

type systemWall struct{}

func (systemWall) UnixMilli() int64 {
	return time.Now().UnixMilli()
}

// System returns the wall clock of the host.
func System() Wall {
	return systemWall{}
}
