// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snowflake

import (
	"errors"
	"fmt"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/idq/clock"
	"code.hybscloud.com/idq/idgen"
)

const (
	// Epoch is the default start of the timestamp field, in Unix
	// milliseconds (2016-11-26T13:21:05.631Z).
	Epoch int64 = 1480166465631

	TimestampBits  = 41
	DatacenterBits = 5
	WorkerBits     = 5
	SequenceBits   = 12

	MaxDatacenterID = -1 ^ (-1 << DatacenterBits) // 31
	MaxWorkerID     = -1 ^ (-1 << WorkerBits)     // 31
	MaxSequence     = -1 ^ (-1 << SequenceBits)   // 4095

	WorkerShift     = SequenceBits
	DatacenterShift = SequenceBits + WorkerBits
	TimestampShift  = DatacenterShift + DatacenterBits
)

var (
	// ErrValidation is the class of all construction errors.
	ErrValidation = errors.New("snowflake: invalid configuration")

	ErrInvalidDatacenterID = fmt.Errorf("%w: datacenter id must be in [0, %d]", ErrValidation, MaxDatacenterID)
	ErrInvalidWorkerID     = fmt.Errorf("%w: worker id must be in [0, %d]", ErrValidation, MaxWorkerID)

	// ErrClockRegression is returned by Gen when the wall clock reads earlier
	// than the timestamp of the previous id. The generator state is left
	// unchanged; the caller decides whether to wait or give up.
	ErrClockRegression = errors.New("snowflake: clock moved backwards")
)

// Generator produces Snowflake ids.
//
// Generator is not safe for concurrent use: Gen updates the sequence and
// the last timestamp as one read-modify-write. Callers sharing a generator
// must serialize Gen. Stats may be read from any goroutine.
//
// The zero value is ready to use: datacenter 0, worker 0, the system wall
// clock and the default Epoch.
type Generator struct {
	wall         clock.Wall
	epoch        int64
	datacenterID int64
	workerID     int64

	last     int64 // Unix milliseconds of the previous id
	sequence int64

	generated   atomix.Int64
	rollovers   atomix.Int64
	regressions atomix.Int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the wall clock. Nil selects [clock.System].
func WithClock(c clock.Wall) Option {
	return func(g *Generator) {
		g.wall = c
	}
}

// WithEpoch sets the start of the timestamp field, in Unix milliseconds.
// Zero selects Epoch.
func WithEpoch(ms int64) Option {
	return func(g *Generator) {
		g.epoch = ms
	}
}

// New creates a generator for the given datacenter and worker.
//
// Both ids must be in [0, 31]. The returned error wraps ErrValidation and
// either ErrInvalidDatacenterID or ErrInvalidWorkerID.
func New(datacenterID, workerID int64, opts ...Option) (*Generator, error) {
	if datacenterID < 0 || datacenterID > MaxDatacenterID {
		return nil, fmt.Errorf("%d: %w", datacenterID, ErrInvalidDatacenterID)
	}
	if workerID < 0 || workerID > MaxWorkerID {
		return nil, fmt.Errorf("%d: %w", workerID, ErrInvalidWorkerID)
	}

	g := &Generator{
		datacenterID: datacenterID,
		workerID:     workerID,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Gen returns the next id.
//
// Within one millisecond the sequence field counts up from 0. When it would
// pass MaxSequence, it wraps to 0 and Gen spins until the clock reaches the
// next millisecond, so ids stay unique. The wait is bounded by real clock
// time and cannot be cancelled.
//
// Returns an error wrapping ErrClockRegression if the clock reads earlier
// than the previous id.
func (g *Generator) Gen() (int64, error) {
	cur := g.clockOrSystem().UnixMilli()
	if cur < g.last {
		g.regressions.Add(1)
		return 0, fmt.Errorf("%d < %d: %w", cur, g.last, ErrClockRegression)
	}

	if cur == g.last {
		g.sequence = (g.sequence + 1) & MaxSequence
		if g.sequence == 0 {
			g.rollovers.Add(1)
			cur = g.nextMilli()
		}
	} else {
		g.sequence = 0
	}
	g.last = cur
	g.generated.Add(1)

	return (cur-g.Epoch())<<TimestampShift |
		g.datacenterID<<DatacenterShift |
		g.workerID<<WorkerShift |
		g.sequence, nil
}

// nextMilli polls the clock until it reads past the previous id.
func (g *Generator) nextMilli() int64 {
	c := g.clockOrSystem()
	sw := spin.Wait{}
	cur := c.UnixMilli()
	for cur <= g.last {
		sw.Once()
		cur = c.UnixMilli()
	}
	return cur
}

// DatacenterID returns the datacenter field of every id from g.
func (g *Generator) DatacenterID() int64 {
	return g.datacenterID
}

// WorkerID returns the worker field of every id from g.
func (g *Generator) WorkerID() int64 {
	return g.workerID
}

// Epoch returns the start of the timestamp field, in Unix milliseconds.
func (g *Generator) Epoch() int64 {
	if g.epoch == 0 {
		return Epoch
	}
	return g.epoch
}

// Stats is a snapshot of generator counters.
type Stats struct {
	Generated   int64 // Ids returned
	Rollovers   int64 // Sequence exhaustions that waited for the next millisecond
	Regressions int64 // Gen calls that failed with ErrClockRegression
}

// Stats returns a snapshot of the counters of g.
func (g *Generator) Stats() Stats {
	return Stats{
		Generated:   g.generated.Load(),
		Rollovers:   g.rollovers.Load(),
		Regressions: g.regressions.Load(),
	}
}

func (g *Generator) clockOrSystem() clock.Wall {
	if g.wall == nil {
		return clock.System()
	}
	return g.wall
}

var _ idgen.Generator[int64] = (*Generator)(nil)
