// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package snowflake generates 64-bit, time ordered Snowflake ids.
//
// # Layout
//
//	 63  62                        22 21      17 16      12 11          0
//	+---+----------------------------+----------+----------+-------------+
//	| 0 | timestamp (41)             | dc (5)   | worker(5)| sequence(12)|
//	+---+----------------------------+----------+----------+-------------+
//
// The timestamp counts milliseconds since the generator epoch (see Epoch).
// Up to 4096 ids are produced per millisecond per (datacenter, worker) pair.
//
// # Usage
//
//	g, err := snowflake.New(1, 7)
//	if err != nil {
//	    return err // datacenter or worker out of [0, 31]
//	}
//	id, err := g.Gen()
//	if errors.Is(err, snowflake.ErrClockRegression) {
//	    // Wall clock stepped back; no id was produced
//	}
//
//	f := snowflake.ID(id)
//	fmt.Println(f.Time(g.Epoch()), f.Datacenter(), f.Worker(), f.Sequence())
//
// Through the shared registry:
//
//	id, err := idgen.Gen[snowflake.Generator, int64]()
//
// # Clock Behavior
//
// Gen reads full Unix epoch milliseconds from a [clock.Wall]. If the clock
// reads earlier than the previous id, Gen fails with ErrClockRegression and
// does not retry. If the sequence is exhausted within one millisecond, Gen
// spins until the clock advances.
//
// # Thread Safety
//
// A Generator is not safe for concurrent use. Serialize Gen when sharing one.
// Distinct generators need distinct (datacenter, worker) pairs to produce
// disjoint ids; nothing here coordinates that.
package snowflake
