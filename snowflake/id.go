// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package snowflake

import (
	"strconv"
	"time"
)

// ID is a Snowflake id split into its fields.
//
//	snowflake.ID(v).Sequence()
type ID int64

// Timestamp returns the milliseconds since the generator epoch.
func (id ID) Timestamp() int64 {
	return int64(id) >> TimestampShift
}

// Datacenter returns the datacenter field.
func (id ID) Datacenter() int64 {
	return int64(id) >> DatacenterShift & MaxDatacenterID
}

// Worker returns the worker field.
func (id ID) Worker() int64 {
	return int64(id) >> WorkerShift & MaxWorkerID
}

// Sequence returns the sequence field.
func (id ID) Sequence() int64 {
	return int64(id) & MaxSequence
}

// UnixMilli returns the Unix milliseconds the id was generated at, given the
// epoch of the generator.
func (id ID) UnixMilli(epoch int64) int64 {
	return id.Timestamp() + epoch
}

// Time returns the time the id was generated at, given the epoch of the
// generator.
//
// Note: the result carries no monotonic reading.
func (id ID) Time(epoch int64) time.Time {
	return time.UnixMilli(id.UnixMilli(epoch))
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Decode splits v into its fields.
func Decode(v int64) ID {
	return ID(v)
}
