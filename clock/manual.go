// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package clock

import (
	"time"

	"code.hybscloud.com/atomix"
)

// Manual is a controllable clock implementing both [Source] and [Wall].
//
// Time only moves when the owner calls Advance or Set, or when a step is
// configured with SetStep, in which case every reading returns the current
// time and then advances it by the step. Stepping lets code that polls the
// clock until it moves (such as a sequence rollover wait) make progress
// without a second goroutine.
//
// Elapsed is measured from the time passed to NewManual. Setting the clock
// before that instant yields a negative elapsed duration.
type Manual struct {
	now  atomix.Int64 // Unix nanoseconds
	step atomix.Int64 // Nanoseconds added after each reading
	base int64
}

// NewManual creates a manual clock reading t.
func NewManual(t time.Time) *Manual {
	m := &Manual{base: t.UnixNano()}
	m.now.Store(t.UnixNano())
	return m
}

// Elapsed implements Source.
func (m *Manual) Elapsed() time.Duration {
	return time.Duration(m.read() - m.base)
}

// UnixMilli implements Wall.
func (m *Manual) UnixMilli() int64 {
	return m.read() / int64(time.Millisecond)
}

// Now returns the current reading without stepping.
func (m *Manual) Now() time.Time {
	return time.Unix(0, m.now.Load())
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.now.AddAcqRel(int64(d))
}

// Set moves the clock to t, backwards or forwards.
func (m *Manual) Set(t time.Time) {
	m.now.Store(t.UnixNano())
}

// SetStep configures the automatic advance applied after every reading.
// Zero disables stepping.
func (m *Manual) SetStep(d time.Duration) {
	m.step.Store(int64(d))
}

func (m *Manual) read() int64 {
	step := m.step.Load()
	if step == 0 {
		return m.now.Load()
	}
	return m.now.AddAcqRel(step) - step
}
