// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tag produces the 64-bit keys of the indexed queue.
//
// Layout:
//
//	63            32 31             0
//	+---------------+---------------+
//	| elapsed ticks |     salt      |
//	+---------------+---------------+
//
// Ticks are 100ns units of monotonic elapsed time; only their low 32 bits
// survive the shift. The salt is a per-generator stamp counter, so two stamps
// taken within one tick still differ. Uniqueness is best-effort and holds for
// sequential use of one generator; concurrent stamping is not covered.
package tag

import (
	"time"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/idq/clock"
)

// Tick is the resolution of the elapsed-time half of a tag.
const Tick = 100 * time.Nanosecond

// SaltMask selects the salt half of a tag.
const SaltMask = 0xFFFFFFFF

// Generator stamps tags from a monotonic source.
type Generator struct {
	src  clock.Source
	salt atomix.Uint64
}

// New creates a tag generator reading src.
// A nil src selects [clock.Default].
func New(src clock.Source) *Generator {
	if src == nil {
		src = clock.Default()
	}
	return &Generator{src: src}
}

// Stamp returns the next tag.
func (g *Generator) Stamp() uint64 {
	ticks := uint64(g.src.Elapsed() / Tick)
	salt := g.salt.AddAcqRel(1)
	return Compose(ticks, salt)
}

// Compose packs ticks and salt into a tag.
func Compose(ticks, salt uint64) uint64 {
	return ticks<<32 | salt&SaltMask
}

// Split returns the tick and salt halves of a tag.
func Split(t uint64) (ticks uint32, salt uint32) {
	return uint32(t >> 32), uint32(t & SaltMask)
}
