// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idgen

import "code.hybscloud.com/atomix"

// Sequence is a Generator of consecutive identifiers starting at 1.
//
// Sequence is safe for concurrent use. The zero value is ready to use.
type Sequence struct {
	next atomix.Uint64
}

// Gen returns the next identifier. It never fails.
func (s *Sequence) Gen() (uint64, error) {
	return s.next.AddAcqRel(1), nil
}

var _ Generator[uint64] = (*Sequence)(nil)
