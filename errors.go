// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the queue is empty.
//
// Only TryPeek and TryDeQueue report it. Peek and DeQueue return the zero
// value of T instead, so callers that cannot tell a stored zero value from
// an empty queue should use the Try variants or check Len first.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	v, err := q.TryDeQueue()
//	if idq.IsWouldBlock(err) {
//	    // Nothing queued
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrOutOfRange is returned by At when no element is stored under the id.
//
// At deliberately fails where TryGetValue and ContainsKey report a miss
// with a boolean.
var ErrOutOfRange = errors.New("idq: id out of range")

// IsWouldBlock reports whether err indicates the queue was empty.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}
