// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package snowflake_test

// raceEnabled is true when the race detector is active.
// Used to skip tests that read atomix counters from another goroutine,
// which the detector reports as false positives.
const raceEnabled = true
