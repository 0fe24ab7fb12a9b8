// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ring

// RaceEnabled is true when the race detector is active.
// The detector does not see the acquire/release pairs on head and tail, so
// it reports the slot handoff between producer and consumer as a race.
const RaceEnabled = true
