// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"code.hybscloud.com/iox"

	"code.hybscloud.com/idq/idgen"
	"code.hybscloud.com/idq/internal/ring"
	"code.hybscloud.com/idq/snowflake"
)

// Result summarizes one generation run.
type Result struct {
	Generated    int     `json:"generated"`
	Duplicates   int     `json:"duplicates"`
	OutOfOrder   int     `json:"out_of_order"`          // ids not greater than their predecessor
	Milliseconds int     `json:"milliseconds"`          // distinct timestamps
	MaxPerMilli  int     `json:"max_per_millisecond"`
	Rollovers    int64   `json:"rollovers"`
	Regressions  int64   `json:"regressions"`
	Elapsed      string  `json:"elapsed"`
	IDsPerSecond float64 `json:"ids_per_second"`
}

// generate draws n ids from g, calling step after each one.
func generate(g idgen.Generator[int64], n int, step func()) ([]int64, error) {
	ids := make([]int64, 0, n)
	for range n {
		id, err := g.Gen()
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
		if step != nil {
			step()
		}
	}
	return ids, nil
}

// generatePipelined draws n ids from g on a separate goroutine and hands
// them over through a ring of the given capacity. The generator is only
// touched by that goroutine.
func generatePipelined(g idgen.Generator[int64], n, capacity int, step func()) ([]int64, error) {
	r := ring.New(capacity)
	errc := make(chan error, 1)
	go func() {
		defer r.Close()
		backoff := iox.Backoff{}
		for range n {
			id, err := g.Gen()
			if err != nil {
				errc <- err
				return
			}
			for r.Push(id) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
		errc <- nil
	}()

	ids := make([]int64, 0, n)
	backoff := iox.Backoff{}
	for {
		id, err := r.Pop()
		if errors.Is(err, ring.ErrClosed) {
			break
		}
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		ids = append(ids, id)
		if step != nil {
			step()
		}
	}
	return ids, <-errc
}

// check counts duplicate and out of order ids.
func check(ids []int64) Result {
	res := Result{Generated: len(ids)}
	seen := make(map[int64]struct{}, len(ids))
	for i, id := range ids {
		if _, dup := seen[id]; dup {
			res.Duplicates++
		}
		seen[id] = struct{}{}
		if i > 0 && id <= ids[i-1] {
			res.OutOfOrder++
		}
	}

	counts := perMilli(ids)
	res.Milliseconds = len(counts)
	for _, c := range counts {
		res.MaxPerMilli = max(res.MaxPerMilli, c)
	}
	return res
}

// perMilli counts ids by timestamp.
func perMilli(ids []int64) map[int64]int {
	counts := make(map[int64]int)
	for _, id := range ids {
		counts[snowflake.Decode(id).Timestamp()]++
	}
	return counts
}
