// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package idgen_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/idq/idgen"
)

// counting is a generator that records how often it is constructed.
type counting struct {
	base uint64
	n    uint64
}

var constructed atomix.Int64

func (c *counting) Gen() (uint64, error) {
	c.n++
	return c.base + c.n, nil
}

type failing struct{}

func (*failing) Gen() (int64, error) { return 0, nil }

var errBoom = errors.New("boom")

func TestInstanceZeroValue(t *testing.T) {
	var r idgen.Registry

	a, err := idgen.Instance[idgen.Sequence, uint64](&r)
	require.NoError(t, err)
	b, err := idgen.Instance[idgen.Sequence, uint64](&r)
	require.NoError(t, err)
	assert.Same(t, a, b)

	id, err := a.Gen()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
	id, err = b.Gen()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), id)
}

func TestRegistriesAreIndependent(t *testing.T) {
	var r1, r2 idgen.Registry

	a, err := idgen.Instance[idgen.Sequence, uint64](&r1)
	require.NoError(t, err)
	b, err := idgen.Instance[idgen.Sequence, uint64](&r2)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}

func TestProvide(t *testing.T) {
	var r idgen.Registry

	err := idgen.Provide[counting, uint64](&r, func() (*counting, error) {
		return &counting{base: 1000}, nil
	})
	require.NoError(t, err)

	g, err := idgen.Instance[counting, uint64](&r)
	require.NoError(t, err)
	id, err := g.Gen()
	require.NoError(t, err)
	assert.Equal(t, uint64(1001), id)

	err = idgen.Provide[counting, uint64](&r, func() (*counting, error) {
		return &counting{}, nil
	})
	assert.ErrorIs(t, err, idgen.ErrAlreadyBuilt)
}

func TestConstructionErrorIsKept(t *testing.T) {
	var r idgen.Registry
	calls := 0

	err := idgen.Provide[failing, int64](&r, func() (*failing, error) {
		calls++
		return nil, errBoom
	})
	require.NoError(t, err)

	for range 3 {
		g, err := idgen.Instance[failing, int64](&r)
		assert.ErrorIs(t, err, errBoom)
		assert.Nil(t, g)
	}
	assert.Equal(t, 1, calls)
}

// TestConcurrentFirstUse verifies a generator is constructed once when many
// goroutines race to build it.
func TestConcurrentFirstUse(t *testing.T) {
	var r idgen.Registry
	constructed.Store(0)

	err := idgen.Provide[counting, uint64](&r, func() (*counting, error) {
		constructed.Add(1)
		return &counting{}, nil
	})
	require.NoError(t, err)

	const workers = 32
	var (
		start atomix.Bool
		done  sync.WaitGroup
		got   [workers]*counting
	)
	for i := range workers {
		done.Add(1)
		go func() {
			defer done.Done()
			backoff := iox.Backoff{}
			for !start.Load() {
				backoff.Wait()
			}
			g, err := idgen.Instance[counting, uint64](&r)
			if err == nil {
				got[i] = g
			}
		}()
	}
	start.Store(true)
	done.Wait()

	assert.Equal(t, int64(1), constructed.Load())
	for i := range workers {
		require.NotNil(t, got[i])
		assert.Same(t, got[0], got[i])
	}
}

func TestGenDefaultRegistry(t *testing.T) {
	a, err := idgen.Gen[idgen.Sequence, uint64]()
	require.NoError(t, err)
	b, err := idgen.Gen[idgen.Sequence, uint64]()
	require.NoError(t, err)
	assert.Equal(t, a+1, b)

	err = idgen.Provide[idgen.Sequence, uint64](idgen.Default(), func() (*idgen.Sequence, error) {
		return new(idgen.Sequence), nil
	})
	assert.ErrorIs(t, err, idgen.ErrAlreadyBuilt)
}

func TestSequenceConcurrent(t *testing.T) {
	var s idgen.Sequence
	const workers, per = 8, 1000

	var wg sync.WaitGroup
	ids := make([][]uint64, workers)
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range per {
				id, _ := s.Gen()
				ids[w] = append(ids[w], id)
			}
		}()
	}
	wg.Wait()

	seen := make(map[uint64]bool, workers*per)
	for _, batch := range ids {
		for _, id := range batch {
			require.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, workers*per)
}
