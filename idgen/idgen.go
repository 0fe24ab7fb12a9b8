// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package idgen defines the id generator contract and a registry that
// shares one lazily built instance per generator type.
//
// # Quick Start
//
//	// One process-wide snowflake generator, built on first use
//	id, err := idgen.Gen[snowflake.Generator, int64]()
//
// The registry builds a generator with new(T), so the zero value of T must
// be ready to use. Generators that need configuration are installed before
// first use with Provide:
//
//	err := idgen.Provide[snowflake.Generator, int64](idgen.Default(),
//	    func() (*snowflake.Generator, error) { return snowflake.New(3, 7) })
//
// # Thread Safety
//
// Building is guarded so each type is constructed at most once, even under
// concurrent first use. The generators themselves keep their own contract:
// a shared instance that is not safe for concurrent use still needs external
// serialization around Gen.
package idgen

import (
	"errors"
	"reflect"
	"sync"
)

// Generator produces identifiers.
type Generator[ID any] interface {
	// Gen returns the next identifier.
	Gen() (ID, error)
}

// ErrAlreadyBuilt is returned by Provide when the generator type has already
// been built.
var ErrAlreadyBuilt = errors.New("idgen: generator already built")

// Registry holds one shared generator per generator type.
//
// The zero value is ready to use.
type Registry struct {
	mu    sync.Mutex
	slots map[reflect.Type]*slot
}

type slot struct {
	once    sync.Once
	built   bool               // guarded by Registry.mu
	factory func() (any, error) // guarded by Registry.mu
	gen     any
	err     error
}

var defaultRegistry Registry

// Default returns the process-wide registry used by Gen.
func Default() *Registry {
	return &defaultRegistry
}

// Provide installs the constructor used to build T on first use.
// Returns ErrAlreadyBuilt if T has already been built by r. A later Provide
// for the same type replaces an earlier one.
func Provide[T any, ID any, PT interface {
	*T
	Generator[ID]
}](r *Registry, factory func() (PT, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.slotLocked(reflect.TypeFor[T]())
	if s.built {
		return ErrAlreadyBuilt
	}
	s.factory = func() (any, error) { return factory() }
	return nil
}

// Instance returns the shared T of r, building it on first use.
//
// T is built with the constructor installed by Provide, or new(T) otherwise.
// A construction error is kept and returned by every later call.
func Instance[T any, ID any, PT interface {
	*T
	Generator[ID]
}](r *Registry) (PT, error) {
	r.mu.Lock()
	s := r.slotLocked(reflect.TypeFor[T]())
	r.mu.Unlock()

	s.once.Do(func() {
		r.mu.Lock()
		s.built = true
		factory := s.factory
		r.mu.Unlock()

		if factory == nil {
			s.gen = PT(new(T))
			return
		}
		s.gen, s.err = factory()
	})
	if s.err != nil {
		return nil, s.err
	}
	return s.gen.(PT), nil
}

// Gen returns the next identifier of the shared T in the default registry.
func Gen[T any, ID any, PT interface {
	*T
	Generator[ID]
}]() (ID, error) {
	g, err := Instance[T, ID, PT](&defaultRegistry)
	if err != nil {
		var zero ID
		return zero, err
	}
	return g.Gen()
}

func (r *Registry) slotLocked(t reflect.Type) *slot {
	if r.slots == nil {
		r.slots = make(map[reflect.Type]*slot)
	}
	s, ok := r.slots[t]
	if !ok {
		s = &slot{}
		r.slots[t] = s
	}
	return s
}
