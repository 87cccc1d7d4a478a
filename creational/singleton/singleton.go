// Package singleton demonstrates the Singleton pattern — and its modern
// redesign.
//
// The textbook singleton is a hidden global: a module-level instance behind
// a presence check. That couples every caller to shared mutable state with
// no controlled lifetime. This package keeps the useful half of the idea,
// "one logical instance per scope", and drops the global: a Scope is
// constructed explicitly, passed explicitly, and owns exactly one lazily
// built Store for its lifetime.
//
// Direct construction of a Store is impossible outside this package (the
// type has unexported fields and no constructor), so the only way to obtain
// one is through a Scope — which will always hand back the same instance.
package singleton

import (
	"sort"
	"sync"
)

// Store is the "single" instance: a process-local settings store. It is
// only obtainable through Scope.Store.
type Store struct {
	settings map[string]string

	// buildSeq records which build of its scope produced this store,
	// letting tests and demos prove the store was built exactly once.
	buildSeq int
}

// Get returns the value for key and whether it is present.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.settings[key]
	return v, ok
}

// Set stores a value under key.
func (s *Store) Set(key, value string) {
	s.settings[key] = value
}

// Keys returns all present keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.settings))
	for k := range s.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BuildSeq returns the scope build counter at the moment this store was
// created. Two calls to Scope.Store returning the same BuildSeq show no
// second build happened.
func (s *Store) BuildSeq() int { return s.buildSeq }

// Scope owns one Store with a controlled lifetime: the Store lives exactly
// as long as the Scope that built it. Separate scopes (one per test, per
// request, per subsystem) get separate stores, which is what the hidden
// global singleton can never offer.
type Scope struct {
	once   sync.Once
	builds int
	store  *Store
}

// NewScope returns a scope whose store has not been built yet.
func NewScope() *Scope {
	return &Scope{}
}

// Store returns the scope's store, building it on first call. Every later
// call returns the identical instance; sync.Once makes that hold even for
// concurrent callers, although the demos are single-threaded.
func (s *Scope) Store() *Store {
	s.once.Do(func() {
		s.builds++
		s.store = &Store{
			settings: map[string]string{
				"app.name": "gopatterns",
			},
			buildSeq: s.builds,
		}
	})
	return s.store
}

// Built reports whether the scope's store has been constructed yet.
func (s *Scope) Built() bool { return s.store != nil }
