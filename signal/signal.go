// Package signal provides the channel objects that connect mesh nodes.
//
// A Signal is a single-slot register. Writes are staged and only become
// visible to readers after Commit, which the simulation kernel calls at the
// end of a clock edge. This gives every reader in the same edge the same
// value, no matter the order in which the nodes are ticked.
package signal

import (
	"sync"

	"github.com/sarchlab/akita/v4/sim"
)

// HookPosSignalWrite marks when a value is staged on a signal.
var HookPosSignalWrite = &sim.HookPos{Name: "Signal Write"}

// HookPosSignalCommit marks when a staged value becomes visible and differs
// from the previous one.
var HookPosSignalCommit = &sim.HookPos{Name: "Signal Commit"}

// A Committer publishes staged values.
type Committer interface {
	Name() string
	Commit() bool
}

// Signal holds one value shared by a writer and its readers.
type Signal[T comparable] struct {
	*sim.HookableBase

	lock    sync.Mutex
	name    string
	current T
	next    T
	pending bool
}

// New creates a signal that holds init.
func New[T comparable](name string, init T) *Signal[T] {
	return &Signal[T]{
		HookableBase: sim.NewHookableBase(),
		name:         name,
		current:      init,
		next:         init,
	}
}

// Name returns the name of the signal.
func (s *Signal[T]) Name() string {
	return s.name
}

// Read returns the committed value.
func (s *Signal[T]) Read() T {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.current
}

// Write stages v. The value is visible after the next Commit. A later Write
// in the same edge overrides an earlier one.
func (s *Signal[T]) Write(v T) {
	s.lock.Lock()
	s.next = v
	s.pending = true
	s.lock.Unlock()

	s.InvokeHook(sim.HookCtx{
		Domain: s,
		Pos:    HookPosSignalWrite,
		Item:   v,
	})
}

// Commit publishes the staged value. It returns true if the visible value
// changed.
func (s *Signal[T]) Commit() bool {
	s.lock.Lock()

	if !s.pending {
		s.lock.Unlock()
		return false
	}

	changed := s.current != s.next
	s.current = s.next
	s.pending = false
	v := s.current
	s.lock.Unlock()

	if changed {
		s.InvokeHook(sim.HookCtx{
			Domain: s,
			Pos:    HookPosSignalCommit,
			Item:   v,
		})
	}

	return changed
}

// Force sets the value immediately and drops any staged write. It is meant for
// assembly time, before the kernel starts.
func (s *Signal[T]) Force(v T) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.current = v
	s.next = v
	s.pending = false
}

// Pending tells if a staged write waits for Commit.
func (s *Signal[T]) Pending() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.pending
}
