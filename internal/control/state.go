// Package control implements controlled/uncontrolled value ownership shared by
// the headless engines.
//
// A State is either Owned, where the engine keeps the value and persists it
// across computations, or External, where the caller's value is the single
// source of truth and the engine only requests changes through a callback.
// The choice is made once, when the State is created, from whether the caller
// supplied an explicit value at all (nil pointer versus pointer to any value,
// including the zero value).
package control

import (
	"go.uber.org/zap"

	"github.com/muurk/headless/internal/logging"
)

// Ownership identifies who holds the authoritative copy of a value.
type Ownership int

const (
	// Owned means the engine stores the value itself.
	Owned Ownership = iota
	// External means the caller stores the value and feeds it back each computation.
	External
)

// String returns a human-readable name for the ownership mode
func (o Ownership) String() string {
	switch o {
	case Owned:
		return "owned"
	case External:
		return "external"
	default:
		return "unknown"
	}
}

// Ptr returns a pointer to v. Handy for optional inputs in option structs.
func Ptr[T any](v T) *T {
	return &v
}

// State holds a single value under one ownership mode for its whole lifetime.
type State[T comparable] struct {
	name      string
	ownership Ownership
	owned     T
	external  T
	onChange  func(T)
}

// New creates a State. When controlled is non-nil the state is External and
// reflects *controlled; otherwise it is Owned and seeded from def.
func New[T comparable](name string, controlled *T, def T) *State[T] {
	s := &State[T]{name: name}
	if controlled != nil {
		s.ownership = External
		s.external = *controlled
		return s
	}
	s.ownership = Owned
	s.owned = def
	return s
}

// Ownership reports which mode was selected at construction.
func (s *State[T]) Ownership() Ownership {
	return s.ownership
}

// Controlled reports whether the caller owns the value.
func (s *State[T]) Controlled() bool {
	return s.ownership == External
}

// Sync refreshes the caller-supplied value and change callback. It must be
// called once per computation. A caller that starts or stops supplying a
// value after construction is ignored and logged; the ownership mode never
// changes.
func (s *State[T]) Sync(controlled *T, onChange func(T)) {
	s.onChange = onChange

	switch {
	case s.ownership == External && controlled != nil:
		s.external = *controlled
	case s.ownership == External && controlled == nil:
		logging.Warn("controlled value removed after construction; keeping last value",
			zap.String("state", s.name))
	case s.ownership == Owned && controlled != nil:
		logging.Warn("controlled value supplied to an uncontrolled state; ignoring",
			zap.String("state", s.name))
	}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	if s.ownership == External {
		return s.external
	}
	return s.owned
}

// Set requests a change to v. It returns false and does nothing when v equals
// the current value. Otherwise the value is stored when Owned, and the latest
// change callback is invoked in both modes.
func (s *State[T]) Set(v T) bool {
	prev := s.Get()
	if prev == v {
		return false
	}

	if s.ownership == Owned {
		s.owned = v
	}

	logging.LogTransition(s.name, "set", prev, v)

	if s.onChange != nil {
		s.onChange(v)
	}
	return true
}

// Replace overwrites an Owned value without notifying. It is used to repair
// an owned value that no longer satisfies an engine invariant (for example an
// active item that was removed). External values are never replaced.
func (s *State[T]) Replace(v T) {
	if s.ownership == Owned {
		s.owned = v
	}
}
