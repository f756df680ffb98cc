// Package action tracks, per abstract game action, whether the action
// is currently active, how long it has been in its current state, and
// what its state was immediately before. It decouples physical input
// devices from game logic: something upstream decides which actions are
// physically active each frame, and this package turns those facts into
// press/release edges and durations.
package action

// Actionlike is the contract an action-set type must satisfy. An
// action set is a small, finite enumeration of named input intents
// (Jump, Run, ...), typically a defined integer type with one constant
// per variant.
//
// Variants must return every variant in a fixed, order-stable
// enumeration and must not depend on the receiver; it is called on the
// zero value.
type Actionlike[A any] interface {
	comparable
	Variants() []A
}

// Variants returns the full enumeration of A.
func Variants[A Actionlike[A]]() []A {
	var zero A
	return zero.Variants()
}

// Set is an unordered set of action variants.
type Set[A comparable] map[A]struct{}

// NewSet builds a set from the given actions.
func NewSet[A comparable](actions ...A) Set[A] {
	s := make(Set[A], len(actions))
	for _, a := range actions {
		s[a] = struct{}{}
	}
	return s
}

// Insert adds an action to the set.
func (s Set[A]) Insert(a A) {
	s[a] = struct{}{}
}

// Contains reports whether the action is in the set.
func (s Set[A]) Contains(a A) bool {
	_, ok := s[a]
	return ok
}
