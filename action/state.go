package action

import (
	"fmt"
	"time"
)

// State owns one virtual button per variant of the action set A. It is
// the canonical input-method-agnostic view of what a single entity is
// doing: the input layer feeds it the set of physically active actions
// once per frame via Update, then advances time once via Tick, and game
// logic queries it freely in between.
//
// A State is a plain value with no internal locking; each instance must
// be driven by one logical thread of control per frame. Independent
// instances never share state.
type State[A Actionlike[A]] struct {
	buttons map[A]ButtonState
}

// NewState creates a State with every action released and untimed.
func NewState[A Actionlike[A]]() *State[A] {
	return &State[A]{buttons: DefaultMap[A, ButtonState]()}
}

// DefaultMap builds a map with every variant of A as a key and the zero
// value of V as each value. It seeds new States and is reusable for any
// other per-action table.
func DefaultMap[A Actionlike[A], V any]() map[A]V {
	variants := Variants[A]()
	m := make(map[A]V, len(variants))
	var zero V
	for _, a := range variants {
		m[a] = zero
	}
	return m
}

// ButtonState returns a copy of the stored state for the action. If the
// action is somehow absent it returns the released, untimed default;
// the map is populated exhaustively at construction, so this fallback
// should never be taken.
func (s *State[A]) ButtonState(a A) ButtonState {
	if b, ok := s.buttons[a]; ok {
		return b
	}
	return ButtonState{}
}

// SetButtonState overwrites the stored state for the action. It panics
// if the action is not in the map: that can only happen if the State
// was not built through NewState, which is an internal consistency bug.
func (s *State[A]) SetButtonState(a A, b ButtonState) {
	if _, ok := s.buttons[a]; !ok {
		panic(fmt.Sprintf("action: unknown action %v when setting state", a))
	}
	s.buttons[a] = b
}

// Press transitions the action to pressed. The previous duration is
// carried over and the start instant is cleared, so the action reads as
// just pressed until the next Tick. No-op if already pressed.
func (s *State[A]) Press(a A) {
	b := s.ButtonState(a)
	b.press()
	s.buttons[a] = b
}

// Release is the mirror of Press.
func (s *State[A]) Release(a A) {
	b := s.ButtonState(a)
	b.release()
	s.buttons[a] = b
}

// ReleaseAll releases every action in enumeration order. Idempotent.
func (s *State[A]) ReleaseAll() {
	for _, a := range Variants[A]() {
		s.Release(a)
	}
}

// Update reconciles the state with the set of actions physically active
// this frame, pressing and releasing as needed. It is the single sync
// point between raw device facts and the timed state machine and should
// be called at most once per frame: repeated calls are safe but
// collapse intermediate transitions.
func (s *State[A]) Update(pressed Set[A]) {
	for _, a := range Variants[A]() {
		if pressed.Contains(a) {
			s.Press(a)
		} else {
			s.Release(a)
		}
	}
}

// Tick advances time for every button: the first Tick after a
// transition stamps the start instant (extinguishing just-pressed /
// just-released), later Ticks recompute the current duration. now is
// assumed to come from a monotonic clock; a now earlier than a recorded
// start clamps that button's duration to zero.
func (s *State[A]) Tick(now time.Time) {
	for a, b := range s.buttons {
		b.tick(now)
		s.buttons[a] = b
	}
}

// Pressed reports whether the action is currently pressed.
func (s *State[A]) Pressed(a A) bool {
	return s.ButtonState(a).Pressed()
}

// JustPressed reports whether the action was pressed since the last Tick.
func (s *State[A]) JustPressed(a A) bool {
	return s.ButtonState(a).JustPressed()
}

// Released reports whether the action is currently released. Always the
// negation of Pressed.
func (s *State[A]) Released(a A) bool {
	return s.ButtonState(a).Released()
}

// JustReleased reports whether the action was released since the last Tick.
func (s *State[A]) JustReleased(a A) bool {
	return s.ButtonState(a).JustReleased()
}

// PressedActions returns the currently pressed actions in enumeration order.
func (s *State[A]) PressedActions() []A {
	return s.filter(ButtonState.Pressed)
}

// JustPressedActions returns the just-pressed actions in enumeration order.
func (s *State[A]) JustPressedActions() []A {
	return s.filter(ButtonState.JustPressed)
}

// ReleasedActions returns the currently released actions in enumeration order.
func (s *State[A]) ReleasedActions() []A {
	return s.filter(ButtonState.Released)
}

// JustReleasedActions returns the just-released actions in enumeration order.
func (s *State[A]) JustReleasedActions() []A {
	return s.filter(ButtonState.JustReleased)
}

func (s *State[A]) filter(pred func(ButtonState) bool) []A {
	var out []A
	for _, a := range Variants[A]() {
		if pred(s.ButtonState(a)) {
			out = append(out, a)
		}
	}
	return out
}
