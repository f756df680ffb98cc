package action

import "time"

// Phase is the binary state of a virtual button.
type Phase uint8

const (
	// PhaseReleased is the zero value so a zero ButtonState starts released.
	PhaseReleased Phase = iota
	PhasePressed
)

func (p Phase) String() string {
	switch p {
	case PhasePressed:
		return "pressed"
	case PhaseReleased:
		return "released"
	}
	return "unknown"
}

// Timing records how long a virtual button has been in its current
// phase and how long it spent in the phase before that.
//
// A zero started time means the button has not been ticked since its
// last transition; "just pressed" and "just released" are derived from
// that sentinel rather than stored as a separate flag, so they cannot
// drift out of sync with the durations.
type Timing struct {
	started          time.Time
	currentDuration  time.Duration
	previousDuration time.Duration
}

// ButtonState is the state of one virtual button: a phase plus the
// timing of that phase. The zero value is released and untimed, which
// is the state of every button before any input arrives.
type ButtonState struct {
	phase  Phase
	timing Timing
}

// Pressed reports whether the button is currently pressed.
func (b ButtonState) Pressed() bool {
	return b.phase == PhasePressed
}

// Released reports whether the button is currently released.
func (b ButtonState) Released() bool {
	return b.phase == PhaseReleased
}

// JustPressed reports whether the button became pressed and has not
// been ticked since.
func (b ButtonState) JustPressed() bool {
	return b.phase == PhasePressed && b.timing.started.IsZero()
}

// JustReleased reports whether the button became released and has not
// been ticked since.
func (b ButtonState) JustReleased() bool {
	return b.phase == PhaseReleased && b.timing.started.IsZero()
}

// Started returns the instant recorded at the first tick after the last
// transition. ok is false if the button has not been ticked since the
// transition.
func (b ButtonState) Started() (time.Time, bool) {
	return b.timing.started, !b.timing.started.IsZero()
}

// CurrentDuration returns the time the button has spent in its current
// phase. It is zero until the second tick after a transition.
func (b ButtonState) CurrentDuration() time.Duration {
	return b.timing.currentDuration
}

// PreviousDuration returns the CurrentDuration the button had
// accumulated when it last changed phase.
func (b ButtonState) PreviousDuration() time.Duration {
	return b.timing.previousDuration
}

// press transitions to pressed, carrying the old current duration into
// previousDuration. No-op if already pressed.
func (b *ButtonState) press() {
	if b.phase == PhasePressed {
		return
	}
	b.phase = PhasePressed
	b.timing = Timing{previousDuration: b.timing.currentDuration}
}

// release is the mirror of press.
func (b *ButtonState) release() {
	if b.phase == PhaseReleased {
		return
	}
	b.phase = PhaseReleased
	b.timing = Timing{previousDuration: b.timing.currentDuration}
}

// tick stamps the start instant on the first call after a transition,
// and refreshes the current duration on later calls. A now earlier than
// the recorded start clamps the duration to zero rather than going
// negative.
func (b *ButtonState) tick(now time.Time) {
	if b.timing.started.IsZero() {
		b.timing.started = now
		b.timing.currentDuration = 0
		return
	}
	d := now.Sub(b.timing.started)
	if d < 0 {
		d = 0
	}
	b.timing.currentDuration = d
}
