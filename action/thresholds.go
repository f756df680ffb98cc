package action

import "fmt"

// Thresholds converts an analog control value in [0, 1] into a binary
// press/release decision using two levels: at or above pressed the
// control presses, below released it releases. Keeping pressed >=
// released means a value sitting between the two keeps its previous
// decision instead of chattering.
type Thresholds struct {
	pressed  float64
	released float64
}

// DefaultThresholds returns the pure digital threshold: both levels at 0.5.
func DefaultThresholds() Thresholds {
	return Thresholds{pressed: 0.5, released: 0.5}
}

// ClampError reports that a threshold set would have violated
// pressed >= released and was clamped instead. Clamped is the value the
// threshold was actually set to.
type ClampError struct {
	Clamped float64
}

func (e ClampError) Error() string {
	return fmt.Sprintf("action: threshold clamped to %v", e.Clamped)
}

// Pressed returns the level at or above which the control is considered pressed.
func (t *Thresholds) Pressed() float64 {
	return t.pressed
}

// Released returns the level below which the control is considered released.
func (t *Thresholds) Released() float64 {
	return t.released
}

// SetPressed sets the pressed level. A value below the released level
// is clamped up to it and a ClampError carrying the substituted value
// is returned; the caller may ignore it or retry. Panics if value is
// outside [0, 1] — that is a programming error, not bad input.
func (t *Thresholds) SetPressed(value float64) error {
	assertUnit(value)
	if value >= t.released {
		t.pressed = value
		return nil
	}
	t.pressed = t.released
	return ClampError{Clamped: t.released}
}

// SetReleased sets the released level. A value above the pressed level
// is clamped down to it and a ClampError is returned. Panics if value
// is outside [0, 1].
func (t *Thresholds) SetReleased(value float64) error {
	assertUnit(value)
	if value <= t.pressed {
		t.released = value
		return nil
	}
	t.released = t.pressed
	return ClampError{Clamped: t.pressed}
}

// Decide converts an analog value into a pressed decision given the
// previous frame's decision for the same control.
func (t Thresholds) Decide(value float64, wasPressed bool) bool {
	if wasPressed {
		return value >= t.released
	}
	return value >= t.pressed
}

func assertUnit(value float64) {
	if value < 0 || value > 1 {
		panic(fmt.Sprintf("action: threshold %v outside [0, 1]", value))
	}
}
