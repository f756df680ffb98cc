package bindings

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/actionmap/action"
)

// Poller supplies one frame's physical control readings. device.Capture
// builds one from ebiten each frame; tests supply fakes.
type Poller interface {
	KeyPressed(ebiten.Key) bool
	MousePressed(ebiten.MouseButton) bool
	PadPressed(ebiten.StandardGamepadButton) bool
	// AxisValue returns the raw axis reading in [-1, 1].
	AxisValue(ebiten.StandardGamepadAxis) float64
}

// Map binds each action variant to the physical controls that drive it.
// An action is pressed when any of its controls is. The map remembers
// per-control axis decisions between frames so threshold hysteresis
// works; like action.State it is driven by one goroutine per frame.
type Map[A action.Actionlike[A]] struct {
	controls map[A][]Control
	axisHeld map[Control]bool
}

// NewMap creates an empty Map with an entry per action variant.
func NewMap[A action.Actionlike[A]]() *Map[A] {
	return &Map[A]{
		controls: action.DefaultMap[A, []Control](),
		axisHeld: make(map[Control]bool),
	}
}

// Insert appends a control to the action's bindings.
func (m *Map[A]) Insert(a A, c Control) {
	m.controls[a] = append(m.controls[a], c)
}

// InsertSpec parses a control spec and appends it to the action's bindings.
func (m *Map[A]) InsertSpec(a A, spec string) error {
	c, err := ParseControl(spec)
	if err != nil {
		return err
	}
	m.Insert(a, c)
	return nil
}

// Controls returns the controls bound to the action.
func (m *Map[A]) Controls(a A) []Control {
	return m.controls[a]
}

// Clear removes every control bound to the action.
func (m *Map[A]) Clear(a A) {
	m.controls[a] = nil
}

// WhichPressed evaluates every binding against the poller and returns
// the set of actions physically active this frame. Every control is
// evaluated, even once an action is known pressed, so axis decisions
// stay current.
func (m *Map[A]) WhichPressed(p Poller) action.Set[A] {
	pressed := make(action.Set[A])
	for _, a := range action.Variants[A]() {
		for _, c := range m.controls[a] {
			if m.controlPressed(p, c) {
				pressed.Insert(a)
			}
		}
	}
	return pressed
}

func (m *Map[A]) controlPressed(p Poller, c Control) bool {
	switch c.Kind {
	case ControlKey:
		return p.KeyPressed(c.Key)
	case ControlMouse:
		return p.MousePressed(c.Mouse)
	case ControlPad:
		return p.PadPressed(c.Pad)
	case ControlAxis:
		value := p.AxisValue(c.Axis) * float64(c.AxisSign)
		if value < 0 {
			value = 0
		}
		held := c.Thresholds.Decide(value, m.axisHeld[c])
		m.axisHeld[c] = held
		return held
	}
	return false
}
