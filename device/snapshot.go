// Package device reads physical input state from ebiten. It captures
// one immutable Snapshot per frame so every binding evaluated in that
// frame sees the same device facts.
package device

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// stickDeadzone zeroes small axis readings so a resting stick never
// feeds the thresholds.
const stickDeadzone = 0.2

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Snapshot is one frame of device state: pressed keys and mouse
// buttons, plus the first gamepad's standard buttons and axis values.
// It implements bindings.Poller.
type Snapshot struct {
	keys  map[ebiten.Key]struct{}
	mouse map[ebiten.MouseButton]struct{}
	pads  map[ebiten.StandardGamepadButton]struct{}
	axes  map[ebiten.StandardGamepadAxis]float64
}

// Capture polls ebiten for the current device state. Must be called
// from the game's Update, once per frame.
func Capture() *Snapshot {
	s := &Snapshot{
		keys:  make(map[ebiten.Key]struct{}),
		mouse: make(map[ebiten.MouseButton]struct{}),
		pads:  make(map[ebiten.StandardGamepadButton]struct{}),
		axes:  make(map[ebiten.StandardGamepadAxis]float64),
	}

	for _, k := range inpututil.AppendPressedKeys(nil) {
		s.keys[k] = struct{}{}
	}
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b) {
			s.mouse[b] = struct{}{}
		}
	}

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return s
	}
	id := ids[0]
	for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
		if ebiten.IsStandardGamepadButtonPressed(id, b) {
			s.pads[b] = struct{}{}
		}
	}
	for a := ebiten.StandardGamepadAxis(0); a <= ebiten.StandardGamepadAxisMax; a++ {
		v := ebiten.StandardGamepadAxisValue(id, a)
		if math.Abs(v) < stickDeadzone {
			continue
		}
		s.axes[a] = v
	}
	return s
}

func (s *Snapshot) KeyPressed(k ebiten.Key) bool {
	_, ok := s.keys[k]
	return ok
}

func (s *Snapshot) MousePressed(b ebiten.MouseButton) bool {
	_, ok := s.mouse[b]
	return ok
}

func (s *Snapshot) PadPressed(b ebiten.StandardGamepadButton) bool {
	_, ok := s.pads[b]
	return ok
}

func (s *Snapshot) AxisValue(a ebiten.StandardGamepadAxis) float64 {
	return s.axes[a]
}
