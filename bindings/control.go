// Package bindings maps physical controls (keys, mouse buttons,
// gamepad buttons and axes) onto abstract actions. A Map is queried
// once per frame against a device snapshot to produce the set of
// actions that are physically active, which is then fed to
// action.State.Update.
package bindings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/actionmap/action"
)

var (
	ErrBadControl    = errors.New("bindings: malformed control spec")
	ErrUnknownAction = errors.New("bindings: unknown action name")
)

// ControlKind identifies the device class a control reads from.
type ControlKind string

const (
	ControlKey   ControlKind = "key"
	ControlMouse ControlKind = "mouse"
	ControlPad   ControlKind = "pad"
	ControlAxis  ControlKind = "axis"
)

// Control identifies one physical control. Only the field matching
// Kind is meaningful. Axis controls carry a travel direction and the
// thresholds that turn the analog reading into a binary decision.
type Control struct {
	Kind ControlKind

	Key   ebiten.Key
	Mouse ebiten.MouseButton
	Pad   ebiten.StandardGamepadButton

	Axis       ebiten.StandardGamepadAxis
	AxisSign   int // +1 or -1
	Thresholds action.Thresholds
}

// ParseControl parses a compact control spec:
//
//	key:Space
//	mouse:Left
//	pad:RightBottom
//	axis:LeftX+            (default 0.5/0.5 thresholds)
//	axis:RightY-@0.6/0.4   (explicit pressed/released thresholds)
//
// Key names follow ebiten's key naming; pad names follow the standard
// gamepad layout names below.
func ParseControl(spec string) (Control, error) {
	kind, rest, ok := strings.Cut(spec, ":")
	if !ok || rest == "" {
		return Control{}, fmt.Errorf("%w: %q", ErrBadControl, spec)
	}

	switch ControlKind(kind) {
	case ControlKey:
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(rest)); err != nil {
			return Control{}, fmt.Errorf("%w: %q: %v", ErrBadControl, spec, err)
		}
		return Control{Kind: ControlKey, Key: key}, nil

	case ControlMouse:
		button, ok := mouseButtons[rest]
		if !ok {
			return Control{}, fmt.Errorf("%w: %q: unknown mouse button", ErrBadControl, spec)
		}
		return Control{Kind: ControlMouse, Mouse: button}, nil

	case ControlPad:
		button, ok := padButtons[rest]
		if !ok {
			return Control{}, fmt.Errorf("%w: %q: unknown gamepad button", ErrBadControl, spec)
		}
		return Control{Kind: ControlPad, Pad: button}, nil

	case ControlAxis:
		return parseAxisControl(spec, rest)
	}

	return Control{}, fmt.Errorf("%w: %q: unknown kind", ErrBadControl, spec)
}

func parseAxisControl(spec, rest string) (Control, error) {
	name, levels, hasLevels := strings.Cut(rest, "@")
	if len(name) < 2 {
		return Control{}, fmt.Errorf("%w: %q", ErrBadControl, spec)
	}

	sign := 0
	switch name[len(name)-1] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return Control{}, fmt.Errorf("%w: %q: axis needs a +/- direction", ErrBadControl, spec)
	}

	axis, ok := padAxes[name[:len(name)-1]]
	if !ok {
		return Control{}, fmt.Errorf("%w: %q: unknown axis", ErrBadControl, spec)
	}

	c := Control{Kind: ControlAxis, Axis: axis, AxisSign: sign, Thresholds: action.DefaultThresholds()}
	if !hasLevels {
		return c, nil
	}

	pressedStr, releasedStr, ok := strings.Cut(levels, "/")
	if !ok {
		return Control{}, fmt.Errorf("%w: %q: thresholds need pressed/released", ErrBadControl, spec)
	}
	pressed, err := strconv.ParseFloat(pressedStr, 64)
	if err != nil {
		return Control{}, fmt.Errorf("%w: %q: %v", ErrBadControl, spec, err)
	}
	released, err := strconv.ParseFloat(releasedStr, 64)
	if err != nil {
		return Control{}, fmt.Errorf("%w: %q: %v", ErrBadControl, spec, err)
	}
	if pressed < 0 || pressed > 1 || released < 0 || released > 1 {
		return Control{}, fmt.Errorf("%w: %q: thresholds outside [0, 1]", ErrBadControl, spec)
	}
	if pressed < released {
		return Control{}, fmt.Errorf("%w: %q: pressed threshold below released", ErrBadControl, spec)
	}
	// Lower the released level before raising the pressed one (or the
	// reverse) so neither setter sees a transient ordering violation.
	if released <= c.Thresholds.Pressed() {
		if err := c.Thresholds.SetReleased(released); err != nil {
			return Control{}, fmt.Errorf("%w: %q: %v", ErrBadControl, spec, err)
		}
		if err := c.Thresholds.SetPressed(pressed); err != nil {
			return Control{}, fmt.Errorf("%w: %q: %v", ErrBadControl, spec, err)
		}
	} else {
		if err := c.Thresholds.SetPressed(pressed); err != nil {
			return Control{}, fmt.Errorf("%w: %q: %v", ErrBadControl, spec, err)
		}
		if err := c.Thresholds.SetReleased(released); err != nil {
			return Control{}, fmt.Errorf("%w: %q: %v", ErrBadControl, spec, err)
		}
	}
	return c, nil
}

// String renders the control back into spec form.
func (c Control) String() string {
	switch c.Kind {
	case ControlKey:
		text, err := c.Key.MarshalText()
		if err != nil {
			return "key:?"
		}
		return "key:" + string(text)
	case ControlMouse:
		for name, button := range mouseButtons {
			if button == c.Mouse {
				return "mouse:" + name
			}
		}
		return "mouse:?"
	case ControlPad:
		for name, button := range padButtons {
			if button == c.Pad {
				return "pad:" + name
			}
		}
		return "pad:?"
	case ControlAxis:
		dir := "+"
		if c.AxisSign < 0 {
			dir = "-"
		}
		for name, axis := range padAxes {
			if axis == c.Axis {
				return fmt.Sprintf("axis:%s%s@%v/%v", name, dir, c.Thresholds.Pressed(), c.Thresholds.Released())
			}
		}
		return "axis:?"
	}
	return "?"
}

var mouseButtons = map[string]ebiten.MouseButton{
	"Left":   ebiten.MouseButtonLeft,
	"Middle": ebiten.MouseButtonMiddle,
	"Right":  ebiten.MouseButtonRight,
}

var padButtons = map[string]ebiten.StandardGamepadButton{
	"RightBottom":      ebiten.StandardGamepadButtonRightBottom,
	"RightRight":       ebiten.StandardGamepadButtonRightRight,
	"RightLeft":        ebiten.StandardGamepadButtonRightLeft,
	"RightTop":         ebiten.StandardGamepadButtonRightTop,
	"FrontTopLeft":     ebiten.StandardGamepadButtonFrontTopLeft,
	"FrontTopRight":    ebiten.StandardGamepadButtonFrontTopRight,
	"FrontBottomLeft":  ebiten.StandardGamepadButtonFrontBottomLeft,
	"FrontBottomRight": ebiten.StandardGamepadButtonFrontBottomRight,
	"CenterLeft":       ebiten.StandardGamepadButtonCenterLeft,
	"CenterRight":      ebiten.StandardGamepadButtonCenterRight,
	"LeftStick":        ebiten.StandardGamepadButtonLeftStick,
	"RightStick":       ebiten.StandardGamepadButtonRightStick,
	"LeftTop":          ebiten.StandardGamepadButtonLeftTop,
	"LeftBottom":       ebiten.StandardGamepadButtonLeftBottom,
	"LeftLeft":         ebiten.StandardGamepadButtonLeftLeft,
	"LeftRight":        ebiten.StandardGamepadButtonLeftRight,
	"CenterCenter":     ebiten.StandardGamepadButtonCenterCenter,
}

var padAxes = map[string]ebiten.StandardGamepadAxis{
	"LeftX":  ebiten.StandardGamepadAxisLeftStickHorizontal,
	"LeftY":  ebiten.StandardGamepadAxisLeftStickVertical,
	"RightX": ebiten.StandardGamepadAxisRightStickHorizontal,
	"RightY": ebiten.StandardGamepadAxisRightStickVertical,
}
