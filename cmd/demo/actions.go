package main

// demoAction is the demo's action set: move left, move right, jump.
type demoAction int

const (
	actLeft demoAction = iota
	actRight
	actJump
)

func (demoAction) Variants() []demoAction {
	return []demoAction{actLeft, actRight, actJump}
}

func (a demoAction) String() string {
	switch a {
	case actLeft:
		return "left"
	case actRight:
		return "right"
	case actJump:
		return "jump"
	}
	return "unknown"
}

// actionNames resolves binding profile entries to actions.
var actionNames = map[string]demoAction{
	"left":  actLeft,
	"right": actRight,
	"jump":  actJump,
}
