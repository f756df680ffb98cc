// Package system contains the systems shipped with the module.
package system

import (
	"github.com/milk9111/actionmap/action"
	"github.com/milk9111/actionmap/bindings"
	"github.com/milk9111/actionmap/device"
	"github.com/milk9111/actionmap/ecs"
	"github.com/milk9111/actionmap/ecs/component"
)

// ActionSystem advances every Actions component by one logical frame:
// capture one device snapshot, reconcile each entity's state with its
// bindings (update), apply drivers, emit a diff event for every press
// and release transition observed, then tick time once.
type ActionSystem[A action.Actionlike[A], ID comparable] struct {
	actions component.Kind[component.Actions[A, ID]]
	drivers component.Kind[component.Driver[A, ID]]
	capture func() bindings.Poller
	now     device.Clock
}

// NewActionSystem wires the system to the application's component
// kinds. capture and now may be nil, in which case the system polls
// ebiten and the system clock.
func NewActionSystem[A action.Actionlike[A], ID comparable](
	actions component.Kind[component.Actions[A, ID]],
	drivers component.Kind[component.Driver[A, ID]],
	capture func() bindings.Poller,
	now device.Clock,
) *ActionSystem[A, ID] {
	if capture == nil {
		capture = func() bindings.Poller { return device.Capture() }
	}
	if now == nil {
		now = device.SystemClock
	}
	return &ActionSystem[A, ID]{actions: actions, drivers: drivers, capture: capture, now: now}
}

func (s *ActionSystem[A, ID]) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	poller := s.capture()
	now := s.now()

	// Reconcile every entity with its own bindings, remembering what
	// was pressed beforehand so transitions can be diffed at the end.
	type entry struct {
		actions *component.Actions[A, ID]
		before  action.Set[A]
	}
	var entries []entry
	byOwner := make(map[ID]*component.Actions[A, ID])
	ecs.ForEach(w, s.actions, func(e ecs.Entity, ac *component.Actions[A, ID]) {
		if ac.State == nil {
			return
		}
		before := action.NewSet(ac.State.PressedActions()...)
		if ac.Bindings != nil {
			ac.State.Update(ac.Bindings.WhichPressed(poller))
		}
		entries = append(entries, entry{actions: ac, before: before})
		byOwner[ac.Owner] = ac
	})

	// Drivers override the target's own bindings for the driven action.
	ecs.ForEach(w, s.drivers, func(e ecs.Entity, d *component.Driver[A, ID]) {
		src, ok := ecs.Get(w, e, s.actions)
		if !ok || src.State == nil {
			return
		}
		target, ok := byOwner[d.Target]
		if !ok || target.State == nil {
			return
		}
		if src.State.Pressed(d.Action) {
			target.State.Press(d.Action)
		} else {
			target.State.Release(d.Action)
		}
	})

	// Emit diffs for the transitions this frame produced, then advance
	// time. Transitions reach later systems through the diff events;
	// the states themselves answer pressed/duration queries.
	for _, en := range entries {
		after := action.NewSet(en.actions.State.PressedActions()...)
		for _, a := range action.Variants[A]() {
			was, is := en.before.Contains(a), after.Contains(a)
			if was == is {
				continue
			}
			kind := action.DiffReleased
			if is {
				kind = action.DiffPressed
			}
			w.Events().Push(ecs.Event{
				Type: ecs.EventActionDiff,
				Data: action.Diff[A, ID]{Kind: kind, Action: a, ID: en.actions.Owner},
			})
		}
		en.actions.State.Tick(now)
	}
}
