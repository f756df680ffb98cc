package action

import (
	"testing"
	"time"
)

type testAction int

const (
	actRun testAction = iota
	actJump
	actHide
)

func (testAction) Variants() []testAction {
	return []testAction{actRun, actJump, actHide}
}

func (a testAction) String() string {
	switch a {
	case actRun:
		return "run"
	case actJump:
		return "jump"
	case actHide:
		return "hide"
	}
	return "unknown"
}

func TestNeverPressedDefaults(t *testing.T) {
	s := NewState[testAction]()

	for _, a := range Variants[testAction]() {
		if !s.Released(a) {
			t.Fatalf("%v: expected released by default", a)
		}
		if !s.JustReleased(a) {
			t.Fatalf("%v: expected just-released before the first tick", a)
		}
		b := s.ButtonState(a)
		if _, ok := b.Started(); ok {
			t.Fatalf("%v: expected no start instant before the first tick", a)
		}
		if b.CurrentDuration() != 0 || b.PreviousDuration() != 0 {
			t.Fatalf("%v: expected zero durations, got %v/%v", a, b.CurrentDuration(), b.PreviousDuration())
		}
	}
}

func TestPressLifecycle(t *testing.T) {
	s := NewState[testAction]()

	// Starting state: released, and just-released until ticked.
	s.Update(NewSet[testAction]())
	if s.Pressed(actRun) || s.JustPressed(actRun) {
		t.Fatalf("expected run released at start")
	}
	if !s.Released(actRun) || !s.JustReleased(actRun) {
		t.Fatalf("expected run just-released at start")
	}

	// Pressing.
	s.Update(NewSet(actRun))
	if !s.Pressed(actRun) || !s.JustPressed(actRun) {
		t.Fatalf("expected run just-pressed after update")
	}
	if s.Released(actRun) || s.JustReleased(actRun) {
		t.Fatalf("expected run not released after update")
	}

	// Waiting: a tick keeps pressed but clears just-pressed.
	s.Tick(time.Now())
	s.Update(NewSet(actRun))
	if !s.Pressed(actRun) || s.JustPressed(actRun) {
		t.Fatalf("expected run pressed but not just-pressed after tick")
	}

	// Releasing.
	s.Update(NewSet[testAction]())
	if s.Pressed(actRun) || s.JustPressed(actRun) {
		t.Fatalf("expected run released after empty update")
	}
	if !s.Released(actRun) || !s.JustReleased(actRun) {
		t.Fatalf("expected run just-released after empty update")
	}

	// Waiting again.
	s.Tick(time.Now())
	s.Update(NewSet[testAction]())
	if !s.Released(actRun) || s.JustReleased(actRun) {
		t.Fatalf("expected run released but not just-released after tick")
	}
}

func TestDurations(t *testing.T) {
	s := NewState[testAction]()
	base := time.Now()

	// Pressing swaps the phase but records no instant yet.
	s.Press(actJump)
	b := s.ButtonState(actJump)
	if !b.Pressed() {
		t.Fatalf("expected jump pressed")
	}
	if _, ok := b.Started(); ok {
		t.Fatalf("expected no start instant before tick")
	}
	if b.CurrentDuration() != 0 || b.PreviousDuration() != 0 {
		t.Fatalf("expected zero durations, got %v/%v", b.CurrentDuration(), b.PreviousDuration())
	}

	// First tick stamps the instant.
	t0 := base
	s.Tick(t0)
	b = s.ButtonState(actJump)
	if started, ok := b.Started(); !ok || !started.Equal(t0) {
		t.Fatalf("expected start instant %v, got %v ok=%v", t0, started, ok)
	}
	if b.CurrentDuration() != 0 {
		t.Fatalf("expected zero duration on first tick, got %v", b.CurrentDuration())
	}

	// A later tick accrues duration against the recorded instant.
	t1 := base.Add(42 * time.Millisecond)
	s.Tick(t1)
	b = s.ButtonState(actJump)
	if started, ok := b.Started(); !ok || !started.Equal(t0) {
		t.Fatalf("expected start instant unchanged, got %v ok=%v", started, ok)
	}
	if b.CurrentDuration() != t1.Sub(t0) {
		t.Fatalf("expected duration %v, got %v", t1.Sub(t0), b.CurrentDuration())
	}
	if b.PreviousDuration() != 0 {
		t.Fatalf("expected zero previous duration, got %v", b.PreviousDuration())
	}

	// Releasing carries the current duration into the previous one.
	s.Release(actJump)
	b = s.ButtonState(actJump)
	if _, ok := b.Started(); ok {
		t.Fatalf("expected start instant cleared by release")
	}
	if b.CurrentDuration() != 0 {
		t.Fatalf("expected zero current duration after release, got %v", b.CurrentDuration())
	}
	if b.PreviousDuration() != t1.Sub(t0) {
		t.Fatalf("expected previous duration %v, got %v", t1.Sub(t0), b.PreviousDuration())
	}
	if !s.JustReleased(actJump) {
		t.Fatalf("expected jump just-released")
	}
}

func TestTickClampsBackwardClock(t *testing.T) {
	s := NewState[testAction]()
	base := time.Now()

	s.Press(actJump)
	s.Tick(base)
	s.Tick(base.Add(-time.Second))

	if got := s.ButtonState(actJump).CurrentDuration(); got != 0 {
		t.Fatalf("expected duration clamped to zero, got %v", got)
	}
}

func TestIdempotentTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T, s *State[testAction])
	}{
		{
			name: "press_pressed",
			run: func(t *testing.T, s *State[testAction]) {
				s.Press(actJump)
				s.Tick(time.Now())
				before := s.ButtonState(actJump)
				s.Press(actJump)
				if s.ButtonState(actJump) != before {
					t.Fatalf("press on pressed action changed state")
				}
			},
		},
		{
			name: "release_released",
			run: func(t *testing.T, s *State[testAction]) {
				s.Tick(time.Now())
				before := s.ButtonState(actJump)
				s.Release(actJump)
				if s.ButtonState(actJump) != before {
					t.Fatalf("release on released action changed state")
				}
			},
		},
		{
			name: "update_matching_set",
			run: func(t *testing.T, s *State[testAction]) {
				s.Press(actJump)
				s.Tick(time.Now())
				before := s.ButtonState(actJump)
				s.Update(NewSet(actJump))
				if s.ButtonState(actJump) != before {
					t.Fatalf("update with matching set changed state")
				}
			},
		},
		{
			name: "release_all_twice",
			run: func(t *testing.T, s *State[testAction]) {
				s.Press(actRun)
				s.Press(actJump)
				s.ReleaseAll()
				before := s.ButtonState(actRun)
				s.ReleaseAll()
				if s.ButtonState(actRun) != before {
					t.Fatalf("second release_all changed state")
				}
				if len(s.PressedActions()) != 0 {
					t.Fatalf("expected nothing pressed after release_all")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.run(t, NewState[testAction]())
		})
	}
}

func TestBatchQueries(t *testing.T) {
	s := NewState[testAction]()
	s.Press(actRun)
	s.Press(actJump)
	s.Tick(time.Now())
	s.Release(actJump)

	if got := s.PressedActions(); len(got) != 1 || got[0] != actRun {
		t.Fatalf("expected pressed=[run], got %v", got)
	}
	if got := s.JustPressedActions(); len(got) != 0 {
		t.Fatalf("expected nothing just-pressed, got %v", got)
	}
	if got := s.JustReleasedActions(); len(got) != 1 || got[0] != actJump {
		t.Fatalf("expected just-released=[jump], got %v", got)
	}
	// hide was released before the tick and stays plain released after it.
	if got := s.ReleasedActions(); len(got) != 2 || got[0] != actJump || got[1] != actHide {
		t.Fatalf("expected released=[jump hide], got %v", got)
	}
}

func TestSetButtonStateTransfer(t *testing.T) {
	src := NewState[testAction]()
	src.Press(actRun)
	src.Tick(time.Now())

	dst := NewState[testAction]()
	dst.SetButtonState(actJump, src.ButtonState(actRun))
	if !dst.Pressed(actJump) {
		t.Fatalf("expected transferred state to be pressed")
	}
	if dst.JustPressed(actJump) {
		t.Fatalf("expected transferred state to keep its tick instant")
	}
}

func TestSetButtonStatePanicsOnUnknownAction(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown action")
		}
	}()

	s := &State[testAction]{buttons: map[testAction]ButtonState{}}
	s.SetButtonState(actRun, ButtonState{})
}

func TestDefaultMap(t *testing.T) {
	m := DefaultMap[testAction, int]()
	if len(m) != len(Variants[testAction]()) {
		t.Fatalf("expected one entry per variant, got %d", len(m))
	}
	for a, v := range m {
		if v != 0 {
			t.Fatalf("%v: expected zero value, got %d", a, v)
		}
	}
}

func TestDiffApply(t *testing.T) {
	s := NewState[testAction]()

	press := Diff[testAction, string]{Kind: DiffPressed, Action: actJump, ID: "p1"}
	press.Apply(s)
	if !s.JustPressed(actJump) {
		t.Fatalf("expected press diff to press jump")
	}

	s.Tick(time.Now())

	release := Diff[testAction, string]{Kind: DiffReleased, Action: actJump, ID: "p1"}
	release.Apply(s)
	if !s.JustReleased(actJump) {
		t.Fatalf("expected release diff to release jump")
	}
}
