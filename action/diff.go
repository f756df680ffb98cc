package action

// DiffKind identifies whether a diff records a press or a release.
type DiffKind string

const (
	DiffPressed  DiffKind = "pressed"
	DiffReleased DiffKind = "released"
)

// Diff is a minimal press/release event for one action, without any
// timing payload, suitable for network or event transport. ID is the
// externally supplied stable identity of the State's owner, so a
// receiver can route the diff to the right State instance.
type Diff[A Actionlike[A], ID comparable] struct {
	Kind   DiffKind `json:"kind" yaml:"kind"`
	Action A        `json:"action" yaml:"action"`
	ID     ID       `json:"id" yaml:"id"`
}

// Apply replays the diff onto the owning state. Timing is regenerated
// locally on the receiving side; diffs deliberately carry none.
func (d Diff[A, ID]) Apply(s *State[A]) {
	switch d.Kind {
	case DiffPressed:
		s.Press(d.Action)
	case DiffReleased:
		s.Release(d.Action)
	}
}
