package component

import (
	"github.com/milk9111/actionmap/action"
	"github.com/milk9111/actionmap/bindings"
)

// Actions is the per-entity input component: the entity's action state
// plus the bindings that drive it. Owner is the externally stable
// identity stamped into every diff emitted for this entity, so remote
// consumers can route diffs back to the right state.
//
// Because Actions is generic over the application's action set, the
// application registers its own kind:
//
//	var ActionsComponent = component.NewKind[component.Actions[MyAction, string]]()
type Actions[A action.Actionlike[A], ID comparable] struct {
	Owner    ID
	State    *action.State[A]
	Bindings *bindings.Map[A]
}

// NewActions creates an Actions component with a fresh, all-released state.
func NewActions[A action.Actionlike[A], ID comparable](owner ID, m *bindings.Map[A]) *Actions[A, ID] {
	return &Actions[A, ID]{Owner: owner, State: action.NewState[A](), Bindings: m}
}

// Driver mirrors one action from the entity it is attached to onto the
// state owned by Target. The attached entity must also carry an
// Actions component; whatever its state says about Action each frame
// wins over the target's own bindings for that action.
type Driver[A action.Actionlike[A], ID comparable] struct {
	Action A
	Target ID
}
