package ecs

import "github.com/milk9111/actionmap/ecs/component"

// Add attaches a component to an entity, overwriting any existing one
// of the same kind.
func Add[T any](w *World, e Entity, k component.Kind[T], v *T) error {
	if w == nil || !k.Valid() {
		return component.ErrInvalidKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID()).set(e.id(), v)
	return nil
}

// Get returns the entity's component of the given kind.
func Get[T any](w *World, e Entity, k component.Kind[T]) (*T, bool) {
	if w == nil || !k.Valid() || !w.IsAlive(e) {
		return nil, false
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return nil, false
	}
	v, ok := s.get(e.id()).(*T)
	return v, ok
}

// Has reports whether the entity carries a component of the given kind.
func Has[T any](w *World, e Entity, k component.Kind[T]) bool {
	_, ok := Get(w, e, k)
	return ok
}

// Remove detaches the component from the entity. Returns false if the
// entity did not carry one.
func Remove[T any](w *World, e Entity, k component.Kind[T]) bool {
	if w == nil || !k.Valid() || !w.IsAlive(e) {
		return false
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// ForEach visits every live entity carrying a component of the given
// kind. The visit order is the store's dense order, not creation order.
func ForEach[T any](w *World, k component.Kind[T], fn func(Entity, *T)) {
	if w == nil || !k.Valid() || fn == nil {
		return
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return
	}
	// Iterate over a copy of the id list: fn may add or destroy.
	ids := append([]entityID(nil), s.ids()...)
	for _, id := range ids {
		e, ok := w.entities.entityFor(id)
		if !ok {
			continue
		}
		if v, ok := s.get(id).(*T); ok {
			fn(e, v)
		}
	}
}

// First returns some live entity carrying the component, if any exists.
func First[T any](w *World, k component.Kind[T]) (Entity, *T, bool) {
	if w == nil || !k.Valid() {
		return 0, nil, false
	}
	s := w.storeIfPresent(k.ID())
	if s == nil {
		return 0, nil, false
	}
	for _, id := range s.ids() {
		e, ok := w.entities.entityFor(id)
		if !ok {
			continue
		}
		if v, ok := s.get(id).(*T); ok {
			return e, v, true
		}
	}
	return 0, nil, false
}
