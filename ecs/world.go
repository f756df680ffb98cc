package ecs

import "github.com/milk9111/actionmap/ecs/component"

// System updates a world once per frame.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, system order, and the frame
// event queue.
type World struct {
	entities entityStore
	stores   map[component.ID]*sparseSet
	systems  []System
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes the entity and all of its components. Returns
// false if the handle was already stale.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return true
}

// IsAlive reports whether the handle refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	return w.entities.alive()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then drops any events no system
// consumed this frame.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) storeIfPresent(id component.ID) *sparseSet {
	return w.stores[id]
}
