// Package ecs is a small entity-component-system world used to run
// action state as a component: one Actions component per controllable
// entity, advanced once per frame by the action system.
package ecs

import "strconv"

// Entity is a generational handle: the low bits hold the slot id, the
// high bits the generation, so a stale handle to a destroyed slot
// never aliases its successor.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e.id() != 0
}

// entityStore tracks slot generations and recycles freed ids.
type entityStore struct {
	gens []generation // indexed by id-1
	dead []bool
	free []entityID
}

func (s *entityStore) create() Entity {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.dead[id-1] = false
		return makeEntity(id, s.gens[id-1])
	}
	s.gens = append(s.gens, 0)
	s.dead = append(s.dead, false)
	return makeEntity(entityID(len(s.gens)), 0)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gens[idx]++
	s.dead[idx] = true
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return !s.dead[id-1] && s.gens[id-1] == e.generation()
}

// entityFor rebuilds the live handle for a slot id, if the slot is alive.
func (s *entityStore) entityFor(id entityID) (Entity, bool) {
	if id == 0 || int(id) > len(s.gens) || s.dead[id-1] {
		return 0, false
	}
	return makeEntity(id, s.gens[id-1]), true
}

func (s *entityStore) alive() []Entity {
	out := make([]Entity, 0, len(s.gens))
	for i := range s.gens {
		if !s.dead[i] {
			out = append(out, makeEntity(entityID(i+1), s.gens[i]))
		}
	}
	return out
}
