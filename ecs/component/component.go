// Package component defines component registration and the components
// shipped with the module. Each component type registers one Kind; the
// kind's id keys the world's storage.
package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
	ErrInvalidKind    = errors.New("ecs: invalid component kind")
)

// ID is a process-unique component type id.
type ID uint32

var nextID atomic.Uint32

// Kind ties a component type to its storage id.
type Kind[T any] struct {
	id ID
}

// NewKind registers a new component kind. Call once per component
// type, at package init.
func NewKind[T any]() Kind[T] {
	return Kind[T]{id: ID(nextID.Add(1))}
}

func (k Kind[T]) ID() ID {
	return k.id
}

func (k Kind[T]) Valid() bool {
	return k.id != 0
}
