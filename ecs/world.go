package ecs

import "github.com/milk9111/rollgrid/ecs/component"

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes all components of e and retires its handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities in creation-slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent sets the untyped component value for e, replacing any previous one.
func (w *World) AddComponent(e Entity, id component.ComponentID, value any) error {
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(id, true).Set(e, value)
	return nil
}

// GetComponent returns the untyped component value for e.
func (w *World) GetComponent(e Entity, id component.ComponentID) (any, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := w.store(id, false)
	if !s.Has(e.id()) {
		return nil, false
	}
	return s.Get(e.id()), true
}

// HasComponent reports whether e carries a component of the given id.
func (w *World) HasComponent(e Entity, id component.ComponentID) bool {
	_, ok := w.GetComponent(e, id)
	return ok
}

// RemoveComponent deletes the component of the given id from e.
func (w *World) RemoveComponent(e Entity, id component.ComponentID) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(id, false).Remove(e.id())
}
