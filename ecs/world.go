package ecs

import "github.com/milk9111/sunnyland/ecs/component"

// System runs once per rendered frame. dt is already scaled by the
// simulation time scale.
type System interface {
	Update(w *World, dt float64)
}

// FixedSystem runs at the fixed physics cadence.
type FixedSystem interface {
	FixedUpdate(w *World, dt float64)
}

// Initializer is implemented by systems that acquire handles once, after
// the world has been populated and before the first activation.
type Initializer interface {
	Init(w *World) error
}

// Activator is implemented by systems that hold resources which must be
// released while the world is inactive.
type Activator interface {
	Activate()
	Deactivate()
}

// World owns entities, components, and system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet

	systems []System
	fixed   []FixedSystem
	active  bool
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.live()
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddSystem appends a frame system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// AddFixedSystem appends a system to the fixed-step order.
func (w *World) AddFixedSystem(s FixedSystem) {
	if s == nil {
		return
	}
	w.fixed = append(w.fixed, s)
}

// behaviours returns every registered system once, in registration order.
func (w *World) behaviours() []any {
	seen := make(map[any]struct{}, len(w.systems)+len(w.fixed))
	out := make([]any, 0, len(w.systems)+len(w.fixed))
	add := func(s any) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range w.systems {
		add(s)
	}
	for _, s := range w.fixed {
		add(s)
	}
	return out
}

// Init runs Init on every system that implements Initializer and stops at
// the first error.
func (w *World) Init() error {
	if w == nil {
		return nil
	}
	for _, s := range w.behaviours() {
		if in, ok := s.(Initializer); ok {
			if err := in.Init(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Activate enables every Activator. Calling it on an active world is a no-op.
func (w *World) Activate() {
	if w == nil || w.active {
		return
	}
	for _, s := range w.behaviours() {
		if a, ok := s.(Activator); ok {
			a.Activate()
		}
	}
	w.active = true
}

// Deactivate disables every Activator. Calling it on an inactive world is a no-op.
func (w *World) Deactivate() {
	if w == nil || !w.active {
		return
	}
	for _, s := range w.behaviours() {
		if a, ok := s.(Activator); ok {
			a.Deactivate()
		}
	}
	w.active = false
}

// Active reports whether Activate has been called without a matching Deactivate.
func (w *World) Active() bool {
	return w != nil && w.active
}

// Update runs all frame systems once.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		s.Update(w, dt)
	}
}

// FixedUpdate runs all fixed-step systems once.
func (w *World) FixedUpdate(dt float64) {
	if w == nil {
		return
	}
	for _, s := range w.fixed {
		s.FixedUpdate(w, dt)
	}
}
