package ecs

import (
	"fmt"

	"github.com/milk9111/sunnyland/ecs/component"
)

// Add stores value for e, replacing any previous component of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if w == nil || !w.IsAlive(e) {
		return fmt.Errorf("add %s to %s: %w", handle, e, component.ErrEntityNotAlive)
	}
	if value == nil {
		return fmt.Errorf("add %s to %s: %w", handle, e, component.ErrNilComponent)
	}
	if !handle.Valid() {
		return component.ErrInvalidComponentKind
	}
	w.store(handle.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.store(handle.ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.store(handle.ID(), false).Has(e)
}

// Get returns the stored pointer so callers can mutate the component in place.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	v, ok := w.store(handle.ID(), false).Get(e).(*T)
	return v, ok
}

// First returns the first live entity that has the component.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	for _, e := range w.store(handle.ID(), false).Entities() {
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}

func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v *T)) {
	if w == nil {
		return
	}
	s := w.store(handle.ID(), false)
	for _, e := range append([]Entity(nil), s.Entities()...) {
		if v, ok := s.Get(e).(*T); ok && w.IsAlive(e) {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(e Entity, a *A, b *B)) {
	if w == nil {
		return
	}
	sa := w.store(ha.ID(), false)
	sb := w.store(hb.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	// iterate the smaller set
	if sa.Len() <= sb.Len() {
		for _, e := range append([]Entity(nil), sa.Entities()...) {
			a, okA := sa.Get(e).(*A)
			b, okB := sb.Get(e).(*B)
			if okA && okB && w.IsAlive(e) {
				fn(e, a, b)
			}
		}
		return
	}
	for _, e := range append([]Entity(nil), sb.Entities()...) {
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		if okA && okB && w.IsAlive(e) {
			fn(e, a, b)
		}
	}
}
