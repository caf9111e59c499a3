package component

import (
	"errors"
	"reflect"
	"sync"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: nil component value")
	ErrInvalidComponentKind = errors.New("ecs: component handle not registered")
)

// ComponentID indexes one component store inside a world. Zero is never
// handed out.
type ComponentID uint32

// registry remembers the Go type behind every ComponentID so errors and
// debug output can name the store.
var registry struct {
	sync.Mutex
	names []string
}

// ComponentHandle is the typed key for a component store. Create handles
// once, as package-level vars, with NewComponent.
type ComponentHandle[T any] struct {
	id ComponentID
}

func NewComponent[T any]() ComponentHandle[T] {
	registry.Lock()
	defer registry.Unlock()
	registry.names = append(registry.names, reflect.TypeFor[T]().String())
	return ComponentHandle[T]{id: ComponentID(len(registry.names))}
}

func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

// Valid is false for the zero handle.
func (h ComponentHandle[T]) Valid() bool {
	return h.id != 0
}

func (h ComponentHandle[T]) String() string {
	return Name(h.id)
}

// Name returns the Go type registered under id.
func Name(id ComponentID) string {
	registry.Lock()
	defer registry.Unlock()
	if id == 0 || int(id) > len(registry.names) {
		return "unregistered"
	}
	return registry.names[id-1]
}
