package eventbus

import (
	"reflect"

	"github.com/kilianp07/observer/core/events"
)

// typedBus is the type-erased view of a Bus[T] held by the Registry.
type typedBus interface {
	EventType() reflect.Type
	Len() int
	Clear()
}

// Registry owns one Bus per payload type. Subsystems sharing a Registry and
// a payload type share the same bus.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	buses map[reflect.Type]typedBus
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{buses: make(map[reflect.Type]typedBus)}
}

var defaultRegistry = NewRegistry()

// Default returns the process wide registry.
func Default() *Registry { return defaultRegistry }

// For returns the bus for payload type T, creating it on first use. A nil
// registry resolves to Default.
func For[T events.Event](r *Registry) *Bus[T] {
	if r == nil {
		r = defaultRegistry
	}
	t := reflect.TypeFor[T]()
	if b, ok := r.buses[t]; ok {
		return b.(*Bus[T])
	}
	b := newBus[T]()
	if r.buses == nil {
		r.buses = make(map[reflect.Type]typedBus)
	}
	r.buses[t] = b
	return b
}

// Lookup returns the bus for T without creating it.
func Lookup[T events.Event](r *Registry) (*Bus[T], bool) {
	if r == nil {
		r = defaultRegistry
	}
	b, ok := r.buses[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return b.(*Bus[T]), true
}

// Has reports whether a bus exists for payload type t.
func (r *Registry) Has(t reflect.Type) bool {
	_, ok := r.buses[t]
	return ok
}

// Len returns the number of buses.
func (r *Registry) Len() int { return len(r.buses) }

// Clear empties the bus for payload type t. It returns false when no bus
// exists for t.
func (r *Registry) Clear(t reflect.Type) bool {
	b, ok := r.buses[t]
	if !ok {
		return false
	}
	b.Clear()
	return true
}
