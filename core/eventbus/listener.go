package eventbus

import (
	"reflect"

	"github.com/kilianp07/observer/core/events"
	"github.com/kilianp07/observer/core/listener"
)

// Registrant is the type-erased view of an EventListener, used by code that
// manages listeners for payload types only known at runtime.
type Registrant interface {
	EventType() reflect.Type
	Register()
	Unregister()
	Registered() bool
	Count() int
	RemoveAll()
}

// EventListener is a listener.Any bound to the bus of its payload type.
// Callbacks are added to the listener; the listener itself is registered
// on the bus.
type EventListener[T events.Event] struct {
	listener.Any[T]
	registry *Registry
}

var _ Registrant = (*EventListener[events.NoArgs])(nil)

// NewListener creates a listener for the bus of T in reg (Default when
// nil), pre-populated with fns. It is not registered yet.
func NewListener[T events.Event](reg *Registry, fns ...*listener.Func[T]) *EventListener[T] {
	if reg == nil {
		reg = defaultRegistry
	}
	l := &EventListener[T]{registry: reg}
	for _, f := range fns {
		l.Add(f, true)
	}
	return l
}

// EventType returns the payload type of the listener.
func (l *EventListener[T]) EventType() reflect.Type { return reflect.TypeFor[T]() }

// Bus returns the bus the listener registers on.
func (l *EventListener[T]) Bus() *Bus[T] { return For[T](l.registry) }

// Register adds the listener to the bus of T.
func (l *EventListener[T]) Register() { l.Bus().Register(l) }

// Unregister removes the listener from the bus of T.
func (l *EventListener[T]) Unregister() { l.Bus().Unregister(l) }

// Registered reports whether the listener is on the bus of T.
func (l *EventListener[T]) Registered() bool {
	b, ok := Lookup[T](l.registry)
	return ok && b.Contains(l)
}
