package eventbus

import (
	"reflect"

	"github.com/kilianp07/observer/core/events"
)

// Bus fans a payload of type T out to every registered EventListener[T].
//
// A listener is registered at most once. The order in which distinct
// listeners are reached is unspecified; inside one listener callbacks run
// last added first.
type Bus[T events.Event] struct {
	listeners map[*EventListener[T]]struct{}
}

func newBus[T events.Event]() *Bus[T] {
	return &Bus[T]{listeners: make(map[*EventListener[T]]struct{})}
}

// EventType returns the payload type handled by the bus.
func (b *Bus[T]) EventType() reflect.Type { return reflect.TypeFor[T]() }

// Register adds l to the bus. Registering twice has no effect.
func (b *Bus[T]) Register(l *EventListener[T]) {
	if l == nil {
		return
	}
	b.listeners[l] = struct{}{}
}

// Unregister removes l from the bus. Unknown listeners are ignored.
func (b *Bus[T]) Unregister(l *EventListener[T]) {
	delete(b.listeners, l)
}

// Contains reports whether l is registered.
func (b *Bus[T]) Contains(l *EventListener[T]) bool {
	_, ok := b.listeners[l]
	return ok
}

// Len returns the number of registered listeners.
func (b *Bus[T]) Len() int { return len(b.listeners) }

// Invoke calls Invoke on every registered listener.
func (b *Bus[T]) Invoke(ev T) {
	for l := range b.listeners {
		l.Invoke(ev)
	}
}

// InvokeUnsafe calls InvokeUnsafe on every registered listener.
func (b *Bus[T]) InvokeUnsafe(ev T) {
	for l := range b.listeners {
		l.InvokeUnsafe(ev)
	}
}

// Clear unregisters every listener. The callbacks held by the listeners are
// left untouched.
func (b *Bus[T]) Clear() {
	clear(b.listeners)
}
