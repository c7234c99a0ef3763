package observable

import (
	"encoding/json"

	"github.com/kilianp07/observer/core/listener"
)

// Value holds a value of type T and notifies its listeners whenever a
// different value is assigned.
//
// The zero value holds the zero T and has no listeners.
type Value[T comparable] struct {
	value     T
	onChanged *listener.Any[T]
}

// NewValue attaches fns and then assigns initial. Listeners are therefore
// notified once when initial differs from the zero T.
func NewValue[T comparable](initial T, fns ...func(T)) *Value[T] {
	v := &Value[T]{onChanged: listener.NewAny[T]()}
	for _, fn := range fns {
		v.AddListener(fn)
	}
	v.Set(initial)
	return v
}

func (v *Value[T]) listeners() *listener.Any[T] {
	if v.onChanged == nil {
		v.onChanged = listener.NewAny[T]()
	}
	return v.onChanged
}

// Get returns the current value.
func (v *Value[T]) Get() T { return v.value }

// Set stores nv and notifies listeners when it differs from the current
// value. It reports whether the value changed.
func (v *Value[T]) Set(nv T) bool {
	if v.value == nv {
		return false
	}
	v.value = nv
	v.Invoke()
	return true
}

// Invoke notifies listeners with the current value without changing it.
// Editors that write the value directly use it to keep listeners in sync.
func (v *Value[T]) Invoke() {
	v.listeners().Invoke(v.value)
}

// AddListener registers fn and returns its handle. A nil fn is ignored and
// yields a nil handle.
func (v *Value[T]) AddListener(fn func(T)) *listener.Func[T] {
	if fn == nil {
		return nil
	}
	return v.listeners().Listen(fn)
}

// AddHandle registers an existing handle, for instance one created with
// listener.Bind.
func (v *Value[T]) AddHandle(h *listener.Func[T], allowDuplicates bool) bool {
	if h == nil {
		return false
	}
	return v.listeners().Add(h, allowDuplicates)
}

// RemoveListener unregisters h.
func (v *Value[T]) RemoveListener(h *listener.Func[T]) bool {
	if h == nil || v.onChanged == nil {
		return false
	}
	return v.onChanged.Remove(h)
}

// RemoveAllListeners unregisters every listener.
func (v *Value[T]) RemoveAllListeners() {
	if v.onChanged == nil {
		return
	}
	v.onChanged.RemoveAll()
}

// ListenerCount returns the number of registered listeners.
func (v *Value[T]) ListenerCount() int {
	if v.onChanged == nil {
		return 0
	}
	return v.onChanged.Count()
}

// Dispose detaches every listener at once and resets the value to the zero
// T. Listeners are not notified.
func (v *Value[T]) Dispose() {
	v.onChanged = listener.NewAny[T]()
	var zero T
	v.value = zero
}

// MarshalJSON encodes the current value.
func (v *Value[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON decodes into the value and notifies listeners on change.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	var nv T
	if err := json.Unmarshal(data, &nv); err != nil {
		return err
	}
	v.Set(nv)
	return nil
}
