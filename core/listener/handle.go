package listener

import (
	"errors"
	"weak"
)

// ErrStaleListener is raised by InvokeUnsafe when the package is built with
// the observerdebug tag and a stale handle is found.
var ErrStaleListener = errors.New("listener: stale listener reached unsafe invoke")

// Func is a registered callback receiving a value of type T.
//
// A Func is identified by its pointer: adding the same *Func twice stores it
// twice, and removing it needs the same pointer. A Func becomes stale after
// Release or, for handles created with Bind, once its owner was collected.
type Func[T any] struct {
	fn    func(T)
	alive func() bool
}

// NewFunc wraps fn in a handle. A nil fn yields a stale handle.
func NewFunc[T any](fn func(T)) *Func[T] {
	return &Func[T]{fn: fn}
}

// Bind creates a handle tied to owner through a weak reference. The handle
// turns stale when owner is garbage collected and is then pruned by the next
// safe invoke. fn receives the owner and must not capture it, otherwise the
// owner stays reachable forever.
func Bind[O, T any](owner *O, fn func(*O, T)) *Func[T] {
	if owner == nil || fn == nil {
		return &Func[T]{}
	}
	wp := weak.Make(owner)
	return &Func[T]{
		fn: func(v T) {
			if o := wp.Value(); o != nil {
				fn(o, v)
			}
		},
		alive: func() bool { return wp.Value() != nil },
	}
}

// Release marks the handle stale. Wrappers holding it drop it on their next
// safe invoke.
func (f *Func[T]) Release() {
	if f == nil {
		return
	}
	f.fn = nil
	f.alive = nil
}

// Live reports whether calling the handle still reaches its target.
func (f *Func[T]) Live() bool {
	return f != nil && f.fn != nil && (f.alive == nil || f.alive())
}

// Call invokes the callback. Calling a released handle does nothing.
func (f *Func[T]) Call(v T) {
	if f != nil && f.fn != nil {
		f.fn(v)
	}
}

// Action is the no argument counterpart of Func.
type Action struct {
	fn    func()
	alive func() bool
}

// NewAction wraps fn in a handle.
func NewAction(fn func()) *Action {
	return &Action{fn: fn}
}

// BindAction creates an Action tied to owner through a weak reference.
func BindAction[O any](owner *O, fn func(*O)) *Action {
	if owner == nil || fn == nil {
		return &Action{}
	}
	wp := weak.Make(owner)
	return &Action{
		fn: func() {
			if o := wp.Value(); o != nil {
				fn(o)
			}
		},
		alive: func() bool { return wp.Value() != nil },
	}
}

// Release marks the action stale.
func (a *Action) Release() {
	if a == nil {
		return
	}
	a.fn = nil
	a.alive = nil
}

// Live reports whether the action still reaches its target.
func (a *Action) Live() bool {
	return a != nil && a.fn != nil && (a.alive == nil || a.alive())
}

// Call runs the action. Calling a released action does nothing.
func (a *Action) Call() {
	if a != nil && a.fn != nil {
		a.fn()
	}
}
