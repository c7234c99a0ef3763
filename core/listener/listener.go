package listener

// Listener holds callbacks that take no argument.
//
// Listener is self managed: it is not attached to any event bus. The zero
// value is ready to use.
type Listener struct {
	Array[*Action]
}

// NewListener returns a Listener pre-populated with the given actions.
func NewListener(actions ...*Action) *Listener {
	l := &Listener{Array: Array[*Action]{items: make([]*Action, 1)}}
	for _, a := range actions {
		l.Add(a, true)
	}
	return l
}

// Listen wraps fn in a new Action, adds it and returns the handle needed to
// remove it later.
func (l *Listener) Listen(fn func()) *Action {
	a := NewAction(fn)
	l.Add(a, true)
	return a
}

// Invoke calls every live action, last added first. Stale actions are
// removed on the way.
func (l *Listener) Invoke() {
	for i := l.count; i > 0; i-- {
		if i > l.count {
			// entries below the cursor were removed by the previous callback
			if i = l.count; i == 0 {
				return
			}
		}
		a := l.at(i - 1)
		if a.Live() {
			a.Call()
		} else {
			l.removeAt(i - 1)
		}
	}
}

// InvokeUnsafe calls every action, last added first, without checking for
// stale entries. Callers must remove their actions explicitly.
func (l *Listener) InvokeUnsafe() {
	for i := l.count; i > 0; i-- {
		if i > l.count {
			if i = l.count; i == 0 {
				return
			}
		}
		a := l.at(i - 1)
		if debugChecks && !a.Live() {
			panic(ErrStaleListener)
		}
		a.Call()
	}
}

// Any holds callbacks receiving a value of type T. It is the building block
// for observables and for the bus bound EventListener.
//
// The zero value is ready to use.
type Any[T any] struct {
	Array[*Func[T]]
}

// NewAny returns an Any pre-populated with the given handles.
func NewAny[T any](fns ...*Func[T]) *Any[T] {
	l := &Any[T]{Array: Array[*Func[T]]{items: make([]*Func[T], 1)}}
	for _, f := range fns {
		l.Add(f, true)
	}
	return l
}

// Listen wraps fn in a new Func, adds it and returns the handle.
func (l *Any[T]) Listen(fn func(T)) *Func[T] {
	f := NewFunc(fn)
	l.Add(f, true)
	return f
}

// Invoke calls every live handle with v, last added first. Stale handles
// are removed on the way.
func (l *Any[T]) Invoke(v T) {
	for i := l.count; i > 0; i-- {
		if i > l.count {
			if i = l.count; i == 0 {
				return
			}
		}
		f := l.at(i - 1)
		if f.Live() {
			f.Call(v)
		} else {
			l.removeAt(i - 1)
		}
	}
}

// InvokeUnsafe calls every handle with v, last added first, skipping the
// liveness check and pruning.
func (l *Any[T]) InvokeUnsafe(v T) {
	for i := l.count; i > 0; i-- {
		if i > l.count {
			if i = l.count; i == 0 {
				return
			}
		}
		f := l.at(i - 1)
		if debugChecks && !f.Live() {
			panic(ErrStaleListener)
		}
		f.Call(v)
	}
}
