package observable

import (
	"errors"
	"iter"
	"slices"

	"github.com/kilianp07/observer/core/listener"
)

// ErrIndexOutOfRange is returned for indexes outside the list.
var ErrIndexOutOfRange = errors.New("index out of range")

// List is an ordered collection notifying its listeners after every
// mutation. Listeners receive the list's backing slice and must not keep or
// modify it.
//
// The zero value is an empty list.
type List[T comparable] struct {
	items    []T
	onChange *listener.Any[[]T]
}

// NewList returns a list holding a copy of initial.
func NewList[T comparable](initial []T) *List[T] {
	return &List[T]{items: slices.Clone(initial), onChange: listener.NewAny[[]T]()}
}

func (l *List[T]) listeners() *listener.Any[[]T] {
	if l.onChange == nil {
		l.onChange = listener.NewAny[[]T]()
	}
	return l.onChange
}

// OnChange registers fn and returns its handle.
func (l *List[T]) OnChange(fn func([]T)) *listener.Func[[]T] {
	if fn == nil {
		return nil
	}
	return l.listeners().Listen(fn)
}

// RemoveOnChange unregisters h.
func (l *List[T]) RemoveOnChange(h *listener.Func[[]T]) bool {
	if l.onChange == nil {
		return false
	}
	return l.onChange.Remove(h)
}

// Invoke notifies listeners with the current items.
func (l *List[T]) Invoke() {
	l.listeners().Invoke(l.items)
}

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// At returns the item at i.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Contains reports whether item is in the list.
func (l *List[T]) Contains(item T) bool { return slices.Contains(l.items, item) }

// IndexOf returns the index of the first item equal to item, or -1.
func (l *List[T]) IndexOf(item T) int { return slices.Index(l.items, item) }

// CopyTo copies the items into dst starting at index at and returns the
// number of items copied.
func (l *List[T]) CopyTo(dst []T, at int) int {
	if at < 0 || at > len(dst) {
		return 0
	}
	return copy(dst[at:], l.items)
}

// Items returns a copy of the items.
func (l *List[T]) Items() []T { return slices.Clone(l.items) }

// All iterates over the items with their index.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Add appends item.
func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
	l.Invoke()
}

// Insert places item at index i, shifting later items. i may equal Len.
func (l *List[T]) Insert(i int, item T) error {
	if i < 0 || i > len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items = slices.Insert(l.items, i, item)
	l.Invoke()
	return nil
}

// Set replaces the item at index i.
func (l *List[T]) Set(i int, item T) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items[i] = item
	l.Invoke()
	return nil
}

// Remove deletes the first item equal to item. Listeners are notified only
// when an item was removed.
func (l *List[T]) Remove(item T) bool {
	i := slices.Index(l.items, item)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	l.Invoke()
	return true
}

// RemoveAt deletes the item at index i.
func (l *List[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items = slices.Delete(l.items, i, i+1)
	l.Invoke()
	return nil
}

// Clear removes every item.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
	l.Invoke()
}
