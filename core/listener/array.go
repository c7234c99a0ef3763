package listener

import "errors"

// ErrInconsistent signals that the array bookkeeping no longer matches its
// backing storage. It is raised with panic and indicates a defect.
var ErrInconsistent = errors.New("listener: fewer listeners than expected")

// Array is a growable, order preserving container of listener handles.
//
// It keeps a dense backing slice and a logical count so that adding and
// invoking listeners stays allocation free once the capacity is reached.
// Capacity doubles when the array is full and never shrinks. Elements are
// compared with ==, so handles are matched by identity.
//
// The zero value is an empty array ready to use.
type Array[E comparable] struct {
	items []E
	count int
}

// NewArray returns an empty array with capacity 1.
func NewArray[E comparable]() *Array[E] {
	return &Array[E]{items: make([]E, 1)}
}

// Count returns the number of listeners currently stored.
func (a *Array[E]) Count() int { return a.count }

// Cap returns the size of the backing storage.
func (a *Array[E]) Cap() int { return len(a.items) }

// Contains reports whether e is stored in the array.
func (a *Array[E]) Contains(e E) bool {
	return a.indexOf(e) >= 0
}

// Add appends e. When allowDuplicates is false and e is already present the
// array is left untouched and false is returned.
func (a *Array[E]) Add(e E, allowDuplicates bool) bool {
	if !allowDuplicates && a.Contains(e) {
		return false
	}
	if a.count == len(a.items) {
		a.grow()
	}
	a.items[a.count] = e
	a.count++
	return true
}

// Remove deletes the first occurrence of e, keeping the order of the
// remaining listeners.
func (a *Array[E]) Remove(e E) bool {
	i := a.indexOf(e)
	if i < 0 {
		return false
	}
	a.removeAt(i)
	return true
}

// RemoveAll drops every listener. All slots are zeroed so references are
// released immediately.
func (a *Array[E]) RemoveAll() {
	clear(a.items)
	a.count = 0
}

func (a *Array[E]) indexOf(e E) int {
	for i := 0; i < a.count; i++ {
		if a.items[i] == e {
			return i
		}
	}
	return -1
}

func (a *Array[E]) grow() {
	capacity := len(a.items) * 2
	if capacity == 0 {
		capacity = 1
	}
	items := make([]E, capacity)
	copy(items, a.items[:a.count])
	a.items = items
}

func (a *Array[E]) at(i int) E {
	if i < 0 || i >= a.count || a.count > len(a.items) {
		panic(ErrInconsistent)
	}
	return a.items[i]
}

func (a *Array[E]) removeAt(i int) {
	if i < 0 || i >= a.count || a.count > len(a.items) {
		panic(ErrInconsistent)
	}
	a.count--
	copy(a.items[i:a.count], a.items[i+1:a.count+1])
	var zero E
	a.items[a.count] = zero
}
