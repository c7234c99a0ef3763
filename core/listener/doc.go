// Package listener provides the low level listener containers used by the
// event bus and the observables.
//
// Array stores handles in a dense slice instead of a multicast delegate or a
// linked list. Adding 10k listeners costs a handful of slice growths and
// invoking them never allocates.
//
// Callbacks are registered through handles (*Func and *Action) because Go
// function values cannot be compared. The handle returned by Listen or
// NewFunc is what Remove expects. Handles may become stale (Release, or a
// weakly bound owner being collected); Invoke prunes stale handles while
// InvokeUnsafe assumes the caller removed them.
//
// Example:
//
//	var l listener.Any[int]
//	h := l.Listen(func(v int) { fmt.Println(v) })
//	l.Invoke(42)
//	l.Remove(h)
package listener
