// Package events defines the marker for payload types dispatched on the
// event bus.
//
// Built-in payloads:
//   - NoArgs: a signal without data
//
// Application payloads embed Base and register themselves with the
// discovery catalog so that the coordinator creates a listener for them.
package events
