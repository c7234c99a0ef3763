package events

import "reflect"

// Event marks a payload type that may be dispatched on an event bus. Types
// opt in by embedding Base:
//
//	type PlayerJoined struct {
//		events.Base
//		Name string
//	}
type Event interface {
	eventPayload()
}

// Base implements Event. Embed it in payload structs.
type Base struct{}

func (Base) eventPayload() {}

// NoArgs is a payload carrying no data, for signals where only the
// occurrence matters.
type NoArgs struct {
	Base
}

// MarkerType is the reflect.Type of the Event interface itself.
var MarkerType = reflect.TypeFor[Event]()

// Name returns a short printable name for the payload type t.
func Name(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
