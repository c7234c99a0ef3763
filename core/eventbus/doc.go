// Package eventbus dispatches typed payloads to listeners that never hold a
// reference to the producer.
//
// A Registry maps each payload type to one Bus. For[T] recovers the typed
// bus from the registry and creates it the first time T is used. Producers
// call Bus.Invoke; consumers create an EventListener[T], add callbacks to it
// and Register it on the bus.
//
// Everything runs synchronously on the caller's goroutine and no locking is
// performed.
package eventbus
