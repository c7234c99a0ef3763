// Package coordinator provides the single entry point applications use to
// listen to and publish event payloads.
//
// The coordinator is built once from a discovery result. For each payload
// type it creates one eventbus.EventListener, registers it on the bus of
// that type and keeps it. Go methods cannot take type parameters, so the
// operations are package functions:
//
//	c := coordinator.New(reg, discovery.Default().Discover().Types)
//	h, err := coordinator.Listen(c, func(e PlayerJoined) { ... })
//	err = coordinator.Invoke(c, PlayerJoined{Name: "ada"})
//	_, err = coordinator.RemoveListener(c, h)
//
// Operations on a type missing from the discovery result return
// ErrTypeNotDiscovered.
package coordinator
