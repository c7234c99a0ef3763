// Package discovery tracks which event payload types exist in the program.
//
// Go cannot enumerate the types of a binary at runtime, so payload packages
// register their types explicitly, usually from init:
//
//	func init() {
//		discovery.MustRegister[PlayerJoined](discovery.Default(), "game")
//	}
//
// Types are grouped by location. A discovery pass selects locations by name
// (all of them when none is given) and yields the deduplicated type table
// used to build the coordinator. Locations that nobody registered are
// skipped.
package discovery
