// Package app hosts the event coordinator for a process: it runs type
// discovery over the configured locations, builds the coordinator, wires
// the metrics recorders and tears everything down on exit. It also ships
// the Tick and Notice demo payloads and an invoke benchmark.
package app
