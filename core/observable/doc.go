// Package observable wraps values and collections that notify listeners
// when they change. Observables are self contained: they reuse the
// listener containers but never go through an event bus.
package observable
