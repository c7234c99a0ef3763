package discovery

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/kilianp07/observer/core/eventbus"
	"github.com/kilianp07/observer/core/events"
)

// BuiltinLocation is the location holding the payloads defined by this
// module.
const BuiltinLocation = "observer"

// Type describes a registered payload type together with the constructors
// needed to wire it without knowing T statically.
type Type struct {
	Type     reflect.Type
	Location string

	newListener func(*eventbus.Registry) eventbus.Registrant
	ensureBus   func(*eventbus.Registry)
}

// Name returns the printable name of the payload type.
func (t Type) Name() string { return events.Name(t.Type) }

// Valid reports whether t was produced by a Catalog. Types built by hand
// carry no constructors and cannot be wired.
func (t Type) Valid() bool {
	return t.Type != nil && t.newListener != nil && t.ensureBus != nil
}

// NewListener creates an unregistered EventListener for the payload type.
// It returns nil when t is not Valid.
func (t Type) NewListener(reg *eventbus.Registry) eventbus.Registrant {
	if t.newListener == nil {
		return nil
	}
	return t.newListener(reg)
}

// EnsureBus creates the bus of the payload type in reg if missing. It
// reports false when t is not Valid.
func (t Type) EnsureBus(reg *eventbus.Registry) bool {
	if t.ensureBus == nil {
		return false
	}
	t.ensureBus(reg)
	return true
}

// Catalog records which payload types each location provides. Packages
// declaring payloads register them from init, replacing a runtime scan of
// the program.
type Catalog struct {
	locations map[string][]Type
	order     []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{locations: make(map[string][]Type)}
}

var defaultCatalog = NewCatalog()

// Default returns the process wide catalog.
func Default() *Catalog { return defaultCatalog }

func init() {
	MustRegister[events.NoArgs](defaultCatalog, BuiltinLocation)
}

// Register records T under location. Registering the same type twice in a
// location is a no-op. The Event marker itself cannot be registered.
func Register[T events.Event](c *Catalog, location string) error {
	if c == nil {
		c = defaultCatalog
	}
	if location == "" {
		return fmt.Errorf("location is required")
	}
	t := reflect.TypeFor[T]()
	if t == events.MarkerType {
		return fmt.Errorf("cannot register the event marker %s", t)
	}
	if c.locations == nil {
		c.locations = make(map[string][]Type)
	}
	types, ok := c.locations[location]
	if !ok {
		c.order = append(c.order, location)
	}
	if slices.ContainsFunc(types, func(e Type) bool { return e.Type == t }) {
		return nil
	}
	c.locations[location] = append(types, Type{
		Type:     t,
		Location: location,
		newListener: func(reg *eventbus.Registry) eventbus.Registrant {
			return eventbus.NewListener[T](reg)
		},
		ensureBus: func(reg *eventbus.Registry) { eventbus.For[T](reg) },
	})
	return nil
}

// MustRegister is Register panicking on error, for use in init functions.
func MustRegister[T events.Event](c *Catalog, location string) {
	if err := Register[T](c, location); err != nil {
		panic(err)
	}
}

// Locations lists the known locations in registration order.
func (c *Catalog) Locations() []string {
	return slices.Clone(c.order)
}

// Result is the outcome of a discovery pass.
type Result struct {
	// Types are the discovered payload types, without duplicates, in
	// location order.
	Types []Type
	// Missing lists requested locations that are unknown to the catalog.
	Missing []string
}

// Discover collects the payload types of the given locations. An empty list
// selects every location. Unknown locations contribute no type and are
// reported in Result.Missing.
func (c *Catalog) Discover(locations ...string) Result {
	if len(locations) == 0 {
		locations = c.order
	}
	var res Result
	seen := make(map[reflect.Type]struct{})
	for _, loc := range locations {
		types, ok := c.locations[loc]
		if !ok {
			res.Missing = append(res.Missing, loc)
			continue
		}
		for _, t := range types {
			if _, dup := seen[t.Type]; dup {
				continue
			}
			seen[t.Type] = struct{}{}
			res.Types = append(res.Types, t)
		}
	}
	return res
}

// Names returns the names of the discovered types.
func (r Result) Names() []string {
	out := make([]string, len(r.Types))
	for i, t := range r.Types {
		out[i] = t.Name()
	}
	return out
}
