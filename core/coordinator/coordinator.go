package coordinator

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/kilianp07/observer/core/discovery"
	"github.com/kilianp07/observer/core/eventbus"
	"github.com/kilianp07/observer/core/events"
	"github.com/kilianp07/observer/core/listener"
	"github.com/kilianp07/observer/core/logger"
	"github.com/kilianp07/observer/core/metrics"
)

// ErrTypeNotDiscovered is returned for payload types the coordinator has no
// listener for.
var ErrTypeNotDiscovered = errors.New("event type not discovered")

type entry struct {
	typ      reflect.Type
	listener eventbus.Registrant
}

// Coordinator owns one EventListener per discovered payload type and
// registers each of them on the bus of its type. It is the entry point
// application code uses to listen to and publish payloads.
//
// A Coordinator is not safe for concurrent use.
type Coordinator struct {
	registry *eventbus.Registry
	entries  []entry
	log      logger.Logger
	recorder metrics.Recorder
	session  string
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRecorder records every invoke made through the coordinator.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Coordinator) { c.recorder = r }
}

// WithSession tags recorded metrics with a session identifier.
func WithSession(id string) Option {
	return func(c *Coordinator) { c.session = id }
}

// New creates a listener for every type, registers it on reg (Default when
// nil) and keeps it for later lookups. Repeated types are collapsed.
func New(reg *eventbus.Registry, types []discovery.Type, opts ...Option) *Coordinator {
	if reg == nil {
		reg = eventbus.Default()
	}
	c := &Coordinator{registry: reg, log: logger.NopLogger{}}
	for _, o := range opts {
		o(c)
	}
	c.entries = make([]entry, 0, len(types))
	for _, t := range types {
		if !t.Valid() {
			c.log.Warnf("skipping event type %s: not registered through a catalog", t.Name())
			continue
		}
		if c.find(t.Type) != nil {
			continue
		}
		l := t.NewListener(reg)
		l.Register()
		c.entries = append(c.entries, entry{typ: t.Type, listener: l})
		c.log.Debugf("created listener for %s", t.Name())
	}
	c.log.Infof("coordinator ready with %d event types", len(c.entries))
	return c
}

// Registry returns the registry the listeners are registered on.
func (c *Coordinator) Registry() *eventbus.Registry { return c.registry }

// Types lists the payload types handled by the coordinator, in creation
// order.
func (c *Coordinator) Types() []reflect.Type {
	out := make([]reflect.Type, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.typ
	}
	return out
}

// Counts returns the number of callbacks held per payload type.
func (c *Coordinator) Counts() map[string]int {
	out := make(map[string]int, len(c.entries))
	for _, e := range c.entries {
		out[events.Name(e.typ)] = e.listener.Count()
	}
	return out
}

// Reset empties the bus of every owned type. Callbacks added through the
// coordinator are kept but no longer reached until Register is called
// again, see Restore.
func (c *Coordinator) Reset() {
	for _, e := range c.entries {
		c.registry.Clear(e.typ)
	}
	c.log.Infof("cleared %d event buses", len(c.entries))
}

// Restore registers the owned listeners on their buses again.
func (c *Coordinator) Restore() {
	for _, e := range c.entries {
		e.listener.Register()
	}
}

// Close unregisters the owned listeners and drops their callbacks.
func (c *Coordinator) Close() {
	for _, e := range c.entries {
		e.listener.Unregister()
		e.listener.RemoveAll()
	}
}

func (c *Coordinator) find(t reflect.Type) eventbus.Registrant {
	for i := range c.entries {
		if c.entries[i].typ == t {
			return c.entries[i].listener
		}
	}
	return nil
}

// Listener returns the coordinator owned listener for T.
func Listener[T events.Event](c *Coordinator) (*eventbus.EventListener[T], bool) {
	r := c.find(reflect.TypeFor[T]())
	if r == nil {
		return nil, false
	}
	l, ok := r.(*eventbus.EventListener[T])
	return l, ok
}

func lookup[T events.Event](c *Coordinator) (*eventbus.EventListener[T], error) {
	l, ok := Listener[T](c)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotDiscovered, reflect.TypeFor[T]())
	}
	return l, nil
}

// AddListener adds h to the listener of T.
func AddListener[T events.Event](c *Coordinator, h *listener.Func[T], allowDuplicates bool) (bool, error) {
	l, err := lookup[T](c)
	if err != nil {
		return false, err
	}
	added := l.Add(h, allowDuplicates)
	c.recordCount(l)
	return added, nil
}

// Listen wraps fn in a handle, adds it to the listener of T and returns the
// handle.
func Listen[T events.Event](c *Coordinator, fn func(T)) (*listener.Func[T], error) {
	h := listener.NewFunc(fn)
	if _, err := AddListener(c, h, true); err != nil {
		return nil, err
	}
	return h, nil
}

// RemoveListener removes h from the listener of T.
func RemoveListener[T events.Event](c *Coordinator, h *listener.Func[T]) (bool, error) {
	l, err := lookup[T](c)
	if err != nil {
		return false, err
	}
	removed := l.Remove(h)
	c.recordCount(l)
	return removed, nil
}

// Clear drops every callback added to the listener of T.
func Clear[T events.Event](c *Coordinator) error {
	l, err := lookup[T](c)
	if err != nil {
		return err
	}
	l.RemoveAll()
	c.recordCount(l)
	return nil
}

// Invoke publishes ev on the bus of T. Every listener registered on that
// bus is reached, not only the coordinator's own.
func Invoke[T events.Event](c *Coordinator, ev T) error {
	bus, err := busFor[T](c)
	if err != nil {
		return err
	}
	if c.recorder == nil {
		bus.Invoke(ev)
		return nil
	}
	start := time.Now()
	bus.Invoke(ev)
	c.recordInvoke(bus.EventType(), bus.Len(), false, start)
	return nil
}

// InvokeUnsafe publishes ev on the bus of T using the unsafe invoke path.
func InvokeUnsafe[T events.Event](c *Coordinator, ev T) error {
	bus, err := busFor[T](c)
	if err != nil {
		return err
	}
	if c.recorder == nil {
		bus.InvokeUnsafe(ev)
		return nil
	}
	start := time.Now()
	bus.InvokeUnsafe(ev)
	c.recordInvoke(bus.EventType(), bus.Len(), true, start)
	return nil
}

func busFor[T events.Event](c *Coordinator) (*eventbus.Bus[T], error) {
	if c.find(reflect.TypeFor[T]()) == nil {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotDiscovered, reflect.TypeFor[T]())
	}
	return eventbus.For[T](c.registry), nil
}

func (c *Coordinator) recordInvoke(t reflect.Type, listeners int, unsafe bool, start time.Time) {
	ev := metrics.InvokeEvent{
		EventType: events.Name(t),
		Listeners: listeners,
		Unsafe:    unsafe,
		Duration:  time.Since(start),
		Session:   c.session,
		Time:      start,
	}
	if err := c.recorder.RecordInvoke(ev); err != nil {
		c.log.Warnf("record invoke %s: %v", ev.EventType, err)
	}
}

func (c *Coordinator) recordCount(r eventbus.Registrant) {
	lr, ok := c.recorder.(metrics.ListenerCountRecorder)
	if !ok {
		return
	}
	if err := lr.RecordListenerCount(events.Name(r.EventType()), r.Count()); err != nil {
		c.log.Warnf("record listener count: %v", err)
	}
}
