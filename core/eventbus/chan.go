package eventbus

import (
	"github.com/kilianp07/observer/core/events"
	"github.com/kilianp07/observer/core/listener"
)

// Subscription forwards payloads of type T into a buffered channel. It is
// the bridge for consumers running on another goroutine: delivery is
// non-blocking and payloads are dropped while the channel is full.
type Subscription[T events.Event] struct {
	C       <-chan T
	ch      chan T
	l       *EventListener[T]
	h       *listener.Func[T]
	dropped int
	closed  bool
}

// Subscribe registers a forwarding listener on the bus of T in reg and
// returns the subscription. size is the channel buffer (8 when <= 0).
func Subscribe[T events.Event](reg *Registry, size int) *Subscription[T] {
	if size <= 0 {
		size = 8
	}
	ch := make(chan T, size)
	s := &Subscription[T]{C: ch, ch: ch}
	s.h = listener.NewFunc(s.forward)
	s.l = NewListener(reg, s.h)
	s.l.Register()
	return s
}

func (s *Subscription[T]) forward(ev T) {
	select {
	case s.ch <- ev:
	default:
		s.dropped++
	}
}

// Dropped returns how many payloads were discarded because the channel was
// full.
func (s *Subscription[T]) Dropped() int { return s.dropped }

// Close unregisters the subscription and closes its channel. Closing twice
// is a no-op.
func (s *Subscription[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.l.Unregister()
	s.h.Release()
	close(s.ch)
}
