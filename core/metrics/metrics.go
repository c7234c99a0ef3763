package metrics

import "time"

// InvokeEvent describes one dispatch of a payload through its bus.
type InvokeEvent struct {
	EventType string
	Listeners int
	Unsafe    bool
	Duration  time.Duration
	Session   string
	Time      time.Time
}

// Recorder records bus dispatches for observability purposes.
type Recorder interface {
	RecordInvoke(ev InvokeEvent) error
}

// DiscoveryEvent captures the result of a type discovery pass.
type DiscoveryEvent struct {
	Types     []string
	Missing   []string
	Locations []string
	Session   string
	Time      time.Time
}

// DiscoveryRecorder records discovery passes.
type DiscoveryRecorder interface {
	RecordDiscovery(ev DiscoveryEvent) error
}

// ListenerCountRecorder records how many callbacks the coordinator holds
// for a payload type.
type ListenerCountRecorder interface {
	RecordListenerCount(eventType string, count int) error
}

// Flusher is implemented by recorders buffering data.
type Flusher interface {
	Flush() error
}

// NopRecorder implements every recorder interface with no-op methods.
type NopRecorder struct{}

func (NopRecorder) RecordInvoke(InvokeEvent) error         { return nil }
func (NopRecorder) RecordDiscovery(DiscoveryEvent) error   { return nil }
func (NopRecorder) RecordListenerCount(string, int) error { return nil }

// MultiRecorder fans records out to several recorders.
type MultiRecorder struct {
	Recorders []Recorder
}

// NewMultiRecorder creates a MultiRecorder with the provided recorders.
func NewMultiRecorder(recs ...Recorder) *MultiRecorder {
	return &MultiRecorder{Recorders: recs}
}

// RecordInvoke forwards the event to all recorders, returning the first
// error encountered.
func (m *MultiRecorder) RecordInvoke(ev InvokeEvent) error {
	for _, r := range m.Recorders {
		if err := r.RecordInvoke(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordDiscovery forwards discovery events to recorders supporting them.
func (m *MultiRecorder) RecordDiscovery(ev DiscoveryEvent) error {
	for _, r := range m.Recorders {
		if dr, ok := r.(DiscoveryRecorder); ok {
			if err := dr.RecordDiscovery(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordListenerCount forwards listener counts to recorders supporting them.
func (m *MultiRecorder) RecordListenerCount(eventType string, count int) error {
	for _, r := range m.Recorders {
		if lr, ok := r.(ListenerCountRecorder); ok {
			if err := lr.RecordListenerCount(eventType, count); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush flushes every recorder implementing Flusher.
func (m *MultiRecorder) Flush() error {
	for _, r := range m.Recorders {
		if f, ok := r.(Flusher); ok {
			if err := f.Flush(); err != nil {
				return err
			}
		}
	}
	return nil
}
