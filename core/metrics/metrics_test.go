package metrics

import (
	"errors"
	"testing"

	"github.com/kilianp07/observer/core/factory"
)

type recordingRecorder struct {
	invokes   int
	discovery int
	counts    map[string]int
	flushed   bool
	err       error
}

func (r *recordingRecorder) RecordInvoke(InvokeEvent) error {
	r.invokes++
	return r.err
}

func (r *recordingRecorder) RecordDiscovery(DiscoveryEvent) error {
	r.discovery++
	return nil
}

func (r *recordingRecorder) RecordListenerCount(eventType string, n int) error {
	if r.counts == nil {
		r.counts = map[string]int{}
	}
	r.counts[eventType] = n
	return nil
}

func (r *recordingRecorder) Flush() error {
	r.flushed = true
	return nil
}

type invokeOnly struct{ invokes int }

func (r *invokeOnly) RecordInvoke(InvokeEvent) error {
	r.invokes++
	return nil
}

func TestMultiRecorderForwards(t *testing.T) {
	full := &recordingRecorder{}
	basic := &invokeOnly{}
	m := NewMultiRecorder(full, basic)

	if err := m.RecordInvoke(InvokeEvent{EventType: "x"}); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if err := m.RecordDiscovery(DiscoveryEvent{}); err != nil {
		t.Fatalf("discovery: %v", err)
	}
	if err := m.RecordListenerCount("x", 4); err != nil {
		t.Fatalf("count: %v", err)
	}
	if err := m.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if full.invokes != 1 || basic.invokes != 1 {
		t.Fatalf("expected invoke on both recorders, got %d and %d", full.invokes, basic.invokes)
	}
	if full.discovery != 1 || full.counts["x"] != 4 || !full.flushed {
		t.Fatalf("optional records not forwarded: %+v", full)
	}
}

func TestMultiRecorderStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	failing := &recordingRecorder{err: boom}
	next := &invokeOnly{}
	m := NewMultiRecorder(failing, next)
	if err := m.RecordInvoke(InvokeEvent{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if next.invokes != 0 {
		t.Fatalf("expected second recorder to be skipped")
	}
}

func TestNewRecorder(t *testing.T) {
	r, err := NewRecorder(nil)
	if err != nil {
		t.Fatalf("create default: %v", err)
	}
	if _, ok := r.(NopRecorder); !ok {
		t.Fatalf("expected NopRecorder, got %T", r)
	}

	r, err = NewRecorder([]factory.ModuleConfig{{Type: "nop"}, {Type: "nop"}})
	if err != nil {
		t.Fatalf("create multi: %v", err)
	}
	m, ok := r.(*MultiRecorder)
	if !ok {
		t.Fatalf("expected MultiRecorder, got %T", r)
	}
	if len(m.Recorders) != 2 {
		t.Fatalf("expected 2 recorders, got %d", len(m.Recorders))
	}

	if _, err := NewRecorder([]factory.ModuleConfig{{Type: "missing"}}); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Recorders: []factory.ModuleConfig{{Type: "nop"}}}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Config{Recorders: []factory.ModuleConfig{{Type: ""}}}).Validate(); err == nil {
		t.Fatal("expected error for empty type")
	}
	if err := (Config{Recorders: []factory.ModuleConfig{{Type: "missing"}}}).Validate(); err == nil {
		t.Fatal("expected error for unknown type")
	}
}
