package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/kilianp07/observer/core/metrics"
)

func TestPromRecorder_RecordInvoke(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorderWithRegistry(reg)
	if err != nil {
		t.Fatalf("create recorder: %v", err)
	}
	ev := coremetrics.InvokeEvent{EventType: "app.Tick", Listeners: 3, Duration: 20 * time.Microsecond}
	for i := 0; i < 2; i++ {
		if err := rec.RecordInvoke(ev); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	ev.Unsafe = true
	_ = rec.RecordInvoke(ev)

	expected := `
# HELP observer_invokes_total Total number of payloads dispatched on event buses
# TYPE observer_invokes_total counter
observer_invokes_total{event_type="app.Tick",unsafe="false"} 2
observer_invokes_total{event_type="app.Tick",unsafe="true"} 1
`
	if err := testutil.CollectAndCompare(rec.invokes, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if c := testutil.CollectAndCount(rec.duration); c != 1 {
		t.Errorf("expected one duration series, got %d", c)
	}
	if v := testutil.ToFloat64(rec.wrappers.WithLabelValues("app.Tick")); v != 3 {
		t.Errorf("bus listeners gauge = %v", v)
	}
}

func TestPromRecorder_DiscoveryAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorderWithRegistry(reg)
	if err != nil {
		t.Fatalf("create recorder: %v", err)
	}
	_ = rec.RecordDiscovery(coremetrics.DiscoveryEvent{
		Types:   []string{"a", "b"},
		Missing: []string{"ghost"},
	})
	_ = rec.RecordListenerCount("a", 4)

	if v := testutil.ToFloat64(rec.types); v != 2 {
		t.Errorf("discovered types = %v", v)
	}
	if v := testutil.ToFloat64(rec.missing); v != 1 {
		t.Errorf("missing locations = %v", v)
	}
	if v := testutil.ToFloat64(rec.callbacks.WithLabelValues("a")); v != 4 {
		t.Errorf("callbacks = %v", v)
	}
}

func TestPromRecorder_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromRecorderWithRegistry(reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := NewPromRecorderWithRegistry(reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	_ = first.RecordListenerCount("x", 1)
	_ = second.RecordListenerCount("x", 7)
	if v := testutil.ToFloat64(first.callbacks.WithLabelValues("x")); v != 7 {
		t.Errorf("collectors not shared, got %v", v)
	}
}
