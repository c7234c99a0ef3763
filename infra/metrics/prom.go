package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/observer/core/metrics"
)

// PromRecorder records bus activity in Prometheus metrics.
type PromRecorder struct {
	invokes   *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	wrappers  *prometheus.GaugeVec
	callbacks *prometheus.GaugeVec
	types     prometheus.Gauge
	missing   prometheus.Counter
}

// NewPromRecorder registers the metrics on the default Prometheus
// registerer.
func NewPromRecorder() (*PromRecorder, error) {
	return NewPromRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromRecorderWithRegistry registers the metrics on reg. A nil
// registerer defaults to the global Prometheus registerer. Metrics already
// registered by a previous recorder are reused.
func NewPromRecorderWithRegistry(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	invokes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "observer_invokes_total",
		Help: "Total number of payloads dispatched on event buses",
	}, []string{"event_type", "unsafe"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "observer_invoke_duration_seconds",
		Help:    "Time spent fanning a payload out to its listeners",
		Buckets: []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 1e-2},
	}, []string{"event_type"})
	wrappers := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "observer_bus_listeners",
		Help: "Number of listeners registered on the bus at the last dispatch",
	}, []string{"event_type"})
	callbacks := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "observer_callbacks",
		Help: "Number of callbacks held by the coordinator per event type",
	}, []string{"event_type"})
	types := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "observer_discovered_types",
		Help: "Number of event types found by the last discovery pass",
	})
	missing := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "observer_discovery_missing_locations_total",
		Help: "Number of configured discovery locations that were not found",
	})

	var err error
	if invokes, err = register(reg, invokes); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if wrappers, err = register(reg, wrappers); err != nil {
		return nil, err
	}
	if callbacks, err = register(reg, callbacks); err != nil {
		return nil, err
	}
	if types, err = register(reg, types); err != nil {
		return nil, err
	}
	if missing, err = register(reg, missing); err != nil {
		return nil, err
	}
	return &PromRecorder{
		invokes:   invokes,
		duration:  duration,
		wrappers:  wrappers,
		callbacks: callbacks,
		types:     types,
		missing:   missing,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordInvoke counts the dispatch and observes its duration.
func (r *PromRecorder) RecordInvoke(ev coremetrics.InvokeEvent) error {
	r.invokes.WithLabelValues(ev.EventType, strconv.FormatBool(ev.Unsafe)).Inc()
	r.duration.WithLabelValues(ev.EventType).Observe(ev.Duration.Seconds())
	r.wrappers.WithLabelValues(ev.EventType).Set(float64(ev.Listeners))
	return nil
}

// RecordDiscovery sets the discovered type gauge.
func (r *PromRecorder) RecordDiscovery(ev coremetrics.DiscoveryEvent) error {
	r.types.Set(float64(len(ev.Types)))
	r.missing.Add(float64(len(ev.Missing)))
	return nil
}

// RecordListenerCount sets the callback gauge of an event type.
func (r *PromRecorder) RecordListenerCount(eventType string, count int) error {
	r.callbacks.WithLabelValues(eventType).Set(float64(count))
	return nil
}
