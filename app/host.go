package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/observer/config"
	"github.com/kilianp07/observer/core/coordinator"
	"github.com/kilianp07/observer/core/discovery"
	"github.com/kilianp07/observer/core/eventbus"
	coremetrics "github.com/kilianp07/observer/core/metrics"
	"github.com/kilianp07/observer/infra/logger"
	"github.com/kilianp07/observer/infra/metrics"
)

var (
	// ErrNotStarted is returned by operations needing the coordinator
	// before Start was called.
	ErrNotStarted = errors.New("host not started")
	// ErrAlreadyStarted is returned by a second call to Start.
	ErrAlreadyStarted = errors.New("host already started")
)

// Host wires discovery, the event coordinator and metrics recorders for
// one process lifetime.
type Host struct {
	cfg      *config.Config
	catalog  *discovery.Catalog
	registry *eventbus.Registry
	recorder coremetrics.Recorder
	log      logger.Logger
	session  string

	coord  *coordinator.Coordinator
	result discovery.Result
}

// Option configures a Host.
type Option func(*Host)

// WithRecorder replaces the recorders built from the configuration.
func WithRecorder(r coremetrics.Recorder) Option {
	return func(h *Host) { h.recorder = r }
}

// WithLogger sets the host logger. The coordinator shares it.
func WithLogger(l logger.Logger) Option {
	return func(h *Host) { h.log = l }
}

// New creates a Host. A nil catalog or registry selects the process wide
// default.
func New(cfg *config.Config, cat *discovery.Catalog, reg *eventbus.Registry, opts ...Option) (*Host, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if cat == nil {
		cat = discovery.Default()
	}
	if reg == nil {
		reg = eventbus.Default()
	}
	h := &Host{
		cfg:      cfg,
		catalog:  cat,
		registry: reg,
		session:  uuid.NewString(),
	}
	for _, o := range opts {
		o(h)
	}
	if h.log == nil {
		h.log = logger.New("host")
	}
	if h.recorder == nil {
		rec, err := coremetrics.NewRecorder(cfg.Metrics.Recorders)
		if err != nil {
			return nil, fmt.Errorf("metrics recorder: %w", err)
		}
		h.recorder = rec
	}
	return h, nil
}

// Session returns the identifier attached to logs and recorded metrics.
func (h *Host) Session() string { return h.session }

// Registry returns the registry holding the event buses.
func (h *Host) Registry() *eventbus.Registry { return h.registry }

// Coordinator returns the coordinator built by Start, or nil.
func (h *Host) Coordinator() *coordinator.Coordinator { return h.coord }

// Discovery returns the result of the discovery pass run by Start.
func (h *Host) Discovery() discovery.Result { return h.result }

// Start discovers the payload types of the configured locations and builds
// the coordinator over them.
func (h *Host) Start() error {
	if h.coord != nil {
		return ErrAlreadyStarted
	}
	locations := h.cfg.Discovery.Locations
	if len(locations) == 0 {
		locations = h.catalog.Locations()
	}
	h.result = h.catalog.Discover(locations...)
	for _, loc := range h.result.Missing {
		h.log.Warnf("discovery location %s not found, skipping", loc)
	}
	if dr, ok := h.recorder.(coremetrics.DiscoveryRecorder); ok {
		err := dr.RecordDiscovery(coremetrics.DiscoveryEvent{
			Types:     h.result.Names(),
			Missing:   h.result.Missing,
			Locations: locations,
			Session:   h.session,
			Time:      time.Now(),
		})
		if err != nil {
			h.log.Warnf("record discovery: %v", err)
		}
	}
	created := 0
	for _, t := range h.result.Types {
		if h.registry.Has(t.Type) {
			continue
		}
		if t.EnsureBus(h.registry) {
			created++
		}
	}
	h.log.Debugf("created %d event buses, registry holds %d", created, h.registry.Len())
	h.coord = coordinator.New(h.registry, h.result.Types,
		coordinator.WithLogger(h.log),
		coordinator.WithRecorder(h.recorder),
		coordinator.WithSession(h.session),
	)
	h.log.Infof("host started with %d event types (session %s)", len(h.result.Types), h.session)
	return nil
}

// Reset clears the bus of every discovered type.
func (h *Host) Reset() error {
	if h.coord == nil {
		return ErrNotStarted
	}
	h.coord.Reset()
	return nil
}

// Close releases the coordinator listeners and flushes the recorders.
// Close on a host that was never started only flushes.
func (h *Host) Close() error {
	if h.coord != nil {
		h.coord.Close()
		h.coord = nil
	}
	if f, ok := h.recorder.(coremetrics.Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush recorders: %w", err)
		}
	}
	return nil
}

// Run emits a Tick through the coordinator at the configured demo interval
// until ctx is canceled. It also serves Prometheus metrics when an address
// is configured and records a listener count snapshot after every tick.
// Ticks and snapshots run on the caller's goroutine.
func (h *Host) Run(ctx context.Context) error {
	if h.coord == nil {
		return ErrNotStarted
	}
	interval := h.cfg.Demo.Interval()
	if interval <= 0 {
		return fmt.Errorf("demo interval must be positive")
	}
	if addr := h.cfg.Metrics.PrometheusAddr; addr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, addr); err != nil {
				h.log.Errorf("prom server: %v", err)
			}
		}()
	}
	counts, _ := h.recorder.(coremetrics.ListenerCountRecorder)

	if err := coordinator.Invoke(h.coord, Notice{Message: "running"}); err != nil && !errors.Is(err, coordinator.ErrTypeNotDiscovered) {
		return err
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for seq := 1; ; seq++ {
		select {
		case <-ctx.Done():
			if err := coordinator.Invoke(h.coord, Notice{Message: "stopping"}); err != nil && !errors.Is(err, coordinator.ErrTypeNotDiscovered) {
				return err
			}
			return nil
		case now := <-ticker.C:
			if err := coordinator.Invoke(h.coord, Tick{Seq: seq, At: now}); err != nil {
				return err
			}
			if counts != nil {
				if err := metrics.CollectCounts(h.coord, counts); err != nil {
					h.log.Warnf("record listener counts: %v", err)
				}
			}
		}
	}
}
