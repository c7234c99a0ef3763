// Package metrics defines the recorder interfaces used to observe bus
// activity. Recorders are built by name from configuration through the
// factory helpers; infra/metrics registers the Prometheus and InfluxDB
// implementations. Several configured recorders are combined in a
// MultiRecorder. Optional capabilities (discovery, listener counts,
// flushing) are detected with type assertions.
package metrics
