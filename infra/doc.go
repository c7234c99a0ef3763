// Package infra contains technical adapters: the zerolog logger and the
// Prometheus and InfluxDB metrics recorders. These packages depend only on
// the interfaces defined in the core packages.
package infra
