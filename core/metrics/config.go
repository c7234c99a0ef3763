package metrics

import (
	"fmt"

	"github.com/kilianp07/observer/core/factory"
)

// Config defines settings for metrics recorders.
type Config struct {
	Recorders []factory.ModuleConfig `json:"recorders"`
	// PrometheusAddr is the listen address of the /metrics endpoint. Empty
	// disables the HTTP server.
	PrometheusAddr string `json:"prometheus_addr"`
}

// Validate checks that every configured recorder type is known.
func (c Config) Validate() error {
	for _, r := range c.Recorders {
		if r.Type == "" {
			return fmt.Errorf("metrics recorder type is required")
		}
		if !recorderRegistry.Has(r.Type) {
			return fmt.Errorf("unknown metrics recorder %s", r.Type)
		}
	}
	return nil
}
