package config

import (
	"fmt"
	"time"
)

// DiscoveryConfig lists the locations searched for payload types.
type DiscoveryConfig struct {
	// Locations are catalog location names, searched in order. Empty means
	// every registered location.
	Locations []string `json:"locations"`
}

// Validate rejects blank location names.
func (c DiscoveryConfig) Validate() error {
	for i, l := range c.Locations {
		if l == "" {
			return fmt.Errorf("location %d is empty", i)
		}
	}
	return nil
}

// DemoConfig drives the demo loop of the run command.
type DemoConfig struct {
	IntervalMS int `json:"interval_ms"`
}

// SetDefaults applies sane defaults.
func (c *DemoConfig) SetDefaults() {
	if c.IntervalMS == 0 {
		c.IntervalMS = 1000
	}
}

// Validate checks the interval.
func (c DemoConfig) Validate() error {
	if c.IntervalMS < 0 {
		return fmt.Errorf("interval_ms must be positive")
	}
	return nil
}

// Interval returns the tick period.
func (c DemoConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// BenchConfig sizes the invoke benchmark.
type BenchConfig struct {
	Listeners  int `json:"listeners"`
	Iterations int `json:"iterations"`
}

// SetDefaults applies sane defaults.
func (c *BenchConfig) SetDefaults() {
	if c.Listeners == 0 {
		c.Listeners = 100
	}
	if c.Iterations == 0 {
		c.Iterations = 1000
	}
}

// Validate checks the benchmark sizes.
func (c BenchConfig) Validate() error {
	if c.Listeners < 0 {
		return fmt.Errorf("listeners must be positive")
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1")
	}
	return nil
}
