package app

import (
	"fmt"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/observer/core/coordinator"
	"github.com/kilianp07/observer/core/discovery"
	"github.com/kilianp07/observer/core/eventbus"
)

// BenchResult summarizes the latency of one invoke mode.
type BenchResult struct {
	Mode       string
	Listeners  int
	Iterations int
	Mean       time.Duration
	StdDev     time.Duration
	P50        time.Duration
	P99        time.Duration
}

func (r BenchResult) String() string {
	return fmt.Sprintf("%-6s listeners=%d iterations=%d mean=%s stddev=%s p50=%s p99=%s",
		r.Mode, r.Listeners, r.Iterations, r.Mean, r.StdDev, r.P50, r.P99)
}

// Bench measures Invoke and InvokeUnsafe of a Tick fanned out to the given
// number of callbacks. It runs on a private registry and catalog.
func Bench(listeners, iterations int) ([]BenchResult, error) {
	if listeners < 0 || iterations < 1 {
		return nil, fmt.Errorf("invalid bench size: listeners=%d iterations=%d", listeners, iterations)
	}
	cat := discovery.NewCatalog()
	if err := RegisterEvents(cat); err != nil {
		return nil, err
	}
	coord := coordinator.New(eventbus.NewRegistry(), cat.Discover(Location).Types)
	defer coord.Close()

	var sink int
	for i := 0; i < listeners; i++ {
		if _, err := coordinator.Listen(coord, func(t Tick) { sink += t.Seq }); err != nil {
			return nil, err
		}
	}

	modes := []struct {
		name   string
		invoke func(*coordinator.Coordinator, Tick) error
	}{
		{"safe", coordinator.Invoke[Tick]},
		{"unsafe", coordinator.InvokeUnsafe[Tick]},
	}
	out := make([]BenchResult, 0, len(modes))
	samples := make([]float64, iterations)
	for _, m := range modes {
		for i := range samples {
			start := time.Now()
			if err := m.invoke(coord, Tick{Seq: i}); err != nil {
				return nil, err
			}
			samples[i] = float64(time.Since(start))
		}
		out = append(out, summarize(m.name, listeners, samples))
	}
	_ = sink
	return out, nil
}

func summarize(mode string, listeners int, samples []float64) BenchResult {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	res := BenchResult{
		Mode:       mode,
		Listeners:  listeners,
		Iterations: len(samples),
		Mean:       time.Duration(stat.Mean(sorted, nil)),
		P50:        time.Duration(stat.Quantile(0.5, stat.Empirical, sorted, nil)),
		P99:        time.Duration(stat.Quantile(0.99, stat.Empirical, sorted, nil)),
	}
	if len(sorted) > 1 {
		res.StdDev = time.Duration(stat.StdDev(sorted, nil))
	}
	return res
}
