package metrics

import (
	coremetrics "github.com/kilianp07/observer/core/metrics"
)

// CountSource reports the number of callbacks held per event type.
type CountSource interface {
	Counts() map[string]int
}

// CollectCounts records one listener count snapshot of src. It must run on
// the goroutine that owns src.
func CollectCounts(src CountSource, rec coremetrics.ListenerCountRecorder) error {
	for name, n := range src.Counts() {
		if err := rec.RecordListenerCount(name, n); err != nil {
			return err
		}
	}
	return nil
}
