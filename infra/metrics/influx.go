package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/observer/core/metrics"
	"github.com/kilianp07/observer/infra/logger"
)

// InfluxRecorder writes bus activity to an InfluxDB instance using the
// official client. Points are queued on the client's batching writer so
// recording never waits on the network; write errors are logged.
type InfluxRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
	log      logger.Logger
	drained  chan struct{}
}

// NewInfluxRecorder creates a recorder for the given InfluxDB endpoint.
func NewInfluxRecorder(url, token, org, bucket string) *InfluxRecorder {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	r := &InfluxRecorder{
		client:   client,
		writeAPI: client.WriteAPI(org, bucket),
		log:      logger.New("influx-recorder"),
		drained:  make(chan struct{}),
	}
	go r.logErrors(r.writeAPI.Errors())
	return r
}

func (r *InfluxRecorder) logErrors(errs <-chan error) {
	defer close(r.drained)
	for err := range errs {
		r.log.Errorf("influx write: %v", err)
	}
}

// NewInfluxRecorderWithFallback pings the InfluxDB instance and returns a
// NopRecorder if the health check fails.
func NewInfluxRecorderWithFallback(url, token, org, bucket string) coremetrics.Recorder {
	rec := NewInfluxRecorder(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := rec.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			rec.log.Errorf("influx health check error: %v", err)
		} else {
			rec.log.Errorf("influx health status: %s", health.Status)
		}
		_ = rec.Flush()
		return coremetrics.NopRecorder{}
	}
	return rec
}

// RecordInvoke writes one point per dispatch.
func (r *InfluxRecorder) RecordInvoke(ev coremetrics.InvokeEvent) error {
	p := write.NewPointWithMeasurement("bus_invoke").
		AddTag("event_type", ev.EventType).
		AddTag("unsafe", strconv.FormatBool(ev.Unsafe))
	if ev.Session != "" {
		p = p.AddTag("session", ev.Session)
	}
	p = p.AddField("listeners", ev.Listeners).
		AddField("duration_us", ev.Duration.Microseconds()).
		SetTime(ev.Time)
	r.writeAPI.WritePoint(p)
	return nil
}

// RecordDiscovery writes the outcome of a discovery pass.
func (r *InfluxRecorder) RecordDiscovery(ev coremetrics.DiscoveryEvent) error {
	p := write.NewPointWithMeasurement("type_discovery")
	if ev.Session != "" {
		p = p.AddTag("session", ev.Session)
	}
	p = p.AddField("types", len(ev.Types)).
		AddField("missing", len(ev.Missing)).
		AddField("locations", strings.Join(ev.Locations, ",")).
		SetTime(ev.Time)
	r.writeAPI.WritePoint(p)
	return nil
}

// RecordListenerCount writes the callback count of an event type.
func (r *InfluxRecorder) RecordListenerCount(eventType string, count int) error {
	p := write.NewPointWithMeasurement("listener_count").
		AddTag("event_type", eventType).
		AddField("callbacks", count).
		SetTime(time.Now())
	r.writeAPI.WritePoint(p)
	return nil
}

// Flush writes the queued points and closes the client.
func (r *InfluxRecorder) Flush() error {
	r.writeAPI.Flush()
	r.client.Close()
	<-r.drained
	return nil
}
