package output

import (
	"context"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/daryltucker/boruvka-bench/internal/model"
)

// InfluxSink publishes per-graph summaries to InfluxDB.
type InfluxSink struct {
	client      influxdb2.Client
	writeAPI    api.WriteAPIBlocking
	measurement string
}

// NewInfluxSink connects lazily; nothing is sent until Publish.
func NewInfluxSink(url, token, org, bucket, measurement string) *InfluxSink {
	client := influxdb2.NewClient(url, token)
	return &InfluxSink{
		client:      client,
		writeAPI:    client.WriteAPIBlocking(org, bucket),
		measurement: measurement,
	}
}

// SummaryPoint is the wire form of one graph/backend summary.
func SummaryPoint(measurement, runID, graph, backend string, cores model.CoreConfig, s model.Summary, ci95 float64, ts time.Time) *write.Point {
	return influxdb2.NewPointWithMeasurement(measurement).
		AddTag("graph", graph).
		AddTag("backend", backend).
		AddTag("run_id", runID).
		AddTag("cores", cores.Mask).
		AddField("mean_ms", s.Mean).
		AddField("std_ms", s.Std).
		AddField("ci95_ms", ci95).
		AddField("runs_successful", s.RunsSuccessful).
		SetTime(ts)
}

// Publish writes points in one blocking batch.
func (s *InfluxSink) Publish(ctx context.Context, points ...*write.Point) error {
	return s.writeAPI.WritePoint(ctx, points...)
}

// Measurement is the configured measurement name.
func (s *InfluxSink) Measurement() string { return s.measurement }

func (s *InfluxSink) Close() {
	s.client.Close()
}
