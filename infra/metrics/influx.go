package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/Asiantown/GeoEvents/core/metrics"
	"github.com/Asiantown/GeoEvents/infra/logger"
)

// InfluxSink writes run summaries to an InfluxDB instance using the official
// client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// if the health check fails, so a missing database never blocks a run.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

// RecordExtractRun writes one point per extraction run.
func (s *InfluxSink) RecordExtractRun(run coremetrics.ExtractRun) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("extract_run").
		AddTag("run_id", run.RunID)
	if run.TrackID != "" {
		p = p.AddTag("track_id", run.TrackID)
	}
	p = p.AddField("points", run.Points).
		AddField("events", run.Events).
		AddField("sparse_events", run.SparseEvents).
		AddField("elapsed_ms", round3(run.Elapsed.Seconds()*1000)).
		SetTime(run.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordPatrolRun writes one point per scheduling run.
func (s *InfluxSink) RecordPatrolRun(run coremetrics.PatrolRun) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("patrol_run").
		AddTag("run_id", run.RunID).
		AddField("boats", run.Boats).
		AddField("events", run.Events).
		AddField("assigned", run.Assigned).
		AddField("total_weight", round3(run.TotalWeight)).
		AddField("elapsed_ms", round3(run.Elapsed.Seconds()*1000)).
		SetTime(run.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordScenarioRun writes one point per scenario of a sweep.
func (s *InfluxSink) RecordScenarioRun(run coremetrics.ScenarioRun) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("scenario_run").
		AddTag("run_id", run.RunID).
		AddTag("scenario", run.Scenario).
		AddField("events_covered", run.EventsCovered).
		AddField("unserved_events", run.UnservedEvents).
		AddField("total_weight", round3(run.TotalWeight)).
		AddField("risk_coverage_ratio", round3(run.RiskCoverageRatio)).
		AddField("avg_utilization", round3(run.AvgUtilization)).
		AddField("max_utilization", round3(run.MaxUtilization)).
		SetTime(run.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
