// Package metrics defines the interfaces and value types for recording
// extraction and scheduling runs. Sinks like the Prometheus and InfluxDB
// implementations under infra/metrics receive run summaries and can be
// combined with NewMultiSink. The factory helpers return a MultiSink
// automatically when several sinks are configured and a NopSink when none
// are.
package metrics
