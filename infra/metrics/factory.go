package metrics

import (
	"github.com/Asiantown/GeoEvents/core/factory"
	coremetrics "github.com/Asiantown/GeoEvents/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// init registers built-in metrics sinks.
func init() {
	_ = coremetrics.RegisterSink("nop", func(map[string]any) (coremetrics.Sink, error) {
		return coremetrics.NopSink{}, nil
	})

	_ = coremetrics.RegisterSink("prometheus", func(conf map[string]any) (coremetrics.Sink, error) {
		var c struct {
			Port string `json:"prometheus_port"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		// Port is consumed by StartPromServer; the sink itself only
		// needs the registerer.
		return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
	})

	_ = coremetrics.RegisterSink("influx", func(conf map[string]any) (coremetrics.Sink, error) {
		var c struct {
			URL    string `json:"url"`
			Token  string `json:"token"`
			Org    string `json:"org"`
			Bucket string `json:"bucket"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	})
}
