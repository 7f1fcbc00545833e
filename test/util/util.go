// Package util provides helper functions shared across integration tests.
//
// WaitForMetric polls a Prometheus metrics endpoint until the desired metric
// appears in the output.
package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// MetricTimeout bounds how long tests wait for a metric to appear.
	MetricTimeout = 5 * time.Second

	pollInterval = 50 * time.Millisecond
)

// WaitForMetric polls the given metrics URL until the provided substring is
// found in the output or the context is done.
func WaitForMetric(ctx context.Context, metricsURL, substr string) error {
	for {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, metricsURL, nil)
		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			body, rerr := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if rerr != nil {
				return fmt.Errorf("read metrics body: %w", rerr)
			}
			if strings.Contains(string(body), substr) {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("metric %q not found: %w", substr, ctx.Err())
		case <-time.After(pollInterval):
		}
	}
}
