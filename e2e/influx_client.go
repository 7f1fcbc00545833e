package e2e

import (
	"context"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// InfluxClient is a small read-side helper around the official InfluxDB v2
// client. The suite writes through the production sink; this client only
// verifies what arrived.
type InfluxClient struct {
	bucket string
	client influxdb2.Client
	query  api.QueryAPI
}

// NewInfluxClient creates a client for the given parameters. It assumes the
// server is already running and reachable.
func NewInfluxClient(url, org, bucket, token string) *InfluxClient {
	c := influxdb2.NewClient(url, token)
	return &InfluxClient{
		bucket: bucket,
		client: c,
		query:  c.QueryAPI(org),
	}
}

// Query runs a Flux query and returns the raw result iterator. The caller
// is responsible for iterating and closing it.
func (c *InfluxClient) Query(ctx context.Context, flux string) (*api.QueryTableResult, error) {
	return c.query.Query(ctx, flux)
}

// CountRows returns how many rows the bucket holds for a measurement over
// the last five minutes.
func (c *InfluxClient) CountRows(ctx context.Context, measurement string) (int, error) {
	flux := fmt.Sprintf(
		`from(bucket:%q) |> range(start:-5m) |> filter(fn: (r) => r._measurement == %q)`,
		c.bucket, measurement)
	res, err := c.Query(ctx, flux)
	if err != nil {
		return 0, err
	}
	defer res.Close()
	count := 0
	for res.Next() {
		count++
	}
	return count, res.Err()
}

// Close releases the underlying client resources.
func (c *InfluxClient) Close() { c.client.Close() }
