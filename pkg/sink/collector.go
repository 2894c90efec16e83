package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const ThriftContentType = "application/x-thrift"

// StatusError is returned when a collector answers with a failure status.
type StatusError struct {
	Collector  string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("collector %s responded %d: %s", e.Collector, e.StatusCode, e.Body)
}

// Collector posts binary thrift spans to one HTTP endpoint.
type Collector struct {
	name   string
	url    string
	client *http.Client
}

func NewCollector(name, url string, client *http.Client) *Collector {
	if client == nil {
		client = http.DefaultClient
	}
	return &Collector{name: name, url: url, client: client}
}

// NewHTTPClient returns the client shared by all collectors. No timeout is set.
func NewHTTPClient() *http.Client {
	return &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
}

func (c *Collector) Name() string {
	return c.name
}

// Post sends blob as a single request. Any status below 400 counts as accepted.
func (c *Collector) Post(ctx context.Context, blob []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(blob))
	if err != nil {
		return fmt.Errorf("build request for %s: %w", c.name, err)
	}
	req.Header.Set("Content-Type", ThriftContentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to %s: %w", c.name, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return &StatusError{Collector: c.name, StatusCode: resp.StatusCode, Body: body}
	}
	return nil
}
