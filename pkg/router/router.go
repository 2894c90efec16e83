package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"log-router/pkg/event"
	"log-router/pkg/sink"
)

const (
	resourceType = "generic_task"
	namespace    = "default"
	jobName      = "router"
)

// TraceCollector accepts binary thrift spans.
type TraceCollector interface {
	Name() string
	Post(ctx context.Context, blob []byte) error
}

// LogWriter accepts structured log entries.
type LogWriter interface {
	WriteLog(ctx context.Context, payload json.RawMessage, res sink.Resource) error
}

// Invocation carries what the runtime tells us about the current batch.
type Invocation struct {
	RequestID string
}

// Router decodes records and forwards each one to the trace collectors or the
// log writer.
type Router struct {
	decoder    event.Decoder
	collectors []TraceCollector
	logs       LogWriter
	location   string
	echo       io.Writer
	log        log.FieldLogger
}

type Option func(*Router)

// WithEcho sets where forwarded log payloads are echoed. Defaults to stdout.
func WithEcho(w io.Writer) Option {
	return func(r *Router) { r.echo = w }
}

// WithLogger sets the logger used for collector failures.
func WithLogger(l log.FieldLogger) Option {
	return func(r *Router) { r.log = l }
}

// New builds a Router. Trace records are posted to collectors in the given
// order.
func New(collectors []TraceCollector, logs LogWriter, location string, opts ...Option) *Router {
	r := &Router{
		collectors: collectors,
		logs:       logs,
		location:   location,
		echo:       os.Stdout,
		log:        log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Summary is the message returned for a batch of n records.
func Summary(n int) string {
	return fmt.Sprintf("Successfully processed %d records.", n)
}

// Route processes the batch in order. Records that do not decode are dropped
// without notice. A log write failure or an undecodable trace blob stops the
// batch and is returned; collector failures are only logged.
func (r *Router) Route(ctx context.Context, batch [][]byte, inv Invocation) (string, error) {
	for i, data := range batch {
		if err := r.process(ctx, data, inv); err != nil {
			return "", fmt.Errorf("record %d: %w", i, err)
		}
	}
	return Summary(len(batch)), nil
}

func (r *Router) process(ctx context.Context, data []byte, inv Invocation) error {
	p, ok := r.decoder.Decode(data)
	if !ok {
		return nil
	}
	if p.Kind == event.KindTrace {
		return r.forwardTrace(ctx, p)
	}
	return r.forwardLog(ctx, p, inv)
}

func (r *Router) forwardTrace(ctx context.Context, p event.Payload) error {
	blob, err := p.TraceBlob()
	if err != nil {
		return err
	}

	for _, c := range r.collectors {
		if err := c.Post(ctx, blob); err != nil {
			entry := r.log.WithField("collector", c.Name()).WithError(err)
			var statusErr *sink.StatusError
			if errors.As(err, &statusErr) {
				entry = entry.WithFields(log.Fields{
					"status": statusErr.StatusCode,
					"body":   string(statusErr.Body),
				})
			}
			entry.Warnf("Failed to POST span to %s", c.Name())
		}
	}
	return nil
}

func (r *Router) forwardLog(ctx context.Context, p event.Payload, inv Invocation) error {
	res := sink.Resource{
		Type: resourceType,
		Labels: map[string]string{
			"location":  r.location,
			"namespace": namespace,
			"job":       jobName,
			"task_id":   inv.RequestID,
		},
	}
	if err := r.logs.WriteLog(ctx, p.Body, res); err != nil {
		return err
	}
	fmt.Fprintln(r.echo, string(p.Body))
	return nil
}
