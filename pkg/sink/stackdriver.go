package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/logging"
	mrpb "google.golang.org/genproto/googleapis/api/monitoredres"
)

// LogName is the Cloud Logging log that receives routed entries.
const LogName = "aws"

// Resource describes the monitored resource an entry is attributed to.
type Resource struct {
	Type   string
	Labels map[string]string
}

func (r Resource) monitored() *mrpb.MonitoredResource {
	labels := make(map[string]string, len(r.Labels))
	for k, v := range r.Labels {
		labels[k] = v
	}
	return &mrpb.MonitoredResource{Type: r.Type, Labels: labels}
}

type entryWriter interface {
	LogSync(ctx context.Context, e logging.Entry) error
}

// Stackdriver writes structured entries to Google Cloud Logging.
type Stackdriver struct {
	client *logging.Client
	logger entryWriter
}

// NewStackdriver opens the logging client. An empty projectID lets the client
// detect the project from the environment's credentials.
func NewStackdriver(ctx context.Context, projectID string) (*Stackdriver, error) {
	if projectID == "" {
		projectID = logging.DetectProjectID
	}
	client, err := logging.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("create logging client: %w", err)
	}
	return &Stackdriver{client: client, logger: client.Logger(LogName)}, nil
}

// WriteLog writes payload synchronously so that a failed write is reported to
// the caller.
func (s *Stackdriver) WriteLog(ctx context.Context, payload json.RawMessage, res Resource) error {
	err := s.logger.LogSync(ctx, logging.Entry{
		Payload:  payload,
		Resource: res.monitored(),
	})
	if err != nil {
		return fmt.Errorf("write log entry: %w", err)
	}
	return nil
}

func (s *Stackdriver) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
