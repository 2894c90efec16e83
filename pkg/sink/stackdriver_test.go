package sink

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"cloud.google.com/go/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntryWriter struct {
	entries []logging.Entry
	err     error
}

func (f *fakeEntryWriter) LogSync(_ context.Context, e logging.Entry) error {
	f.entries = append(f.entries, e)
	return f.err
}

func TestStackdriverWriteLog(t *testing.T) {
	w := &fakeEntryWriter{}
	s := &Stackdriver{logger: w}

	res := Resource{
		Type:   "generic_task",
		Labels: map[string]string{"location": "aws:us-east-1", "task_id": "req-1"},
	}
	payload := json.RawMessage(`{"message":"hello"}`)
	require.NoError(t, s.WriteLog(context.Background(), payload, res))

	require.Len(t, w.entries, 1)
	entry := w.entries[0]
	assert.Equal(t, payload, entry.Payload)

	mr := entry.Resource
	require.NotNil(t, mr)
	assert.Equal(t, "generic_task", mr.GetType())
	assert.Equal(t, res.Labels, mr.GetLabels())
}

func TestStackdriverWriteLog_Error(t *testing.T) {
	boom := errors.New("permission denied")
	s := &Stackdriver{logger: &fakeEntryWriter{err: boom}}

	err := s.WriteLog(context.Background(), json.RawMessage(`{}`), Resource{Type: "generic_task"})
	assert.ErrorIs(t, err, boom)
}

func TestResourceLabelsAreCopied(t *testing.T) {
	labels := map[string]string{"job": "router"}
	mr := Resource{Type: "generic_task", Labels: labels}.monitored()
	labels["job"] = "changed"

	assert.Equal(t, "router", mr.GetLabels()["job"])
}

func TestStackdriverClose_NoClient(t *testing.T) {
	assert.NoError(t, (&Stackdriver{}).Close())
}
