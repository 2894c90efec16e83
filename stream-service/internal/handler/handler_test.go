package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-router/pkg/router"
)

type fakeRouter struct {
	invocations []router.Invocation
	err         error
}

func (f *fakeRouter) Route(_ context.Context, batch [][]byte, inv router.Invocation) (string, error) {
	f.invocations = append(f.invocations, inv)
	if f.err != nil {
		return "", f.err
	}
	return router.Summary(len(batch)), nil
}

func TestHandle_FreshRequestIDPerBatch(t *testing.T) {
	fr := &fakeRouter{}
	logger, hook := test.NewNullLogger()
	h := NewBatchHandler(fr, logger)

	require.NoError(t, h.Handle(context.Background(), [][]byte{[]byte("a"), []byte("b")}))
	require.NoError(t, h.Handle(context.Background(), [][]byte{[]byte("c")}))

	require.Len(t, fr.invocations, 2)
	first, second := fr.invocations[0].RequestID, fr.invocations[1].RequestID
	assert.NotEqual(t, first, second)
	_, err := uuid.Parse(first)
	assert.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Successfully processed 1 records.", entry.Message)
	assert.Equal(t, second, entry.Data["request_id"])
}

func TestHandle_RouteError(t *testing.T) {
	boom := errors.New("write log entry: unavailable")
	logger, hook := test.NewNullLogger()
	h := NewBatchHandler(&fakeRouter{err: boom}, logger)

	err := h.Handle(context.Background(), [][]byte{[]byte("a")})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, hook.AllEntries())
}
