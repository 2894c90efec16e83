package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-router/pkg/event"
)

func TestGeneratedRecordsDecode(t *testing.T) {
	var d event.Decoder

	logRec, err := logRecord("ref-1", 3)
	require.NoError(t, err)
	p, ok := d.Decode(logRec)
	require.True(t, ok)
	assert.Equal(t, event.KindLog, p.Kind)
	assert.Contains(t, string(p.Body), `"ref":"ref-1"`)

	traceRec, err := traceRecord()
	require.NoError(t, err)
	p, ok = d.Decode(traceRec)
	require.True(t, ok)
	assert.Equal(t, event.KindTrace, p.Kind)
	blob, err := p.TraceBlob()
	require.NoError(t, err)
	assert.Len(t, blob, 64)
}

func TestTickInterval(t *testing.T) {
	interval, err := tickInterval(100)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, interval)

	for _, rps := range []int{0, -5} {
		_, err := tickInterval(rps)
		assert.Error(t, err)
	}
}
