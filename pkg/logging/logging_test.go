package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	defer log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	defer log.SetOutput(os.Stderr)

	var buf bytes.Buffer
	logger, err := Init("router", "warn", &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.WithField("collector", "jaeger").Warn("Failed to POST span")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "router", line["service"])
	assert.Equal(t, "jaeger", line["collector"])
	assert.Equal(t, "Failed to POST span", line["msg"])
	assert.NotEmpty(t, line["host"])
}

func TestInit_BadLevel(t *testing.T) {
	_, err := Init("router", "loud", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
