package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Init configures the standard logrus logger for the given service: JSON lines
// on out, tagged with the service name and host.
func Init(service, level string, out io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	hook, err := newServiceHook(service)
	if err != nil {
		return nil, err
	}

	logger := log.StandardLogger()
	logger.SetFormatter(&log.JSONFormatter{})
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.AddHook(hook)
	return logger, nil
}

type serviceHook struct {
	service  string
	hostname string
}

func newServiceHook(service string) (*serviceHook, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("resolve hostname: %w", err)
	}
	return &serviceHook{service: service, hostname: host}, nil
}

func (h *serviceHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *serviceHook) Fire(e *log.Entry) error {
	e.Data["service"] = h.service
	e.Data["host"] = h.hostname
	return nil
}
