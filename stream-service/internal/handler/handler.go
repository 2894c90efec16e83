package handler

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"log-router/pkg/router"
)

type Router interface {
	Route(ctx context.Context, batch [][]byte, inv router.Invocation) (string, error)
}

// BatchHandler routes one Kafka batch as a single invocation with its own
// request id.
type BatchHandler struct {
	router Router
	log    log.FieldLogger
	newID  func() string
}

func NewBatchHandler(r Router, logger log.FieldLogger) *BatchHandler {
	return &BatchHandler{router: r, log: logger, newID: uuid.NewString}
}

func (h *BatchHandler) Handle(ctx context.Context, values [][]byte) error {
	inv := router.Invocation{RequestID: h.newID()}
	summary, err := h.router.Route(ctx, values, inv)
	if err != nil {
		return err
	}
	h.log.WithField("request_id", inv.RequestID).Info(summary)
	return nil
}
