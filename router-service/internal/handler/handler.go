package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"log-router/pkg/router"
)

// Router is the part of *router.Router the Lambda handler needs.
type Router interface {
	Route(ctx context.Context, batch [][]byte, inv router.Invocation) (string, error)
}

type Handler struct {
	router Router
}

func New(r Router) *Handler {
	return &Handler{router: r}
}

// HandleKinesis is invoked by the Lambda runtime once per Kinesis batch. The
// record data arrives already base64-decoded by the events package.
func (h *Handler) HandleKinesis(ctx context.Context, e events.KinesisEvent) (string, error) {
	var inv router.Invocation
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		inv.RequestID = lc.AwsRequestID
	}

	batch := make([][]byte, len(e.Records))
	for i, rec := range e.Records {
		batch[i] = rec.Kinesis.Data
	}
	return h.router.Route(ctx, batch, inv)
}
