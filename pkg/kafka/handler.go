package kafka

import "context"

// BatchHandler receives the values of one fetched batch, in offset order.
type BatchHandler interface {
	Handle(ctx context.Context, values [][]byte) error
}

type HandlerFunc func(ctx context.Context, values [][]byte) error

func (f HandlerFunc) Handle(ctx context.Context, values [][]byte) error {
	return f(ctx, values)
}
