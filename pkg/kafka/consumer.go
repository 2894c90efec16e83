package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// BatchConsumer reads a consumer group in batches and hands each batch to a
// handler. Offsets are committed only after the handler succeeds.
type BatchConsumer struct {
	reader       messageReader
	batchSize    int
	batchTimeout time.Duration
	handler      BatchHandler
}

func NewBatchConsumer(broker, topic, groupID string, batchSize int, batchTimeout time.Duration, handler BatchHandler) *BatchConsumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return newBatchConsumer(r, batchSize, batchTimeout, handler)
}

func newBatchConsumer(r messageReader, batchSize int, batchTimeout time.Duration, handler BatchHandler) *BatchConsumer {
	if batchSize < 1 {
		batchSize = 1
	}
	return &BatchConsumer{
		reader:       r,
		batchSize:    batchSize,
		batchTimeout: batchTimeout,
		handler:      handler,
	}
}

// Run consumes until ctx is done or a batch fails. A failed batch is left
// uncommitted so the group redelivers it after a restart.
func (c *BatchConsumer) Run(ctx context.Context) error {
	for {
		batch, err := c.fetchBatch(ctx)
		if err != nil {
			return err
		}

		values := make([][]byte, len(batch))
		for i, m := range batch {
			values[i] = m.Value
		}
		if err := c.handler.Handle(ctx, values); err != nil {
			return fmt.Errorf("handle batch at offset %d: %w", batch[0].Offset, err)
		}
		if err := c.reader.CommitMessages(ctx, batch...); err != nil {
			return fmt.Errorf("commit batch: %w", err)
		}
	}
}

// fetchBatch blocks for the first message, then keeps filling the batch until
// it is full or batchTimeout has passed.
func (c *BatchConsumer) fetchBatch(ctx context.Context) ([]kafka.Message, error) {
	first, err := c.reader.FetchMessage(ctx)
	if err != nil {
		return nil, err
	}
	batch := make([]kafka.Message, 0, c.batchSize)
	batch = append(batch, first)

	fillCtx, cancel := context.WithTimeout(ctx, c.batchTimeout)
	defer cancel()

	for len(batch) < c.batchSize {
		m, err := c.reader.FetchMessage(fillCtx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				break
			}
			return nil, err
		}
		batch = append(batch, m)
	}
	return batch, nil
}

func (c *BatchConsumer) Close() error {
	return c.reader.Close()
}
