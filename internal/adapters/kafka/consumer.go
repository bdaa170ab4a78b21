package kafka

import (
	"context"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/kzmha/spotify-lake/bridge-go/internal/model"
)

// Config holds consumer connection settings.
type Config struct {
	BootstrapServer string // broker address, e.g. "localhost:9092"
	Topic           string
	GroupID         string
}

// Consumer reads events from a Kafka topic as part of a consumer group.
// Fetched messages are held as pending until Commit, so offsets never run
// ahead of a successful flush.
type Consumer struct {
	reader  *kafkago.Reader
	pending []kafkago.Message
}

// NewConsumer creates a group consumer starting from the earliest offset.
func NewConsumer(cfg Config) *Consumer {
	return &Consumer{
		reader: kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:     []string{cfg.BootstrapServer},
			GroupID:     cfg.GroupID,
			Topic:       cfg.Topic,
			StartOffset: kafkago.FirstOffset,
			MinBytes:    1,
			MaxBytes:    10e6,
		}),
	}
}

// Next blocks until a message is available, parses it as an event and tracks
// it as pending. It does not commit the offset.
func (c *Consumer) Next(ctx context.Context) (model.Event, error) {
	msg, err := c.reader.FetchMessage(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch message: %w", err)
	}

	event, err := model.ParseEvent(msg.Value)
	if err != nil {
		return nil, &DecodeError{Partition: msg.Partition, Offset: msg.Offset, Err: err}
	}

	c.pending = append(c.pending, msg)
	return event, nil
}

// Commit acknowledges every message fetched since the previous Commit.
func (c *Consumer) Commit(ctx context.Context) error {
	if len(c.pending) == 0 {
		return nil
	}
	if err := c.reader.CommitMessages(ctx, c.pending...); err != nil {
		return fmt.Errorf("commit offsets: %w", err)
	}
	c.pending = c.pending[:0]
	return nil
}

// Close releases the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
