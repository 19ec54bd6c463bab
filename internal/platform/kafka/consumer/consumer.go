// Package consumer provides the Kafka consumption loop shared by all inbound
// topics. Handlers signal "commit" by returning nil; returning an error leaves
// the offset uncommitted so at-least-once redelivery applies.
package consumer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Message is the transport-level view of a consumed record.
type Message struct {
	Topic     string
	Partition int32
	Offset    int64
	Key       []byte
	Value     []byte
	Timestamp time.Time
}

// Handler processes a single message. Return nil to commit the offset; return
// an error to keep it uncommitted for redelivery. Malformed messages that can
// never succeed should be logged and committed by the handler.
type Handler interface {
	Handle(ctx context.Context, msg *Message) error
}

// Config holds the connection parameters for a consumer group.
type Config struct {
	Brokers []string
	Group   string
	Topics  []string
}

// Consumer polls a consumer group and dispatches records to a Handler with
// explicit commits.
type Consumer struct {
	client  *kgo.Client
	handler Handler
	logger  *slog.Logger
}

// New connects a consumer group client.
func New(cfg Config, handler Handler, logger *slog.Logger) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka consumer requires at least one broker")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumerGroup(cfg.Group),
		kgo.ConsumeTopics(cfg.Topics...),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Consumer{client: client, handler: handler, logger: logger}, nil
}

// Run polls until the context is cancelled. A handler failure rewinds the
// partition to the failed record, so the next poll delivers it again; the
// consume position never advances past an unhandled record. Other partitions
// keep flowing, so one poison message cannot stall the group.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			c.logger.Error("kafka fetch error",
				"topic", topic,
				"partition", partition,
				"error", err,
			)
		})

		var records []*kgo.Record
		fetches.EachRecord(func(rec *kgo.Record) {
			records = append(records, rec)
		})

		committable, rewinds := c.dispatch(ctx, records)

		// Rewind before committing: kgo's in-memory position has already
		// advanced past the whole fetch, and only SetOffsets pulls it back to
		// the failed record.
		if len(rewinds) > 0 {
			c.client.SetOffsets(rewinds)
		}
		if len(committable) > 0 {
			if err := c.client.CommitRecords(ctx, committable...); err != nil {
				// Redelivery of already-handled records is safe; handlers are
				// idempotent.
				c.logger.Error("commit failed", "error", err)
			}
		}
	}
}

// dispatch hands one batch to the handler in order. It returns the records
// whose offsets may be committed and, per failed partition, the position of
// the first unhandled record to rewind to. Within a partition nothing after a
// failure is handled or committed; records on other partitions are unaffected.
func (c *Consumer) dispatch(ctx context.Context, records []*kgo.Record) ([]*kgo.Record, map[string]map[int32]kgo.EpochOffset) {
	var committable []*kgo.Record
	var rewinds map[string]map[int32]kgo.EpochOffset

	for _, rec := range records {
		if _, failed := rewinds[rec.Topic][rec.Partition]; failed {
			continue
		}

		msg := &Message{
			Topic:     rec.Topic,
			Partition: rec.Partition,
			Offset:    rec.Offset,
			Key:       rec.Key,
			Value:     rec.Value,
			Timestamp: rec.Timestamp,
		}
		if err := c.handler.Handle(ctx, msg); err != nil {
			c.logger.Error("message handling failed, rewinding partition for redelivery",
				"topic", rec.Topic,
				"partition", rec.Partition,
				"offset", rec.Offset,
				"error", err,
			)
			if rewinds == nil {
				rewinds = make(map[string]map[int32]kgo.EpochOffset)
			}
			if rewinds[rec.Topic] == nil {
				rewinds[rec.Topic] = make(map[int32]kgo.EpochOffset)
			}
			rewinds[rec.Topic][rec.Partition] = kgo.EpochOffset{
				Epoch:  rec.LeaderEpoch,
				Offset: rec.Offset,
			}
			continue
		}
		committable = append(committable, rec)
	}
	return committable, rewinds
}

// Close releases the underlying Kafka client.
func (c *Consumer) Close() {
	c.client.Close()
}
