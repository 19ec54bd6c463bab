package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Publisher records deletion events on the compliance Kafka topic. Writes are
// synchronous; the caller decides whether a failure aborts its operation (the
// orchestrator logs post-purge failures instead of surfacing them).
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewPublisher connects a producer for the audit topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("audit publisher requires at least one broker")
	}
	client, err := kgo.NewClient(kgo.SeedBrokers(brokers...))
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Publisher{client: client, topic: topic, logger: logger}, nil
}

// RecordDeletion appends one deletion event to the compliance log.
func (p *Publisher) RecordDeletion(ctx context.Context, event DeletionEvent) error {
	record, err := toRecord(p.topic, event)
	if err != nil {
		return err
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("publish deletion event: %w", err)
	}
	p.logger.DebugContext(ctx, "recorded deletion event",
		"event_id", string(record.Key),
		"subject_id", event.SubjectID,
	)
	return nil
}

// Close releases the underlying Kafka client.
func (p *Publisher) Close() {
	p.client.Close()
}

func toRecord(topic string, event DeletionEvent) (*kgo.Record, error) {
	if event.SubjectID == "" {
		return nil, fmt.Errorf("deletion event requires SubjectID")
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Type == "" {
		event.Type = TypePersonalDataDeletion
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode deletion event: %w", err)
	}
	return &kgo.Record{
		Topic: topic,
		Key:   []byte(event.ID.String()),
		Value: payload,
	}, nil
}

// LogRecorder is the development fallback when no broker is configured: it
// writes deletion events to the process log only.
type LogRecorder struct {
	logger *slog.Logger
}

func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (r *LogRecorder) RecordDeletion(ctx context.Context, event DeletionEvent) error {
	r.logger.InfoContext(ctx, "deletion event (no audit broker configured)",
		"type", event.Type,
		"subject_id", event.SubjectID,
		"requested_by", event.RequestedBy,
		"requested_for", event.RequestedFor,
	)
	return nil
}
