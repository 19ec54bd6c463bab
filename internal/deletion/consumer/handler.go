// Package consumer handles participant.deleted events from the upstream
// participant registry and cascades them into a local purge.
package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"custodia/internal/platform/kafka/consumer"
)

// Purger removes everything held for a subject.
type Purger interface {
	PurgeSubject(ctx context.Context, subjectID string) error
}

// participantDeleted is the upstream event payload. Only the subject ID
// matters here; unknown fields are ignored.
type participantDeleted struct {
	SubjectID string `json:"subjectId"`
}

// ParticipantDeletedHandler purges a subject when the upstream registry
// reports the participant gone. Malformed payloads are committed after
// logging since redelivery cannot fix them; purge failures stay uncommitted
// so the event is redelivered.
type ParticipantDeletedHandler struct {
	purger Purger
	logger *slog.Logger
}

func NewParticipantDeletedHandler(purger Purger, logger *slog.Logger) *ParticipantDeletedHandler {
	return &ParticipantDeletedHandler{purger: purger, logger: logger}
}

func (h *ParticipantDeletedHandler) Handle(ctx context.Context, msg *consumer.Message) error {
	var event participantDeleted
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.ErrorContext(ctx, "skipping malformed participant.deleted event",
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"error", err,
		)
		return nil
	}
	if event.SubjectID == "" {
		h.logger.ErrorContext(ctx, "skipping participant.deleted event without subject id",
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
		)
		return nil
	}

	if err := h.purger.PurgeSubject(ctx, event.SubjectID); err != nil {
		return fmt.Errorf("purge subject %s: %w", event.SubjectID, err)
	}

	h.logger.InfoContext(ctx, "cascaded participant deletion",
		"subject_id", event.SubjectID,
		"offset", msg.Offset,
	)
	return nil
}
