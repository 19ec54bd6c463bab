package service

import (
	"context"
	"fmt"
	"log/slog"

	"custodia/internal/deletion"
)

// PurgeSubject removes everything held for a subject in response to an
// upstream participant-deleted event. The account already ceased to exist
// upstream, so no account or audit calls follow; the transaction is the whole
// operation. Deleting an unknown subject is a no-op, which keeps replays and
// redeliveries safe.
func (s *Service) PurgeSubject(ctx context.Context, subjectID string) error {
	err := s.tx.RunInTx(ctx, func(tx deletion.Stores) error {
		if err := tx.Data.DeleteBySubject(ctx, subjectID); err != nil {
			return fmt.Errorf("delete personal data: %w", err)
		}
		if _, err := tx.Pending.DeleteBySubject(ctx, subjectID); err != nil {
			return fmt.Errorf("delete pending deletion: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("cascade purge for subject: %w", err)
	}

	s.metrics.IncCascadePurge()
	s.logger.InfoContext(ctx, "cascade purge completed", slog.String("subject_id", subjectID))
	return nil
}
