package service

import (
	"context"

	"custodia/internal/account"
	"custodia/internal/audit"
	"custodia/internal/deletion"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// PolicyDirectory resolves a study's deletion policy. An unregistered study
// surfaces as sentinel.ErrNotFound.
type PolicyDirectory interface {
	StudyPolicy(ctx context.Context, studyName string) (deletion.StudyPolicy, error)
}

// SubjectDirectory resolves subjects and the scope of confirming actors.
type SubjectDirectory interface {
	StudyOf(ctx context.Context, subjectID string) (string, error)
	SubjectsFor(ctx context.Context, actorEmail string) ([]string, error)
}

// AccountLifecycle drives account status transitions on the identity
// collaborator.
type AccountLifecycle interface {
	SetAccountStatus(ctx context.Context, subjectID string, status account.Status) error
}

// AuditLog appends deletion events to the external compliance log.
type AuditLog interface {
	RecordDeletion(ctx context.Context, event audit.DeletionEvent) error
}

// Mailer delivers the confirmation notification to the confirming party.
type Mailer interface {
	SendMail(ctx context.Context, address, subject, body string) error
}
