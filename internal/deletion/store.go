package deletion

import "context"

// PendingDeletionStore persists open deletion requests. Insert returns
// sentinel.ErrConflict (possibly wrapped) when an open request already exists
// for the subject; FindBySubject returns sentinel.ErrNotFound when none does.
// DeleteBySubject is delete-if-exists: removing an absent row is a no-op, and
// the returned bool reports whether a row was actually removed so callers can
// distinguish "withdrawn" from "already gone" under races.
type PendingDeletionStore interface {
	Insert(ctx context.Context, pd *PendingDeletion) error
	FindBySubject(ctx context.Context, subjectID string) (*PendingDeletion, error)
	ListByStudy(ctx context.Context, studyName string) ([]*PendingDeletion, error)
	DeleteBySubject(ctx context.Context, subjectID string) (bool, error)
}

// PersonalDataStore persists identifying records. DeleteBySubject is
// delete-if-exists so the cascade purge stays idempotent.
type PersonalDataStore interface {
	Save(ctx context.Context, data *PersonalData) error
	FindBySubject(ctx context.Context, subjectID string) (*PersonalData, error)
	DeleteBySubject(ctx context.Context, subjectID string) error
}

// Stores bundles the two repositories the purge transaction spans.
type Stores struct {
	Pending PendingDeletionStore
	Data    PersonalDataStore
}

// TxRunner provides the transactional boundary for the purge: both deletes
// commit together or not at all. Implementations wrap a database transaction
// or, in-memory, a coarse lock.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(s Stores) error) error
}
