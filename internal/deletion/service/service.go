// Package service implements the pending-deletion orchestrator: the policy
// branching, the state machine over open requests, and the transactional
// purge with its committed-then-best-effort side effects.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"

	"custodia/internal/account"
	"custodia/internal/audit"
	"custodia/internal/deletion"
	"custodia/internal/platform/metrics"
	dErrors "custodia/pkg/domain-errors"
	"custodia/pkg/platform/sentinel"
)

const (
	confirmationMailSubject = "Deletion request awaiting your confirmation"
)

// Service is the pending-deletion orchestrator. All repository access goes
// through it; collaborators are explicit ports so tests can substitute fakes
// and failure modes stay visible.
type Service struct {
	stores   deletion.Stores
	tx       deletion.TxRunner
	policies PolicyDirectory
	subjects SubjectDirectory
	accounts AccountLifecycle
	auditLog AuditLog
	mailer   Mailer
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func New(
	stores deletion.Stores,
	tx deletion.TxRunner,
	policies PolicyDirectory,
	subjects SubjectDirectory,
	accounts AccountLifecycle,
	auditLog AuditLog,
	mailer Mailer,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		stores:   stores,
		tx:       tx,
		policies: policies,
		subjects: subjects,
		accounts: accounts,
		auditLog: auditLog,
		mailer:   mailer,
		logger:   logger,
		metrics:  m,
	}
}

// Get returns the open deletion request for a subject. Only the two parties
// on the request may see it.
func (s *Service) Get(ctx context.Context, actor deletion.Actor, subjectID string) (*deletion.PendingDeletion, error) {
	pd, err := s.findPending(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !actor.HasStudy(pd.StudyName) || !actor.IsParty(pd) {
		return nil, dErrors.New(dErrors.CodeForbidden, "actor is not a party to this deletion request")
	}
	return pd, nil
}

// ListByStudy returns all open deletion requests for a study the actor has
// access to.
func (s *Service) ListByStudy(ctx context.Context, actor deletion.Actor, studyName string) ([]*deletion.PendingDeletion, error) {
	if !actor.HasStudy(studyName) {
		return nil, dErrors.New(dErrors.CodeForbidden, "actor has no access to this study")
	}
	listed, err := s.stores.Pending.ListByStudy(ctx, studyName)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list pending deletions")
	}
	return listed, nil
}

// Create requests the deletion of a subject's personal data. Depending on the
// study's policy this either opens a pending request awaiting a second
// actor's confirmation, or purges immediately and returns a synthetic record
// that is never persisted.
func (s *Service) Create(ctx context.Context, actor deletion.Actor, req deletion.CreateRequest) (*deletion.PendingDeletion, error) {
	studyName, err := s.subjects.StudyOf(ctx, req.SubjectID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "subject could not be resolved")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "subject directory unavailable")
	}

	if !actor.HasStudy(studyName) || actor.Role != deletion.RoleDataProtection {
		return nil, dErrors.New(dErrors.CodeForbidden, "actor may not request deletions for this study")
	}

	accessible, err := s.subjects.SubjectsFor(ctx, req.RequestedFor)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "subject directory unavailable")
	}
	if !slices.Contains(accessible, req.SubjectID) {
		return nil, dErrors.New(dErrors.CodeNotFound, "subject is not accessible to the confirming actor")
	}

	policy, err := s.policies.StudyPolicy(ctx, studyName)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			// A study without a registered policy does not permit deletion.
			return nil, dErrors.New(dErrors.CodeForbidden, "study does not permit deletion of personal data")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "policy directory unavailable")
	}

	switch policy.Mode() {
	case deletion.ModeNoOpposition:
		return nil, dErrors.New(dErrors.CodeForbidden, "study does not permit deletion of personal data")
	case deletion.ModeFourEyes:
		return s.createFourEyes(ctx, actor, req, studyName)
	default:
		return s.createSingleActor(ctx, actor, req, studyName)
	}
}

// createFourEyes opens a pending request that a second actor must confirm.
// The confirmation mail goes out before the insert: the request is not
// considered created unless the confirming party can plausibly be reached.
func (s *Service) createFourEyes(ctx context.Context, actor deletion.Actor, req deletion.CreateRequest, studyName string) (*deletion.PendingDeletion, error) {
	if req.RequestedFor == actor.Email {
		return nil, dErrors.New(dErrors.CodeUnprocessable, "four-eyes policy requires a distinct confirming party")
	}
	if !govalidator.IsEmail(req.RequestedFor) {
		return nil, dErrors.New(dErrors.CodeUnprocessable, "confirming party address is not deliverable")
	}

	// Pre-check so a duplicate create fails Conflict before the mail goes
	// out. The unique constraint below remains the authority under races.
	if _, err := s.stores.Pending.FindBySubject(ctx, req.SubjectID); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "a pending deletion already exists for this subject")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check for existing pending deletion")
	}

	body := fmt.Sprintf(
		"%s requested the deletion of personal data for subject %s in study %s. Confirm or cancel the request in the administration console.",
		actor.Email, req.SubjectID, studyName,
	)
	if err := s.mailer.SendMail(ctx, req.RequestedFor, confirmationMailSubject, body); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "confirmation notification could not be delivered")
	}

	pd := &deletion.PendingDeletion{
		ID:           uuid.New(),
		StudyName:    studyName,
		SubjectID:    req.SubjectID,
		RequestedBy:  actor.Email,
		RequestedFor: req.RequestedFor,
		RequestedAt:  time.Now(),
	}
	if err := s.stores.Pending.Insert(ctx, pd); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "a pending deletion already exists for this subject")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create pending deletion")
	}

	s.setAccountStatus(ctx, req.SubjectID, account.StatusDeactivationPending)
	s.metrics.IncRequested()

	s.logger.InfoContext(ctx, "pending deletion created",
		"subject_id", pd.SubjectID,
		"study", pd.StudyName,
		"requested_by", pd.RequestedBy,
		"requested_for", pd.RequestedFor,
	)
	return pd, nil
}

// createSingleActor purges immediately. The returned record reflects what was
// executed and is never persisted.
func (s *Service) createSingleActor(ctx context.Context, actor deletion.Actor, req deletion.CreateRequest, studyName string) (*deletion.PendingDeletion, error) {
	if req.RequestedFor != actor.Email {
		return nil, dErrors.New(dErrors.CodeUnprocessable, "deletion for this study is executed by the requesting actor alone")
	}

	pd := &deletion.PendingDeletion{
		ID:           uuid.New(),
		StudyName:    studyName,
		SubjectID:    req.SubjectID,
		RequestedBy:  actor.Email,
		RequestedFor: actor.Email,
		RequestedAt:  time.Now(),
	}
	if err := s.purge(ctx, pd); err != nil {
		return nil, err
	}
	s.metrics.IncExecuted()
	return pd, nil
}

// Execute confirms an open request and purges the subject's data. Only the
// designated confirming party may execute; the requester cannot self-execute.
func (s *Service) Execute(ctx context.Context, actor deletion.Actor, subjectID string) (*deletion.PendingDeletion, error) {
	pd, err := s.findPending(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !actor.HasStudy(pd.StudyName) {
		return nil, dErrors.New(dErrors.CodeForbidden, "actor has no access to this study")
	}
	if actor.Email != pd.RequestedFor {
		return nil, dErrors.New(dErrors.CodeForbidden, "only the designated confirming party may execute this deletion")
	}

	if err := s.purge(ctx, pd); err != nil {
		return nil, err
	}
	s.metrics.IncExecuted()

	s.logger.InfoContext(ctx, "pending deletion executed",
		"subject_id", pd.SubjectID,
		"study", pd.StudyName,
		"requested_by", pd.RequestedBy,
		"requested_for", pd.RequestedFor,
	)
	return pd, nil
}

// Cancel withdraws an open request without touching personal data and
// reactivates the account.
func (s *Service) Cancel(ctx context.Context, actor deletion.Actor, subjectID string) error {
	pd, err := s.findPending(ctx, subjectID)
	if err != nil {
		return err
	}
	if !actor.HasStudy(pd.StudyName) || !actor.IsParty(pd) {
		return dErrors.New(dErrors.CodeForbidden, "actor is not a party to this deletion request")
	}

	// The delete is conditional: a confirming actor may have executed the
	// purge between the lookup and this point. In that case the request is
	// gone because it was carried out, so cancelling reports NotFound and the
	// account must stay deactivated.
	deleted, err := s.stores.Pending.DeleteBySubject(ctx, subjectID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to cancel pending deletion")
	}
	if !deleted {
		return dErrors.New(dErrors.CodeNotFound, "no pending deletion exists for this subject")
	}

	s.setAccountStatus(ctx, subjectID, account.StatusActive)
	s.metrics.IncCancelled()

	s.logger.InfoContext(ctx, "pending deletion cancelled",
		"subject_id", subjectID,
		"cancelled_by", actor.Email,
	)
	return nil
}

// PersonalData returns the identifying record for a subject within the
// actor's study scope.
func (s *Service) PersonalData(ctx context.Context, actor deletion.Actor, subjectID string) (*deletion.PersonalData, error) {
	data, err := s.stores.Data.FindBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no personal data recorded for subject")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load personal data")
	}
	if !actor.HasStudy(data.StudyName) {
		return nil, dErrors.New(dErrors.CodeForbidden, "actor has no access to this study")
	}
	return data, nil
}

// purge atomically removes the subject's personal data and any open request,
// then performs the best-effort account and audit calls. The committed purge
// is authoritative: a failing collaborator call is logged for operational
// follow-up, never used to roll back.
func (s *Service) purge(ctx context.Context, pd *deletion.PendingDeletion) error {
	err := s.tx.RunInTx(ctx, func(tx deletion.Stores) error {
		if err := tx.Data.DeleteBySubject(ctx, pd.SubjectID); err != nil {
			return fmt.Errorf("delete personal data: %w", err)
		}
		if _, err := tx.Pending.DeleteBySubject(ctx, pd.SubjectID); err != nil {
			return fmt.Errorf("delete pending deletion: %w", err)
		}
		return nil
	})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "purge transaction failed")
	}

	s.setAccountStatus(ctx, pd.SubjectID, account.StatusDeactivated)

	event := audit.DeletionEvent{
		Type:         audit.TypePersonalDataDeletion,
		SubjectID:    pd.SubjectID,
		RequestedBy:  pd.RequestedBy,
		RequestedFor: pd.RequestedFor,
		Timestamp:    time.Now(),
	}
	if err := s.auditLog.RecordDeletion(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "deletion audit failed after committed purge",
			"subject_id", pd.SubjectID,
			"error", err,
		)
		s.metrics.IncCollaboratorFailure("audit")
	}
	return nil
}

func (s *Service) findPending(ctx context.Context, subjectID string) (*deletion.PendingDeletion, error) {
	pd, err := s.stores.Pending.FindBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no pending deletion exists for this subject")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load pending deletion")
	}
	return pd, nil
}

// setAccountStatus runs after the row mutation has committed and is therefore
// best-effort: failures are logged for out-of-band retry.
func (s *Service) setAccountStatus(ctx context.Context, subjectID string, status account.Status) {
	if err := s.accounts.SetAccountStatus(ctx, subjectID, status); err != nil {
		s.logger.ErrorContext(ctx, "account status update failed",
			"subject_id", subjectID,
			"status", status,
			"error", err,
		)
		s.metrics.IncCollaboratorFailure("account")
	}
}
