package pendingdeletion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"custodia/internal/deletion"
	"custodia/pkg/platform/sentinel"
)

// uniqueViolation is the postgres error code raised by the unique constraint
// on pending_deletions.subject_id.
const uniqueViolation = "23505"

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore persists open deletion requests in PostgreSQL. This store is
// pure I/O; policy checks belong in the service.
type PostgresStore struct {
	q querier
}

// NewPostgres constructs a store over a connection pool.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{q: db}
}

// NewPostgresTx binds a store to an open transaction for use inside RunInTx.
func NewPostgresTx(tx *sql.Tx) *PostgresStore {
	return &PostgresStore{q: tx}
}

func (s *PostgresStore) Insert(ctx context.Context, pd *deletion.PendingDeletion) error {
	query := `
		INSERT INTO pending_deletions (id, study_name, subject_id, requested_by, requested_for, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.q.ExecContext(ctx, query,
		pd.ID, pd.StudyName, pd.SubjectID, pd.RequestedBy, pd.RequestedFor, pd.RequestedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return fmt.Errorf("insert pending deletion: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("insert pending deletion: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindBySubject(ctx context.Context, subjectID string) (*deletion.PendingDeletion, error) {
	query := `
		SELECT id, study_name, subject_id, requested_by, requested_for, requested_at
		FROM pending_deletions
		WHERE subject_id = $1
	`
	pd, err := scanPendingDeletion(s.q.QueryRowContext(ctx, query, subjectID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find pending deletion: %w", err)
	}
	return pd, nil
}

func (s *PostgresStore) ListByStudy(ctx context.Context, studyName string) ([]*deletion.PendingDeletion, error) {
	query := `
		SELECT id, study_name, subject_id, requested_by, requested_for, requested_at
		FROM pending_deletions
		WHERE study_name = $1
		ORDER BY requested_at
	`
	rows, err := s.q.QueryContext(ctx, query, studyName)
	if err != nil {
		return nil, fmt.Errorf("list pending deletions: %w", err)
	}
	defer rows.Close()

	var out []*deletion.PendingDeletion
	for rows.Next() {
		pd, err := scanPendingDeletion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending deletion: %w", err)
		}
		out = append(out, pd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending deletions: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) DeleteBySubject(ctx context.Context, subjectID string) (bool, error) {
	res, err := s.q.ExecContext(ctx, `DELETE FROM pending_deletions WHERE subject_id = $1`, subjectID)
	if err != nil {
		return false, fmt.Errorf("delete pending deletion: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete pending deletion: %w", err)
	}
	return affected > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPendingDeletion(row scanner) (*deletion.PendingDeletion, error) {
	var pd deletion.PendingDeletion
	err := row.Scan(&pd.ID, &pd.StudyName, &pd.SubjectID, &pd.RequestedBy, &pd.RequestedFor, &pd.RequestedAt)
	if err != nil {
		return nil, err
	}
	return &pd, nil
}
