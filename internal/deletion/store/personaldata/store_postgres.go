package personaldata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"custodia/internal/deletion"
	"custodia/pkg/platform/sentinel"
)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore persists identifying records in PostgreSQL.
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

func (s *PostgresStore) Save(ctx context.Context, data *deletion.PersonalData) error {
	query := `
		INSERT INTO personal_data (subject_id, study_name, first_name, last_name, street, postal_code, city, phone, mobile_phone, email, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (subject_id) DO UPDATE SET
			study_name = EXCLUDED.study_name,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			street = EXCLUDED.street,
			postal_code = EXCLUDED.postal_code,
			city = EXCLUDED.city,
			phone = EXCLUDED.phone,
			mobile_phone = EXCLUDED.mobile_phone,
			email = EXCLUDED.email,
			comment = EXCLUDED.comment
	`
	_, err := s.q.ExecContext(ctx, query,
		data.SubjectID, data.StudyName, data.FirstName, data.LastName, data.Street,
		data.PostalCode, data.City, data.Phone, data.MobilePhone, data.Email, data.Comment,
	)
	if err != nil {
		return fmt.Errorf("save personal data: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindBySubject(ctx context.Context, subjectID string) (*deletion.PersonalData, error) {
	query := `
		SELECT subject_id, study_name, first_name, last_name, street, postal_code, city, phone, mobile_phone, email, comment
		FROM personal_data
		WHERE subject_id = $1
	`
	var data deletion.PersonalData
	err := s.q.QueryRowContext(ctx, query, subjectID).Scan(
		&data.SubjectID, &data.StudyName, &data.FirstName, &data.LastName, &data.Street,
		&data.PostalCode, &data.City, &data.Phone, &data.MobilePhone, &data.Email, &data.Comment,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find personal data: %w", err)
	}
	return &data, nil
}

func (s *PostgresStore) DeleteBySubject(ctx context.Context, subjectID string) error {
	_, err := s.q.ExecContext(ctx, `DELETE FROM personal_data WHERE subject_id = $1`, subjectID)
	if err != nil {
		return fmt.Errorf("delete personal data: %w", err)
	}
	return nil
}
