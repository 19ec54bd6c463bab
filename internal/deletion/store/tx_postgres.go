// Package store provides the transaction runners that bind the pending
// deletion and personal data repositories to one atomic boundary.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"custodia/internal/deletion"
	"custodia/internal/deletion/store/pendingdeletion"
	"custodia/internal/deletion/store/personaldata"
)

// PostgresRunner runs store mutations inside one SQL transaction.
type PostgresRunner struct {
	db *sql.DB
}

func NewPostgresRunner(db *sql.DB) *PostgresRunner {
	return &PostgresRunner{db: db}
}

func (r *PostgresRunner) RunInTx(ctx context.Context, fn func(s deletion.Stores) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	stores := deletion.Stores{
		Pending: pendingdeletion.NewPostgresTx(tx),
		Data:    personaldata.NewPostgresTx(tx),
	}

	if err := fn(stores); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
