package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/curator/internal/ports/secondary"
)

// BatchRunRepository implements secondary.BatchRunRepository with SQLite.
type BatchRunRepository struct {
	db *sql.DB
}

// NewBatchRunRepository creates a new SQLite batch run repository.
func NewBatchRunRepository(db *sql.DB) *BatchRunRepository {
	return &BatchRunRepository{db: db}
}

// Create persists a finished batch run.
func (r *BatchRunRepository) Create(ctx context.Context, run *secondary.BatchRunRecord) error {
	finalized, dryRun := 0, 0
	if run.Finalized {
		finalized = 1
	}
	if run.DryRun {
		dryRun = 1
	}

	var failureModID, failureCause, finalizeError sql.NullString
	if run.FailureModID != "" {
		failureModID = sql.NullString{String: run.FailureModID, Valid: true}
	}
	if run.FailureCause != "" {
		failureCause = sql.NullString{String: run.FailureCause, Valid: true}
	}
	if run.FinalizeError != "" {
		finalizeError = sql.NullString{String: run.FinalizeError, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO batch_runs (id, operation, applied, skipped, failure_mod_id, failure_cause, finalized, finalize_error, dry_run)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Operation, run.Applied, run.Skipped,
		failureModID, failureCause, finalized, finalizeError, dryRun,
	)
	if err != nil {
		return fmt.Errorf("failed to create batch run: %w", err)
	}

	return nil
}

// GetByID retrieves a batch run by its ID.
func (r *BatchRunRepository) GetByID(ctx context.Context, id string) (*secondary.BatchRunRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, operation, applied, skipped, failure_mod_id, failure_cause, finalized, finalize_error, dry_run, created_at
		FROM batch_runs WHERE id = ?`, id)

	record, err := scanBatchRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("batch run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get batch run: %w", err)
	}

	return record, nil
}

// List retrieves the most recent batch runs, newest first.
func (r *BatchRunRepository) List(ctx context.Context, limit int) ([]*secondary.BatchRunRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, operation, applied, skipped, failure_mod_id, failure_cause, finalized, finalize_error, dry_run, created_at
		FROM batch_runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch runs: %w", err)
	}
	defer rows.Close()

	var records []*secondary.BatchRunRecord
	for rows.Next() {
		record, err := scanBatchRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan batch run: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBatchRun(row scanner) (*secondary.BatchRunRecord, error) {
	var (
		record        secondary.BatchRunRecord
		failureModID  sql.NullString
		failureCause  sql.NullString
		finalizeError sql.NullString
		finalized     int
		dryRun        int
		createdAt     sql.NullString
	)

	err := row.Scan(&record.ID, &record.Operation, &record.Applied, &record.Skipped,
		&failureModID, &failureCause, &finalized, &finalizeError, &dryRun, &createdAt)
	if err != nil {
		return nil, err
	}

	record.FailureModID = failureModID.String
	record.FailureCause = failureCause.String
	record.FinalizeError = finalizeError.String
	record.Finalized = finalized != 0
	record.DryRun = dryRun != 0
	record.CreatedAt = createdAt.String

	return &record, nil
}

// Ensure BatchRunRepository implements the interface.
var _ secondary.BatchRunRepository = (*BatchRunRepository)(nil)
