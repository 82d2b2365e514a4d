// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/curator/internal/ports/secondary"
)

// ModListStore implements secondary.ModListStore with SQLite.
//
// The mods table is the raw state; the manifest table is the derived state
// and is rebuilt from a full scan only during Finalize, never incrementally.
// Callers own exclusive access for the duration of a batch.
type ModListStore struct {
	db *sql.DB
}

// NewModListStore creates a new SQLite mod list store.
func NewModListStore(db *sql.DB) *ModListStore {
	return &ModListStore{db: db}
}

// QueryOrderedEntries returns all entries in priority order.
func (s *ModListStore) QueryOrderedEntries(ctx context.Context) ([]*secondary.ModRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, priority, separator, created_at, updated_at FROM mods ORDER BY priority ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query mods: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ModRecord
	for rows.Next() {
		record, err := scanMod(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// ApplyOne renames a single entry. The rename is one UPDATE statement and is
// atomic from the caller's point of view.
func (s *ModListStore) ApplyOne(ctx context.Context, id, newName string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE mods SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		newName, id,
	)
	if err != nil {
		// The UNIQUE constraint on name turns collisions into errors here.
		return fmt.Errorf("failed to rename mod %s: %w", id, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("mod %s not found", id)
	}

	return nil
}

// Finalize rebuilds the manifest from the mods table and bumps the rebuild
// generation. The rebuild is a full scan inside one transaction; the manifest
// content is idempotent with respect to the raw state.
func (s *ModListStore) Finalize(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin finalize: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM manifest"); err != nil {
		return fmt.Errorf("failed to clear manifest: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO manifest (priority, mod_id, name) SELECT priority, id, name FROM mods ORDER BY priority ASC",
	)
	if err != nil {
		return fmt.Errorf("failed to rebuild manifest: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO manifest_meta (id, generation, rebuilt_at) VALUES (1, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET generation = generation + 1, rebuilt_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to bump manifest generation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit finalize: %w", err)
	}

	return nil
}

// scanMod reads one mods row from a Rows cursor.
func scanMod(rows *sql.Rows) (*secondary.ModRecord, error) {
	var (
		record    secondary.ModRecord
		separator int
		createdAt sql.NullString
		updatedAt sql.NullString
	)

	err := rows.Scan(&record.ID, &record.Name, &record.Priority, &separator, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan mod: %w", err)
	}

	record.Separator = separator != 0
	record.CreatedAt = createdAt.String
	record.UpdatedAt = updatedAt.String

	return &record, nil
}

// Ensure ModListStore implements the interface.
var _ secondary.ModListStore = (*ModListStore)(nil)
