package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/curator/internal/ports/secondary"
)

// ModRepository implements secondary.ModRepository with SQLite.
type ModRepository struct {
	db *sql.DB
}

// NewModRepository creates a new SQLite mod repository.
func NewModRepository(db *sql.DB) *ModRepository {
	return &ModRepository{db: db}
}

// Create persists a new entry at the given priority.
func (r *ModRepository) Create(ctx context.Context, record *secondary.ModRecord) error {
	separator := 0
	if record.Separator {
		separator = 1
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO mods (id, name, priority, separator) VALUES (?, ?, ?, ?)",
		record.ID, record.Name, record.Priority, separator,
	)
	if err != nil {
		return fmt.Errorf("failed to create mod: %w", err)
	}

	return nil
}

// GetByID retrieves an entry by its ID.
func (r *ModRepository) GetByID(ctx context.Context, id string) (*secondary.ModRecord, error) {
	return r.getByField(ctx, "id", id)
}

// GetByName retrieves an entry by its current name.
func (r *ModRepository) GetByName(ctx context.Context, name string) (*secondary.ModRecord, error) {
	return r.getByField(ctx, "name", name)
}

// MaxPriority returns the highest priority in the ledger, or -1 when empty.
func (r *ModRepository) MaxPriority(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(priority), -1) FROM mods").Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to read max priority: %w", err)
	}
	return max, nil
}

// DeleteAll clears the ledger.
func (r *ModRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM mods"); err != nil {
		return fmt.Errorf("failed to clear mods: %w", err)
	}
	return nil
}

// ManifestGeneration returns the generation counter of the derived manifest.
func (r *ModRepository) ManifestGeneration(ctx context.Context) (int, error) {
	var generation int
	err := r.db.QueryRowContext(ctx,
		"SELECT generation FROM manifest_meta WHERE id = 1",
	).Scan(&generation)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read manifest generation: %w", err)
	}

	return generation, nil
}

func (r *ModRepository) getByField(ctx context.Context, field, value string) (*secondary.ModRecord, error) {
	var (
		record    secondary.ModRecord
		separator int
		createdAt sql.NullString
		updatedAt sql.NullString
	)

	query := fmt.Sprintf("SELECT id, name, priority, separator, created_at, updated_at FROM mods WHERE %s = ?", field)
	err := r.db.QueryRowContext(ctx, query, value).
		Scan(&record.ID, &record.Name, &record.Priority, &separator, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("mod %s not found", value)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mod: %w", err)
	}

	record.Separator = separator != 0
	record.CreatedAt = createdAt.String
	record.UpdatedAt = updatedAt.String

	return &record, nil
}

// Ensure ModRepository implements the interface.
var _ secondary.ModRepository = (*ModRepository)(nil)
