package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/curator/internal/ctxutil"
	"github.com/example/curator/internal/ports/secondary"
)

// LogWriterAdapter implements secondary.LogWriter against the audit_log table.
// The acting command is taken from context for attribution.
type LogWriterAdapter struct {
	db *sql.DB
}

// NewLogWriterAdapter creates a new LogWriterAdapter.
func NewLogWriterAdapter(db *sql.DB) *LogWriterAdapter {
	return &LogWriterAdapter{db: db}
}

// LogCreate logs a create operation for an entity.
func (w *LogWriterAdapter) LogCreate(ctx context.Context, entityType, entityID string) error {
	return w.writeLog(ctx, entityType, entityID, "create", "", "", "")
}

// LogUpdate logs an update operation for an entity field.
func (w *LogWriterAdapter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	return w.writeLog(ctx, entityType, entityID, "update", fieldName, oldValue, newValue)
}

// LogDelete logs a delete operation for an entity.
func (w *LogWriterAdapter) LogDelete(ctx context.Context, entityType, entityID string) error {
	return w.writeLog(ctx, entityType, entityID, "delete", "", "", "")
}

// writeLog writes a log entry with common logic.
func (w *LogWriterAdapter) writeLog(ctx context.Context, entityType, entityID, action, fieldName, oldValue, newValue string) error {
	actor := ctxutil.CommandFromContext(ctx)

	var field, oldVal, newVal sql.NullString
	if fieldName != "" {
		field = sql.NullString{String: fieldName, Valid: true}
		oldVal = sql.NullString{String: oldValue, Valid: true}
		newVal = sql.NullString{String: newValue, Valid: true}
	}

	_, err := w.db.ExecContext(ctx, `
		INSERT INTO audit_log (actor, entity_type, entity_id, action, field_name, old_value, new_value)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		actor, entityType, entityID, action, field, oldVal, newVal,
	)
	if err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}

	return nil
}

// Ensure LogWriterAdapter implements the interface.
var _ secondary.LogWriter = (*LogWriterAdapter)(nil)
