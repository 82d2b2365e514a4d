package db

// SchemaSQL is the complete modern schema for fresh curator installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(); repository code referencing a column that
// does not exist here fails immediately with "no such column" in tests.
//
// Keep this in sync with the migrations list in migrations.go: a new column
// or table needs both a migration and an update here.
const SchemaSQL = `
-- Mods (raw ordered ledger; priority is the store-owned ordering)
CREATE TABLE IF NOT EXISTS mods (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	priority INTEGER NOT NULL UNIQUE,
	separator INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_mods_priority ON mods(priority);

-- Manifest (derived state; rebuilt from mods only during finalize)
CREATE TABLE IF NOT EXISTS manifest (
	priority INTEGER PRIMARY KEY,
	mod_id TEXT NOT NULL,
	name TEXT NOT NULL
);

-- Manifest metadata (generation counter, bumped on every finalize)
CREATE TABLE IF NOT EXISTS manifest_meta (
	id INTEGER PRIMARY KEY CHECK(id = 1),
	generation INTEGER NOT NULL DEFAULT 0,
	rebuilt_at DATETIME
);

-- Batch runs (audit of bulk mutation batches)
CREATE TABLE IF NOT EXISTS batch_runs (
	id TEXT PRIMARY KEY,
	operation TEXT NOT NULL,
	applied INTEGER NOT NULL DEFAULT 0,
	skipped INTEGER NOT NULL DEFAULT 0,
	failure_mod_id TEXT,
	failure_cause TEXT,
	finalized INTEGER NOT NULL DEFAULT 0,
	finalize_error TEXT,
	dry_run INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_batch_runs_created ON batch_runs(created_at);

-- Audit log (field-level change history)
CREATE TABLE IF NOT EXISTS audit_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	actor TEXT,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('create', 'update', 'delete')),
	field_name TEXT,
	old_value TEXT,
	new_value TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_audit_log_entity ON audit_log(entity_type, entity_id);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Completely fresh install - create modern schema directly and mark
		// all migrations as applied so they never re-run.
		if _, err := db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
