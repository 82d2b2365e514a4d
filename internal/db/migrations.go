package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_manifest_meta_generation",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_dry_run_to_batch_runs",
		Up:      migrationV2,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	// Create schema_version table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(db); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		fmt.Printf("✓ Migration %d completed\n", migration.Version)
	}

	return nil
}

// migrationV1 introduces the manifest generation counter for installs that
// predate the manifest_meta table.
func migrationV1(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS manifest_meta (
			id INTEGER PRIMARY KEY CHECK(id = 1),
			generation INTEGER NOT NULL DEFAULT 0,
			rebuilt_at DATETIME
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create manifest_meta: %w", err)
	}
	return nil
}

// migrationV2 adds dry-run tracking to the batch run audit table.
func migrationV2(db *sql.DB) error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM pragma_table_info('batch_runs') WHERE name = 'dry_run'").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to inspect batch_runs: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err = db.Exec("ALTER TABLE batch_runs ADD COLUMN dry_run INTEGER NOT NULL DEFAULT 0")
	if err != nil {
		return fmt.Errorf("failed to add dry_run column: %w", err)
	}
	return nil
}
