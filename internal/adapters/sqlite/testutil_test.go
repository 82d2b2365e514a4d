// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; do not hardcode CREATE TABLE statements here.
package sqlite_test

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/curator/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedMod inserts a test mod and returns its ID.
func seedMod(t *testing.T, db *sql.DB, id, name string, priority int) string {
	t.Helper()
	if id == "" {
		id = fmt.Sprintf("mod-%03d", priority)
	}
	_, err := db.Exec("INSERT INTO mods (id, name, priority) VALUES (?, ?, ?)", id, name, priority)
	if err != nil {
		t.Fatalf("failed to seed mod: %v", err)
	}
	return id
}

// seedSeparator inserts a test separator entry and returns its ID.
func seedSeparator(t *testing.T, db *sql.DB, id, name string, priority int) string {
	t.Helper()
	if id == "" {
		id = fmt.Sprintf("sep-%03d", priority)
	}
	_, err := db.Exec("INSERT INTO mods (id, name, priority, separator) VALUES (?, ?, ?, 1)", id, name, priority)
	if err != nil {
		t.Fatalf("failed to seed separator: %v", err)
	}
	return id
}
