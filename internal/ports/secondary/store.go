// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// ModListStore defines the capability surface of the externally owned ordered
// mod list. It is deliberately narrow: these three primitives are the only
// ways the application may read or mutate the list, and nothing may peek at
// the store's internal representation.
type ModListStore interface {
	// QueryOrderedEntries returns the full list in the store's own priority
	// order. Called once per batch; the returned slice is a snapshot and is
	// never re-queried mid-batch.
	QueryOrderedEntries(ctx context.Context) ([]*ModRecord, error)

	// ApplyOne renames a single entry. It is the sole mutation primitive and
	// is not safe to interleave with foreign callbacks during a batch.
	ApplyOne(ctx context.Context, id, newName string) error

	// Finalize rebuilds and persists the store's derived state from its raw
	// state. Idempotent, expensive; call at most once per batch.
	Finalize(ctx context.Context) error
}

// ModRecord represents a mod list entry as reported by the store.
type ModRecord struct {
	ID        string
	Name      string
	Priority  int
	Separator bool
	CreatedAt string
	UpdatedAt string
}

// ModRepository defines the supporting persistence operations for the ledger
// that fall outside the batch capability surface: seeding, lookup, status.
type ModRepository interface {
	// Create persists a new entry at the given priority.
	Create(ctx context.Context, record *ModRecord) error

	// GetByID retrieves an entry by its ID.
	GetByID(ctx context.Context, id string) (*ModRecord, error)

	// GetByName retrieves an entry by its current name.
	GetByName(ctx context.Context, name string) (*ModRecord, error)

	// MaxPriority returns the highest priority in the ledger, or -1 when the
	// ledger is empty. New entries append at MaxPriority+1; counting rows is
	// not safe for that because priorities may be non-contiguous.
	MaxPriority(ctx context.Context) (int, error)

	// DeleteAll clears the ledger. Used by import --replace.
	DeleteAll(ctx context.Context) error

	// ManifestGeneration returns the generation counter of the derived
	// manifest, incremented on every successful Finalize.
	ManifestGeneration(ctx context.Context) (int, error)
}

// BatchRunRepository defines the secondary port for batch-run audit records.
type BatchRunRepository interface {
	// Create persists a finished batch run.
	Create(ctx context.Context, run *BatchRunRecord) error

	// GetByID retrieves a batch run by its ID.
	GetByID(ctx context.Context, id string) (*BatchRunRecord, error)

	// List retrieves the most recent batch runs, newest first.
	List(ctx context.Context, limit int) ([]*BatchRunRecord, error)
}

// BatchRunRecord represents one batch run as stored in persistence.
type BatchRunRecord struct {
	ID            string
	Operation     string
	Applied       int
	Skipped       int
	FailureModID  string
	FailureCause  string
	Finalized     bool
	FinalizeError string
	DryRun        bool
	CreatedAt     string
}
