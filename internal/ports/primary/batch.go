// Package primary defines the primary ports (driving interfaces) for the
// application: the service contracts the CLI layer programs against.
package primary

import (
	"context"

	"github.com/example/curator/internal/core/batch"
)

// BatchService defines the primary port for ordered bulk mutation.
type BatchService interface {
	// RunRename executes one batch over a fresh snapshot of the store.
	// The snapshot is captured inside the call; callers must not mutate the
	// store concurrently for the duration of the batch.
	RunRename(ctx context.Context, req RunRenameRequest) (*BatchReport, error)

	// ReplaceInNames runs a substring-replacement batch across the list.
	ReplaceInNames(ctx context.Context, req ReplaceRequest) (*BatchReport, error)

	// History retrieves recent batch runs, newest first.
	History(ctx context.Context, limit int) ([]*BatchRun, error)
}

// RunRenameRequest carries the callbacks and options for one batch.
// Selector and Transform must be pure functions over a single entry; the
// service cannot verify purity, so side effects are a caller obligation.
type RunRenameRequest struct {
	Operation    string
	Selector     batch.Selector
	Transform    batch.Transform
	DryRun       bool
	SkipFinalize bool

	// Plan, when set, derives the selector and transform from the captured
	// snapshot before the loop starts, and takes precedence over Selector
	// and Transform. It runs once per batch and must be pure: the snapshot
	// it receives is the one the batch will consume.
	Plan func(batch.Snapshot) (batch.Selector, batch.Transform, error)
}

// ReplaceRequest describes a substring-replacement batch.
type ReplaceRequest struct {
	Match        string
	Replace      string
	DryRun       bool
	SkipFinalize bool
}

// BatchReport describes the outcome of one batch at the port boundary.
type BatchReport struct {
	RunID         string
	Operation     string
	Applied       int
	Skipped       int
	Renames       []RenameChange
	FirstFailure  *BatchFailure
	Finalized     bool
	FinalizeError string
	DryRun        bool
}

// RenameChange records one applied rename in issue order.
type RenameChange struct {
	ModID   string
	OldName string
	NewName string
}

// BatchFailure identifies the entry the batch halted on.
type BatchFailure struct {
	ModID string
	Name  string
	Cause string
}

// BatchRun represents a historical batch run at the port boundary.
type BatchRun struct {
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
