// Package batch contains the pure bulk-mutation engine for ordered renames.
// The engine applies a caller-supplied transform to entries of an externally
// owned ordered snapshot, strictly in snapshot order, with no suspension point
// between consecutive mutations and a single trailing finalize call.
package batch

// Entry is one item of the externally owned ordered collection. Priority is
// assigned by the store, not by this package.
type Entry struct {
	ID        string
	Name      string
	Priority  int
	Separator bool
}

// Snapshot is a point-in-time ordered view of the store, captured once per
// batch. It is read-only to the engine and is never re-queried mid-batch.
type Snapshot []Entry

// Selector decides whether an entry participates in the batch.
// Must be pure; side effects are a caller obligation, not detectable here.
type Selector func(Entry) bool

// Transform computes the new name for a selected entry.
// Must be pure. Returning the current name unchanged makes the entry a skip.
type Transform func(Entry) string

// ApplyFunc is the sole mutation primitive against the external store.
type ApplyFunc func(id, newName string) error

// FinalizeFunc forces the store to reconcile and persist derived state.
// It is expensive and idempotent; the engine calls it at most once per batch.
type FinalizeFunc func() error

// Rename records one applied mutation.
type Rename struct {
	ID      string
	OldName string
	NewName string
}

// Failure identifies the entry on which the batch halted.
type Failure struct {
	ID    string
	Name  string
	Cause error
}

// Result is the outcome of one batch run.
type Result struct {
	// Applied is the number of mutations the store accepted.
	Applied int
	// Skipped is the number of selected entries whose transform was a no-op.
	Skipped int
	// Renames lists applied mutations in the order they were issued.
	Renames []Rename
	// FirstFailure is set when the batch halted on a mutation error.
	// Entries after the failing one are never touched.
	FirstFailure *Failure
	// Finalized reports whether finalize was invoked.
	Finalized bool
	// FinalizeErr is the finalize outcome, nil on success or when skipped.
	FinalizeErr error
}

// Err returns the first failure of the batch, mutation before finalize,
// or nil when everything succeeded.
func (r Result) Err() error {
	if r.FirstFailure != nil {
		return r.FirstFailure.Cause
	}
	return r.FinalizeErr
}

// Options tunes a batch run.
type Options struct {
	// SkipFinalize suppresses the trailing finalize call. The store is left
	// unreconciled; the caller owns the consequences.
	SkipFinalize bool
}

// Run executes one batch over the snapshot with default options.
// It returns an error only for precondition violations, before any mutation
// has been attempted; every post-start outcome is reported in the Result.
func Run(snapshot Snapshot, selector Selector, transform Transform, apply ApplyFunc, finalize FinalizeFunc) (Result, error) {
	return RunWithOptions(snapshot, selector, transform, apply, finalize, Options{})
}

// RunWithOptions executes one batch over the snapshot.
//
// The loop body is deliberately free of goroutines, channel operations and
// context polling: the external store's bookkeeping is not reentrant-safe
// against foreign callbacks between consecutive mutations, so the absence of
// any suspension point is the load-bearing property of this function.
func RunWithOptions(snapshot Snapshot, selector Selector, transform Transform, apply ApplyFunc, finalize FinalizeFunc, opts Options) (Result, error) {
	guard := CanRun(RunContext{
		SnapshotSize: len(snapshot),
		HasSelector:  selector != nil,
		HasTransform: transform != nil,
		HasApply:     apply != nil,
		HasFinalize:  finalize != nil || opts.SkipFinalize,
	})
	if err := guard.Error(); err != nil {
		return Result{}, err
	}

	var result Result

	for _, entry := range snapshot {
		if !selector(entry) {
			continue
		}

		newName := transform(entry)
		if newName == entry.Name {
			result.Skipped++
			continue
		}

		if err := apply(entry.ID, newName); err != nil {
			result.FirstFailure = &Failure{
				ID:    entry.ID,
				Name:  entry.Name,
				Cause: err,
			}
			break
		}

		result.Applied++
		result.Renames = append(result.Renames, Rename{
			ID:      entry.ID,
			OldName: entry.Name,
			NewName: newName,
		})
	}

	// One finalize per batch, success or fail-fast stop alike: a partially
	// mutated store still needs forced reconciliation before control returns.
	if !opts.SkipFinalize {
		result.Finalized = true
		result.FinalizeErr = finalize()
	}

	return result, nil
}
