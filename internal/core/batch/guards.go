package batch

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// RunContext provides context for batch run guards.
type RunContext struct {
	SnapshotSize int
	HasSelector  bool
	HasTransform bool
	HasApply     bool
	HasFinalize  bool
}

// CanRun evaluates whether a batch run may start.
// Rules:
// - Snapshot must be non-empty
// - Selector, transform and apply callbacks must be provided
// - Finalize must be provided unless the run opts out of finalizing
// Violations are reported before any mutation is attempted.
func CanRun(ctx RunContext) GuardResult {
	// Rule 1: snapshot must be non-empty
	if ctx.SnapshotSize == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "snapshot is empty; capture a fresh snapshot before starting a batch",
		}
	}

	// Rule 2: callbacks must be provided
	if !ctx.HasSelector {
		return GuardResult{Allowed: false, Reason: "selector is required"}
	}
	if !ctx.HasTransform {
		return GuardResult{Allowed: false, Reason: "transform is required"}
	}
	if !ctx.HasApply {
		return GuardResult{Allowed: false, Reason: "apply callback is required"}
	}

	// Rule 3: finalize must be provided unless explicitly skipped
	if !ctx.HasFinalize {
		return GuardResult{Allowed: false, Reason: "finalize callback is required"}
	}

	return GuardResult{Allowed: true}
}
