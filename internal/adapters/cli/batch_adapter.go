// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/curator/internal/ports/primary"
)

// BatchAdapter is a thin adapter that translates CLI operations to
// BatchService calls. It depends only on the BatchService interface,
// enabling easy testing with mocks.
type BatchAdapter struct {
	service primary.BatchService
	out     io.Writer
}

// NewBatchAdapter creates a new BatchAdapter with the given service.
func NewBatchAdapter(service primary.BatchService, out io.Writer) *BatchAdapter {
	return &BatchAdapter{
		service: service,
		out:     out,
	}
}

// Replace runs a substring-replacement batch and renders the report.
func (a *BatchAdapter) Replace(ctx context.Context, match, replace string, dryRun, skipFinalize bool) error {
	report, err := a.service.ReplaceInNames(ctx, primary.ReplaceRequest{
		Match:        match,
		Replace:      replace,
		DryRun:       dryRun,
		SkipFinalize: skipFinalize,
	})
	if err != nil {
		return err
	}

	renderReport(a.out, report)
	return nil
}

// History lists recent batch runs.
func (a *BatchAdapter) History(ctx context.Context, limit int) error {
	runs, err := a.service.History(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list batch runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No batch runs found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-36s %-16s %8s %8s %s\n", "RUN", "OPERATION", "APPLIED", "SKIPPED", "RESULT")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────")
	for _, run := range runs {
		result := color.New(color.FgGreen).Sprint("ok")
		switch {
		case run.FailureCause != "":
			result = color.New(color.FgRed).Sprintf("failed on %s: %s", run.FailureModID, run.FailureCause)
		case run.FinalizeError != "":
			result = color.New(color.FgRed).Sprintf("finalize failed: %s", run.FinalizeError)
		case run.DryRun:
			result = color.New(color.FgYellow).Sprint("dry run")
		}
		fmt.Fprintf(a.out, "%-36s %-16s %8d %8d %s\n", run.ID, run.Operation, run.Applied, run.Skipped, result)
	}
	fmt.Fprintln(a.out)

	return nil
}

// renderReport prints a batch report. Shared by every bulk operation.
func renderReport(out io.Writer, report *primary.BatchReport) {
	if report.DryRun {
		fmt.Fprintf(out, "%s would apply %d rename(s), skip %d:\n",
			color.New(color.FgYellow).Sprint("dry run:"), report.Applied, report.Skipped)
	} else {
		fmt.Fprintf(out, "✓ Applied %d rename(s), skipped %d\n", report.Applied, report.Skipped)
	}

	for _, r := range report.Renames {
		fmt.Fprintf(out, "  %s → %s\n", r.OldName, r.NewName)
	}

	if report.FirstFailure != nil {
		fmt.Fprintf(out, "%s batch halted on %q: %s\n",
			color.New(color.FgRed).Sprint("✗"), report.FirstFailure.Name, report.FirstFailure.Cause)
	}

	if report.DryRun {
		return
	}
	if report.FinalizeError != "" {
		fmt.Fprintf(out, "%s finalize failed: %s\n",
			color.New(color.FgRed).Sprint("✗"), report.FinalizeError)
	} else if !report.Finalized {
		fmt.Fprintf(out, "%s finalize skipped; store left unreconciled\n",
			color.New(color.FgYellow).Sprint("!"))
	}
}
