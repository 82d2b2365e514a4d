// Package app implements the application services behind the primary ports.
// Services orchestrate pure core logic against the secondary-port adapters.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/curator/internal/core/batch"
	"github.com/example/curator/internal/ports/primary"
	"github.com/example/curator/internal/ports/secondary"
)

// BatchServiceImpl implements the BatchService interface.
type BatchServiceImpl struct {
	store     secondary.ModListStore
	runRepo   secondary.BatchRunRepository
	logWriter secondary.LogWriter
}

// NewBatchService creates a new BatchService with injected dependencies.
func NewBatchService(store secondary.ModListStore, runRepo secondary.BatchRunRepository, logWriter secondary.LogWriter) *BatchServiceImpl {
	return &BatchServiceImpl{
		store:     store,
		runRepo:   runRepo,
		logWriter: logWriter,
	}
}

// RunRename executes one batch over a fresh snapshot of the store.
//
// The snapshot is captured exactly once, the loop runs synchronously with no
// suspension point between mutations, and finalize is issued exactly once
// after the loop. Audit entries are written only after the batch has fully
// settled, never interleaved with mutations.
func (s *BatchServiceImpl) RunRename(ctx context.Context, req primary.RunRenameRequest) (*primary.BatchReport, error) {
	records, err := s.store.QueryOrderedEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to capture snapshot: %w", err)
	}

	snapshot := make(batch.Snapshot, len(records))
	for i, r := range records {
		snapshot[i] = recordToEntry(r)
	}

	selector, transform := req.Selector, req.Transform
	if req.Plan != nil {
		selector, transform, err = req.Plan(snapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to plan batch: %w", err)
		}
	}

	apply := func(id, newName string) error {
		return s.store.ApplyOne(ctx, id, newName)
	}
	finalize := func() error {
		return s.store.Finalize(ctx)
	}
	if req.DryRun {
		// A dry run previews the exact call sequence without touching the
		// store, so there is nothing to finalize either.
		apply = func(id, newName string) error { return nil }
		finalize = nil
	}

	result, err := batch.RunWithOptions(snapshot, selector, transform, apply, finalize,
		batch.Options{SkipFinalize: req.DryRun || req.SkipFinalize})
	if err != nil {
		return nil, err
	}

	report := resultToReport(result, req.Operation, req.DryRun)
	report.RunID = uuid.NewString()

	if err := s.recordRun(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to record batch run: %w", err)
	}

	if !req.DryRun {
		for _, r := range report.Renames {
			if err := s.logWriter.LogUpdate(ctx, "mod", r.ModID, "name", r.OldName, r.NewName); err != nil {
				return nil, fmt.Errorf("failed to write audit log: %w", err)
			}
		}
	}

	return report, nil
}

// ReplaceInNames runs a substring-replacement batch across the list.
func (s *BatchServiceImpl) ReplaceInNames(ctx context.Context, req primary.ReplaceRequest) (*primary.BatchReport, error) {
	if req.Match == "" {
		return nil, fmt.Errorf("match string is required")
	}

	return s.RunRename(ctx, primary.RunRenameRequest{
		Operation: "replace",
		Selector: func(e batch.Entry) bool {
			return strings.Contains(e.Name, req.Match)
		},
		Transform: func(e batch.Entry) string {
			return strings.ReplaceAll(e.Name, req.Match, req.Replace)
		},
		DryRun:       req.DryRun,
		SkipFinalize: req.SkipFinalize,
	})
}

// History retrieves recent batch runs, newest first.
func (s *BatchServiceImpl) History(ctx context.Context, limit int) ([]*primary.BatchRun, error) {
	records, err := s.runRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch runs: %w", err)
	}

	runs := make([]*primary.BatchRun, len(records))
	for i, r := range records {
		runs[i] = recordToRun(r)
	}
	return runs, nil
}

// recordRun persists the audit record for a finished batch.
func (s *BatchServiceImpl) recordRun(ctx context.Context, report *primary.BatchReport) error {
	record := &secondary.BatchRunRecord{
		ID:            report.RunID,
		Operation:     report.Operation,
		Applied:       report.Applied,
		Skipped:       report.Skipped,
		Finalized:     report.Finalized,
		FinalizeError: report.FinalizeError,
		DryRun:        report.DryRun,
	}
	if report.FirstFailure != nil {
		record.FailureModID = report.FirstFailure.ModID
		record.FailureCause = report.FirstFailure.Cause
	}
	return s.runRepo.Create(ctx, record)
}

// Helper methods

func recordToEntry(r *secondary.ModRecord) batch.Entry {
	return batch.Entry{
		ID:        r.ID,
		Name:      r.Name,
		Priority:  r.Priority,
		Separator: r.Separator,
	}
}

func resultToReport(result batch.Result, operation string, dryRun bool) *primary.BatchReport {
	report := &primary.BatchReport{
		Operation: operation,
		Applied:   result.Applied,
		Skipped:   result.Skipped,
		Finalized: result.Finalized,
		DryRun:    dryRun,
	}
	for _, r := range result.Renames {
		report.Renames = append(report.Renames, primary.RenameChange{
			ModID:   r.ID,
			OldName: r.OldName,
			NewName: r.NewName,
		})
	}
	if result.FirstFailure != nil {
		report.FirstFailure = &primary.BatchFailure{
			ModID: result.FirstFailure.ID,
			Name:  result.FirstFailure.Name,
			Cause: result.FirstFailure.Cause.Error(),
		}
	}
	if result.FinalizeErr != nil {
		report.FinalizeError = result.FinalizeErr.Error()
	}
	return report
}

func recordToRun(r *secondary.BatchRunRecord) *primary.BatchRun {
	return &primary.BatchRun{
		ID:            r.ID,
		Operation:     r.Operation,
		Applied:       r.Applied,
		Skipped:       r.Skipped,
		FailureModID:  r.FailureModID,
		FailureCause:  r.FailureCause,
		Finalized:     r.Finalized,
		FinalizeError: r.FinalizeError,
		DryRun:        r.DryRun,
		CreatedAt:     r.CreatedAt,
	}
}

// Ensure BatchServiceImpl implements the interface.
var _ primary.BatchService = (*BatchServiceImpl)(nil)
