package cli

import (
	"context"
	"io"

	"github.com/example/curator/internal/ports/primary"
)

// TagAdapter is a thin adapter that translates CLI operations to TagService calls.
type TagAdapter struct {
	service primary.TagService
	out     io.Writer
}

// NewTagAdapter creates a new TagAdapter with the given service.
func NewTagAdapter(service primary.TagService, out io.Writer) *TagAdapter {
	return &TagAdapter{
		service: service,
		out:     out,
	}
}

// AddNoDelete adds the protection tag to matching entries.
func (a *TagAdapter) AddNoDelete(ctx context.Context, contains string, includeSeparators, dryRun bool) error {
	report, err := a.service.AddNoDelete(ctx, primary.TagRequest{
		Contains:          contains,
		IncludeSeparators: includeSeparators,
		DryRun:            dryRun,
	})
	if err != nil {
		return err
	}

	renderReport(a.out, report)
	return nil
}

// RemoveNoDelete strips the protection tag from matching entries.
func (a *TagAdapter) RemoveNoDelete(ctx context.Context, contains string, includeSeparators, dryRun bool) error {
	report, err := a.service.RemoveNoDelete(ctx, primary.TagRequest{
		Contains:          contains,
		IncludeSeparators: includeSeparators,
		DryRun:            dryRun,
	})
	if err != nil {
		return err
	}

	renderReport(a.out, report)
	return nil
}

// AddIndexes assigns numerical index tags to all protected entries.
func (a *TagAdapter) AddIndexes(ctx context.Context, dryRun bool) error {
	report, err := a.service.AddIndexes(ctx, primary.IndexRequest{DryRun: dryRun})
	if err != nil {
		return err
	}

	renderReport(a.out, report)
	return nil
}

// RemoveIndexes strips numerical index tags from all entries.
func (a *TagAdapter) RemoveIndexes(ctx context.Context, dryRun bool) error {
	report, err := a.service.RemoveIndexes(ctx, primary.IndexRequest{DryRun: dryRun})
	if err != nil {
		return err
	}

	renderReport(a.out, report)
	return nil
}
