package app

import (
	"context"
	"strings"

	"github.com/example/curator/internal/core/batch"
	"github.com/example/curator/internal/core/section"
	"github.com/example/curator/internal/core/tags"
	"github.com/example/curator/internal/ports/primary"
)

// TagServiceImpl implements the TagService interface.
// Every operation compiles down to exactly one batch run, so the store sees
// a single mutation burst and a single trailing finalize.
type TagServiceImpl struct {
	batches primary.BatchService
}

// NewTagService creates a new TagService with injected dependencies.
func NewTagService(batches primary.BatchService) *TagServiceImpl {
	return &TagServiceImpl{
		batches: batches,
	}
}

// AddNoDelete adds the protection tag to entries matching the filter.
func (s *TagServiceImpl) AddNoDelete(ctx context.Context, req primary.TagRequest) (*primary.BatchReport, error) {
	return s.batches.RunRename(ctx, primary.RunRenameRequest{
		Operation: "nodelete-add",
		Selector:  tagSelector(req),
		Transform: func(e batch.Entry) string {
			info := tags.Parse(e.Name)
			info.NoDelete = true
			return tags.Build(info)
		},
		DryRun: req.DryRun,
	})
}

// RemoveNoDelete strips the protection tag from entries matching the filter.
func (s *TagServiceImpl) RemoveNoDelete(ctx context.Context, req primary.TagRequest) (*primary.BatchReport, error) {
	return s.batches.RunRename(ctx, primary.RunRenameRequest{
		Operation: "nodelete-remove",
		Selector:  tagSelector(req),
		Transform: func(e batch.Entry) string {
			info := tags.Parse(e.Name)
			info.NoDelete = false
			return tags.Build(info)
		},
		DryRun: req.DryRun,
	})
}

// AddIndexes assigns numerical index tags to all protected entries. The index
// plan is derived from the same snapshot the batch consumes, so section
// numbering and batch order can never disagree.
func (s *TagServiceImpl) AddIndexes(ctx context.Context, req primary.IndexRequest) (*primary.BatchReport, error) {
	return s.batches.RunRename(ctx, primary.RunRenameRequest{
		Operation: "index-add",
		Plan: func(snapshot batch.Snapshot) (batch.Selector, batch.Transform, error) {
			plan := section.PlanIndexes(snapshot)

			selector := func(e batch.Entry) bool {
				_, ok := plan[e.ID]
				return ok
			}
			transform := func(e batch.Entry) string {
				info := tags.Parse(e.Name)
				info.Index = plan[e.ID]
				return tags.Build(info)
			}
			return selector, transform, nil
		},
		DryRun: req.DryRun,
	})
}

// RemoveIndexes strips numerical index tags from all entries.
func (s *TagServiceImpl) RemoveIndexes(ctx context.Context, req primary.IndexRequest) (*primary.BatchReport, error) {
	return s.batches.RunRename(ctx, primary.RunRenameRequest{
		Operation: "index-remove",
		Selector: func(e batch.Entry) bool {
			return tags.Parse(e.Name).Index != ""
		},
		Transform: func(e batch.Entry) string {
			return tags.StripIndex(e.Name)
		},
		DryRun: req.DryRun,
	})
}

// tagSelector builds the entry filter for protection-tag operations.
func tagSelector(req primary.TagRequest) batch.Selector {
	contains := strings.ToLower(req.Contains)
	return func(e batch.Entry) bool {
		if section.IsSeparator(e) && !req.IncludeSeparators {
			return false
		}
		if contains == "" {
			return true
		}
		clean := strings.ToLower(tags.Parse(e.Name).CleanName)
		return strings.Contains(clean, contains)
	}
}

// Ensure TagServiceImpl implements the interface.
var _ primary.TagService = (*TagServiceImpl)(nil)
