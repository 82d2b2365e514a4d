package primary

import "context"

// TagService defines the primary port for tag-driven bulk operations.
// Every operation is executed as a single batch with one trailing finalize.
type TagService interface {
	// AddNoDelete adds the protection tag to entries matching the filter.
	AddNoDelete(ctx context.Context, req TagRequest) (*BatchReport, error)

	// RemoveNoDelete strips the protection tag from entries matching the filter.
	RemoveNoDelete(ctx context.Context, req TagRequest) (*BatchReport, error)

	// AddIndexes assigns numerical index tags to all protected entries,
	// derived from the current section layout.
	AddIndexes(ctx context.Context, req IndexRequest) (*BatchReport, error)

	// RemoveIndexes strips numerical index tags from all entries.
	RemoveIndexes(ctx context.Context, req IndexRequest) (*BatchReport, error)
}

// TagRequest contains parameters for protection-tag operations.
type TagRequest struct {
	// Contains filters entries by case-insensitive substring of the clean
	// name. Empty selects every entry.
	Contains string
	// IncludeSeparators extends the operation to separator entries.
	IncludeSeparators bool
	DryRun            bool
}

// IndexRequest contains parameters for index-tag operations.
type IndexRequest struct {
	DryRun bool
}
