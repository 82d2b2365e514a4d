package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/curator/internal/core/tags"
	"github.com/example/curator/internal/ports/primary"
	"github.com/example/curator/internal/ports/secondary"
)

// ModListServiceImpl implements the ModListService interface.
type ModListServiceImpl struct {
	store     secondary.ModListStore
	modRepo   secondary.ModRepository
	logWriter secondary.LogWriter
}

// NewModListService creates a new ModListService with injected dependencies.
func NewModListService(store secondary.ModListStore, modRepo secondary.ModRepository, logWriter secondary.LogWriter) *ModListServiceImpl {
	return &ModListServiceImpl{
		store:     store,
		modRepo:   modRepo,
		logWriter: logWriter,
	}
}

// List retrieves all entries in store priority order.
func (s *ModListServiceImpl) List(ctx context.Context) ([]*primary.Mod, error) {
	records, err := s.store.QueryOrderedEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mods: %w", err)
	}

	mods := make([]*primary.Mod, len(records))
	for i, r := range records {
		mods[i] = recordToMod(r)
	}
	return mods, nil
}

// GetMod retrieves an entry by ID or, failing that, by exact name.
func (s *ModListServiceImpl) GetMod(ctx context.Context, ref string) (*primary.Mod, error) {
	record, err := s.modRepo.GetByID(ctx, ref)
	if err == nil {
		return recordToMod(record), nil
	}

	record, err = s.modRepo.GetByName(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("mod %s not found", ref)
	}
	return recordToMod(record), nil
}

// Import seeds the ledger from an ordered list of names. The first name gets
// the lowest priority, matching top-of-list-first input files.
func (s *ModListServiceImpl) Import(ctx context.Context, req primary.ImportRequest) (*primary.ImportResponse, error) {
	if len(req.Names) == 0 {
		return nil, fmt.Errorf("nothing to import")
	}

	if req.Replace {
		if err := s.modRepo.DeleteAll(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear ledger: %w", err)
		}
	}

	// Append below the current bottom. Priorities may have gaps, so the base
	// comes from the highest priority, not the row count.
	max, err := s.modRepo.MaxPriority(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read max priority: %w", err)
	}
	base := max + 1

	imported := 0
	for _, name := range req.Names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		record := &secondary.ModRecord{
			ID:        uuid.NewString(),
			Name:      name,
			Priority:  base + imported,
			Separator: strings.HasSuffix(name, "_separator"),
		}
		if err := s.modRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to import %q: %w", name, err)
		}
		if err := s.logWriter.LogCreate(ctx, "mod", record.ID); err != nil {
			return nil, fmt.Errorf("failed to write audit log: %w", err)
		}
		imported++
	}

	// One reconciliation for the whole seed, same discipline as a batch.
	if err := s.store.Finalize(ctx); err != nil {
		return nil, fmt.Errorf("failed to finalize import: %w", err)
	}

	return &primary.ImportResponse{
		Imported: imported,
		Replaced: req.Replace,
	}, nil
}

// Status reports ledger counters and manifest generation.
func (s *ModListServiceImpl) Status(ctx context.Context) (*primary.StoreStatus, error) {
	records, err := s.store.QueryOrderedEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}

	status := &primary.StoreStatus{Entries: len(records)}
	for _, r := range records {
		if r.Separator {
			status.Separators++
		}
		if tags.Parse(r.Name).NoDelete {
			status.Protected++
		}
	}

	gen, err := s.modRepo.ManifestGeneration(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest generation: %w", err)
	}
	status.ManifestGeneration = gen

	return status, nil
}

// Helper methods

func recordToMod(r *secondary.ModRecord) *primary.Mod {
	return &primary.Mod{
		ID:        r.ID,
		Name:      r.Name,
		Priority:  r.Priority,
		Separator: r.Separator,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure ModListServiceImpl implements the interface.
var _ primary.ModListService = (*ModListServiceImpl)(nil)
