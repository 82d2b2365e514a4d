package app

import (
	"context"
	"fmt"

	"github.com/example/curator/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.ModListStore       = (*mockModListStore)(nil)
	_ secondary.ModRepository      = (*mockModRepository)(nil)
	_ secondary.BatchRunRepository = (*mockBatchRunRepository)(nil)
	_ secondary.LogWriter          = (*mockLogWriter)(nil)
)

// mockModListStore implements secondary.ModListStore for testing.
// It records the exact external-call trace so tests can assert ordering.
type mockModListStore struct {
	entries     []*secondary.ModRecord
	calls       []string
	queryErr    error
	applyErrOn  string
	applyErr    error
	finalizeErr error
	generation  int
}

func newMockStore(names ...string) *mockModListStore {
	store := &mockModListStore{}
	for i, name := range names {
		store.entries = append(store.entries, &secondary.ModRecord{
			ID:       fmt.Sprintf("%d", i+1),
			Name:     name,
			Priority: i,
		})
	}
	return store
}

func (m *mockModListStore) QueryOrderedEntries(ctx context.Context) ([]*secondary.ModRecord, error) {
	m.calls = append(m.calls, "query")
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	out := make([]*secondary.ModRecord, len(m.entries))
	for i, e := range m.entries {
		copied := *e
		out[i] = &copied
	}
	return out, nil
}

func (m *mockModListStore) ApplyOne(ctx context.Context, id, newName string) error {
	m.calls = append(m.calls, fmt.Sprintf("apply(%s,%s)", id, newName))
	if m.applyErrOn == id {
		return m.applyErr
	}
	for _, e := range m.entries {
		if e.ID == id {
			e.Name = newName
			return nil
		}
	}
	return fmt.Errorf("mod %s not found", id)
}

func (m *mockModListStore) Finalize(ctx context.Context) error {
	m.calls = append(m.calls, "finalize")
	if m.finalizeErr != nil {
		return m.finalizeErr
	}
	m.generation++
	return nil
}

// mockModRepository implements secondary.ModRepository for testing.
type mockModRepository struct {
	store     *mockModListStore
	createErr error
}

func (m *mockModRepository) Create(ctx context.Context, record *secondary.ModRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	copied := *record
	m.store.entries = append(m.store.entries, &copied)
	return nil
}

func (m *mockModRepository) GetByID(ctx context.Context, id string) (*secondary.ModRecord, error) {
	for _, e := range m.store.entries {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("mod %s not found", id)
}

func (m *mockModRepository) GetByName(ctx context.Context, name string) (*secondary.ModRecord, error) {
	for _, e := range m.store.entries {
		if e.Name == name {
			copied := *e
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("mod %q not found", name)
}

func (m *mockModRepository) MaxPriority(ctx context.Context) (int, error) {
	max := -1
	for _, e := range m.store.entries {
		if e.Priority > max {
			max = e.Priority
		}
	}
	return max, nil
}

func (m *mockModRepository) DeleteAll(ctx context.Context) error {
	m.store.entries = nil
	return nil
}

func (m *mockModRepository) ManifestGeneration(ctx context.Context) (int, error) {
	return m.store.generation, nil
}

// mockBatchRunRepository implements secondary.BatchRunRepository for testing.
type mockBatchRunRepository struct {
	runs      []*secondary.BatchRunRecord
	createErr error
}

func (m *mockBatchRunRepository) Create(ctx context.Context, run *secondary.BatchRunRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	copied := *run
	m.runs = append(m.runs, &copied)
	return nil
}

func (m *mockBatchRunRepository) GetByID(ctx context.Context, id string) (*secondary.BatchRunRecord, error) {
	for _, r := range m.runs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("batch run %s not found", id)
}

func (m *mockBatchRunRepository) List(ctx context.Context, limit int) ([]*secondary.BatchRunRecord, error) {
	out := make([]*secondary.BatchRunRecord, 0, len(m.runs))
	for i := len(m.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.runs[i])
	}
	return out, nil
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	entries []string
	err     error
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, fmt.Sprintf("create:%s:%s", entityType, entityID))
	return nil
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, fmt.Sprintf("update:%s:%s:%s:%s->%s", entityType, entityID, fieldName, oldValue, newValue))
	return nil
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityType, entityID string) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, fmt.Sprintf("delete:%s:%s", entityType, entityID))
	return nil
}

// newBatchService wires a BatchService over the given mock store.
func newBatchService(store *mockModListStore) (*BatchServiceImpl, *mockBatchRunRepository, *mockLogWriter) {
	runRepo := &mockBatchRunRepository{}
	logWriter := &mockLogWriter{}
	return NewBatchService(store, runRepo, logWriter), runRepo, logWriter
}
