package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/curator/internal/ports/primary"
)

// mockModListService implements primary.ModListService for adapter tests.
type mockModListService struct {
	mods   []*primary.Mod
	status *primary.StoreStatus
	err    error

	lastImport primary.ImportRequest
}

var _ primary.ModListService = (*mockModListService)(nil)

func (m *mockModListService) List(ctx context.Context) ([]*primary.Mod, error) {
	return m.mods, m.err
}

func (m *mockModListService) GetMod(ctx context.Context, ref string) (*primary.Mod, error) {
	if len(m.mods) == 0 {
		return nil, m.err
	}
	return m.mods[0], nil
}

func (m *mockModListService) Import(ctx context.Context, req primary.ImportRequest) (*primary.ImportResponse, error) {
	m.lastImport = req
	return &primary.ImportResponse{Imported: len(req.Names), Replaced: req.Replace}, m.err
}

func (m *mockModListService) Status(ctx context.Context) (*primary.StoreStatus, error) {
	return m.status, m.err
}

func TestListEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewModListAdapter(&mockModListService{}, &buf)

	if err := adapter.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Ledger is empty") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestListShowsEntries(t *testing.T) {
	service := &mockModListService{
		mods: []*primary.Mod{
			{ID: "s", Name: "Core_separator", Priority: 0, Separator: true},
			{ID: "a", Name: "[NoDelete] Engine Fixes", Priority: 1},
		},
	}

	var buf bytes.Buffer
	adapter := NewModListAdapter(service, &buf)

	if err := adapter.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Core_separator") || !strings.Contains(out, "[NoDelete] Engine Fixes") {
		t.Errorf("output = %s", out)
	}
}

func TestShow(t *testing.T) {
	service := &mockModListService{
		mods: []*primary.Mod{
			{ID: "a", Name: "Engine Fixes", Priority: 3, CreatedAt: "2026-01-01T00:00:00Z"},
		},
	}

	var buf bytes.Buffer
	adapter := NewModListAdapter(service, &buf)

	if err := adapter.Show(context.Background(), "a"); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Engine Fixes") || !strings.Contains(out, "Priority: 3") {
		t.Errorf("output = %s", out)
	}
}

func TestImportForwardsRequest(t *testing.T) {
	service := &mockModListService{}

	var buf bytes.Buffer
	adapter := NewModListAdapter(service, &buf)

	err := adapter.Import(context.Background(), []string{"A", "B"}, true)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if !service.lastImport.Replace || len(service.lastImport.Names) != 2 {
		t.Errorf("request = %+v", service.lastImport)
	}
	if !strings.Contains(buf.String(), "Replaced ledger with 2 entries") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestStatusOutput(t *testing.T) {
	service := &mockModListService{
		status: &primary.StoreStatus{
			Entries:            12,
			Separators:         3,
			Protected:          7,
			ManifestGeneration: 5,
		},
	}

	var buf bytes.Buffer
	adapter := NewModListAdapter(service, &buf)

	if err := adapter.Status(context.Background()); err != nil {
		t.Fatalf("Status() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Entries:    12", "Protected:  7", "generation 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
