package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/curator/internal/ports/primary"
)

// ModListAdapter is a thin adapter that translates CLI operations to
// ModListService calls.
type ModListAdapter struct {
	service primary.ModListService
	out     io.Writer
}

// NewModListAdapter creates a new ModListAdapter with the given service.
func NewModListAdapter(service primary.ModListService, out io.Writer) *ModListAdapter {
	return &ModListAdapter{
		service: service,
		out:     out,
	}
}

// List prints all entries in store priority order.
func (a *ModListAdapter) List(ctx context.Context) error {
	mods, err := a.service.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list mods: %w", err)
	}

	if len(mods) == 0 {
		fmt.Fprintln(a.out, "Ledger is empty; seed it with: curator import <file>")
		return nil
	}

	fmt.Fprintf(a.out, "\n%8s  %s\n", "PRIORITY", "NAME")
	fmt.Fprintln(a.out, "──────────────────────────────────────────────────")
	for _, m := range mods {
		name := m.Name
		if m.Separator {
			name = color.New(color.FgHiBlue).Sprint(name)
		}
		fmt.Fprintf(a.out, "%8d  %s\n", m.Priority, name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single entry, referenced by ID or name.
func (a *ModListAdapter) Show(ctx context.Context, ref string) error {
	mod, err := a.service.GetMod(ctx, ref)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nMod:      %s\n", mod.Name)
	fmt.Fprintf(a.out, "ID:       %s\n", mod.ID)
	fmt.Fprintf(a.out, "Priority: %d\n", mod.Priority)
	if mod.Separator {
		fmt.Fprintln(a.out, "Kind:     separator")
	}
	fmt.Fprintf(a.out, "Created:  %s\n", mod.CreatedAt)
	fmt.Fprintf(a.out, "Updated:  %s\n", mod.UpdatedAt)
	fmt.Fprintln(a.out)

	return nil
}

// Import seeds the ledger from ordered names.
func (a *ModListAdapter) Import(ctx context.Context, names []string, replace bool) error {
	resp, err := a.service.Import(ctx, primary.ImportRequest{
		Names:   names,
		Replace: replace,
	})
	if err != nil {
		return err
	}

	if resp.Replaced {
		fmt.Fprintf(a.out, "✓ Replaced ledger with %d entries\n", resp.Imported)
	} else {
		fmt.Fprintf(a.out, "✓ Imported %d entries\n", resp.Imported)
	}
	return nil
}

// Status prints ledger counters and the manifest generation.
func (a *ModListAdapter) Status(ctx context.Context) error {
	status, err := a.service.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nEntries:    %d\n", status.Entries)
	fmt.Fprintf(a.out, "Separators: %d\n", status.Separators)
	fmt.Fprintf(a.out, "Protected:  %d\n", status.Protected)
	fmt.Fprintf(a.out, "Manifest:   generation %d\n", status.ManifestGeneration)
	fmt.Fprintln(a.out)

	return nil
}
