package primary

import "context"

// ModListService defines the primary port for reading and seeding the ledger.
type ModListService interface {
	// List retrieves all entries in store priority order.
	List(ctx context.Context) ([]*Mod, error)

	// GetMod retrieves an entry by ID or, failing that, by exact name.
	GetMod(ctx context.Context, ref string) (*Mod, error)

	// Import seeds the ledger from an ordered list of names.
	Import(ctx context.Context, req ImportRequest) (*ImportResponse, error)

	// Status reports ledger counters and manifest generation.
	Status(ctx context.Context) (*StoreStatus, error)
}

// Mod represents a mod list entry at the port boundary.
type Mod struct {
	ID        string
	Name      string
	Priority  int
	Separator bool
	CreatedAt string
	UpdatedAt string
}

// ImportRequest contains parameters for seeding the ledger.
type ImportRequest struct {
	// Names, in intended priority order (top of the list first).
	Names []string
	// Replace clears existing entries before importing.
	Replace bool
}

// ImportResponse contains the result of an import.
type ImportResponse struct {
	Imported int
	Replaced bool
}

// StoreStatus reports ledger counters at the port boundary.
type StoreStatus struct {
	Entries            int
	Separators         int
	Protected          int
	ManifestGeneration int
}
