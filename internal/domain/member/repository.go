package member

import "context"

// Repository persists a whole registry at once.
type Repository interface {
	// Save overwrites the stored members with the registry contents.
	Save(ctx context.Context, registry *Registry) error
	// Load reads every stored member into a new registry. A missing store
	// yields an empty registry.
	Load(ctx context.Context) (*Registry, *LoadReport, error)
}

// LoadReport summarises a load.
type LoadReport struct {
	Source  string
	Loaded  int
	Skipped []SkippedRecord
}

// SkippedRecord is a stored record that could not be turned into a member.
type SkippedRecord struct {
	Line   int
	Reason string
}
