package ports

import "go.trai.ch/distpack/internal/core/domain"

// AssemblyStore defines the interface for storing and retrieving assembly records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type AssemblyStore interface {
	// Get retrieves the record for a given output directory.
	// Returns nil, nil if not found.
	Get(outDir string) (*domain.AssemblyRecord, error)

	// Put stores the record, replacing any previous record for the same output directory.
	Put(record domain.AssemblyRecord) error
}

// StoreOpener opens the assembly store backed by a state file.
type StoreOpener interface {
	Open(path string) (AssemblyStore, error)
}
