package ports

import "go.trai.ch/distpack/internal/core/domain"

// SizeReporter measures bundle entries.
//
//go:generate go run go.uber.org/mock/mockgen -source=sizer.go -destination=mocks/mock_sizer.go -package=mocks
type SizeReporter interface {
	// Measure returns the raw and gzip-compressed size of every format entry under root.
	Measure(root, outDir string, formats []domain.OutputFormat) ([]domain.EntrySize, error)
}
