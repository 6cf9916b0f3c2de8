package ports

import (
	"context"

	"go.trai.ch/distpack/internal/core/domain"
)

// Verifier checks a finished output directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// VerifyLayout returns the formats whose entry file is missing under root.
	VerifyLayout(root, outDir string, formats []domain.OutputFormat) ([]domain.OutputFormat, error)

	// VerifyIntegrity re-hashes every artifact of record under root and reports any drift.
	VerifyIntegrity(ctx context.Context, root string, record *domain.AssemblyRecord) error
}
