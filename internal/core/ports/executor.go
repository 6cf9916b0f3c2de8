// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/distpack/internal/core/domain"
)

// Executor defines the interface for running external build steps.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the step's command and blocks until it exits.
	//
	// Relative working directories are resolved against root.
	// It returns an error if the command cannot be started or exits non-zero.
	Execute(ctx context.Context, root string, step *domain.BuildStep) error
}
