package ports

import "context"

// PostBuildHook is invoked once by the build pipeline after the external build completes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hook.go -destination=mocks/mock_hook.go -package=mocks
type PostBuildHook interface {
	OnBuildComplete(ctx context.Context) error
}
