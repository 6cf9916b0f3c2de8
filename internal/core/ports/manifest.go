package ports

import "go.trai.ch/distpack/internal/core/domain"

// ManifestReader reads the package identity from a library manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Read parses the manifest at path and returns its name and version.
	Read(path string) (domain.PackageIdentity, error)
}
