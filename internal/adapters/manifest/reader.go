// Package manifest reads the package identity from a package.json manifest.
package manifest

import (
	"errors"
	"os"

	"github.com/tidwall/gjson"
	"go.trai.ch/distpack/internal/core/domain"
	"go.trai.ch/distpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*Reader)(nil)

// Reader implements ports.ManifestReader for JSON package manifests.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the manifest at path and returns its name and version.
// Both fields must be non-empty strings.
func (r *Reader) Read(path string) (domain.PackageIdentity, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from project config
	if err != nil {
		return domain.PackageIdentity{}, errors.Join(
			domain.ErrManifestReadFailed,
			zerr.With(zerr.Wrap(err, "read manifest"), "path", path),
		)
	}

	return Parse(path, data)
}

// Parse extracts the package identity from raw manifest bytes.
// The path is only used to annotate errors.
func Parse(path string, data []byte) (domain.PackageIdentity, error) {
	if !gjson.ValidBytes(data) {
		return domain.PackageIdentity{}, errors.Join(
			domain.ErrManifestParseFailed,
			zerr.With(zerr.New("invalid JSON"), "path", path),
		)
	}

	fields := gjson.GetManyBytes(data, "name", "version")
	id := domain.PackageIdentity{
		Name:    stringField(fields[0]),
		Version: stringField(fields[1]),
	}
	if err := id.Validate(); err != nil {
		return domain.PackageIdentity{}, errors.Join(err, zerr.With(zerr.New("invalid manifest"), "path", path))
	}
	return id, nil
}

func stringField(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}
