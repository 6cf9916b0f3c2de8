package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// successMarker follows the package name and version in the completion notice.
const successMarker = "版本打包成功 🎉🎉🎉"

// PackageIdentity is the name and version read from the library manifest.
type PackageIdentity struct {
	Name    string
	Version string
}

// Validate ensures both manifest fields are present.
func (p PackageIdentity) Validate() error {
	if p.Name == "" {
		return errors.Join(ErrManifestMissingField, zerr.With(zerr.New("invalid manifest"), "field", "name"))
	}
	if p.Version == "" {
		return errors.Join(ErrManifestMissingField, zerr.With(zerr.New("invalid manifest"), "field", "version"))
	}
	return nil
}

// SuccessMessage formats the line printed once assembly completes.
func (p PackageIdentity) SuccessMessage() string {
	return p.Name + " " + p.Version + " " + successMarker
}
