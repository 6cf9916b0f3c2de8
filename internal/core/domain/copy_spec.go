package domain

import (
	"errors"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// CopySpec describes one packaging copy: a source file and the path it is copied to.
// Both paths are relative to the project root.
type CopySpec struct {
	Source      string
	Destination string
}

// NewCopySpec builds a CopySpec whose destination is dest placed inside outDir.
func NewCopySpec(src, outDir, dest string) CopySpec {
	return CopySpec{
		Source:      filepath.Clean(src),
		Destination: filepath.Join(outDir, dest),
	}
}

// DefaultCopySpecs returns the readme, manifest and license copies in their fixed order.
func DefaultCopySpecs(outDir, manifestPath string) []CopySpec {
	return []CopySpec{
		NewCopySpec(ReadmeFileName, outDir, ReadmeFileName),
		NewCopySpec(manifestPath, outDir, ManifestFileName),
		NewCopySpec(LicenseFileName, outDir, LicenseFileName),
	}
}

// Validate checks that both paths are set and that the destination stays inside outDir.
func (c CopySpec) Validate(outDir string) error {
	if c.Source == "" || c.Destination == "" {
		err := zerr.With(zerr.New("invalid copy spec"), "src", c.Source)
		return errors.Join(ErrEmptyCopyPath, zerr.With(err, "dest", c.Destination))
	}

	rel, err := filepath.Rel(filepath.Clean(outDir), filepath.Clean(c.Destination))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		err := zerr.With(zerr.New("invalid copy destination"), "dest", c.Destination)
		return errors.Join(ErrDestinationOutsideOutDir, zerr.With(err, "out_dir", outDir))
	}

	if filepath.Clean(c.Source) == filepath.Clean(c.Destination) {
		return errors.Join(ErrSourceIsDestination, zerr.With(zerr.New("invalid copy spec"), "path", c.Source))
	}
	return nil
}
