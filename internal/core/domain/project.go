package domain

import (
	"errors"
	"path/filepath"

	"go.trai.ch/zerr"
)

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "distpack.yaml"
	// DefaultOutDir is the build output directory used when none is configured.
	DefaultOutDir = "dist"
	// DefaultManifestPath is the library manifest used when none is configured.
	DefaultManifestPath = "packages/fighting-design/package.json"
	// DefaultStateFile is where assembly records are persisted, relative to the project root.
	DefaultStateFile = ".distpack/state.json"

	// ReadmeFileName is the project readme copied into the output directory.
	ReadmeFileName = "README.md"
	// ManifestFileName is the name the manifest is given inside the output directory.
	ManifestFileName = "package.json"
	// LicenseFileName is the project license copied into the output directory.
	LicenseFileName = "LICENSE"
)

// AssemblyConfig is everything the artifact assembler needs, resolved once by the caller.
type AssemblyConfig struct {
	// Root is the directory all relative paths are resolved against.
	Root string
	// OutDir is the build output directory, relative to Root.
	OutDir string
	// EnsureOutDir creates missing destination directories before copying.
	EnsureOutDir bool
	// Copies are executed in order.
	Copies []CopySpec
}

// Validate checks the output directory and every copy spec.
func (c AssemblyConfig) Validate() error {
	if c.OutDir == "" {
		return ErrEmptyOutDir
	}

	seen := make(map[string]struct{}, len(c.Copies))
	for _, spec := range c.Copies {
		if err := spec.Validate(c.OutDir); err != nil {
			return err
		}
		dest := filepath.Clean(spec.Destination)
		if _, dup := seen[dest]; dup {
			err := zerr.With(zerr.New("invalid copy spec"), "dest", spec.Destination)
			return errors.Join(ErrDuplicateDestination, err)
		}
		seen[dest] = struct{}{}
	}
	return nil
}

// Path resolves a project-relative path against Root.
func (c AssemblyConfig) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Root, rel)
}

// Project is the fully loaded configuration of a library build.
type Project struct {
	Assembly     AssemblyConfig
	Identity     PackageIdentity
	ManifestPath string
	StateFile    string
	Steps        []BuildStep
	Formats      []OutputFormat

	// ChunkSizeWarningLimit is the entry size in kB above which the size report warns.
	ChunkSizeWarningLimit float64
}

// StatePath returns the absolute location of the assembly state file.
func (p *Project) StatePath() string {
	return p.Assembly.Path(p.StateFile)
}
