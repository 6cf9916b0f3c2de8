// Package config provides the configuration loader for distpack.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/distpack/internal/core/domain"
	"go.trai.ch/distpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	Manifest ports.ManifestReader
}

// NewLoader creates a new Loader with the given logger and manifest reader.
func NewLoader(logger ports.Logger, manifest ports.ManifestReader) *Loader {
	return &Loader{Logger: logger, Manifest: manifest}
}

// Load reads the configuration and the package manifest it points to.
//
// An empty configPath looks for distpack.yaml in cwd and falls back to the
// built-in defaults when it is absent. An explicit configPath must exist.
func (l *Loader) Load(cwd, configPath string) (*domain.Project, error) {
	root, err := filepath.Abs(cwd)
	if err != nil {
		return nil, errors.Join(domain.ErrFailedToGetRoot, err)
	}

	distfile, root, err := l.readDistfile(root, configPath)
	if err != nil {
		return nil, err
	}

	overrides, err := ParseOverrides()
	if err != nil {
		return nil, err
	}
	if err := overrides.Apply(&distfile); err != nil {
		return nil, err
	}

	project, err := buildProject(root, &distfile)
	if err != nil {
		return nil, err
	}

	identity, err := l.Manifest.Read(project.Assembly.Path(project.ManifestPath))
	if err != nil {
		return nil, err
	}
	project.Identity = identity

	return project, nil
}

// readDistfile returns the parsed file and the directory relative paths resolve against.
func (l *Loader) readDistfile(cwd, configPath string) (Distfile, string, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = domain.ConfigFileName
	}
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return Distfile{}, "", errors.Join(domain.ErrConfigNotFound, zerr.With(err, "path", configPath))
			}
			l.Logger.Warn(fmt.Sprintf("%s not found in %s, using defaults", domain.ConfigFileName, cwd))
			return Distfile{}, cwd, nil
		}
		return Distfile{}, "", errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", configPath))
	}

	var distfile Distfile
	if err := yaml.Unmarshal(data, &distfile); err != nil {
		return Distfile{}, "", errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", configPath))
	}

	return distfile, filepath.Dir(configPath), nil
}

func buildProject(root string, d *Distfile) (*domain.Project, error) {
	if d.Version != "" && d.Version != "1" {
		return nil, errors.Join(
			domain.ErrUnsupportedConfigVersion,
			zerr.With(zerr.New("invalid config"), "version", d.Version),
		)
	}

	outDir := orDefault(d.OutDir, domain.DefaultOutDir)
	manifestPath := orDefault(d.Manifest, domain.DefaultManifestPath)

	ensureOutDir := true
	if d.EnsureOutDir != nil {
		ensureOutDir = *d.EnsureOutDir
	}

	copies := domain.DefaultCopySpecs(outDir, manifestPath)
	if len(d.Copy) > 0 {
		copies = make([]domain.CopySpec, 0, len(d.Copy))
		for _, dto := range d.Copy {
			if dto.Src == "" || dto.Dest == "" {
				err := zerr.With(zerr.New("invalid copy entry"), "src", dto.Src)
				return nil, errors.Join(domain.ErrEmptyCopyPath, zerr.With(err, "dest", dto.Dest))
			}
			copies = append(copies, domain.NewCopySpec(dto.Src, outDir, dto.Dest))
		}
	}

	assembly := domain.AssemblyConfig{
		Root:         root,
		OutDir:       filepath.Clean(outDir),
		EnsureOutDir: ensureOutDir,
		Copies:       copies,
	}
	if err := assembly.Validate(); err != nil {
		return nil, err
	}

	steps, err := buildSteps(d.Build)
	if err != nil {
		return nil, err
	}

	limit := domain.DefaultChunkSizeWarningLimit
	if d.ChunkSizeWarningLimit != nil {
		limit = *d.ChunkSizeWarningLimit
	}
	if limit <= 0 {
		return nil, errors.Join(
			domain.ErrInvalidSizeLimit,
			zerr.With(zerr.New("invalid config"), "chunk_size_warning_limit", limit),
		)
	}

	return &domain.Project{
		Assembly:              assembly,
		ManifestPath:          manifestPath,
		StateFile:             orDefault(d.StateFile, domain.DefaultStateFile),
		Steps:                 steps,
		Formats:               buildFormats(d.Formats),
		ChunkSizeWarningLimit: limit,
	}, nil
}

func buildSteps(dtos []StepDTO) ([]domain.BuildStep, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	steps := make([]domain.BuildStep, 0, len(dtos))
	for i, dto := range dtos {
		if len(dto.Cmd) == 0 {
			return nil, errors.Join(
				domain.ErrEmptyBuildCommand,
				zerr.With(zerr.New("invalid build step"), "step", stepName(dto.Name, i)),
			)
		}
		steps = append(steps, domain.BuildStep{
			Name:        stepName(dto.Name, i),
			Command:     dto.Cmd,
			WorkingDir:  dto.WorkingDir,
			Environment: dto.Environment,
		})
	}
	return steps, nil
}

func buildFormats(dtos []FormatDTO) []domain.OutputFormat {
	if len(dtos) == 0 {
		return domain.DefaultOutputFormats()
	}

	formats := make([]domain.OutputFormat, len(dtos))
	for i, dto := range dtos {
		formats[i] = domain.OutputFormat{Name: dto.Name, Dir: dto.Dir, Entry: dto.Entry}
	}
	return formats
}

func stepName(name string, index int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("step-%d", index+1)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
