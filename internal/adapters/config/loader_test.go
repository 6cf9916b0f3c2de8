package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/distpack/internal/adapters/config"
	"go.trai.ch/distpack/internal/adapters/manifest"
	"go.trai.ch/distpack/internal/core/domain"
	"go.trai.ch/distpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const testManifest = `{"name":"fighting-design","version":"0.14.0"}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log, manifest.NewReader()), log
}

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, domain.DefaultManifestPath), testManifest)

	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	project, err := loader.Load(tmpDir, "")
	require.NoError(t, err)

	root, _ := filepath.Abs(tmpDir)
	assert.Equal(t, root, project.Assembly.Root)
	assert.Equal(t, "dist", project.Assembly.OutDir)
	assert.True(t, project.Assembly.EnsureOutDir)
	assert.Equal(t, domain.DefaultCopySpecs("dist", domain.DefaultManifestPath), project.Assembly.Copies)
	assert.Equal(t, domain.PackageIdentity{Name: "fighting-design", Version: "0.14.0"}, project.Identity)
	assert.Equal(t, domain.DefaultStateFile, project.StateFile)
	assert.Equal(t, domain.DefaultOutputFormats(), project.Formats)
	assert.InDelta(t, domain.DefaultChunkSizeWarningLimit, project.ChunkSizeWarningLimit, 0)
	assert.Empty(t, project.Steps)
}

func TestLoad_File(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "pkg", "package.json"), testManifest)
	writeFile(t, filepath.Join(tmpDir, domain.ConfigFileName), `
version: "1"
outDir: build
manifest: pkg/package.json
ensureOutDir: false
stateFile: .cache/state.json
chunkSizeWarningLimit: 500
copy:
  - src: README.md
    dest: README.md
  - src: CHANGELOG.md
    dest: docs/CHANGELOG.md
build:
  - name: bundle
    cmd: ["pnpm", "vite", "build"]
    environment:
      NODE_ENV: production
  - cmd: ["pnpm", "tsc"]
formats:
  - name: es
    dir: es
    entry: index.mjs
`)

	loader, _ := newLoader(t)
	project, err := loader.Load(tmpDir, "")
	require.NoError(t, err)

	assert.Equal(t, "build", project.Assembly.OutDir)
	assert.False(t, project.Assembly.EnsureOutDir)
	assert.Equal(t, []domain.CopySpec{
		{Source: "README.md", Destination: filepath.Join("build", "README.md")},
		{Source: "CHANGELOG.md", Destination: filepath.Join("build", "docs", "CHANGELOG.md")},
	}, project.Assembly.Copies)
	assert.Equal(t, ".cache/state.json", project.StateFile)
	assert.InDelta(t, 500.0, project.ChunkSizeWarningLimit, 0)

	require.Len(t, project.Steps, 2)
	assert.Equal(t, "bundle", project.Steps[0].Name)
	assert.Equal(t, []string{"pnpm", "vite", "build"}, project.Steps[0].Command)
	assert.Equal(t, map[string]string{"NODE_ENV": "production"}, project.Steps[0].Environment)
	assert.Equal(t, "step-2", project.Steps[1].Name)

	assert.Equal(t, []domain.OutputFormat{{Name: "es", Dir: "es", Entry: "index.mjs"}}, project.Formats)
}

func TestLoad_ExplicitPathResolvesRoot(t *testing.T) {
	tmpDir := t.TempDir()
	projectDir := filepath.Join(tmpDir, "lib")
	writeFile(t, filepath.Join(projectDir, "package.json"), testManifest)
	writeFile(t, filepath.Join(projectDir, "release.yaml"), `
manifest: package.json
`)

	loader, _ := newLoader(t)
	project, err := loader.Load(tmpDir, "lib/release.yaml")
	require.NoError(t, err)

	assert.Equal(t, projectDir, project.Assembly.Root)
	assert.Equal(t, "fighting-design", project.Identity.Name)
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "alt", "package.json"), `{"name":"alt","version":"2.0.0"}`)
	writeFile(t, filepath.Join(tmpDir, domain.ConfigFileName), `outDir: dist`)

	t.Setenv("DISTPACK_OUT_DIR", "out")
	t.Setenv("DISTPACK_MANIFEST", "alt/package.json")
	t.Setenv("DISTPACK_ENSURE_OUT_DIR", "false")

	loader, _ := newLoader(t)
	project, err := loader.Load(tmpDir, "")
	require.NoError(t, err)

	assert.Equal(t, "out", project.Assembly.OutDir)
	assert.False(t, project.Assembly.EnsureOutDir)
	assert.Equal(t, "alt", project.Identity.Name)
	assert.Equal(t, filepath.Join("out", "package.json"), project.Assembly.Copies[1].Destination)
	assert.Equal(t, filepath.Join("alt", "package.json"), project.Assembly.Copies[1].Source)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr error
	}{
		{
			name:    "invalid yaml",
			config:  "copy: [",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unsupported version",
			config:  `version: "2"`,
			wantErr: domain.ErrUnsupportedConfigVersion,
		},
		{
			name: "destination outside out dir",
			config: `
copy:
  - src: README.md
    dest: ../README.md
`,
			wantErr: domain.ErrDestinationOutsideOutDir,
		},
		{
			name: "empty copy source",
			config: `
copy:
  - dest: README.md
`,
			wantErr: domain.ErrEmptyCopyPath,
		},
		{
			name: "duplicate destination",
			config: `
copy:
  - src: README.md
    dest: README.md
  - src: docs/README.md
    dest: README.md
`,
			wantErr: domain.ErrDuplicateDestination,
		},
		{
			name: "source is destination",
			config: `
copy:
  - src: dist/README.md
    dest: README.md
`,
			wantErr: domain.ErrSourceIsDestination,
		},
		{
			name: "empty build command",
			config: `
build:
  - name: bundle
`,
			wantErr: domain.ErrEmptyBuildCommand,
		},
		{
			name:    "non-positive size limit",
			config:  "chunkSizeWarningLimit: 0",
			wantErr: domain.ErrInvalidSizeLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeFile(t, filepath.Join(tmpDir, domain.DefaultManifestPath), testManifest)
			writeFile(t, filepath.Join(tmpDir, domain.ConfigFileName), tt.config)

			loader, _ := newLoader(t)
			_, err := loader.Load(tmpDir, "")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_ExplicitConfigNotFound(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(t.TempDir(), "missing.yaml")
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoad_ManifestOverrideInsideOutDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "dist", "package.json"), testManifest)
	writeFile(t, filepath.Join(tmpDir, domain.ConfigFileName), `outDir: dist`)

	t.Setenv("DISTPACK_MANIFEST", "dist/package.json")

	loader, _ := newLoader(t)
	_, err := loader.Load(tmpDir, "")
	require.ErrorIs(t, err, domain.ErrSourceIsDestination)
}

func TestLoad_MissingManifest(t *testing.T) {
	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := loader.Load(t.TempDir(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestReadFailed)
}

func TestLoad_InvalidEnsureOutDirOverride(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, domain.DefaultManifestPath), testManifest)
	writeFile(t, filepath.Join(tmpDir, domain.ConfigFileName), `outDir: dist`)

	t.Setenv("DISTPACK_ENSURE_OUT_DIR", "sometimes")

	loader, _ := newLoader(t)
	_, err := loader.Load(tmpDir, "")
	require.ErrorIs(t, err, domain.ErrEnvParseFailed)
}
