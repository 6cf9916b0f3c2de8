// Package app implements the application layer for distpack.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/distpack/internal/core/domain"
	"go.trai.ch/distpack/internal/core/ports"
	"go.trai.ch/distpack/internal/engine/assembler"
	"go.trai.ch/distpack/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *pipeline.Pipeline
	copier       ports.Copier
	hasher       ports.Hasher
	verifier     ports.Verifier
	sizer        ports.SizeReporter
	stores       ports.StoreOpener
	telemetry    ports.Telemetry
	logger       ports.Logger
	out          io.Writer
	sink         io.Writer
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	pl *pipeline.Pipeline,
	copier ports.Copier,
	hasher ports.Hasher,
	verifier ports.Verifier,
	sizer ports.SizeReporter,
	stores ports.StoreOpener,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		pipeline:     pl,
		copier:       copier,
		hasher:       hasher,
		verifier:     verifier,
		sizer:        sizer,
		stores:       stores,
		telemetry:    telemetry,
		logger:       log,
		out:          os.Stdout,
		sink:         os.Stderr,
	}
}

// WithOutput sets the writer that receives command reports such as the size table.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithDiagnosticSink sets the writer that receives the completion notice.
func (a *App) WithDiagnosticSink(w io.Writer) *App {
	a.sink = w
	return a
}

// WithWorkDir sets the directory the configuration is searched from.
// Defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// AssembleOptions configuration for the Assemble method.
type AssembleOptions struct {
	ConfigPath string
}

// Assemble runs the post-build assembly against an output directory the
// external build has already produced.
func (a *App) Assemble(ctx context.Context, opts AssembleOptions) error {
	project, err := a.load(opts.ConfigPath)
	if err != nil {
		return err
	}

	hook, err := a.newAssembler(project)
	if err != nil {
		return err
	}
	return hook.OnBuildComplete(ctx)
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	ConfigPath string
}

// Build runs the configured build steps and then assembles the output directory.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	project, err := a.load(opts.ConfigPath)
	if err != nil {
		return err
	}

	hook, err := a.newAssembler(project)
	if err != nil {
		return err
	}
	return a.pipeline.Run(ctx, project.Assembly.Root, project.Steps, hook)
}

// VerifyOptions configuration for the Verify method.
type VerifyOptions struct {
	ConfigPath string
	Layout     bool
}

// Verify checks the output directory against the last recorded assembly.
func (a *App) Verify(ctx context.Context, opts VerifyOptions) error {
	project, err := a.load(opts.ConfigPath)
	if err != nil {
		return err
	}
	root := project.Assembly.Root

	var errs error
	if opts.Layout {
		missing, err := a.verifier.VerifyLayout(root, project.Assembly.OutDir, project.Formats)
		for _, f := range missing {
			a.logger.Warn(fmt.Sprintf("missing %s entry %s", f.Name, f.EntryPath(project.Assembly.OutDir)))
		}
		errs = errors.Join(errs, err)
	}

	store, err := a.stores.Open(project.StatePath())
	if err != nil {
		return errors.Join(errs, err)
	}
	record, err := store.Get(project.Assembly.OutDir)
	if err != nil {
		return errors.Join(errs, err)
	}
	if record == nil {
		err := zerr.With(zerr.New("nothing to verify"), "out_dir", project.Assembly.OutDir)
		return errors.Join(errs, domain.ErrRecordNotFound, err)
	}

	if err := a.verifier.VerifyIntegrity(ctx, root, record); err != nil {
		return errors.Join(errs, err)
	}
	if errs != nil {
		return errs
	}

	a.logger.Info(fmt.Sprintf("%s %s: %d artifacts verified", record.Name, record.Version, len(record.Artifacts)))
	return nil
}

// ReportOptions configuration for the Report method.
type ReportOptions struct {
	ConfigPath string
}

// Report prints the raw and gzip size of every bundle entry and warns
// about entries above the configured chunk size limit.
func (a *App) Report(_ context.Context, opts ReportOptions) error {
	project, err := a.load(opts.ConfigPath)
	if err != nil {
		return err
	}

	sizes, err := a.sizer.Measure(project.Assembly.Root, project.Assembly.OutDir, project.Formats)
	if err != nil {
		return err
	}
	if err := renderSizes(a.out, sizes); err != nil {
		return zerr.Wrap(err, "failed to write size report")
	}

	for _, size := range sizes {
		if size.Exceeds(project.ChunkSizeWarningLimit) {
			a.logger.Warn(fmt.Sprintf("%s is larger than %.2f kB after bundling (%.2f kB)",
				filepath.ToSlash(size.Path), project.ChunkSizeWarningLimit, domain.KB(size.Size)))
		}
	}
	return nil
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) load(configPath string) (*domain.Project, error) {
	cwd := a.workDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Join(domain.ErrFailedToGetRoot, err)
		}
		cwd = wd
	}

	project, err := a.configLoader.Load(cwd, configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}

func (a *App) newAssembler(project *domain.Project) (*assembler.Assembler, error) {
	store, err := a.stores.Open(project.StatePath())
	if err != nil {
		return nil, err
	}

	return assembler.New(
		project.Assembly,
		project.Identity,
		a.copier,
		a.hasher,
		store,
		a.telemetry,
		a.logger,
		assembler.WithSink(a.sink),
	), nil
}
