// Package assembler implements the post-build step that completes the distributable directory.
package assembler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/distpack/internal/core/domain"
	"go.trai.ch/distpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PostBuildHook = (*Assembler)(nil)

// Assembler copies the packaging files into the output directory once the bundle exists,
// records what it copied and announces the finished package.
type Assembler struct {
	cfg       domain.AssemblyConfig
	identity  domain.PackageIdentity
	copier    ports.Copier
	hasher    ports.Hasher
	store     ports.AssemblyStore
	telemetry ports.Telemetry
	logger    ports.Logger
	sink      io.Writer
	now       func() time.Time
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithSink sets the writer that receives the completion notice. Defaults to os.Stderr.
func WithSink(w io.Writer) Option {
	return func(a *Assembler) {
		a.sink = w
	}
}

// WithClock sets the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

// New creates a new Assembler for cfg. The manifest identity is resolved by the caller.
func New(
	cfg domain.AssemblyConfig,
	identity domain.PackageIdentity,
	copier ports.Copier,
	hasher ports.Hasher,
	store ports.AssemblyStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
	opts ...Option,
) *Assembler {
	a := &Assembler{
		cfg:       cfg,
		identity:  identity,
		copier:    copier,
		hasher:    hasher,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
		sink:      os.Stderr,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// OnBuildComplete copies every spec in order and stops at the first failure.
// The completion notice is written only after all copies are recorded.
func (a *Assembler) OnBuildComplete(ctx context.Context) error {
	artifacts := make([]domain.ArtifactRecord, 0, len(a.cfg.Copies))
	for _, spec := range a.cfg.Copies {
		artifact, err := a.copyWithVertex(ctx, spec)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, artifact)
	}

	record := domain.AssemblyRecord{
		Name:      a.identity.Name,
		Version:   a.identity.Version,
		OutDir:    filepath.Clean(a.cfg.OutDir),
		Artifacts: artifacts,
		Timestamp: a.now().UTC(),
	}
	if err := a.store.Put(record); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("assembled %d artifacts into %s", len(artifacts), a.cfg.OutDir))

	if _, err := fmt.Fprintf(a.sink, "\n%s\n\n", a.identity.SuccessMessage()); err != nil {
		return zerr.Wrap(err, "failed to write completion notice")
	}
	return nil
}

func (a *Assembler) copyWithVertex(ctx context.Context, spec domain.CopySpec) (domain.ArtifactRecord, error) {
	_, vertex := a.telemetry.Record(ctx, "copy "+spec.Destination)
	artifact, err := a.copy(spec)
	vertex.Complete(err)
	return artifact, err
}

func (a *Assembler) copy(spec domain.CopySpec) (domain.ArtifactRecord, error) {
	src := a.cfg.Path(spec.Source)
	dst := a.cfg.Path(spec.Destination)

	if a.cfg.EnsureOutDir {
		if err := a.copier.EnsureDir(filepath.Dir(dst)); err != nil {
			return domain.ArtifactRecord{}, fileAccess(err, spec)
		}
	}

	size, err := a.copier.Copy(src, dst)
	if err != nil {
		return domain.ArtifactRecord{}, fileAccess(err, spec)
	}

	srcDigest, err := a.hasher.ComputeFileHash(src)
	if err != nil {
		return domain.ArtifactRecord{}, fileAccess(err, spec)
	}
	dstDigest, err := a.hasher.ComputeFileHash(dst)
	if err != nil {
		return domain.ArtifactRecord{}, fileAccess(err, spec)
	}
	if srcDigest != dstDigest {
		err := zerr.With(zerr.New("copied file differs from source"), "src", spec.Source)
		err = zerr.With(err, "dest", spec.Destination)
		return domain.ArtifactRecord{}, errors.Join(domain.ErrIntegrityMismatch, err)
	}

	return domain.ArtifactRecord{
		Source:      spec.Source,
		Destination: spec.Destination,
		Digest:      dstDigest,
		Size:        size,
	}, nil
}

func fileAccess(err error, spec domain.CopySpec) error {
	err = zerr.With(zerr.Wrap(err, "failed to copy artifact"), "src", spec.Source)
	return errors.Join(domain.ErrFileAccess, zerr.With(err, "dest", spec.Destination))
}
