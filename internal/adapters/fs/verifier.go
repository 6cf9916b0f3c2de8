package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/distpack/internal/core/domain"
	"go.trai.ch/distpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks bundle layout and artifact integrity in an output directory.
type Verifier struct {
	hasher ports.Hasher
	limit  int
}

// NewVerifier creates a new Verifier that hashes with the given hasher.
func NewVerifier(hasher ports.Hasher) *Verifier {
	return &Verifier{hasher: hasher, limit: runtime.NumCPU()}
}

// VerifyLayout returns the formats whose entry file does not exist.
// It returns ErrBundleIncomplete alongside the list when any are missing.
func (v *Verifier) VerifyLayout(root, outDir string, formats []domain.OutputFormat) ([]domain.OutputFormat, error) {
	var missing []domain.OutputFormat
	for _, f := range formats {
		path := resolve(root, f.EntryPath(outDir))
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, f)
				continue
			}
			return nil, errors.Join(domain.ErrFileAccess, zerr.With(zerr.Wrap(err, "failed to stat entry"), "path", path))
		}
	}

	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = f.Name
		}
		err := zerr.With(zerr.New("missing format entries"), "formats", strings.Join(names, ","))
		return missing, errors.Join(domain.ErrBundleIncomplete, err)
	}
	return nil, nil
}

// VerifyIntegrity re-hashes every recorded artifact concurrently.
// All failures are collected; a missing file is an ErrFileAccess and
// changed content is an ErrIntegrityMismatch.
func (v *Verifier) VerifyIntegrity(ctx context.Context, root string, record *domain.AssemblyRecord) error {
	if record == nil {
		return nil
	}

	var (
		mu   sync.Mutex
		errs error
	)
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = errors.Join(errs, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.limit)

	for _, artifact := range record.Artifacts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			path := resolve(root, artifact.Destination)
			digest, err := v.hasher.ComputeFileHash(path)
			if err != nil {
				fail(errors.Join(domain.ErrFileAccess, err))
				return nil
			}
			if digest != artifact.Digest {
				err := zerr.With(zerr.New("artifact changed since assembly"), "path", artifact.Destination)
				err = zerr.With(err, "expected", artifact.Digest)
				fail(errors.Join(domain.ErrIntegrityMismatch, zerr.With(err, "actual", digest)))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Join(errs, err)
	}
	return errs
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
