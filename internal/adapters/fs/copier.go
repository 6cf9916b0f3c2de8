// Package fs provides file-system adapters for copying, hashing and verifying artifacts.
package fs

import (
	"errors"
	"io"
	"os"

	"go.trai.ch/distpack/internal/core/domain"
	"go.trai.ch/distpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Copier = (*Copier)(nil)

// dirPerm is the mode used for directories created in the output tree.
const dirPerm = 0o755

// Copier copies regular files, overwriting destinations.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// Copy writes src to dst with the source's permission bits.
// An existing dst is truncated and replaced; no backup is kept.
// Copying a file onto itself fails with ErrSourceIsDestination.
func (c *Copier) Copy(src, dst string) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}
	if !info.Mode().IsRegular() {
		return 0, errors.Join(domain.ErrNotRegularFile, zerr.With(zerr.New("invalid copy source"), "path", src))
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return 0, errors.Join(domain.ErrSourceIsDestination, zerr.With(zerr.New("invalid copy destination"), "path", dst))
	}

	in, err := os.Open(src) //nolint:gosec // path comes from project config
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open source"), "path", src)
	}
	defer in.Close() //nolint:errcheck // read-only handle

	//nolint:gosec // path comes from project config
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open destination"), "path", dst)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, zerr.With(zerr.Wrap(err, "failed to copy file content"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return n, zerr.With(zerr.Wrap(err, "failed to close destination"), "path", dst)
	}
	return n, nil
}

// EnsureDir creates dir and any missing parents.
func (c *Copier) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}
	return nil
}
