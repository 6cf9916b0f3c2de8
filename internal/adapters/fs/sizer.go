package fs

import (
	"errors"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"go.trai.ch/distpack/internal/core/domain"
	"go.trai.ch/distpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SizeReporter = (*Sizer)(nil)

// Sizer reports raw and gzip sizes of bundle entries.
type Sizer struct {
	level int
}

// NewSizer creates a new Sizer compressing at the default gzip level.
func NewSizer() *Sizer {
	return &Sizer{level: gzip.DefaultCompression}
}

// Measure sizes every format entry in order. A missing entry is an ErrFileAccess.
func (s *Sizer) Measure(root, outDir string, formats []domain.OutputFormat) ([]domain.EntrySize, error) {
	sizes := make([]domain.EntrySize, 0, len(formats))
	for _, f := range formats {
		rel := f.EntryPath(outDir)
		size, gz, err := s.measure(resolve(root, rel))
		if err != nil {
			return nil, errors.Join(domain.ErrFileAccess, zerr.With(err, "format", f.Name))
		}
		sizes = append(sizes, domain.EntrySize{Format: f, Path: rel, Size: size, GzipSize: gz})
	}
	return sizes, nil
}

func (s *Sizer) measure(path string) (raw, compressed int64, err error) {
	f, err := os.Open(path) //nolint:gosec // path comes from project config
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, "failed to open entry"), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	var counter countingWriter
	zw, err := gzip.NewWriterLevel(&counter, s.level)
	if err != nil {
		return 0, 0, zerr.Wrap(err, "failed to create gzip writer")
	}

	raw, err = io.Copy(zw, f)
	if err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, "failed to compress entry"), "path", path)
	}
	if err := zw.Close(); err != nil {
		return 0, 0, zerr.With(zerr.Wrap(err, "failed to compress entry"), "path", path)
	}
	return raw, counter.n, nil
}

type countingWriter struct {
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}
