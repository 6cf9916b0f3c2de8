package app

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"go.trai.ch/distpack/internal/core/domain"
)

func renderSizes(w io.Writer, sizes []domain.EntrySize) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range sizes {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%.2f kB\tgzip: %.2f kB\n",
			s.Format.Name, filepath.ToSlash(s.Path), domain.KB(s.Size), domain.KB(s.GzipSize))
	}
	return tw.Flush()
}
