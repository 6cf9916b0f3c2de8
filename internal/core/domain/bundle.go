package domain

import "path/filepath"

// OutputFormat describes one bundle format emitted by the external bundler.
type OutputFormat struct {
	Name  string
	Dir   string
	Entry string
}

// EntryPath returns the entry file location relative to the project root.
func (f OutputFormat) EntryPath(outDir string) string {
	return filepath.Join(outDir, f.Dir, f.Entry)
}

// DefaultOutputFormats returns the UMD, ES module and CommonJS layouts of the library bundle.
func DefaultOutputFormats() []OutputFormat {
	return []OutputFormat{
		{Name: "umd", Dir: "dist", Entry: "index.umd.js"},
		{Name: "es", Dir: "es", Entry: "index.js"},
		{Name: "cjs", Dir: "lib", Entry: "index.js"},
	}
}

// DefaultChunkSizeWarningLimit is the entry size, in kB, above which a size warning is logged.
const DefaultChunkSizeWarningLimit = 2.0

// EntrySize is the measured size of one format entry.
type EntrySize struct {
	Format   OutputFormat
	Path     string
	Size     int64
	GzipSize int64
}

// Exceeds reports whether the raw entry size is above limitKB kilobytes.
func (e EntrySize) Exceeds(limitKB float64) bool {
	return KB(e.Size) > limitKB
}

// KB converts a byte count to kilobytes of 1000 bytes.
func KB(n int64) float64 {
	return float64(n) / 1000
}
