package ports

// Copier copies single files on the local file system.
//
//go:generate go run go.uber.org/mock/mockgen -source=copier.go -destination=mocks/mock_copier.go -package=mocks
type Copier interface {
	// Copy writes the contents of src to dst, replacing anything already at dst.
	// It returns the number of bytes written.
	Copy(src, dst string) (int64, error)

	// EnsureDir creates dir and any missing parents.
	EnsureDir(dir string) error
}
