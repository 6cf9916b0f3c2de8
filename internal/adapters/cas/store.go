// Package cas persists assembly records in a flat JSON state file.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/distpack/internal/core/domain"
	"go.trai.ch/distpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.AssemblyStore = (*Store)(nil)
	_ ports.StoreOpener   = (*Opener)(nil)
)

// Store implements ports.AssemblyStore using a flat JSON file keyed by output directory.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.AssemblyRecord
}

// NewStore creates a new AssemblyStore backed by the file at the given path.
// A missing or empty file yields an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.AssemblyRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(domain.ErrStoreReadFailed, zerr.With(err, "path", s.path))
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return errors.Join(domain.ErrStoreUnmarshalFailed, zerr.With(err, "path", s.path))
	}

	return nil
}

// save must be called with s.mu held.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrStoreMarshalFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(err, "path", dir))
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(err, "path", s.path))
	}

	return nil
}

// Get retrieves the record for a given output directory.
func (s *Store) Get(outDir string) (*domain.AssemblyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[filepath.Clean(outDir)]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and writes the state file.
func (s *Store) Put(record domain.AssemblyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[filepath.Clean(record.OutDir)] = record
	return s.save()
}

// Opener opens Stores by path.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open loads the store backed by the state file at path.
func (o *Opener) Open(path string) (ports.AssemblyStore, error) {
	return NewStore(path)
}
