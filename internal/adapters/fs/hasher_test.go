package fs_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/distpack/internal/adapters/fs"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file.txt")
	content := []byte("hello world")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	hasher := fs.NewHasher()
	got, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)

	assert.Len(t, got, 16)
	sum, err := strconv.ParseUint(got, 16, 64)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64(content), sum)
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
