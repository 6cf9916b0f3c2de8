package cas_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.trai.ch/distpack/internal/adapters/cas"
	"go.trai.ch/distpack/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, ".distpack", "state.json")

	store, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	record := domain.AssemblyRecord{
		Name:    "fighting-design",
		Version: "0.14.0",
		OutDir:  "dist",
		Artifacts: []domain.ArtifactRecord{
			{Source: "README.md", Destination: "dist/README.md", Digest: "abc", Size: 5},
		},
		Timestamp: time.Now(),
	}

	if err := store.Put(record); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get("dist/")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Version != record.Version {
		t.Errorf("expected Version %q, got %q", record.Version, got.Version)
	}
	if len(got.Artifacts) != 1 || got.Artifacts[0].Digest != "abc" {
		t.Errorf("unexpected artifacts: %+v", got.Artifacts)
	}
}

func TestStore_GetMissing(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := store.Get("dist")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil record, got %+v", got)
	}
}

func TestStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "state.json")

	// 1. Create store and save data
	store1, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 1 failed: %v", err)
	}
	if err := store1.Put(domain.AssemblyRecord{OutDir: "dist", Version: "1.0.0"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// 2. Open the same file through the opener
	store2, err := cas.NewOpener().Open(storePath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	got, err := store2.Get("dist")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Version != "1.0.0" {
		t.Errorf("expected persisted record with version 1.0.0, got %+v", got)
	}
}

func TestStore_OmitZero(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")

	store, err := cas.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.Put(domain.AssemblyRecord{OutDir: "dist"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	//nolint:gosec // Test file with controlled path
	content, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	jsonStr := string(content)
	for _, field := range []string{"version", "artifacts", "timestamp"} {
		if strings.Contains(jsonStr, `"`+field+`"`) {
			t.Errorf("JSON should not contain %q for zero value: %s", field, jsonStr)
		}
	}
	if !strings.Contains(jsonStr, "out_dir") {
		t.Error("JSON should contain 'out_dir'")
	}
}

func TestStore_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(storePath, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := cas.NewStore(storePath)
	if err == nil {
		t.Fatal("expected error for corrupt state file, got nil")
	}
	if !errors.Is(err, domain.ErrStoreUnmarshalFailed) {
		t.Errorf("expected ErrStoreUnmarshalFailed, got: %v", err)
	}
}
