package session

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"go3dview/pkg/transform"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "model.obj")

	p := transform.NewParameters()
	p.Translate(transform.AxisX, 5)
	p.Rotate(transform.AxisZ, math.Pi/2)
	p.SetScale(2)

	if err := Save(modelPath, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, found, err := Load(modelPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatal("expected sidecar to be found")
	}
	if loaded != p {
		t.Errorf("roundtrip mismatch: saved %+v, loaded %+v", p, loaded)
	}
}

func TestLoadMissingSidecar(t *testing.T) {
	loaded, found, err := Load(filepath.Join(t.TempDir(), "model.obj"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if found {
		t.Error("expected no sidecar")
	}
	if !loaded.IsIdentity() {
		t.Errorf("expected identity transform, got %+v", loaded)
	}
}

func TestSaveIdentityRemovesSidecar(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "model.obj")

	p := transform.NewParameters()
	p.Translate(transform.AxisY, 1)
	if err := Save(modelPath, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(PathFor(modelPath)); err != nil {
		t.Fatalf("expected sidecar to exist: %v", err)
	}

	if err := Save(modelPath, transform.NewParameters()); err != nil {
		t.Fatalf("Save of identity failed: %v", err)
	}
	if _, err := os.Stat(PathFor(modelPath)); !os.IsNotExist(err) {
		t.Error("expected identity save to remove the sidecar")
	}
}

func TestSaveIdentityWithoutSidecar(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "model.obj"), transform.NewParameters()); err != nil {
		t.Errorf("identity save with no sidecar should be a no-op, got %v", err)
	}
}

func TestSaveIdentityRemoveFailure(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "model.obj")

	// A non-empty directory at the sidecar path cannot be removed
	if err := os.MkdirAll(filepath.Join(PathFor(modelPath), "blocker"), 0755); err != nil {
		t.Fatalf("failed to set up sidecar directory: %v", err)
	}

	if err := Save(modelPath, transform.NewParameters()); err == nil {
		t.Error("expected error when the stale sidecar cannot be removed")
	}
}

func TestLoadMalformedSidecar(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(PathFor(modelPath), []byte("{broken"), 0644); err != nil {
		t.Fatalf("failed to write sidecar: %v", err)
	}

	if _, _, err := Load(modelPath); err == nil {
		t.Error("expected error for malformed sidecar")
	}
}
