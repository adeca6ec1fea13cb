package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"go3dview/pkg/geometry"
	"go3dview/pkg/transform"
)

const triangleOBJ = `o tri
v 1.0 0.0 0.0
v 0.0 1.0 0.0
v 0.0 0.0 1.0
f 1 2 3
`

func loadTestModel(t *testing.T) *Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte(triangleOBJ), 0644); err != nil {
		t.Fatalf("failed to write temp OBJ: %v", err)
	}

	m := New()
	if err := m.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	return m
}

func vecNear(a, b geometry.Vector3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestLoadFromFile(t *testing.T) {
	m := loadTestModel(t)

	if !m.Loaded() {
		t.Fatal("model should be loaded")
	}
	if m.Mesh().VertexCount() != 3 {
		t.Errorf("expected 3 vertices, got %d", m.Mesh().VertexCount())
	}
	if !m.Cumulative().IsIdentity() {
		t.Error("cumulative transform should start at identity")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	m := New()
	if err := m.LoadFromFile(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected error for missing file")
	}
	if m.Loaded() {
		t.Error("failed load must not leave the model loaded")
	}
}

func TestLoadFromFileUnsupported(t *testing.T) {
	m := New()
	if err := m.LoadFromFile("model.stl"); err == nil {
		t.Error("expected error for unsupported file type")
	}
}

func TestLoadFailureKeepsGeometry(t *testing.T) {
	m := loadTestModel(t)
	before := m.Mesh().VertexCount()

	if err := m.LoadFromFile(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if m.Mesh().VertexCount() != before {
		t.Error("failed load must keep the previous geometry")
	}
}

func TestApplyTransformTranslation(t *testing.T) {
	m := loadTestModel(t)

	delta := transform.NewParameters()
	delta.Translate(transform.AxisX, 5)
	delta.Translate(transform.AxisY, -1)
	m.ApplyTransform(delta)

	expected := geometry.NewVector3(6, -1, 0)
	if !vecNear(m.Mesh().Vertices[0], expected, 1e-10) {
		t.Errorf("expected %v, got %v", expected, m.Mesh().Vertices[0])
	}
	if !vecNear(m.Cumulative().Translation, geometry.NewVector3(5, -1, 0), 1e-10) {
		t.Errorf("cumulative translation wrong: %v", m.Cumulative().Translation)
	}
}

func TestApplyTransformRotation(t *testing.T) {
	m := loadTestModel(t)

	delta := transform.NewParameters()
	delta.Rotate(transform.AxisZ, math.Pi/2)
	m.ApplyTransform(delta)

	// (1,0,0) rotated 90 degrees about Z becomes (0,1,0)
	expected := geometry.NewVector3(0, 1, 0)
	if !vecNear(m.Mesh().Vertices[0], expected, 1e-10) {
		t.Errorf("expected %v, got %v", expected, m.Mesh().Vertices[0])
	}
}

func TestApplyTransformIdentityIsNoop(t *testing.T) {
	m := loadTestModel(t)
	before := m.Mesh().Vertices[0]

	m.ApplyTransform(transform.NewParameters())

	if m.Mesh().Vertices[0] != before {
		t.Error("identity commit must not alter the mesh")
	}
}

func TestApplyTransformCommitsCompose(t *testing.T) {
	m := loadTestModel(t)

	first := transform.NewParameters()
	first.Translate(transform.AxisX, 1)
	m.ApplyTransform(first)

	second := transform.NewParameters()
	second.Translate(transform.AxisX, 2)
	m.ApplyTransform(second)

	expected := geometry.NewVector3(4, 0, 0)
	if !vecNear(m.Mesh().Vertices[0], expected, 1e-10) {
		t.Errorf("expected %v after two commits, got %v", expected, m.Mesh().Vertices[0])
	}
}

func TestApplyTransformBadScaleIgnored(t *testing.T) {
	m := loadTestModel(t)

	for _, scale := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		delta := transform.NewParameters()
		delta.SetScale(scale)
		delta.Translate(transform.AxisX, 1) // so the delta is not identity
		m.ApplyTransform(delta)

		if got := m.Cumulative().Scale; got != 1 {
			t.Errorf("scale %v should be ignored, cumulative scale is %v", scale, got)
		}
	}
}

func TestSetCumulative(t *testing.T) {
	m := loadTestModel(t)

	p := transform.NewParameters()
	p.Translate(transform.AxisZ, 3)
	p.SetScale(2)
	m.SetCumulative(p)

	// (1,0,0) scaled by 2 then moved +3 on Z
	expected := geometry.NewVector3(2, 0, 3)
	if !vecNear(m.Mesh().Vertices[0], expected, 1e-10) {
		t.Errorf("expected %v, got %v", expected, m.Mesh().Vertices[0])
	}
}
