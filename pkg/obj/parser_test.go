package obj

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go3dview/pkg/geometry"
)

const cubeFaceOBJ = `# simple quad
o plate
v -1.0 -1.0 0.0
v  1.0 -1.0 0.0
v  1.0  1.0 0.0
v -1.0  1.0 0.0
f 1 2 3 4
`

func writeTempOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp OBJ: %v", err)
	}
	return path
}

func TestParseQuad(t *testing.T) {
	mesh, err := Parse(writeTempOBJ(t, cubeFaceOBJ))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if mesh.Name != "plate" {
		t.Errorf("Name failed: expected plate, got %q", mesh.Name)
	}
	if mesh.VertexCount() != 4 {
		t.Errorf("VertexCount failed: expected 4, got %d", mesh.VertexCount())
	}
	if mesh.FaceCount() != 1 {
		t.Errorf("FaceCount failed: expected 1, got %d", mesh.FaceCount())
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("TriangleCount failed: expected 2, got %d", mesh.TriangleCount())
	}

	expected := geometry.NewVector3(-1, -1, 0)
	if mesh.Vertices[0] != expected {
		t.Errorf("vertex 0: expected %v, got %v", expected, mesh.Vertices[0])
	}
}

func TestParseSlashFormsAndNegativeIndices(t *testing.T) {
	data := `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
f 1/1/1 2/2/1 3/3/1
f -3//1 -2//1 -1//1
`
	mesh, err := ParseReader(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if mesh.FaceCount() != 2 {
		t.Fatalf("FaceCount failed: expected 2, got %d", mesh.FaceCount())
	}
	for _, face := range mesh.Faces {
		for i, idx := range face {
			if idx != i {
				t.Errorf("face index: expected %d, got %d", i, idx)
			}
		}
	}
}

func TestParseIndexOutOfRange(t *testing.T) {
	data := "v 0 0 0\nv 1 0 0\nf 1 2 3\n"
	if _, err := ParseReader(strings.NewReader(data)); err == nil {
		t.Error("expected error for out-of-range face index")
	}
}

func TestParseMalformedVertex(t *testing.T) {
	data := "v 0 zero 0\n"
	if _, err := ParseReader(strings.NewReader(data)); err == nil {
		t.Error("expected error for malformed vertex coordinate")
	}
}

func TestParseZeroIndex(t *testing.T) {
	data := "v 0 0 0\nf 0 0 0\n"
	if _, err := ParseReader(strings.NewReader(data)); err == nil {
		t.Error("expected error for zero face index")
	}
}

func TestParseEmptyFile(t *testing.T) {
	if _, err := ParseReader(strings.NewReader("# nothing here\n")); err == nil {
		t.Error("expected error for OBJ without vertex data")
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}
