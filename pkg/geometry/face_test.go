package geometry

import "testing"

func TestFaceTriangleCount(t *testing.T) {
	if count := (Face{0, 1, 2}).TriangleCount(); count != 1 {
		t.Errorf("TriangleCount failed: expected 1, got %d", count)
	}
	if count := (Face{0, 1, 2, 3}).TriangleCount(); count != 2 {
		t.Errorf("TriangleCount failed: expected 2, got %d", count)
	}
	if count := (Face{0, 1}).TriangleCount(); count != 0 {
		t.Errorf("TriangleCount failed: expected 0, got %d", count)
	}
}

func TestFaceFan(t *testing.T) {
	fan := (Face{4, 5, 6, 7}).Fan()

	expected := [][3]int{{4, 5, 6}, {4, 6, 7}}
	if len(fan) != len(expected) {
		t.Fatalf("Fan failed: expected %d triangles, got %d", len(expected), len(fan))
	}
	for i := range expected {
		if fan[i] != expected[i] {
			t.Errorf("Fan triangle %d: expected %v, got %v", i, expected[i], fan[i])
		}
	}
}

func TestFaceEdges(t *testing.T) {
	edges := (Face{0, 1, 2}).Edges()

	expected := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	if len(edges) != len(expected) {
		t.Fatalf("Edges failed: expected %d edges, got %d", len(expected), len(edges))
	}
	for i := range expected {
		if edges[i] != expected[i] {
			t.Errorf("Edge %d: expected %v, got %v", i, expected[i], edges[i])
		}
	}
}
