package transform

import (
	"math"
	"testing"

	"go3dview/pkg/geometry"
)

func vecNear(a, b geometry.Vector3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestMatrixIdentity(t *testing.T) {
	m := Matrix(NewParameters())
	point := geometry.NewVector3(1, 2, 3)

	result := Apply(m, point)
	if !vecNear(result, point, 1e-10) {
		t.Errorf("identity transform moved the point: got %v", result)
	}
}

func TestMatrixTranslation(t *testing.T) {
	p := NewParameters()
	p.Translate(AxisX, 5)
	p.Translate(AxisY, -1)

	result := Apply(Matrix(p), geometry.NewVector3(1, 1, 1))
	expected := geometry.NewVector3(6, 0, 1)
	if !vecNear(result, expected, 1e-10) {
		t.Errorf("translation failed: expected %v, got %v", expected, result)
	}
}

func TestMatrixRotationZ(t *testing.T) {
	p := NewParameters()
	p.Rotate(AxisZ, math.Pi/2)

	result := Apply(Matrix(p), geometry.NewVector3(1, 0, 0))
	expected := geometry.NewVector3(0, 1, 0)
	if !vecNear(result, expected, 1e-10) {
		t.Errorf("rotation failed: expected %v, got %v", expected, result)
	}
}

func TestMatrixScale(t *testing.T) {
	p := NewParameters()
	p.SetScale(2)

	result := Apply(Matrix(p), geometry.NewVector3(1, -2, 3))
	expected := geometry.NewVector3(2, -4, 6)
	if !vecNear(result, expected, 1e-10) {
		t.Errorf("scale failed: expected %v, got %v", expected, result)
	}
}

func TestMatrixOrderScaleRotateTranslate(t *testing.T) {
	// Scale first, then rotate, then translate: (1,0,0) -> (2,0,0)
	// -> (0,2,0) -> (10,2,0)
	p := NewParameters()
	p.SetScale(2)
	p.Rotate(AxisZ, math.Pi/2)
	p.Translate(AxisX, 10)

	result := Apply(Matrix(p), geometry.NewVector3(1, 0, 0))
	expected := geometry.NewVector3(10, 2, 0)
	if !vecNear(result, expected, 1e-10) {
		t.Errorf("composition order failed: expected %v, got %v", expected, result)
	}
}
