package transform

import (
	"math"
	"testing"

	"go3dview/pkg/geometry"
)

func TestTranslateAccumulates(t *testing.T) {
	p := NewParameters()
	p.Translate(AxisX, 2.0)
	p.Translate(AxisX, 3.0)
	p.Translate(AxisY, -1.0)

	expected := geometry.NewVector3(5.0, -1.0, 0.0)
	if p.Translation != expected {
		t.Errorf("Translate failed: expected %v, got %v", expected, p.Translation)
	}
}

func TestRotateAccumulates(t *testing.T) {
	p := NewParameters()
	p.Rotate(AxisZ, Radians(45))
	p.Rotate(AxisZ, Radians(45))

	if math.Abs(p.Rotation.Z-math.Pi/2) > 1e-10 {
		t.Errorf("Rotate failed: expected %v, got %v", math.Pi/2, p.Rotation.Z)
	}
	if p.Rotation.X != 0 || p.Rotation.Y != 0 {
		t.Errorf("Rotate touched other axes: %v", p.Rotation)
	}
}

func TestSetScaleOverwrites(t *testing.T) {
	p := NewParameters()
	p.SetScale(2.0)
	p.SetScale(0.5)

	if p.Scale != 0.5 {
		t.Errorf("SetScale failed: expected last value 0.5, got %v", p.Scale)
	}
}

func TestResetRestoresIdentity(t *testing.T) {
	p := NewParameters()
	p.Translate(AxisX, 10)
	p.Rotate(AxisY, 1)
	p.SetScale(3)

	p.Reset()

	if !p.IsIdentity() {
		t.Errorf("Reset failed: %+v is not identity", p)
	}
	if p.Scale != 1 {
		t.Errorf("Reset failed: expected neutral scale 1, got %v", p.Scale)
	}
}

func TestIsIdentity(t *testing.T) {
	p := NewParameters()
	if !p.IsIdentity() {
		t.Error("fresh accumulator should be identity")
	}

	p.Translate(AxisZ, 0.001)
	if p.IsIdentity() {
		t.Error("accumulator with pending translation should not be identity")
	}
}

func TestRadiansDegrees(t *testing.T) {
	if math.Abs(Radians(90)-math.Pi/2) > 1e-10 {
		t.Errorf("Radians failed: expected %v, got %v", math.Pi/2, Radians(90))
	}
	if math.Abs(Degrees(math.Pi)-180) > 1e-10 {
		t.Errorf("Degrees failed: expected 180, got %v", Degrees(math.Pi))
	}
}
