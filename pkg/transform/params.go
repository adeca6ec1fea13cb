package transform

import (
	"math"

	"go3dview/pkg/geometry"
)

// Parameters accumulates pending transform adjustments: translation
// deltas per axis, rotation deltas per axis (radians) and a uniform
// scale factor. Translation and rotation are additive; scale is an
// absolute factor where 1 means "no pending scale change".
//
// No validation is performed on input magnitude; non-finite values are
// stored as-is and left for the consumer to handle.
type Parameters struct {
	Translation geometry.Vector3
	Rotation    geometry.Vector3
	Scale       float64
}

// NewParameters returns an identity accumulator
func NewParameters() Parameters {
	return Parameters{Scale: 1}
}

// Translate adds delta to the translation component on the given axis
func (p *Parameters) Translate(axis Axis, delta float64) {
	addAxis(&p.Translation, axis, delta)
}

// Rotate adds the angle (in radians) to the rotation component on the
// given axis
func (p *Parameters) Rotate(axis Axis, radians float64) {
	addAxis(&p.Rotation, axis, radians)
}

// SetScale overwrites the pending uniform scale factor. The model is
// scaled equally on all axes, so the last reported value wins.
func (p *Parameters) SetScale(factor float64) {
	p.Scale = factor
}

// Reset restores the accumulator to identity: zero translation and
// rotation, neutral scale.
func (p *Parameters) Reset() {
	*p = NewParameters()
}

// IsIdentity reports whether the accumulator holds no pending change
func (p Parameters) IsIdentity() bool {
	return p.Translation == (geometry.Vector3{}) &&
		p.Rotation == (geometry.Vector3{}) &&
		p.Scale == 1
}

func addAxis(v *geometry.Vector3, axis Axis, delta float64) {
	switch axis {
	case AxisX:
		v.X += delta
	case AxisY:
		v.Y += delta
	case AxisZ:
		v.Z += delta
	}
}

// Radians converts an angle from degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Degrees converts an angle from radians to degrees
func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}
