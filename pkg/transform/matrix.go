package transform

import (
	"github.com/go-gl/mathgl/mgl64"

	"go3dview/pkg/geometry"
)

// Matrix composes the affine matrix for p as T * Rz * Ry * Rx * S.
// Rotation is about the origin; callers that want to rotate around the
// model center must translate first.
func Matrix(p Parameters) mgl64.Mat4 {
	translate := mgl64.Translate3D(p.Translation.X, p.Translation.Y, p.Translation.Z)
	rotate := mgl64.HomogRotate3DZ(p.Rotation.Z).
		Mul4(mgl64.HomogRotate3DY(p.Rotation.Y)).
		Mul4(mgl64.HomogRotate3DX(p.Rotation.X))
	scale := mgl64.Scale3D(p.Scale, p.Scale, p.Scale)

	return translate.Mul4(rotate).Mul4(scale)
}

// Apply transforms a point by the given matrix
func Apply(m mgl64.Mat4, v geometry.Vector3) geometry.Vector3 {
	out := mgl64.TransformCoordinate(mgl64.Vec3{v.X, v.Y, v.Z}, m)
	return geometry.Vector3{X: out.X(), Y: out.Y(), Z: out.Z()}
}
