package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go3dview/pkg/geometry"
	"go3dview/pkg/obj"
)

// meshToRaylib converts a mesh to a Raylib mesh with baked lighting
func meshToRaylib(mesh *obj.Mesh) rl.Mesh {
	triangleCount := mesh.TriangleCount()
	vertexCount := triangleCount * 3

	rlMesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4) // vertex colors for baked lighting

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for _, face := range mesh.Faces {
		for _, tri := range face.Fan() {
			v1 := mesh.Vertices[tri[0]]
			v2 := mesh.Vertices[tri[1]]
			v3 := mesh.Vertices[tri[2]]

			normal := v2.Sub(v1).Cross(v3.Sub(v1)).Normalize()

			// Diffuse lighting with a 30% ambient floor
			lightIntensity := math.Max(0.3, -normal.Dot(lightDir))
			baseColor := 200.0
			r := uint8(baseColor * lightIntensity * 0.5)
			g := uint8(baseColor * lightIntensity * 0.6)
			b := uint8(baseColor * lightIntensity)

			for corner, v := range [3]geometry.Vector3{v1, v2, v3} {
				vertices[idx*3+0] = float32(v.X)
				vertices[idx*3+1] = float32(v.Y)
				vertices[idx*3+2] = float32(v.Z)
				normals[idx*3+0] = float32(normal.X)
				normals[idx*3+1] = float32(normal.Y)
				normals[idx*3+2] = float32(normal.Z)
				texcoords[idx*2+0] = float32(corner & 1)
				texcoords[idx*2+1] = float32(corner >> 1)
				colors[idx*4+0] = r
				colors[idx*4+1] = g
				colors[idx*4+2] = b
				colors[idx*4+3] = 255
				idx++
			}
		}
	}

	if len(vertices) > 0 {
		rlMesh.Vertices = &vertices[0]
	}
	if len(normals) > 0 {
		rlMesh.Normals = &normals[0]
	}
	if len(texcoords) > 0 {
		rlMesh.Texcoords = &texcoords[0]
	}
	if len(colors) > 0 {
		rlMesh.Colors = &colors[0]
	}

	rl.UploadMesh(&rlMesh, false)

	return rlMesh
}

// drawWireframe draws the face edges of the displayed mesh
func (app *App) drawWireframe() {
	if app.current == nil {
		return
	}

	lineColor := rl.NewColor(235, 235, 245, 255)
	for _, face := range app.current.Faces {
		for _, edge := range face.Edges() {
			a := app.current.Vertices[edge[0]]
			b := app.current.Vertices[edge[1]]
			rl.DrawLine3D(
				rl.Vector3{X: float32(a.X), Y: float32(a.Y), Z: float32(a.Z)},
				rl.Vector3{X: float32(b.X), Y: float32(b.Y), Z: float32(b.Z)},
				lineColor,
			)
		}
	}
}
