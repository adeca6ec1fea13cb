package analysis

import (
	"math"

	"go3dview/pkg/geometry"
	"go3dview/pkg/obj"
)

// Result contains the measurements of a mesh
type Result struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	VertexCount   int
	FaceCount     int
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeMesh measures a mesh: bounding box, surface area and edge
// length statistics
func AnalyzeMesh(m *obj.Mesh) *Result {
	result := &Result{
		BoundingBox:   m.BoundingBox(),
		VertexCount:   m.VertexCount(),
		FaceCount:     m.FaceCount(),
		TriangleCount: m.TriangleCount(),
	}
	result.Dimensions = result.BoundingBox.Size()

	for _, face := range m.Faces {
		for _, tri := range face.Fan() {
			v1 := m.Vertices[tri[0]]
			v2 := m.Vertices[tri[1]]
			v3 := m.Vertices[tri[2]]
			result.SurfaceArea += v2.Sub(v1).Cross(v3.Sub(v1)).Length() / 2
		}
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, face := range m.Faces {
		for _, edge := range face.Edges() {
			length := m.Vertices[edge[1]].Sub(m.Vertices[edge[0]]).Length()

			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
			result.EdgeCount++
		}
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindNearestVertex returns the vertex nearest to a given point and its
// distance
func FindNearestVertex(m *obj.Mesh, point geometry.Vector3) (geometry.Vector3, float64) {
	nearest := geometry.Vector3{}
	minDist := math.MaxFloat64

	for _, v := range m.Vertices {
		if dist := v.Sub(point).Length(); dist < minDist {
			minDist = dist
			nearest = v
		}
	}

	return nearest, minDist
}
