package obj

import (
	"go3dview/pkg/geometry"
)

// Mesh is an indexed polygon mesh parsed from a Wavefront OBJ file
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	Faces    []geometry.Face
}

// NewMesh creates an empty mesh
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([]geometry.Face, 0),
	}
}

// AddVertex appends a vertex to the mesh
func (m *Mesh) AddVertex(v geometry.Vector3) {
	m.Vertices = append(m.Vertices, v)
}

// AddFace appends a face to the mesh
func (m *Mesh) AddFace(f geometry.Face) {
	m.Faces = append(m.Faces, f)
}

// VertexCount returns the number of vertices in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces in the mesh
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// TriangleCount returns the number of triangles after fan triangulation
func (m *Mesh) TriangleCount() int {
	count := 0
	for _, face := range m.Faces {
		count += face.TriangleCount()
	}
	return count
}

// BoundingBox calculates the bounding box of the entire mesh
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}

// Clone returns a deep copy of the mesh
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:     m.Name,
		Vertices: make([]geometry.Vector3, len(m.Vertices)),
		Faces:    make([]geometry.Face, len(m.Faces)),
	}
	copy(clone.Vertices, m.Vertices)
	for i, face := range m.Faces {
		clone.Faces[i] = append(geometry.Face(nil), face...)
	}
	return clone
}
