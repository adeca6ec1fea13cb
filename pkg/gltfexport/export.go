package gltfexport

import (
	"fmt"
	"io"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"go3dview/pkg/obj"
)

// Document builds a single-mesh glTF document from m. Faces with more
// than three vertices are fan-triangulated.
func Document(m *obj.Mesh) (*gltf.Document, error) {
	if m.VertexCount() == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}
	if m.TriangleCount() == 0 {
		return nil, fmt.Errorf("mesh has no triangles")
	}

	doc := gltf.NewDocument()

	positions := make([][3]float32, m.VertexCount())
	for i, v := range m.Vertices {
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	positionAccessor := modeler.WritePosition(doc, positions)

	indices := make([]uint32, 0, m.TriangleCount()*3)
	for _, face := range m.Faces {
		for _, tri := range face.Fan() {
			indices = append(indices, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
		}
	}
	indicesAccessor := modeler.WriteIndices(doc, indices)

	name := m.Name
	if name == "" {
		name = "model"
	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(indicesAccessor),
			Attributes: gltf.Attribute{
				gltf.POSITION: positionAccessor,
			},
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	return doc, nil
}

// WriteBinary encodes doc as binary glTF (.glb)
func WriteBinary(w io.Writer, doc *gltf.Document) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return encoder.Encode(doc)
}

// ExportFile writes m as a binary glTF file at path
func ExportFile(path string, m *obj.Mesh) error {
	doc, err := Document(m)
	if err != nil {
		return fmt.Errorf("failed to build glTF document: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteBinary(file, doc); err != nil {
		return fmt.Errorf("failed to encode glTF: %w", err)
	}
	return nil
}
