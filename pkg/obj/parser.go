package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go3dview/pkg/geometry"
)

// Parse reads a Wavefront OBJ file and returns a Mesh.
// Parsing is all-or-nothing: any malformed vertex or face fails the
// whole file and no partial mesh is returned.
func Parse(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	mesh, err := ParseReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return mesh, nil
}

// ParseReader parses OBJ data from a reader.
// Only geometry is kept: v and f statements plus the o/g object name.
// Normals, texture coordinates, materials and smoothing groups are
// skipped.
func ParseReader(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := NewMesh("")

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNum)
			}
			coords := make([]float64, 3)
			for i := 0; i < 3; i++ {
				value, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex coordinate %q", lineNum, fields[i+1])
				}
				coords[i] = value
			}
			mesh.AddVertex(geometry.NewVector3(coords[0], coords[1], coords[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			face := make(geometry.Face, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				index, err := resolveVertexRef(ref, len(mesh.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				face = append(face, index)
			}
			mesh.AddFace(face)

		case "o", "g":
			if len(fields) > 1 && mesh.Name == "" {
				mesh.Name = strings.Join(fields[1:], " ")
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ data: %w", err)
	}

	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("no vertex data found")
	}

	return mesh, nil
}

// resolveVertexRef converts an OBJ face vertex reference ("7", "7/1",
// "7/1/3", "7//3" or a negative relative index) into a zero-based
// vertex index.
func resolveVertexRef(ref string, vertexCount int) (int, error) {
	vertexPart := ref
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		vertexPart = ref[:slash]
	}

	index, err := strconv.Atoi(vertexPart)
	if err != nil {
		return 0, fmt.Errorf("invalid face vertex reference %q", ref)
	}

	switch {
	case index > 0:
		index--
	case index < 0:
		// Negative indices count back from the most recent vertex
		index = vertexCount + index
	default:
		return 0, fmt.Errorf("face vertex index must not be zero")
	}

	if index < 0 || index >= vertexCount {
		return 0, fmt.Errorf("face vertex index %q out of range (have %d vertices)", ref, vertexCount)
	}
	return index, nil
}
