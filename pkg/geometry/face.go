package geometry

// Face references the vertices of a polygon by index into a vertex list.
// A face has at least three vertices; larger polygons are assumed convex
// and planar, which lets them be triangulated as a fan.
type Face []int

// TriangleCount returns the number of triangles the face decomposes into
func (f Face) TriangleCount() int {
	if len(f) < 3 {
		return 0
	}
	return len(f) - 2
}

// Fan triangulates the face as a fan around its first vertex
func (f Face) Fan() [][3]int {
	if len(f) < 3 {
		return nil
	}
	triangles := make([][3]int, 0, len(f)-2)
	for i := 1; i < len(f)-1; i++ {
		triangles = append(triangles, [3]int{f[0], f[i], f[i+1]})
	}
	return triangles
}

// Edges returns the index pairs forming the outline of the face,
// including the closing edge back to the first vertex.
func (f Face) Edges() [][2]int {
	if len(f) < 2 {
		return nil
	}
	edges := make([][2]int, 0, len(f))
	for i := range f {
		edges = append(edges, [2]int{f[i], f[(i+1)%len(f)]})
	}
	return edges
}
