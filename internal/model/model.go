package model

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"go3dview/pkg/obj"
	"go3dview/pkg/transform"
)

// Model owns the authoritative geometry: the mesh as parsed from disk
// plus the cumulative transform committed so far. The displayed mesh is
// the base geometry with the cumulative transform baked in, so repeated
// commits never accumulate floating point drift in the vertex data.
type Model struct {
	path       string
	base       *obj.Mesh
	current    *obj.Mesh
	cumulative transform.Parameters
}

// New creates an empty model
func New() *Model {
	return &Model{cumulative: transform.NewParameters()}
}

// LoadFromFile parses the model file at path and replaces the current
// geometry. The cumulative transform is reset. On failure the previous
// geometry is kept untouched.
func (m *Model) LoadFromFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".obj":
		mesh, err := obj.Parse(path)
		if err != nil {
			return fmt.Errorf("failed to load model: %w", err)
		}
		m.base = mesh
		m.current = mesh.Clone()
		m.cumulative = transform.NewParameters()
		m.path = path
		return nil
	default:
		return fmt.Errorf("unsupported file type: %s (expected .obj)", ext)
	}
}

// ApplyTransform folds a pending delta into the cumulative transform
// and rebakes the displayed mesh. An identity delta is a no-op. Scale
// factors that are zero, negative or non-finite are ignored so a stray
// slider value cannot collapse the mesh; everything else is applied
// unvalidated.
func (m *Model) ApplyTransform(delta transform.Parameters) {
	if m.base == nil || delta.IsIdentity() {
		return
	}

	m.cumulative.Translation = m.cumulative.Translation.Add(delta.Translation)
	m.cumulative.Rotation = m.cumulative.Rotation.Add(delta.Rotation)
	m.cumulative.Scale *= sanitizeScale(delta.Scale)

	m.rebake()
}

// SetCumulative replaces the cumulative transform outright, e.g. when
// restoring a saved session, and rebakes the displayed mesh.
func (m *Model) SetCumulative(p transform.Parameters) {
	if m.base == nil {
		return
	}
	p.Scale = sanitizeScale(p.Scale)
	m.cumulative = p
	m.rebake()
}

// Mesh returns the current (transformed) mesh, or nil before a load
func (m *Model) Mesh() *obj.Mesh {
	return m.current
}

// Cumulative returns the transform committed so far
func (m *Model) Cumulative() transform.Parameters {
	return m.cumulative
}

// Loaded reports whether geometry has been loaded
func (m *Model) Loaded() bool {
	return m.base != nil
}

// Path returns the file the current geometry was loaded from
func (m *Model) Path() string {
	return m.path
}

// rebake recomputes the displayed mesh from the base geometry and the
// cumulative transform
func (m *Model) rebake() {
	matrix := transform.Matrix(m.cumulative)
	baked := m.base.Clone()
	for i, v := range baked.Vertices {
		baked.Vertices[i] = transform.Apply(matrix, v)
	}
	m.current = baked
}

// sanitizeScale maps unusable scale factors to the neutral factor
func sanitizeScale(s float64) float64 {
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 1
	}
	return s
}
