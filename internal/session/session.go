// Package session persists the committed transform of a model file in
// a JSON sidecar next to it, so reopening the file restores the last
// applied transform.
package session

import (
	"encoding/json"
	"fmt"
	"os"

	"go3dview/pkg/geometry"
	"go3dview/pkg/transform"
)

const version = "1.0"

// Data is the JSON structure of the sidecar file
type Data struct {
	Version   string        `json:"version"`
	Transform TransformData `json:"transform"`
}

// TransformData is the serialized cumulative transform
type TransformData struct {
	Translation Vector3Data `json:"translation"`
	Rotation    Vector3Data `json:"rotation"` // radians
	Scale       float64     `json:"scale"`
}

// Vector3Data is a 3D vector for JSON serialization
type Vector3Data struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PathFor returns the sidecar path for a model file
func PathFor(modelPath string) string {
	return modelPath + ".go3dview.json"
}

// Save writes the cumulative transform for the model file. An identity
// transform removes the sidecar instead, so untouched models leave no
// clutter behind.
func Save(modelPath string, p transform.Parameters) error {
	path := PathFor(modelPath)

	if p.IsIdentity() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove session file: %w", err)
		}
		return nil
	}

	data := Data{
		Version: version,
		Transform: TransformData{
			Translation: Vector3Data{p.Translation.X, p.Translation.Y, p.Translation.Z},
			Rotation:    Vector3Data{p.Rotation.X, p.Rotation.Y, p.Rotation.Z},
			Scale:       p.Scale,
		},
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads the saved transform for a model file. The second return
// value is false when no sidecar exists.
func Load(modelPath string) (transform.Parameters, bool, error) {
	encoded, err := os.ReadFile(PathFor(modelPath))
	if err != nil {
		if os.IsNotExist(err) {
			return transform.NewParameters(), false, nil
		}
		return transform.NewParameters(), false, fmt.Errorf("failed to read session file: %w", err)
	}

	var data Data
	if err := json.Unmarshal(encoded, &data); err != nil {
		return transform.NewParameters(), false, fmt.Errorf("failed to parse session file: %w", err)
	}

	p := transform.Parameters{
		Translation: geometry.NewVector3(data.Transform.Translation.X, data.Transform.Translation.Y, data.Transform.Translation.Z),
		Rotation:    geometry.NewVector3(data.Transform.Rotation.X, data.Transform.Rotation.Y, data.Transform.Rotation.Z),
		Scale:       data.Transform.Scale,
	}
	if p.Scale == 0 {
		p.Scale = 1
	}
	return p, true, nil
}
