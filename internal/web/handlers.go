package web

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/pkg/errors"

	"go3dview/pkg/gltfexport"
	"go3dview/pkg/obj"
)

type meshJSON struct {
	Name     string       `json:"name"`
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][]int      `json:"faces"`
}

type bboxJSON struct {
	Min  [3]float64 `json:"min"`
	Max  [3]float64 `json:"max"`
	Size [3]float64 `json:"size"`
}

func (s *Server) handleModel(w http.ResponseWriter, r *http.Request) {
	mesh := s.snapshot()
	if mesh == nil {
		http.Error(w, "no model loaded", http.StatusServiceUnavailable)
		return
	}

	payload := meshJSON{
		Name:     mesh.Name,
		Vertices: make([][3]float64, len(mesh.Vertices)),
		Faces:    make([][]int, len(mesh.Faces)),
	}
	for i, v := range mesh.Vertices {
		payload.Vertices[i] = [3]float64{v.X, v.Y, v.Z}
	}
	for i, face := range mesh.Faces {
		payload.Faces[i] = face
	}

	writeJSON(w, payload)
}

func (s *Server) handleBBox(w http.ResponseWriter, r *http.Request) {
	mesh := s.snapshot()
	if mesh == nil {
		http.Error(w, "no model loaded", http.StatusServiceUnavailable)
		return
	}

	bbox := mesh.BoundingBox()
	size := bbox.Size()
	writeJSON(w, bboxJSON{
		Min:  [3]float64{bbox.Min.X, bbox.Min.Y, bbox.Min.Z},
		Max:  [3]float64{bbox.Max.X, bbox.Max.Y, bbox.Max.Z},
		Size: [3]float64{size.X, size.Y, size.Z},
	})
}

func (s *Server) handleGLTF(w http.ResponseWriter, r *http.Request) {
	mesh := s.snapshot()
	if mesh == nil {
		http.Error(w, "no model loaded", http.StatusServiceUnavailable)
		return
	}

	if err := serveGLTF(w, mesh); err != nil {
		log.Printf("Error exporting glTF: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// serveGLTF encodes into a buffer first so a failed export never sends
// a truncated body
func serveGLTF(w http.ResponseWriter, mesh *obj.Mesh) error {
	doc, err := gltfexport.Document(mesh)
	if err != nil {
		return errors.Wrap(err, "build glTF document")
	}

	var buf bytes.Buffer
	if err := gltfexport.WriteBinary(&buf, doc); err != nil {
		return errors.Wrap(err, "encode glTF")
	}

	w.Header().Set("Content-Type", "model/gltf-binary")
	w.Header().Set("Content-Disposition", `attachment; filename="model.glb"`)
	_, err = w.Write(buf.Bytes())
	return errors.Wrap(err, "write response")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>go3dview</title></head>
<body>
<h1>go3dview preview server</h1>
<ul>
<li><a href="/json/model">/json/model</a> &mdash; mesh vertices and faces</li>
<li><a href="/json/bbox">/json/bbox</a> &mdash; bounding box</li>
<li><a href="/gltf/model.glb">/gltf/model.glb</a> &mdash; binary glTF download</li>
<li><code>/live</code> &mdash; websocket, sends {"event":"reload"} when the model file changes</li>
</ul>
</body>
</html>
`
